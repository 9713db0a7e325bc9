package mail

// Mailer delivers one HTML message. Implementations report failure so the
// sweep can leave the reminder pending for the next pass.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}
