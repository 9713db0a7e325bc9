package mail

import "log"

type mockMailer struct{}

// NewMock logs instead of dialing; used when SMTP is not configured.
func NewMock() Mailer { return &mockMailer{} }

func (m *mockMailer) Send(to, subject, htmlBody string) error {
	log.Printf("[mail] (mock) to=%s subject=%q", to, subject)
	return nil
}
