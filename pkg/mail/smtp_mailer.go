package mail

import "gopkg.in/gomail.v2"

type smtpMailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewSMTP(host string, port int, user, pass, from string) Mailer {
	return &smtpMailer{host: host, port: port, user: user, pass: pass, from: from}
}

func (m *smtpMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return d.DialAndSend(msg)
}
