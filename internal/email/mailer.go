package email

import "github.com/planhub/planhub/internal/logging"

// Mailer delivers rendered messages. The default implementation only logs;
// a real SMTP/SES backend can replace it without touching the services.
type Mailer interface {
	Send(to, body string) error
}

type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) Send(to, body string) error {
	logging.C("mailer").WithField("to", to).Info("outgoing email:\n" + body)
	return nil
}
