package notification

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// LogEmailSender is a simulated email channel: messages are written to the
// application log instead of an SMTP relay. It keeps the email path exercised
// end to end until a real provider is wired in.
type LogEmailSender struct{}

func NewLogEmailSender() *LogEmailSender {
	return &LogEmailSender{}
}

func (s *LogEmailSender) SendEmail(_ context.Context, to, subject, body string) error {
	log.Infof("[notify][email] simulated email to %s subject=%q - %s", to, subject, body)
	return nil
}
