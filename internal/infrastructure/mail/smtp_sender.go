package mail

import (
	"context"

	gomail "gopkg.in/gomail.v2"

	"github.com/isokohq/isoko-api/internal/application/notify"
	"github.com/isokohq/isoko-api/pkg/config"
	"github.com/isokohq/isoko-api/pkg/logger"
)

// SMTPSender delivers notification emails over SMTP. With Enabled=false the
// email is logged and dropped, which is the development default.
type SMTPSender struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
	log    *logger.Logger
}

var _ notify.Sender = (*SMTPSender)(nil)

// NewSMTPSender builds the sender from config.
func NewSMTPSender(cfg config.SMTPConfig, log *logger.Logger) *SMTPSender {
	s := &SMTPSender{cfg: cfg, log: log}
	if cfg.Enabled {
		s.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	}
	return s
}

// Send delivers one email. gomail has no context support; the dispatcher's
// retry loop owns timeouts and backoff.
func (s *SMTPSender) Send(_ context.Context, e notify.Email) error {
	if !s.cfg.Enabled {
		s.log.Info().
			Str("to", e.To).
			Str("subject", e.Subject).
			Msg("smtp disabled, email not sent")
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromEmail, s.cfg.FromName)
	m.SetAddressHeader("To", e.To, e.ToName)
	m.SetHeader("Subject", e.Subject)
	m.SetBody("text/plain", e.Body)

	return s.dialer.DialAndSend(m)
}
