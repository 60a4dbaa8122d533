package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"telemind_backend/internal/config"
	"telemind_backend/internal/logger"
)

// Sender - контракт внешнего канала уведомлений: доставка best-effort,
// ошибка возвращается вызывающему только для логирования.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender отправляет письма через SMTP (gomail)
type SMTPSender struct {
	cfg *config.Config
}

// NewSMTPSender создает SMTP отправитель
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Email.FromEmail, s.cfg.Email.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(
		s.cfg.Email.SMTPHost,
		s.cfg.Email.SMTPPort,
		s.cfg.Email.SMTPUser,
		s.cfg.Email.SMTPPassword,
	)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}

// LogSender - заглушка для окружений без SMTP: письмо уходит в лог.
type LogSender struct{}

func (s *LogSender) Send(to, subject, body string) error {
	logger.Info("email (log-only sender)", "to", to, "subject", subject, "body", body)
	return nil
}
