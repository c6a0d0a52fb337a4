package mailer

import (
	"fmt"
	"log"
	"net/smtp"

	"codeprep/backend/config"
)

// Sender delivers transactional mail (currently only the signup OTP).
type Sender interface {
	Send(to, subject, body string) error
}

type SMTP struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func NewSMTP(cfg *config.Config) *SMTP {
	return &SMTP{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	}
}

func (s *SMTP) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		s.From, to, subject, body)

	auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
	return smtp.SendMail(s.Host+":"+s.Port, auth, s.From, []string{to}, []byte(msg))
}

// Log writes the mail to the process log instead of sending it. Used when
// SMTP is unconfigured so local registration still works, and by tests.
type Log struct {
	Logger *log.Logger
}

func (l *Log) Send(to, subject, body string) error {
	logger := l.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf("mail to %s: %s: %s", to, subject, body)
	return nil
}

// FromConfig picks SMTP when a host is configured, the log fallback
// otherwise.
func FromConfig(cfg *config.Config) Sender {
	if cfg.SMTPHost == "" {
		return &Log{}
	}
	return NewSMTP(cfg)
}
