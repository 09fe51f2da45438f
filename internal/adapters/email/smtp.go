// Package email entrega mensagens de contato via SMTP.
package email

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/JeanGrijp/clima-api/internal/core/domain"
	"github.com/JeanGrijp/clima-api/internal/core/ports"
)

// SMTPMailer implementa ports.Mailer sobre gomail.
type SMTPMailer struct {
	dialer    *gomail.Dialer
	from      string
	recipient string
}

var _ ports.Mailer = (*SMTPMailer)(nil)

type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	From      string
	Recipient string
}

func NewSMTPMailer(cfg Config) (*SMTPMailer, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if cfg.From == "" || cfg.Recipient == "" {
		return nil, fmt.Errorf("smtp from and recipient are required")
	}

	return &SMTPMailer{
		dialer:    gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:      cfg.From,
		recipient: cfg.Recipient,
	}, nil
}

// Send monta e entrega o e-mail do formulário de contato. O remetente real
// vai em Reply-To para a resposta chegar a quem preencheu o formulário.
func (m *SMTPMailer) Send(_ context.Context, msg domain.ContactMessage) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", m.recipient)
	mail.SetHeader("Reply-To", mail.FormatAddress(msg.Email, msg.Name))
	mail.SetHeader("Subject", fmt.Sprintf("[contact] %s", msg.Subject))
	mail.SetBody("text/plain", fmt.Sprintf(
		"Message %s received at %s\nFrom: %s <%s>\n\n%s\n",
		msg.ID, msg.ReceivedAt.Format("2006-01-02 15:04:05 MST"), msg.Name, msg.Email, msg.Message,
	))

	if err := m.dialer.DialAndSend(mail); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
