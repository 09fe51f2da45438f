package services

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JeanGrijp/clima-api/internal/core/domain"
	"github.com/JeanGrijp/clima-api/internal/core/ports"
)

const (
	maxContactNameLength    = 120
	maxContactSubjectLength = 200
	maxContactMessageLength = 4000
)

// ContactInput agrega os campos crus recebidos do formulário de contato.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactService valida e entrega mensagens do formulário de contato.
type ContactService struct {
	mailer ports.Mailer
	now    func() time.Time
}

func NewContactService(mailer ports.Mailer) (*ContactService, error) {
	if mailer == nil {
		return nil, fmt.Errorf("mailer is required")
	}
	return &ContactService{mailer: mailer, now: time.Now}, nil
}

// Submit valida o formulário campo a campo e entrega a mensagem via mailer.
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (domain.ContactMessage, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.ContactMessage{}, domain.NewValidationError("name", "must not be empty")
	}
	if len(name) > maxContactNameLength {
		return domain.ContactMessage{}, domain.NewValidationError("name", fmt.Sprintf("must be at most %d characters", maxContactNameLength))
	}

	email := strings.TrimSpace(in.Email)
	if email == "" {
		return domain.ContactMessage{}, domain.NewValidationError("email", "must not be empty")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.ContactMessage{}, domain.NewValidationError("email", "must be a valid email address")
	}

	subject := strings.TrimSpace(in.Subject)
	if subject == "" {
		return domain.ContactMessage{}, domain.NewValidationError("subject", "must not be empty")
	}
	if len(subject) > maxContactSubjectLength {
		return domain.ContactMessage{}, domain.NewValidationError("subject", fmt.Sprintf("must be at most %d characters", maxContactSubjectLength))
	}

	message := strings.TrimSpace(in.Message)
	if message == "" {
		return domain.ContactMessage{}, domain.NewValidationError("message", "must not be empty")
	}
	if len(message) > maxContactMessageLength {
		return domain.ContactMessage{}, domain.NewValidationError("message", fmt.Sprintf("must be at most %d characters", maxContactMessageLength))
	}

	msg := domain.ContactMessage{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		Subject:    subject,
		Message:    message,
		ReceivedAt: s.now().UTC(),
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		return domain.ContactMessage{}, fmt.Errorf("send contact message: %w", err)
	}

	return msg, nil
}
