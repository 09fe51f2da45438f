package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JeanGrijp/clima-api/internal/core/domain"
)

func TestContactService_SubmitDeliversMessage(t *testing.T) {
	mailer := &fakeMailer{}
	service := newTestContactService(t, mailer)

	msg, err := service.Submit(context.Background(), ContactInput{
		Name:    "  Maria Silva ",
		Email:   "maria@example.com",
		Subject: "Previsão errada",
		Message: "A previsão de ontem não bateu com o tempo real.",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "Maria Silva", msg.Name)
	assert.False(t, msg.ReceivedAt.IsZero())
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, msg.ID, mailer.sent[0].ID)
}

func TestContactService_SubmitValidation(t *testing.T) {
	tests := []struct {
		name  string
		input ContactInput
		field string
	}{
		{"empty name", ContactInput{Email: "a@b.com", Subject: "s", Message: "m"}, "name"},
		{"long name", ContactInput{Name: strings.Repeat("x", 121), Email: "a@b.com", Subject: "s", Message: "m"}, "name"},
		{"empty email", ContactInput{Name: "n", Subject: "s", Message: "m"}, "email"},
		{"bad email", ContactInput{Name: "n", Email: "not-an-email", Subject: "s", Message: "m"}, "email"},
		{"empty subject", ContactInput{Name: "n", Email: "a@b.com", Message: "m"}, "subject"},
		{"empty message", ContactInput{Name: "n", Email: "a@b.com", Subject: "s"}, "message"},
		{"long message", ContactInput{Name: "n", Email: "a@b.com", Subject: "s", Message: strings.Repeat("x", 4001)}, "message"},
	}

	mailer := &fakeMailer{}
	service := newTestContactService(t, mailer)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Submit(context.Background(), tt.input)
			ve, ok := domain.AsValidationError(err)
			require.True(t, ok, "expected validation error, got %v", err)
			assert.Equal(t, tt.field, ve.Field)
		})
	}

	assert.Empty(t, mailer.sent, "invalid input must never reach the mailer")
}

func TestContactService_MailerFailure(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp down")}
	service := newTestContactService(t, mailer)

	_, err := service.Submit(context.Background(), ContactInput{
		Name:    "n",
		Email:   "a@b.com",
		Subject: "s",
		Message: "m",
	})
	assert.Error(t, err)
}

func newTestContactService(t *testing.T, mailer *fakeMailer) *ContactService {
	t.Helper()
	service, err := NewContactService(mailer)
	require.NoError(t, err)
	return service
}

type fakeMailer struct {
	sent []domain.ContactMessage
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg domain.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}
