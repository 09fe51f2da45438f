package ports

import (
	"context"

	"github.com/JeanGrijp/clima-api/internal/core/domain"
)

// Mailer entrega uma mensagem de contato ao destinatário configurado.
type Mailer interface {
	Send(ctx context.Context, msg domain.ContactMessage) error
}
