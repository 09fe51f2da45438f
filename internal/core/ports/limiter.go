// Package ports define contratos que conectam o domínio a implementações externas.
package ports

import (
	"context"

	"github.com/JeanGrijp/clima-api/internal/core/domain"
)

// QuotaGate decide se uma chamada pode prosseguir dentro do orçamento da janela.
type QuotaGate interface {
	Consult(ctx context.Context, addr, procedure string) (domain.Decision, error)
}
