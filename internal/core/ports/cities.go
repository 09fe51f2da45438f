package ports

import (
	"context"

	"github.com/JeanGrijp/clima-api/internal/core/domain"
)

// CityDirectory expõe as três consultas de leitura do serviço externo de cidades.
type CityDirectory interface {
	SearchByPrefix(ctx context.Context, prefix string) ([]domain.City, error)
	FindByID(ctx context.Context, id string) (domain.City, error)
	FindByName(ctx context.Context, name string) (domain.City, error)
}
