package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/JeanGrijp/clima-api/internal/core/domain"
	"github.com/JeanGrijp/clima-api/internal/core/ports"
)

const maxSearchQueryLength = 64

// CityService valida as consultas de cidade e delega ao diretório externo.
type CityService struct {
	directory ports.CityDirectory
}

func NewCityService(directory ports.CityDirectory) (*CityService, error) {
	if directory == nil {
		return nil, fmt.Errorf("city directory is required")
	}
	return &CityService{directory: directory}, nil
}

// Search busca cidades por prefixo de nome.
func (s *CityService) Search(ctx context.Context, query string) ([]domain.City, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.NewValidationError("q", "must not be empty")
	}
	if len(query) > maxSearchQueryLength {
		return nil, domain.NewValidationError("q", fmt.Sprintf("must be at most %d characters", maxSearchQueryLength))
	}
	return s.directory.SearchByPrefix(ctx, query)
}

// FindByID resolve uma cidade pelo identificador do diretório.
func (s *CityService) FindByID(ctx context.Context, id string) (domain.City, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.City{}, domain.NewValidationError("id", "must not be empty")
	}
	return s.directory.FindByID(ctx, id)
}

// FindByName resolve uma cidade pelo nome exato.
func (s *CityService) FindByName(ctx context.Context, name string) (domain.City, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.City{}, domain.NewValidationError("name", "must not be empty")
	}
	return s.directory.FindByName(ctx, name)
}
