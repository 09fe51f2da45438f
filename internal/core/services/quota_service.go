// Package services implementa a lógica central da aplicação.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/JeanGrijp/clima-api/internal/core/domain"
	"github.com/JeanGrijp/clima-api/internal/core/ports"
)

// QuotaService implementa o portão de quota por (endereço, operação).
type QuotaService struct {
	store ports.CounterStore
	rule  domain.QuotaRule
}

var _ ports.QuotaGate = (*QuotaService)(nil)

// NewQuotaService cria uma nova instância do serviço.
func NewQuotaService(store ports.CounterStore, rule domain.QuotaRule) (*QuotaService, error) {
	if store == nil {
		return nil, fmt.Errorf("counter store is required")
	}
	if rule.Tokens <= 0 || rule.Window <= 0 {
		return nil, fmt.Errorf("quota rule must have positive values")
	}
	return &QuotaService{store: store, rule: rule}, nil
}

// Consult incrementa o contador da identidade e decide allow/deny.
// Erros do contador externo propagam sem retry: a chamada falha fechada.
func (s *QuotaService) Consult(ctx context.Context, addr, procedure string) (domain.Decision, error) {
	key := buildIdentityKey(addr, procedure)

	count, err := s.store.Incr(ctx, key, s.rule.Window)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	decision := domain.Decision{Identity: key, Limit: s.rule.Tokens}
	if count > int64(s.rule.Tokens) {
		return decision, nil
	}

	decision.Allowed = true
	decision.Remaining = s.rule.Tokens - int(count)
	return decision, nil
}

// buildIdentityKey compõe a identidade do chamador: mesmo endereço e mesma
// operação produzem sempre a mesma chave; operações distintas do mesmo
// endereço acumulam contagens independentes.
func buildIdentityKey(addr, procedure string) string {
	addr = strings.ToLower(strings.TrimSpace(addr))
	procedure = strings.TrimSpace(procedure)
	return fmt.Sprintf("ratelimit:%s:%s", addr, procedure)
}
