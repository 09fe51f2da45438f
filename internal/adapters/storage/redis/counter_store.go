// Package redis disponibiliza o contador compartilhado baseado em Redis.
package redis

import (
	"context"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/JeanGrijp/clima-api/internal/core/ports"
)

// CounterStore implementa ports.CounterStore sobre INCR + EXPIRE NX.
type CounterStore struct {
	client *redis.Client
}

var _ ports.CounterStore = (*CounterStore)(nil)

type Config struct {
	Addr     string
	Password string
	DB       int
}

func New(cfg Config) (*CounterStore, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &CounterStore{client: client}, nil
}

func (s *CounterStore) Close() error {
	return s.client.Close()
}

// Incr incrementa a chave e fixa o TTL apenas na criação (EXPIRE NX), de modo
// que a janela fica ancorada no primeiro acerto e a chave expira no horário
// mesmo que continue recebendo chamadas já negadas.
func (s *CounterStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := s.client.TxPipeline()
	counter := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return counter.Val(), nil
}
