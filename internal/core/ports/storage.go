// Package ports define contratos que conectam o domínio a implementações externas.
package ports

import (
	"context"
	"time"
)

// CounterStore é o contador compartilhado entre instâncias do servidor.
// Incr incrementa atomicamente a chave e devolve a contagem pós-incremento,
// criando a chave com uma janela nova quando ausente. A chave expira sozinha
// quando a janela termina; nenhum outro mecanismo de bloqueio é introduzido.
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}
