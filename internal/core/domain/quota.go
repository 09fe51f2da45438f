// Package domain concentra entidades e estruturas centrais da aplicação.
package domain

import "time"

// QuotaRule define o orçamento de chamadas dentro de uma janela deslizante.
type QuotaRule struct {
	Tokens int
	Window time.Duration
}

// Decision representa o resultado transitório de uma consulta de quota.
// Não é persistida; é recalculada a cada chamada.
type Decision struct {
	Allowed   bool
	Remaining int
	Limit     int
	Identity  string
}
