// Package middleware disponibiliza middlewares HTTP específicos da aplicação.
package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/JeanGrijp/clima-api/internal/adapters/http/api"
	"github.com/JeanGrijp/clima-api/internal/core/ports"
)

const (
	// HeaderLimit e HeaderRemaining são enviados em toda decisão,
	// permitida ou negada.
	HeaderLimit     = "X-RateLimit-Limit"
	HeaderRemaining = "X-RateLimit-Remaining"
)

// RateLimit consulta o portão de quota antes de invocar o handler.
// Em caso de negação o handler nunca executa; em falha do contador externo a
// chamada falha fechada com erro opaco de servidor.
func RateLimit(gate ports.QuotaGate, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if gate == nil {
				next.ServeHTTP(w, r)
				return
			}

			addr := clientAddr(r)
			procedure := procedurePath(r)

			decision, err := gate.Consult(r.Context(), addr, procedure)
			if err != nil {
				logger.Error("quota gate failed",
					zap.Error(err),
					zap.String("addr", addr),
					zap.String("procedure", procedure),
				)
				api.Error(w, http.StatusInternalServerError, api.CodeInternal, "internal error")
				return
			}

			w.Header().Set(HeaderLimit, strconv.Itoa(decision.Limit))
			w.Header().Set(HeaderRemaining, strconv.Itoa(decision.Remaining))

			if !decision.Allowed {
				logger.Warn("rate limit exceeded",
					zap.String("key", decision.Identity),
					zap.Int("limit", decision.Limit),
				)
				api.Error(w, http.StatusTooManyRequests, api.CodeRateLimited, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// procedurePath identifica a operação invocada pelo padrão de rota casado,
// de modo que /api/cities/1 e /api/cities/2 contam contra o mesmo orçamento
// de /api/cities/{id}. O padrão só está preenchido quando o middleware é
// montado por rota (Group/With); fora disso cai no caminho cru.
func procedurePath(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

// clientAddr extrai o endereço encaminhado pela borda da rede. O cabeçalho é
// confiado como chegou: a verificação fica fora da fronteira deste serviço.
func clientAddr(r *http.Request) string {
	xForwardedFor := strings.TrimSpace(r.Header.Get("X-Forwarded-For"))
	if xForwardedFor != "" {
		parts := strings.Split(xForwardedFor, ",")
		return strings.TrimSpace(parts[0])
	}

	xRealIP := strings.TrimSpace(r.Header.Get("X-Real-IP"))
	if xRealIP != "" {
		return xRealIP
	}

	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return host
}
