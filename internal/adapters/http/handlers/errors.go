// Package handlers agrupa os handlers HTTP das operações da aplicação.
package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/JeanGrijp/clima-api/internal/adapters/http/api"
	"github.com/JeanGrijp/clima-api/internal/core/domain"
)

// writeServiceError mapeia a taxonomia de erros do domínio para o envelope
// HTTP. Erros de infraestrutura viram 500 opaco: nenhum detalhe interno vaza.
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	if ve, ok := domain.AsValidationError(err); ok {
		api.FieldError(w, ve.Field, ve.Reason)
		return
	}
	if domain.IsNotFoundError(err) {
		api.Error(w, http.StatusNotFound, api.CodeNotFound, "resource not found")
		return
	}

	logger.Error("handler failed", zap.Error(err))
	api.Error(w, http.StatusInternalServerError, api.CodeInternal, "internal error")
}
