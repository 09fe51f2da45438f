// Package api define o envelope JSON compartilhado pelas respostas HTTP.
package api

import (
	"encoding/json"
	"net/http"
)

// Códigos estáveis que os clientes usam para distinguir falhas
// recuperáveis (backoff) de falhas permanentes.
const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodeRateLimited = "RATE_LIMITED"
	CodeInternal    = "INTERNAL"
)

// ErrorBody é o corpo de erro visível ao cliente.
type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type errorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// JSON serializa v com o status informado.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error escreve um erro com código estável e sem detalhe interno.
func Error(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, errorEnvelope{Error: ErrorBody{Code: code, Message: message}})
}

// FieldError escreve um erro de validação com detalhe por campo.
func FieldError(w http.ResponseWriter, field, reason string) {
	JSON(w, http.StatusBadRequest, errorEnvelope{Error: ErrorBody{
		Code:    CodeValidation,
		Message: "invalid request",
		Fields:  map[string]string{field: reason},
	}})
}
