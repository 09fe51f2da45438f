package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/JeanGrijp/clima-api/internal/adapters/http/api"
	"github.com/JeanGrijp/clima-api/internal/core/services"
)

// ContactHandler recebe o formulário de contato.
type ContactHandler struct {
	service *services.ContactService
	logger  *zap.Logger
}

func NewContactHandler(service *services.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{service: service, logger: logger}
}

// Submit responde POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in services.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		api.FieldError(w, "body", "must be valid JSON")
		return
	}

	msg, err := h.service.Submit(r.Context(), in)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	api.JSON(w, http.StatusAccepted, map[string]string{"id": msg.ID})
}
