package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/JeanGrijp/clima-api/internal/adapters/http/api"
	"github.com/JeanGrijp/clima-api/internal/core/domain"
	"github.com/JeanGrijp/clima-api/internal/core/services"
)

// CityHandler expõe as consultas de cidade.
type CityHandler struct {
	service *services.CityService
	logger  *zap.Logger
}

func NewCityHandler(service *services.CityService, logger *zap.Logger) *CityHandler {
	return &CityHandler{service: service, logger: logger}
}

// Search responde GET /api/cities/search?q=<prefixo>.
func (h *CityHandler) Search(w http.ResponseWriter, r *http.Request) {
	cities, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	if cities == nil {
		cities = []domain.City{}
	}
	api.JSON(w, http.StatusOK, map[string]any{"cities": cities})
}

// FindByID responde GET /api/cities/{id}.
func (h *CityHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	city, err := h.service.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	api.JSON(w, http.StatusOK, city)
}

// FindByName responde GET /api/cities/by-name?name=<nome exato>.
func (h *CityHandler) FindByName(w http.ResponseWriter, r *http.Request) {
	city, err := h.service.FindByName(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	api.JSON(w, http.StatusOK, city)
}
