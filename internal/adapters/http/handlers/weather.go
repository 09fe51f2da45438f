package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/JeanGrijp/clima-api/internal/adapters/http/api"
	"github.com/JeanGrijp/clima-api/internal/core/services"
)

// WeatherHandler expõe a previsão do tempo por cidade.
type WeatherHandler struct {
	service *services.WeatherService
	logger  *zap.Logger
}

func NewWeatherHandler(service *services.WeatherService, logger *zap.Logger) *WeatherHandler {
	return &WeatherHandler{service: service, logger: logger}
}

// Forecast responde GET /api/weather/forecast?cityID=<id>.
func (h *WeatherHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.ForecastByCity(r.Context(), r.URL.Query().Get("cityID"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	api.JSON(w, http.StatusOK, report)
}
