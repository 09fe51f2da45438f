package ports

import (
	"context"

	"github.com/JeanGrijp/clima-api/internal/core/domain"
)

// ForecastProvider consulta o provedor externo de previsão por coordenadas.
type ForecastProvider interface {
	Forecast(ctx context.Context, latitude, longitude float64) (domain.CurrentConditions, []domain.DailyForecast, error)
}
