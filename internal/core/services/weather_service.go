package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/JeanGrijp/clima-api/internal/core/domain"
	"github.com/JeanGrijp/clima-api/internal/core/ports"
)

// WeatherService resolve a cidade e consulta a previsão por coordenadas.
type WeatherService struct {
	directory ports.CityDirectory
	provider  ports.ForecastProvider
}

func NewWeatherService(directory ports.CityDirectory, provider ports.ForecastProvider) (*WeatherService, error) {
	if directory == nil {
		return nil, fmt.Errorf("city directory is required")
	}
	if provider == nil {
		return nil, fmt.Errorf("forecast provider is required")
	}
	return &WeatherService{directory: directory, provider: provider}, nil
}

// ForecastByCity monta o relatório de previsão para a cidade informada.
func (s *WeatherService) ForecastByCity(ctx context.Context, cityID string) (domain.ForecastReport, error) {
	cityID = strings.TrimSpace(cityID)
	if cityID == "" {
		return domain.ForecastReport{}, domain.NewValidationError("cityID", "must not be empty")
	}

	city, err := s.directory.FindByID(ctx, cityID)
	if err != nil {
		return domain.ForecastReport{}, err
	}

	current, daily, err := s.provider.Forecast(ctx, city.Latitude, city.Longitude)
	if err != nil {
		return domain.ForecastReport{}, fmt.Errorf("forecast for city %s: %w", city.ID, err)
	}

	return domain.ForecastReport{City: city, Current: current, Daily: daily}, nil
}
