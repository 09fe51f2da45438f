// Package weather implementa o cliente HTTP do provedor externo de previsão.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/JeanGrijp/clima-api/internal/core/domain"
	"github.com/JeanGrijp/clima-api/internal/core/ports"
)

// Client consome o provedor de previsão por coordenadas.
type Client struct {
	baseURL    string
	httpClient *http.Client
	throttle   *rate.Limiter
}

var _ ports.ForecastProvider = (*Client)(nil)

type Config struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
}

func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("forecast provider base URL is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 10
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		throttle:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
	}, nil
}

type forecastResponse struct {
	Current struct {
		Temperature   float64 `json:"temperature"`
		FeelsLike     float64 `json:"feels_like"`
		WindSpeed     float64 `json:"wind_speed"`
		Humidity      int     `json:"humidity"`
		ConditionCode int     `json:"condition_code"`
	} `json:"current"`
	Daily []struct {
		Date          string  `json:"date"`
		MinTemp       float64 `json:"min_temp"`
		MaxTemp       float64 `json:"max_temp"`
		Precipitation float64 `json:"precipitation"`
		ConditionCode int     `json:"condition_code"`
	} `json:"daily"`
}

// Forecast consulta condições atuais e previsão diária para a coordenada.
func (c *Client) Forecast(ctx context.Context, latitude, longitude float64) (domain.CurrentConditions, []domain.DailyForecast, error) {
	if err := c.throttle.Wait(ctx); err != nil {
		return domain.CurrentConditions{}, nil, fmt.Errorf("forecast throttle: %w", err)
	}

	query := url.Values{
		"latitude":  {strconv.FormatFloat(latitude, 'f', 4, 64)},
		"longitude": {strconv.FormatFloat(longitude, 'f', 4, 64)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/forecast?"+query.Encode(), nil)
	if err != nil {
		return domain.CurrentConditions{}, nil, fmt.Errorf("forecast request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.CurrentConditions{}, nil, fmt.Errorf("forecast call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.CurrentConditions{}, nil, fmt.Errorf("forecast provider returned status %d", resp.StatusCode)
	}

	var payload forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.CurrentConditions{}, nil, fmt.Errorf("forecast response: %w", err)
	}

	current := domain.CurrentConditions{
		Temperature:   payload.Current.Temperature,
		FeelsLike:     payload.Current.FeelsLike,
		WindSpeed:     payload.Current.WindSpeed,
		Humidity:      payload.Current.Humidity,
		ConditionCode: payload.Current.ConditionCode,
	}

	daily := make([]domain.DailyForecast, 0, len(payload.Daily))
	for _, day := range payload.Daily {
		daily = append(daily, domain.DailyForecast{
			Date:          day.Date,
			MinTemp:       day.MinTemp,
			MaxTemp:       day.MaxTemp,
			Precipitation: day.Precipitation,
			ConditionCode: day.ConditionCode,
		})
	}

	return current, daily, nil
}
