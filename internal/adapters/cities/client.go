// Package cities implementa o cliente HTTP do diretório externo de cidades.
package cities

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/JeanGrijp/clima-api/internal/core/domain"
	"github.com/JeanGrijp/clima-api/internal/core/ports"
)

// Client consome o diretório de cidades. As chamadas de saída passam por um
// token bucket local para respeitar a quota do próprio provedor.
type Client struct {
	baseURL    string
	httpClient *http.Client
	throttle   *rate.Limiter
}

var _ ports.CityDirectory = (*Client)(nil)

type Config struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
}

func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("city directory base URL is required")
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

type cityRecord struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Region    string  `json:"region"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (r cityRecord) toDomain() domain.City {
	return domain.City{
		ID:        r.ID,
		Name:      r.Name,
		Country:   r.Country,
		Region:    r.Region,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}

func (c *Client) SearchByPrefix(ctx context.Context, prefix string) ([]domain.City, error) {
	query := url.Values{"namePrefix": {prefix}}
	var out struct {
		Data []cityRecord `json:"data"`
	}
	if err := c.get(ctx, "/v1/cities?"+query.Encode(), &out); err != nil {
		return nil, err
	}

	cities := make([]domain.City, 0, len(out.Data))
	for _, record := range out.Data {
		cities = append(cities, record.toDomain())
	}
	return cities, nil
}

func (c *Client) FindByID(ctx context.Context, id string) (domain.City, error) {
	var out struct {
		Data cityRecord `json:"data"`
	}
	if err := c.get(ctx, "/v1/cities/"+url.PathEscape(id), &out); err != nil {
		return domain.City{}, err
	}
	return out.Data.toDomain(), nil
}

func (c *Client) FindByName(ctx context.Context, name string) (domain.City, error) {
	query := url.Values{"name": {name}}
	var out struct {
		Data []cityRecord `json:"data"`
	}
	if err := c.get(ctx, "/v1/cities?"+query.Encode(), &out); err != nil {
		return domain.City{}, err
	}
	if len(out.Data) == 0 {
		return domain.City{}, fmt.Errorf("city %q: %w", name, domain.ErrNotFound)
	}
	return out.Data[0].toDomain(), nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	if err := c.throttle.Wait(ctx); err != nil {
		return fmt.Errorf("city directory throttle: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("city directory request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("city directory call: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("city directory returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("city directory response: %w", err)
	}
	return nil
}
