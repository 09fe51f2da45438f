package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JeanGrijp/clima-api/internal/adapters/http/handlers"
	"github.com/JeanGrijp/clima-api/internal/core/domain"
	"github.com/JeanGrijp/clima-api/internal/core/services"
)

func TestCitySearch_MissingQuery(t *testing.T) {
	router := newTestRouter(t, &fakeDirectory{}, &fakeProvider{}, &fakeMailer{})

	rr := doRequest(router, http.MethodGet, "/api/cities/search", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	body := decodeError(t, rr)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.Contains(t, body.Fields, "q")
}

func TestCitySearch_ReturnsCities(t *testing.T) {
	directory := &fakeDirectory{cities: []domain.City{
		{ID: "br-sp", Name: "São Paulo", Country: "BR"},
		{ID: "pt-lis", Name: "Lisboa", Country: "PT"},
	}}
	router := newTestRouter(t, directory, &fakeProvider{}, &fakeMailer{})

	rr := doRequest(router, http.MethodGet, "/api/cities/search?q=s", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Cities []domain.City `json:"cities"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Len(t, body.Cities, 2)
}

func TestCityByID_NotFound(t *testing.T) {
	router := newTestRouter(t, &fakeDirectory{err: domain.ErrNotFound}, &fakeProvider{}, &fakeMailer{})

	rr := doRequest(router, http.MethodGet, "/api/cities/xx-unknown", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rr).Code)
}

func TestForecast_ReturnsReport(t *testing.T) {
	directory := &fakeDirectory{cities: []domain.City{{ID: "br-rj", Name: "Rio de Janeiro", Latitude: -22.9, Longitude: -43.2}}}
	provider := &fakeProvider{current: domain.CurrentConditions{Temperature: 31}}
	router := newTestRouter(t, directory, provider, &fakeMailer{})

	rr := doRequest(router, http.MethodGet, "/api/weather/forecast?cityID=br-rj", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var report domain.ForecastReport
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&report))
	assert.Equal(t, "br-rj", report.City.ID)
	assert.Equal(t, 31.0, report.Current.Temperature)
}

func TestContactSubmit_Accepted(t *testing.T) {
	mailer := &fakeMailer{}
	router := newTestRouter(t, &fakeDirectory{}, &fakeProvider{}, mailer)

	payload := `{"name":"Maria","email":"maria@example.com","subject":"Oi","message":"Tudo certo."}`
	rr := doRequest(router, http.MethodPost, "/api/contact", payload)

	require.Equal(t, http.StatusAccepted, rr.Code)
	var body struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.NotEmpty(t, body.ID)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "maria@example.com", mailer.sent[0].Email)
}

func TestContactSubmit_InvalidEmail(t *testing.T) {
	router := newTestRouter(t, &fakeDirectory{}, &fakeProvider{}, &fakeMailer{})

	payload := `{"name":"Maria","email":"not-an-email","subject":"Oi","message":"msg"}`
	rr := doRequest(router, http.MethodPost, "/api/contact", payload)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	body := decodeError(t, rr)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.Contains(t, body.Fields, "email")
}

func TestContactSubmit_MalformedJSON(t *testing.T) {
	router := newTestRouter(t, &fakeDirectory{}, &fakeProvider{}, &fakeMailer{})

	rr := doRequest(router, http.MethodPost, "/api/contact", "{not json")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeError(t, rr).Fields, "body")
}

func TestHealthAndLocales(t *testing.T) {
	router := newTestRouter(t, &fakeDirectory{}, &fakeProvider{}, &fakeMailer{})

	rr := doRequest(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(router, http.MethodGet, "/api/locales", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Locales []string `json:"locales"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Contains(t, body.Locales, "pt")
}

func newTestRouter(t *testing.T, directory *fakeDirectory, provider *fakeProvider, mailer *fakeMailer) chi.Router {
	t.Helper()

	cityService, err := services.NewCityService(directory)
	require.NoError(t, err)
	weatherService, err := services.NewWeatherService(directory, provider)
	require.NoError(t, err)
	contactService, err := services.NewContactService(mailer)
	require.NoError(t, err)

	logger := zap.NewNop()
	cityHandler := handlers.NewCityHandler(cityService, logger)
	weatherHandler := handlers.NewWeatherHandler(weatherService, logger)
	contactHandler := handlers.NewContactHandler(contactService, logger)

	r := chi.NewRouter()
	r.Get("/health", handlers.Health)
	r.Get("/api/locales", handlers.Locales)
	r.Get("/api/cities/search", cityHandler.Search)
	r.Get("/api/cities/by-name", cityHandler.FindByName)
	r.Get("/api/cities/{id}", cityHandler.FindByID)
	r.Get("/api/weather/forecast", weatherHandler.Forecast)
	r.Post("/api/contact", contactHandler.Submit)
	return r
}

func doRequest(router chi.Router, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

type apiError struct {
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields"`
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) apiError {
	t.Helper()
	var body struct {
		Error apiError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body.Error
}

type fakeDirectory struct {
	cities []domain.City
	err    error
}

func (f *fakeDirectory) SearchByPrefix(context.Context, string) ([]domain.City, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.cities, nil
}

func (f *fakeDirectory) FindByID(context.Context, string) (domain.City, error) {
	if f.err != nil {
		return domain.City{}, f.err
	}
	if len(f.cities) == 0 {
		return domain.City{}, domain.ErrNotFound
	}
	return f.cities[0], nil
}

func (f *fakeDirectory) FindByName(ctx context.Context, name string) (domain.City, error) {
	return f.FindByID(ctx, name)
}

type fakeProvider struct {
	current domain.CurrentConditions
	daily   []domain.DailyForecast
	err     error
}

func (f *fakeProvider) Forecast(context.Context, float64, float64) (domain.CurrentConditions, []domain.DailyForecast, error) {
	if f.err != nil {
		return domain.CurrentConditions{}, nil, f.err
	}
	return f.current, f.daily, nil
}

type fakeMailer struct {
	sent []domain.ContactMessage
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg domain.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}
