package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/JeanGrijp/clima-api/internal/adapters/cities"
	"github.com/JeanGrijp/clima-api/internal/adapters/email"
	"github.com/JeanGrijp/clima-api/internal/adapters/http/handlers"
	httpmiddleware "github.com/JeanGrijp/clima-api/internal/adapters/http/middleware"
	redisstorage "github.com/JeanGrijp/clima-api/internal/adapters/storage/redis"
	"github.com/JeanGrijp/clima-api/internal/adapters/weather"
	"github.com/JeanGrijp/clima-api/internal/config"
	"github.com/JeanGrijp/clima-api/internal/core/services"
	"github.com/JeanGrijp/clima-api/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Logging.Level, cfg.Logging.Environment)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	if cfg.Quota.WindowDefaulted {
		zapLogger.Warn("invalid RATE_LIMIT_WINDOW, using default",
			zap.String("configured", cfg.Quota.WindowRaw),
			zap.Duration("default", config.DefaultWindow),
		)
	}

	store, err := redisstorage.New(redisstorage.Config{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		zapLogger.Fatal("failed to init counter store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			zapLogger.Error("failed to close counter store", zap.Error(err))
		}
	}()

	gate, err := services.NewQuotaService(store, cfg.Quota.Rule)
	if err != nil {
		zapLogger.Fatal("failed to create quota gate", zap.Error(err))
	}

	cityDirectory, err := cities.New(cities.Config{
		BaseURL:           cfg.Cities.BaseURL,
		Timeout:           cfg.Cities.Timeout,
		RequestsPerSecond: cfg.Cities.RequestsPerSecond,
	})
	if err != nil {
		zapLogger.Fatal("failed to create city directory client", zap.Error(err))
	}

	forecastProvider, err := weather.New(weather.Config{
		BaseURL:           cfg.Forecast.BaseURL,
		Timeout:           cfg.Forecast.Timeout,
		RequestsPerSecond: cfg.Forecast.RequestsPerSecond,
	})
	if err != nil {
		zapLogger.Fatal("failed to create forecast client", zap.Error(err))
	}

	mailer, err := email.NewSMTPMailer(email.Config{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		From:      cfg.SMTP.From,
		Recipient: cfg.Contact.Recipient,
	})
	if err != nil {
		zapLogger.Fatal("failed to create mailer", zap.Error(err))
	}

	cityService, err := services.NewCityService(cityDirectory)
	if err != nil {
		zapLogger.Fatal("failed to create city service", zap.Error(err))
	}
	weatherService, err := services.NewWeatherService(cityDirectory, forecastProvider)
	if err != nil {
		zapLogger.Fatal("failed to create weather service", zap.Error(err))
	}
	contactService, err := services.NewContactService(mailer)
	if err != nil {
		zapLogger.Fatal("failed to create contact service", zap.Error(err))
	}

	cityHandler := handlers.NewCityHandler(cityService, zapLogger)
	weatherHandler := handlers.NewWeatherHandler(weatherService, zapLogger)
	contactHandler := handlers.NewContactHandler(contactService, zapLogger)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	// Operações abertas: sem portão de quota.
	r.Get("/health", handlers.Health)
	r.Get("/api/locales", handlers.Locales)

	// Operações guardadas: todas passam pelo portão de quota.
	r.Group(func(r chi.Router) {
		r.Use(httpmiddleware.RateLimit(gate, zapLogger))
		r.Get("/api/cities/search", cityHandler.Search)
		r.Get("/api/cities/by-name", cityHandler.FindByName)
		r.Get("/api/cities/{id}", cityHandler.FindByID)
		r.Get("/api/weather/forecast", weatherHandler.Forecast)
		r.Post("/api/contact", contactHandler.Submit)
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		zapLogger.Info("server starting",
			zap.String("port", cfg.Server.Port),
			zap.Int("rate_limit_tokens", cfg.Quota.Rule.Tokens),
			zap.Duration("rate_limit_window", cfg.Quota.Rule.Window),
		)
		if err := srv.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		zapLogger.Info("shutdown signal received")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
