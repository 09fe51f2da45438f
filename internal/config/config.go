// Package config centraliza o carregamento de configurações da aplicação.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/JeanGrijp/clima-api/internal/core/domain"
)

// DefaultWindow é a janela usada quando RATE_LIMIT_WINDOW é inválida.
const DefaultWindow = 24 * time.Hour

type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	Quota    QuotaConfig
	Cities   UpstreamConfig
	Forecast UpstreamConfig
	SMTP     SMTPConfig
	Contact  ContactConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Port string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type QuotaConfig struct {
	Rule domain.QuotaRule
	// WindowDefaulted sinaliza que a janela configurada era inválida e o
	// valor padrão foi aplicado; o main registra o aviso após criar o logger.
	WindowDefaulted bool
	WindowRaw       string
}

type UpstreamConfig struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type ContactConfig struct {
	Recipient string
}

type LoggingConfig struct {
	Level       string
	Environment string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	server := ServerConfig{Port: getEnv("SERVER_PORT", "8080")}

	redisConfig, err := buildRedisConfig()
	if err != nil {
		return Config{}, err
	}

	quotaConfig, err := buildQuotaConfig()
	if err != nil {
		return Config{}, err
	}

	citiesConfig, err := buildUpstreamConfig("CITIES", "https://geodb.example.com")
	if err != nil {
		return Config{}, err
	}

	forecastConfig, err := buildUpstreamConfig("FORECAST", "https://forecast.example.com")
	if err != nil {
		return Config{}, err
	}

	smtpConfig, err := buildSMTPConfig()
	if err != nil {
		return Config{}, err
	}

	return Config{
		Server:   server,
		Redis:    redisConfig,
		Quota:    quotaConfig,
		Cities:   citiesConfig,
		Forecast: forecastConfig,
		SMTP:     smtpConfig,
		Contact:  ContactConfig{Recipient: getEnv("CONTACT_RECIPIENT", "contact@clima.app")},
		Logging: LoggingConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Environment: getEnv("APP_ENV", "development"),
		},
	}, nil
}

func buildRedisConfig() (RedisConfig, error) {
	host := getEnv("REDIS_HOST", "localhost")
	port, err := strconv.Atoi(getEnv("REDIS_PORT", "6379"))
	if err != nil {
		return RedisConfig{}, fmt.Errorf("invalid REDIS_PORT: %w", err)
	}
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return RedisConfig{}, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	return RedisConfig{
		Host:     host,
		Port:     port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	}, nil
}

func buildQuotaConfig() (QuotaConfig, error) {
	tokens, err := strconv.Atoi(getEnv("RATE_LIMIT_TOKENS", "10"))
	if err != nil {
		return QuotaConfig{}, fmt.Errorf("invalid RATE_LIMIT_TOKENS: %w", err)
	}
	if tokens <= 0 {
		return QuotaConfig{}, fmt.Errorf("RATE_LIMIT_TOKENS must be positive, got %d", tokens)
	}

	raw := getEnv("RATE_LIMIT_WINDOW", "1d")
	window, err := ParseWindow(raw)
	defaulted := false
	if err != nil {
		// Janela inválida não derruba o startup: cai no padrão documentado.
		window = DefaultWindow
		defaulted = true
	}

	return QuotaConfig{
		Rule:            domain.QuotaRule{Tokens: tokens, Window: window},
		WindowDefaulted: defaulted,
		WindowRaw:       raw,
	}, nil
}

func buildUpstreamConfig(prefix, defaultBaseURL string) (UpstreamConfig, error) {
	timeoutSeconds, err := strconv.Atoi(getEnv(prefix+"_TIMEOUT_SECONDS", "10"))
	if err != nil {
		return UpstreamConfig{}, fmt.Errorf("invalid %s_TIMEOUT_SECONDS: %w", prefix, err)
	}
	rps, err := strconv.ParseFloat(getEnv(prefix+"_REQUESTS_PER_SECOND", "10"), 64)
	if err != nil {
		return UpstreamConfig{}, fmt.Errorf("invalid %s_REQUESTS_PER_SECOND: %w", prefix, err)
	}

	return UpstreamConfig{
		BaseURL:           getEnv(prefix+"_BASE_URL", defaultBaseURL),
		Timeout:           time.Duration(timeoutSeconds) * time.Second,
		RequestsPerSecond: rps,
	}, nil
}

func buildSMTPConfig() (SMTPConfig, error) {
	port, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return SMTPConfig{}, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	return SMTPConfig{
		Host:     getEnv("SMTP_HOST", "localhost"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     getEnv("SMTP_FROM", "noreply@clima.app"),
	}, nil
}

// ParseWindow interpreta durações no formato <inteiro><unidade>, com unidade
// em {ms, s, m, h, d}. time.ParseDuration não aceita dias, então o parser é
// próprio. Valores sem unidade, com espaço ou não positivos são rejeitados.
func ParseWindow(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("window duration is empty")
	}

	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i == len(s) {
		return 0, fmt.Errorf("window duration must match <integer><unit>: %q", s)
	}

	value, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, fmt.Errorf("invalid window value %q: %w", s[:i], err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("window duration must be positive: %q", s)
	}

	var unit time.Duration
	switch s[i:] {
	case "ms":
		unit = time.Millisecond
	case "s":
		unit = time.Second
	case "m":
		unit = time.Minute
	case "h":
		unit = time.Hour
	case "d":
		unit = 24 * time.Hour
	default:
		return 0, fmt.Errorf("unknown window unit %q in %q", s[i:], s)
	}

	return time.Duration(value) * unit, nil
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
