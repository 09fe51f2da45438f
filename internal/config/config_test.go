package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"250ms", 250 * time.Millisecond},
		{"5s", 5 * time.Second},
		{"10m", 10 * time.Minute},
		{"2h", 2 * time.Hour},
		{"1d", 24 * time.Hour},
		{"7d", 7 * 24 * time.Hour},
		{" 30s ", 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWindow(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWindow_Invalid(t *testing.T) {
	invalid := []string{"", "5 days", "5x", "d", "5", "0s", "-1s", "s5", "1.5h"}

	for _, in := range invalid {
		t.Run(in, func(t *testing.T) {
			_, err := ParseWindow(in)
			assert.Error(t, err)
		})
	}
}

func TestLoad_DefaultsWindowOnInvalidValue(t *testing.T) {
	t.Setenv("RATE_LIMIT_WINDOW", "5 days")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultWindow, cfg.Quota.Rule.Window)
	assert.True(t, cfg.Quota.WindowDefaulted)
	assert.Equal(t, "5 days", cfg.Quota.WindowRaw)
}

func TestLoad_ValidWindow(t *testing.T) {
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("RATE_LIMIT_TOKENS", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Quota.Rule.Window)
	assert.Equal(t, 3, cfg.Quota.Rule.Tokens)
	assert.False(t, cfg.Quota.WindowDefaulted)
}

func TestLoad_RejectsInvalidTokens(t *testing.T) {
	t.Setenv("RATE_LIMIT_TOKENS", "abc")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("RATE_LIMIT_TOKENS", "0")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Quota.Rule.Tokens)
	assert.Equal(t, 24*time.Hour, cfg.Quota.Rule.Window)
	assert.Equal(t, 6379, cfg.Redis.Port)
}
