package handlers

import (
	"net/http"

	"github.com/JeanGrijp/clima-api/internal/adapters/http/api"
)

// supportedLocales são os idiomas oferecidos pela interface. As tabelas de
// tradução em si vivem no cliente.
var supportedLocales = []string{"en", "pt", "es", "fr", "de"}

// Health responde GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	api.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Locales responde GET /api/locales.
func Locales(w http.ResponseWriter, r *http.Request) {
	api.JSON(w, http.StatusOK, map[string]any{"locales": supportedLocales})
}
