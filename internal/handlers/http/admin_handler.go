// internal/handlers/http/admin_handler.go
// Endpoint admin (diproteksi JWT): introspeksi konfigurasi & tool terdaftar.

package http

import (
	"encoding/json"
	"net/http"

	"dca-oilgas/internal/config"
	"dca-oilgas/internal/tools"
)

// inject dari app
var adminCfg *config.Config

func SetAdminConfig(c *config.Config) {
	adminCfg = c
}

// AdminConfigHandler mengembalikan konfigurasi tersanitasi (tanpa API key).
func AdminConfigHandler(w http.ResponseWriter, r *http.Request) {
	if adminCfg == nil {
		http.Error(w, "config not loaded", http.StatusServiceUnavailable)
		return
	}
	resp := map[string]any{
		"app_name": adminCfg.AppName,
		"app_env":  adminCfg.AppEnv,
		"build":    config.BuildVersion,
		"forecast": map[string]any{
			"default_points": adminCfg.Forecast.DefaultPoints,
			"max_points":     adminCfg.Forecast.MaxPoints,
			"max_years":      adminCfg.Forecast.MaxYears,
		},
		"llm": map[string]any{
			"provider":    adminCfg.LLM.Provider,
			"model":       adminCfg.LLM.Model,
			"has_api_key": adminCfg.LLM.APIKey != "",
		},
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// AdminToolsHandler mengembalikan daftar tool kalkulasi terdaftar.
func AdminToolsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"tools": tools.List(),
	})
}
