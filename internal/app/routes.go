// internal/app/routes.go
package app

import (
	"net/http"

	"github.com/gorilla/mux"

	"dca-oilgas/internal/handlers/calc"
	hh "dca-oilgas/internal/handlers/http"
	"dca-oilgas/internal/middleware"
)

// RegisterRoutes menambahkan route HTTP biasa (non-/calc).
func RegisterRoutes(r *mux.Router) {
	// --- no prefix ---
	r.HandleFunc("/healthz", hh.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/readyz", hh.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/metrics", hh.MetricsHandler).Methods(http.MethodGet)
	r.HandleFunc("/forecast/stream", hh.ForecastStreamHandler).Methods(http.MethodGet, http.MethodPost, http.MethodOptions)
	r.HandleFunc("/login", hh.LoginHandler).Methods(http.MethodPost, http.MethodOptions)

	// --- /api prefix (supaya FE bisa pakai /api/...) ---
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/healthz", hh.HealthHandler).Methods(http.MethodGet)
	api.HandleFunc("/readyz", hh.HealthHandler).Methods(http.MethodGet)
	api.HandleFunc("/metrics", hh.MetricsHandler).Methods(http.MethodGet)
	api.HandleFunc("/login", hh.LoginHandler).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/forecast/stream", hh.ForecastStreamHandler).
		Methods(http.MethodGet, http.MethodPost, http.MethodOptions)

	// Domain endpoints (tool kalkulasi di-expose via HTTP)
	api.HandleFunc("/forecast", calc.RunForecastHandler).
		Methods(http.MethodGet, http.MethodPost, http.MethodOptions)

	api.HandleFunc("/rate", calc.GetRateHandler).
		Methods(http.MethodGet, http.MethodPost, http.MethodOptions)

	api.HandleFunc("/cumulative", calc.GetCumulativeHandler).
		Methods(http.MethodGet, http.MethodPost, http.MethodOptions)

	api.HandleFunc("/monthly", calc.GetMonthlyHandler).
		Methods(http.MethodGet, http.MethodPost, http.MethodOptions)

	api.HandleFunc("/compare-actuals", calc.CompareActualsHandler).
		Methods(http.MethodPost, http.MethodOptions)

	api.HandleFunc("/forecast/explain", calc.ExplainForecastHandler).
		Methods(http.MethodGet, http.MethodPost, http.MethodOptions)

	// Preflight catch-all
	api.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(hh.PreflightHandler)

	// Admin (JWT protected)
	adminJWT := r.PathPrefix("/admin").Subrouter()
	adminJWT.Use(middleware.AdminJWTAuth)
	adminJWT.HandleFunc("/config", hh.AdminConfigHandler).Methods(http.MethodGet)
	adminJWT.HandleFunc("/tools", hh.AdminToolsHandler).Methods(http.MethodGet)
}
