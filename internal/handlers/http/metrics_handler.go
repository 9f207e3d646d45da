// internal/handlers/http/metrics_handler.go
// Handler untuk metrics Prometheus format sederhana

package http

import (
	"fmt"
	"net/http"
	"sync/atomic"
)

// ForecastRuns dihitung oleh handler calc via IncForecastRuns.
var forecastRuns atomic.Int64

func IncForecastRuns() {
	forecastRuns.Add(1)
}

func MetricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	fmt.Fprintf(w, "# HELP app_up 1 if the app is up\n# TYPE app_up gauge\napp_up 1\n")
	fmt.Fprintf(w, "# HELP forecast_runs_total number of forecast computations served\n# TYPE forecast_runs_total counter\nforecast_runs_total %d\n", forecastRuns.Load())
}
