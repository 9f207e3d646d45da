// internal/app/app.go
package app

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"dca-oilgas/internal/config"
	"dca-oilgas/internal/handlers/calc"
	hh "dca-oilgas/internal/handlers/http"
	"dca-oilgas/internal/llm"
	"dca-oilgas/internal/middleware"
	"dca-oilgas/internal/tools"
)

// App menampung router utama + konfigurasi
type App struct {
	Router *mux.Router
	Cfg    *config.Config
}

// New membuat instance App + registrasi semua routes (HTTP & tool kalkulasi)
func New() *App {
	cfg := config.Load()
	calc.SetConfig(cfg)
	hh.SetAdminConfig(cfg)

	// LLM opsional: hanya untuk explain_forecast, fallback tetap jalan tanpa key
	if cfg.LLM.APIKey != "" {
		client, err := llm.New(cfg.LLM.APIKey, cfg.LLM.APIBase, cfg.LLM.Model)
		if err != nil {
			log.Printf("[WARN] init llm client: %v", err)
		} else {
			calc.SetLLMClient(client)
		}
	}

	registerCalcTools()

	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// ---- HTTP routes (UI/API biasa) ----
	RegisterRoutes(r)

	// ---- /calc (chi sub-router: dispatch by-name + endpoint langsung) ----
	r.PathPrefix("/calc").Handler(NewCalcRouter())

	return &App{Router: r, Cfg: cfg}
}

// Run menjalankan server HTTP
func (a *App) Run(addr string) {
	log.Printf("server running on %s", addr)
	if err := http.ListenAndServe(addr, a.Router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// registerCalcTools mendaftarkan semua tool kalkulasi ke registry.
func registerCalcTools() {
	tools.Register("run_forecast", http.HandlerFunc(calc.RunForecastHandler))
	tools.Register("get_rate", http.HandlerFunc(calc.GetRateHandler))
	tools.Register("get_cumulative", http.HandlerFunc(calc.GetCumulativeHandler))
	tools.Register("get_monthly", http.HandlerFunc(calc.GetMonthlyHandler))
	tools.Register("compare_actuals", http.HandlerFunc(calc.CompareActualsHandler))
	tools.Register("explain_forecast", http.HandlerFunc(calc.ExplainForecastHandler))

	// alias gaya lama
	tools.Register("forecast:run", http.HandlerFunc(calc.RunForecastHandler))
}
