// internal/app/routes_calc.go
package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"dca-oilgas/internal/handlers/calc"
	"dca-oilgas/internal/tools"
)

// NewCalcRouter membangun sub-router /calc: dispatch by-name via /calc/route
// plus endpoint HTTP langsung (memudahkan debug/manual curl).
func NewCalcRouter() http.Handler {
	cr := chi.NewRouter()

	cr.Route("/calc", func(cr chi.Router) {
		cr.Post("/route", tools.RouterHandler)

		// GET untuk debug manual di browser (pakai ?qi=...), POST untuk payload JSON
		cr.Get("/forecast", calc.RunForecastHandler)
		cr.Post("/forecast", calc.RunForecastHandler)
		cr.Get("/rate", calc.GetRateHandler)
		cr.Post("/rate", calc.GetRateHandler)
		cr.Get("/cumulative", calc.GetCumulativeHandler)
		cr.Post("/cumulative", calc.GetCumulativeHandler)
		cr.Get("/monthly", calc.GetMonthlyHandler)
		cr.Post("/monthly", calc.GetMonthlyHandler)
		cr.Post("/compare-actuals", calc.CompareActualsHandler)
		cr.Get("/explain", calc.ExplainForecastHandler)
		cr.Post("/explain", calc.ExplainForecastHandler)
	})

	return cr
}
