// internal/handlers/calc/common.go
// Helper bersama untuk tool kalkulasi decline-curve.

package calc

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"dca-oilgas/internal/config"
	"dca-oilgas/internal/decline"
	"dca-oilgas/internal/util"
)

// inject dari app
var cfg *config.Config

func SetConfig(c *config.Config) {
	cfg = c
}

func defaultPoints() int {
	if cfg != nil && cfg.Forecast.DefaultPoints >= 2 {
		return cfg.Forecast.DefaultPoints
	}
	return 121
}

func maxPoints() int {
	if cfg != nil && cfg.Forecast.MaxPoints >= 2 {
		return cfg.Forecast.MaxPoints
	}
	return 20000
}

func maxYears() float64 {
	if cfg != nil && cfg.Forecast.MaxYears > 0 {
		return cfg.Forecast.MaxYears
	}
	return 100
}

// paramsReq: parameter kurva yang diterima semua tool.
type paramsReq struct {
	Qi    float64 `json:"qi"`
	D     float64 `json:"d"`
	B     float64 `json:"b"`
	Dlim  float64 `json:"dlim"`
	Years float64 `json:"years"`
}

func (p paramsReq) toParams() decline.Params {
	return decline.Params{Qi: p.Qi, D: p.D, B: p.B, Dlim: p.Dlim, Years: p.Years}
}

// readParamsQuery mengisi parameter dari query string (GET / debug manual).
func readParamsQuery(r *http.Request, p *paramsReq) bool {
	q := r.URL.Query()
	found := false
	read := func(key string, dst *float64) {
		if v := strings.TrimSpace(q.Get(key)); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = f
				found = true
			}
		}
	}
	read("qi", &p.Qi)
	read("d", &p.D)
	read("b", &p.B)
	read("dlim", &p.Dlim)
	read("years", &p.Years)
	return found
}

// parseTimesCSV mengubah "0,0.5,1" menjadi slice float64.
func parseTimesCSV(s string) []float64 {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if f, err := strconv.ParseFloat(part, 64); err == nil {
			out = append(out, f)
		}
	}
	return out
}

// buildCurve memvalidasi horizon API lalu konstruksi kurva.
func buildCurve(p paramsReq) (*decline.Curve, error) {
	if p.Years > maxYears() {
		return nil, util.BadInput("requested horizon exceeds server limit")
	}
	return decline.NewCurve(p.toParams())
}

// writeJSON menulis respons sukses.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr memetakan error core/aplikasi ke respons JSON + status.
func writeErr(w http.ResponseWriter, err error) {
	var app util.AppError
	status := http.StatusBadRequest
	if ae, ok := err.(util.AppError); ok {
		app = ae
	} else {
		app, status = util.FromDecline(err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error":   app.Code,
		"message": app.Message,
	})
}
