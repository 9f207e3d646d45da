// internal/handlers/calc/run_forecast.go
// Tool: run_forecast - sampel deret laju + kumulatif pada [0, years]

package calc

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"dca-oilgas/internal/decline"
	hh "dca-oilgas/internal/handlers/http"
)

type forecastReq struct {
	paramsReq
	Points int `json:"points,omitempty"` // default dari config
}

type forecastResp struct {
	Params decline.Params  `json:"params"`
	TLim   *float64        `json:"t_lim,omitempty"` // nil bila tidak ada transisi
	Points []decline.Point `json:"points"`
}

func RunForecastHandler(w http.ResponseWriter, r *http.Request) {
	var in forecastReq

	// Terima query string (GET/debug) atau body JSON (POST)
	hasQuery := readParamsQuery(r, &in.paramsReq)
	if v := strings.TrimSpace(r.URL.Query().Get("points")); v != "" {
		if n, _ := strconv.Atoi(v); n > 0 {
			in.Points = n
		}
	}
	if !hasQuery && r.Method == http.MethodPost {
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
	}

	if in.Points <= 0 {
		in.Points = defaultPoints()
	}
	if in.Points > maxPoints() {
		in.Points = maxPoints()
	}

	c, err := buildCurve(in.paramsReq)
	if err != nil {
		writeErr(w, err)
		return
	}

	pts, err := c.Forecast(in.Points)
	if err != nil {
		writeErr(w, err)
		return
	}

	hh.IncForecastRuns()

	out := forecastResp{Params: c.Params(), Points: pts}
	if tlim, ok := c.TLim(); ok {
		out.TLim = &tlim
	}
	writeJSON(w, out)
}
