// internal/handlers/calc/get_rate.go
// Tool: get_rate - laju produksi pada satu atau banyak waktu (tahun)

package calc

import (
	"encoding/json"
	"net/http"
	"strings"
)

type rateReq struct {
	paramsReq
	Times []float64 `json:"times"`
}

type rateResp struct {
	Times []float64 `json:"times"`
	Rates []float64 `json:"rates"`
}

func GetRateHandler(w http.ResponseWriter, r *http.Request) {
	var in rateReq

	hasQuery := readParamsQuery(r, &in.paramsReq)
	if v := strings.TrimSpace(r.URL.Query().Get("times")); v != "" {
		in.Times = parseTimesCSV(v)
	}
	if !hasQuery && r.Method == http.MethodPost {
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
	}
	if len(in.Times) == 0 {
		http.Error(w, "missing times", http.StatusBadRequest)
		return
	}

	c, err := buildCurve(in.paramsReq)
	if err != nil {
		writeErr(w, err)
		return
	}

	rates, err := c.Rates(in.Times)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, rateResp{Times: in.Times, Rates: rates})
}
