// internal/handlers/calc/get_monthly.go
// Tool: get_monthly - volume produksi per bulan (agregasi seri harian)

package calc

import (
	"encoding/json"
	"net/http"
)

type monthlyResp struct {
	Months  int       `json:"months"`
	Monthly []float64 `json:"monthly"` // volume per bulan, satuan Qi x hari
}

func GetMonthlyHandler(w http.ResponseWriter, r *http.Request) {
	var in paramsReq

	hasQuery := readParamsQuery(r, &in)
	if !hasQuery && r.Method == http.MethodPost {
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
	}

	c, err := buildCurve(in)
	if err != nil {
		writeErr(w, err)
		return
	}

	monthly := c.Monthly()
	writeJSON(w, monthlyResp{Months: len(monthly), Monthly: monthly})
}
