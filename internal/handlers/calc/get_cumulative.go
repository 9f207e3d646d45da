// internal/handlers/calc/get_cumulative.go
// Tool: get_cumulative - volume kumulatif Np pada satu atau banyak waktu

package calc

import (
	"encoding/json"
	"net/http"
	"strings"
)

type cumReq struct {
	paramsReq
	Times []float64 `json:"times"`
}

type cumResp struct {
	Times []float64 `json:"times"`
	Cum   []float64 `json:"cum"`
}

func GetCumulativeHandler(w http.ResponseWriter, r *http.Request) {
	var in cumReq

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

	cum, err := c.Cumulatives(in.Times)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, cumResp{Times: in.Times, Cum: cum})
}
