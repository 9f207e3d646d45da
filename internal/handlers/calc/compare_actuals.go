// internal/handlers/calc/compare_actuals.go
// Tool: compare_actuals - residual produksi aktual vs forecast satu sumur.
// Tidak ada fitting: parameter kurva tetap dari pemanggil.

package calc

import (
	"encoding/json"
	"net/http"

	"dca-oilgas/internal/services"
	"dca-oilgas/internal/util"
)

type compareReq struct {
	paramsReq
	Actual []struct {
		Day  int     `json:"day"`
		Rate float64 `json:"rate"`
	} `json:"actual"`
	MinZ float64 `json:"min_z,omitempty"` // default 3
}

type compareResp struct {
	Residuals   []services.Residual `json:"residuals"`
	Flags       []services.Flag     `json:"flags"`
	Correlation *float64            `json:"correlation,omitempty"`
}

func CompareActualsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var in compareReq
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if len(in.Actual) == 0 {
		writeErr(w, util.BadInput("actual production series is required"))
		return
	}
	if in.MinZ <= 0 {
		in.MinZ = 3
	}

	c, err := buildCurve(in.paramsReq)
	if err != nil {
		writeErr(w, err)
		return
	}

	actual := make([]services.ActualDay, 0, len(in.Actual))
	for _, a := range in.Actual {
		actual = append(actual, services.ActualDay{Day: a.Day, Rate: a.Rate})
	}

	res, err := services.Residuals(c, actual)
	if err != nil {
		writeErr(w, err)
		return
	}

	out := compareResp{
		Residuals: res,
		Flags:     services.ZScoreFlags(res, in.MinZ),
	}
	if corr, err := services.Correlation(res); err == nil {
		out.Correlation = &corr
	}
	writeJSON(w, out)
}
