// internal/services/residuals.go
// Layanan residual: perbandingan produksi aktual vs forecast Arps satu sumur.

package services

import (
	"errors"
	"math"

	"dca-oilgas/internal/decline"
)

// ActualDay: satu hari produksi aktual yang dikirim pemanggil.
type ActualDay struct {
	Day  int     // hari sejak awal forecast (0 = hari pertama)
	Rate float64 // laju aktual, satuan sama dengan Qi
}

// Residual: selisih aktual - forecast untuk satu hari.
type Residual struct {
	Day      int     `json:"day"`
	Actual   float64 `json:"actual"`
	Forecast float64 `json:"forecast"`
	Delta    float64 `json:"delta"`   // actual - forecast
	DeltaP   float64 `json:"delta_p"` // % terhadap forecast
}

// Flag: hari dengan residual menyimpang jauh dari pola residual lainnya.
type Flag struct {
	Day    int     `json:"day"`
	ZScore float64 `json:"z_score"`
}

// Residuals menghitung selisih harian aktual vs forecast kurva.
// Hari di luar horizon kurva menghasilkan error waktu dari core.
func Residuals(c *decline.Curve, actual []ActualDay) ([]Residual, error) {
	if len(actual) == 0 {
		return nil, errors.New("no actual production supplied")
	}
	out := make([]Residual, 0, len(actual))
	for _, a := range actual {
		if a.Day < 0 {
			return nil, errors.New("actual day must be >= 0")
		}
		f, err := c.Rate(float64(a.Day) / decline.DaysPerYear)
		if err != nil {
			return nil, err
		}
		d := a.Rate - f
		var p float64
		if f != 0 {
			p = d / f * 100.0
		}
		out = append(out, Residual{
			Day:      a.Day,
			Actual:   a.Rate,
			Forecast: f,
			Delta:    d,
			DeltaP:   p,
		})
	}
	return out, nil
}

// ZScoreFlags menandai residual dengan |z| >= minZ (mean & stddev populasi).
func ZScoreFlags(res []Residual, minZ float64) []Flag {
	if len(res) == 0 {
		return nil
	}
	// mean
	var sum float64
	for _, r := range res {
		sum += r.Delta
	}
	mean := sum / float64(len(res))

	// stddev
	var ss float64
	for _, r := range res {
		d := r.Delta - mean
		ss += d * d
	}
	std := math.Sqrt(ss / float64(len(res)))
	if std == 0 {
		return []Flag{}
	}

	var out []Flag
	for _, r := range res {
		z := (r.Delta - mean) / std
		if math.Abs(z) >= minZ {
			out = append(out, Flag{Day: r.Day, ZScore: z})
		}
	}
	return out
}

// Correlation menghitung korelasi Pearson aktual vs forecast dari residual
// (indikator seberapa baik bentuk kurva mengikuti data).
func Correlation(res []Residual) (float64, error) {
	n := len(res)
	if n < 2 {
		return 0, errors.New("insufficient points for correlation")
	}
	var sx, sy, sxx, syy, sxy float64
	for _, r := range res {
		x := r.Actual
		y := r.Forecast
		sx += x
		sy += y
		sxx += x * x
		syy += y * y
		sxy += x * y
	}
	num := float64(n)*sxy - sx*sy
	den := math.Sqrt((float64(n)*sxx - sx*sx) * (float64(n)*syy - sy*sy))
	if den == 0 {
		return 0, nil
	}
	return num / den, nil
}
