// internal/decline/forecast.go
// Sampling deret forecast: titik merata, seri harian, dan agregasi bulanan.

package decline

import "errors"

// Point: satu sampel forecast.
type Point struct {
	T    float64 `json:"t"`    // tahun sejak awal forecast
	Rate float64 `json:"rate"` // laju, satuan Qi
	Cum  float64 `json:"cum"`  // kumulatif, satuan volume
}

// Forecast menghasilkan n sampel merata pada [0, years], inklusif kedua ujung.
func (c *Curve) Forecast(n int) ([]Point, error) {
	if n < 2 {
		return nil, errors.New("forecast needs at least 2 points")
	}
	step := c.p.Years / float64(n-1)
	out := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) * step
		if i == n-1 {
			t = c.p.Years // hindari overshoot pembulatan di ujung
		}
		out = append(out, Point{T: t, Rate: c.rateAt(t), Cum: c.cumAt(t)})
	}
	return out, nil
}

// Daily mengembalikan laju untuk setiap hari pada [0, 365*years],
// granularitas harian (hari 0 = Qi).
func (c *Curve) Daily() []float64 {
	days := int(c.p.Years * DaysPerYear)
	out := make([]float64, 0, days+1)
	for d := 0; d <= days; d++ {
		out = append(out, c.rateAt(float64(d)/DaysPerYear))
	}
	return out
}

// Monthly menjumlahkan seri harian menjadi 12*years grup hampir-sama-besar;
// satuannya menjadi volume per bulan.
func (c *Curve) Monthly() []float64 {
	months := int(c.p.Years * 12)
	if months < 1 {
		months = 1
	}
	daily := c.Daily()
	out := make([]float64, 0, months)
	for _, grp := range splitEven(daily, months) {
		var sum float64
		for _, v := range grp {
			sum += v
		}
		out = append(out, sum)
	}
	return out
}

// splitEven membagi a menjadi n sub-slice se-merata mungkin
// (m grup pertama mendapat satu elemen ekstra).
func splitEven(a []float64, n int) [][]float64 {
	k, m := len(a)/n, len(a)%n
	out := make([][]float64, 0, n)
	start := 0
	for i := 0; i < n; i++ {
		size := k
		if i < m {
			size++
		}
		out = append(out, a[start:start+size])
		start += size
	}
	return out
}
