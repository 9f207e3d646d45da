// internal/decline/curve_test.go

package decline_test

import (
	"errors"
	"math"
	"testing"

	"dca-oilgas/internal/decline"
)

// Parameter referensi kasus hiperbolik + transisi (sumur minyak tipikal).
var refParams = decline.Params{Qi: 10000, D: 0.7, B: 1.4, Dlim: 0.1, Years: 10}

func mustCurve(t *testing.T, p decline.Params) *decline.Curve {
	t.Helper()
	c, err := decline.NewCurve(p)
	if err != nil {
		t.Fatalf("NewCurve(%+v): %v", p, err)
	}
	return c
}

func relDiff(a, b float64) float64 {
	if a == b {
		return 0
	}
	return math.Abs(a-b) / math.Max(math.Abs(a), math.Abs(b))
}

// rate(0) harus tepat Qi dan cumulative(0) harus tepat 0.
func TestBoundaryAtZero(t *testing.T) {
	c := mustCurve(t, refParams)

	q, err := c.Rate(0)
	if err != nil {
		t.Fatalf("Rate(0): %v", err)
	}
	if q != refParams.Qi {
		t.Errorf("Rate(0) = %g, want exactly %g", q, refParams.Qi)
	}

	np, err := c.Cumulative(0)
	if err != nil {
		t.Fatalf("Cumulative(0): %v", err)
	}
	if np != 0 {
		t.Errorf("Cumulative(0) = %g, want exactly 0", np)
	}
}

// Skenario konkrit: Qi=10000, D=0.7, b=1.4, dlim=0.1, years=10.
// Transisi harus ada di (0, 10) dan rate(10) positif dan < rate(0).
func TestReferenceScenario(t *testing.T) {
	c := mustCurve(t, refParams)

	tlim, ok := c.TLim()
	if !ok {
		t.Fatal("expected a hyperbolic->exponential transition")
	}
	if tlim <= 0 || tlim >= refParams.Years {
		t.Fatalf("tlim = %g, want strictly inside (0, %g)", tlim, refParams.Years)
	}

	qEnd, err := c.Rate(refParams.Years)
	if err != nil {
		t.Fatalf("Rate(years): %v", err)
	}
	if qEnd <= 0 || qEnd >= refParams.Qi {
		t.Errorf("Rate(years) = %g, want in (0, %g)", qEnd, refParams.Qi)
	}

	npEnd, err := c.Cumulative(refParams.Years)
	if err != nil {
		t.Fatalf("Cumulative(years): %v", err)
	}
	if npEnd <= 0 || math.IsInf(npEnd, 0) || math.IsNaN(npEnd) {
		t.Errorf("Cumulative(years) = %g, want positive and finite", npEnd)
	}
}

// Cabang hiperbolik dan eksponensial harus bertemu mulus di tlim
// (toleransi relatif 1e-9).
func TestContinuityAtTransition(t *testing.T) {
	c := mustCurve(t, refParams)
	tlim, ok := c.TLim()
	if !ok {
		t.Fatal("expected a transition")
	}

	const eps = 1e-9
	before, err := c.Rate(tlim - eps)
	if err != nil {
		t.Fatalf("Rate(tlim-eps): %v", err)
	}
	after, err := c.Rate(tlim + eps)
	if err != nil {
		t.Fatalf("Rate(tlim+eps): %v", err)
	}
	if d := relDiff(before, after); d > 1e-6 {
		t.Errorf("rate discontinuity at tlim: before=%g after=%g reldiff=%g", before, after, d)
	}

	// Rate tepat di tlim harus sama dengan QLim analitik.
	dnom := (math.Pow(1-refParams.D, -refParams.B) - 1) / refParams.B
	dlimNom := -math.Log(1 - refParams.Dlim)
	qlim := refParams.Qi * math.Pow(dlimNom/dnom, 1/refParams.B)

	at, err := c.Rate(tlim)
	if err != nil {
		t.Fatalf("Rate(tlim): %v", err)
	}
	if d := relDiff(at, qlim); d > 1e-9 {
		t.Errorf("Rate(tlim) = %g, want %g (reldiff %g)", at, qlim, d)
	}

	cumBefore, _ := c.Cumulative(tlim - eps)
	cumAfter, _ := c.Cumulative(tlim + eps)
	if d := relDiff(cumBefore, cumAfter); d > 1e-6 {
		t.Errorf("cumulative discontinuity at tlim: reldiff=%g", d)
	}
}

// rate tidak boleh naik dan cumulative tidak boleh turun sepanjang horizon.
func TestMonotonicity(t *testing.T) {
	cases := []decline.Params{
		refParams,
		{Qi: 5000, D: 0.3, B: 0, Dlim: 0.05, Years: 5},
		{Qi: 8000, D: 0.5, B: 1, Dlim: 0, Years: 20},
		{Qi: 1200, D: 0.4, B: 0.8, Dlim: 0.4, Years: 15},
		{Qi: 900, D: 0, B: 0.5, Dlim: 0, Years: 3},
	}
	for _, p := range cases {
		c := mustCurve(t, p)
		const n = 500
		prevQ := math.Inf(1)
		prevNp := -1.0
		for i := 0; i <= n; i++ {
			ti := p.Years * float64(i) / n
			q, err := c.Rate(ti)
			if err != nil {
				t.Fatalf("params %+v Rate(%g): %v", p, ti, err)
			}
			np, err := c.Cumulative(ti)
			if err != nil {
				t.Fatalf("params %+v Cumulative(%g): %v", p, ti, err)
			}
			if q < 0 || q > prevQ*(1+1e-12) {
				t.Fatalf("params %+v: rate not non-increasing at t=%g (%g -> %g)", p, ti, prevQ, q)
			}
			if np < prevNp {
				t.Fatalf("params %+v: cumulative decreasing at t=%g (%g -> %g)", p, ti, prevNp, np)
			}
			prevQ, prevNp = q, np
		}
	}
}

// b=0: eksponensial murni, rate == Qi*exp(-Dnom*t), dlim tidak berpengaruh.
func TestPureExponential(t *testing.T) {
	p := decline.Params{Qi: 5000, D: 0.3, B: 0, Dlim: 0.05, Years: 5}
	c := mustCurve(t, p)

	if _, ok := c.TLim(); ok {
		t.Error("b=0 must not have a transition")
	}

	dnom := -math.Log(1 - p.D)
	for _, ti := range []float64{0, 0.5, 1, 2.5, 5} {
		q, err := c.Rate(ti)
		if err != nil {
			t.Fatalf("Rate(%g): %v", ti, err)
		}
		want := p.Qi * math.Exp(-dnom*ti)
		if d := relDiff(q, want); d > 1e-12 {
			t.Errorf("Rate(%g) = %g, want %g", ti, q, want)
		}
	}

	// Kumulatif analitik eksponensial.
	np, _ := c.Cumulative(p.Years)
	want := p.Qi * decline.DaysPerYear / dnom * (1 - math.Exp(-dnom*p.Years))
	if d := relDiff(np, want); d > 1e-12 {
		t.Errorf("Cumulative(years) = %g, want %g", np, want)
	}
}

// dlim=0: formula hiperbolik berlaku di seluruh horizon, tanpa transisi.
func TestNoTransitionWhenDlimZero(t *testing.T) {
	p := decline.Params{Qi: 8000, D: 0.5, B: 0.9, Dlim: 0, Years: 30}
	c := mustCurve(t, p)

	if _, ok := c.TLim(); ok {
		t.Error("dlim=0 must never transition")
	}

	dnom := (math.Pow(1-p.D, -p.B) - 1) / p.B
	for _, ti := range []float64{0, 1, 10, 29.9, 30} {
		q, err := c.Rate(ti)
		if err != nil {
			t.Fatalf("Rate(%g): %v", ti, err)
		}
		want := p.Qi / math.Pow(1+p.B*dnom*ti, 1/p.B)
		if d := relDiff(q, want); d > 1e-12 {
			t.Errorf("Rate(%g) = %g, want hyperbolic %g", ti, q, want)
		}
	}
}

// dlim=D: eksponensial sejak t=0 dengan D dikonversi nominal.
func TestImmediateTransitionWhenDlimEqualsD(t *testing.T) {
	p := decline.Params{Qi: 1200, D: 0.4, B: 0.8, Dlim: 0.4, Years: 15}
	c := mustCurve(t, p)

	dnom := -math.Log(1 - p.D)
	for _, ti := range []float64{0, 0.25, 3, 15} {
		q, err := c.Rate(ti)
		if err != nil {
			t.Fatalf("Rate(%g): %v", ti, err)
		}
		want := p.Qi * math.Exp(-dnom*ti)
		if d := relDiff(q, want); d > 1e-12 {
			t.Errorf("Rate(%g) = %g, want exponential %g", ti, q, want)
		}
	}
}

// Kasus harmonik b=1 memakai bentuk kumulatif logaritmik.
func TestHarmonicCumulative(t *testing.T) {
	p := decline.Params{Qi: 6000, D: 0.45, B: 1, Dlim: 0, Years: 12}
	c := mustCurve(t, p)

	dnom := (math.Pow(1-p.D, -1) - 1) // b=1
	np, err := c.Cumulative(p.Years)
	if err != nil {
		t.Fatalf("Cumulative: %v", err)
	}
	want := p.Qi * decline.DaysPerYear / dnom * math.Log(1+dnom*p.Years)
	if d := relDiff(np, want); d > 1e-12 {
		t.Errorf("Cumulative(years) = %g, want %g", np, want)
	}
}

// D=0: kurva datar, rate konstan Qi dan kumulatif linear.
func TestFlatCurveWhenDZero(t *testing.T) {
	p := decline.Params{Qi: 900, D: 0, B: 0.5, Dlim: 0, Years: 3}
	c := mustCurve(t, p)

	q, _ := c.Rate(2)
	if q != p.Qi {
		t.Errorf("Rate(2) = %g, want %g", q, p.Qi)
	}
	np, _ := c.Cumulative(2)
	want := p.Qi * decline.DaysPerYear * 2
	if d := relDiff(np, want); d > 1e-12 {
		t.Errorf("Cumulative(2) = %g, want %g", np, want)
	}
}

// Validasi konstruksi: setiap pelanggaran domain harus berupa *ParamError.
func TestInvalidParams(t *testing.T) {
	cases := []struct {
		name string
		p    decline.Params
	}{
		{"qi zero", decline.Params{Qi: 0, D: 0.5, B: 1, Dlim: 0.1, Years: 10}},
		{"qi negative", decline.Params{Qi: -10, D: 0.5, B: 1, Dlim: 0.1, Years: 10}},
		{"d negative", decline.Params{Qi: 100, D: -0.1, B: 1, Dlim: 0, Years: 10}},
		{"d at one", decline.Params{Qi: 100, D: 1, B: 1, Dlim: 0.1, Years: 10}},
		{"b negative", decline.Params{Qi: 100, D: 0.5, B: -0.2, Dlim: 0.1, Years: 10}},
		{"dlim negative", decline.Params{Qi: 100, D: 0.5, B: 1, Dlim: -0.1, Years: 10}},
		{"dlim above d", decline.Params{Qi: 100, D: 0.5, B: 1, Dlim: 0.6, Years: 10}},
		{"years zero", decline.Params{Qi: 100, D: 0.5, B: 1, Dlim: 0.1, Years: 0}},
		{"qi nan", decline.Params{Qi: math.NaN(), D: 0.5, B: 1, Dlim: 0.1, Years: 10}},
	}
	for _, tc := range cases {
		_, err := decline.NewCurve(tc.p)
		if err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
			continue
		}
		var pe *decline.ParamError
		if !errors.As(err, &pe) {
			t.Errorf("%s: expected *ParamError, got %T (%v)", tc.name, err, err)
		}
	}
}

// Waktu query di luar [0, years] harus berupa *TimeError.
func TestInvalidTime(t *testing.T) {
	c := mustCurve(t, refParams)

	for _, ti := range []float64{-0.001, refParams.Years + 0.001, math.NaN()} {
		if _, err := c.Rate(ti); err == nil {
			t.Errorf("Rate(%g): expected error", ti)
		} else {
			var te *decline.TimeError
			if !errors.As(err, &te) {
				t.Errorf("Rate(%g): expected *TimeError, got %T", ti, err)
			}
		}
		if _, err := c.Cumulative(ti); err == nil {
			t.Errorf("Cumulative(%g): expected error", ti)
		}
	}

	// Satu nilai invalid di tengah slice menggagalkan seluruh panggilan.
	if _, err := c.Rates([]float64{0, 1, -1}); err == nil {
		t.Error("Rates with negative time: expected error")
	}
	if got, err := c.Rates([]float64{0, 1, 2}); err != nil || len(got) != 3 {
		t.Errorf("Rates valid: got %v, %v", got, err)
	}
}
