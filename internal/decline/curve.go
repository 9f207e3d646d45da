// internal/decline/curve.go
// Kurva Arps (hiperbolik + eksponensial terminal) untuk forecast produksi sumur.
//
// Konvensi mengikuti referensi SPEE REP06 / Fekete:
//   Dnom    = ((1-D)^(-b) - 1) / b        (secant effective -> nominal, b > 0)
//   Dnom    = -ln(1-D)                    (b = 0, identitas eksponensial)
//   DlimNom = -ln(1-dlim)
//   QLim    = Qi * (DlimNom/Dnom)^(1/b)
//   TLim    = ((Qi/QLim)^b - 1) / (b*Dnom)   dalam tahun
// Qi dalam bbl/day atau scf/day; t dalam tahun; kumulatif dalam volume total
// (laju harian x 365 hari/tahun).

package decline

import "math"

// DaysPerYear dipakai untuk konversi laju harian -> volume kumulatif.
const DaysPerYear = 365.0

// Params: parameter fisik kurva, immutable setelah NewCurve.
type Params struct {
	Qi    float64 `json:"qi"`    // laju awal, bbl/day atau scf/day
	D     float64 `json:"d"`     // effective secant decline awal, 1/tahun, [0,1)
	B     float64 `json:"b"`     // eksponen hiperbolik (0 = eksponensial, 1 = harmonik)
	Dlim  float64 `json:"dlim"`  // limiting effective decline, 1/tahun, [0,D]
	Years float64 `json:"years"` // panjang horizon forecast, tahun
}

type regime int

const (
	// hiperbolik di seluruh horizon (dlim=0, atau D=0 alias kurva datar)
	regimeHyperbolic regime = iota
	// eksponensial murni dari t=0 (b=0, atau dlim=D)
	regimeExponential
	// hiperbolik lalu eksponensial mulai TLim
	regimeSwitching
)

// Curve: state dua-varian dipilih sekali saat konstruksi; evaluasi per-t
// tinggal branch pada regime. Aman dipakai paralel (tidak ada mutasi).
type Curve struct {
	p Params

	reg     regime
	dnom    float64 // nominal decline hiperbolik, 1/tahun
	dlimNom float64 // nominal decline terminal, 1/tahun
	tlim    float64 // waktu transisi, tahun (hanya regimeSwitching)
	qlim    float64 // laju di tlim (hanya regimeSwitching)
}

// NewCurve memvalidasi parameter dan memilih regime sekali di depan.
func NewCurve(p Params) (*Curve, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	c := &Curve{p: p}

	switch {
	case p.B == 0:
		// Eksponensial murni; logika dlim tidak berlaku (Dnom sudah konstan).
		c.reg = regimeExponential
		c.dlimNom = -math.Log(1 - p.D)

	case p.D == 0:
		// Tidak ada decline sama sekali: kurva datar, Dnom = 0.
		c.reg = regimeHyperbolic
		c.dnom = 0

	case p.Dlim == p.D:
		// Transisi langsung di t=0: eksponensial dengan D dikonversi nominal.
		c.reg = regimeExponential
		c.dlimNom = -math.Log(1 - p.D)

	case p.Dlim == 0:
		// Tidak pernah menyentuh floor eksponensial dalam waktu berhingga.
		c.reg = regimeHyperbolic
		c.dnom = (math.Pow(1-p.D, -p.B) - 1) / p.B

	default:
		c.reg = regimeSwitching
		c.dnom = (math.Pow(1-p.D, -p.B) - 1) / p.B
		c.dlimNom = -math.Log(1 - p.Dlim)
		c.qlim = p.Qi * math.Pow(c.dlimNom/c.dnom, 1/p.B)
		c.tlim = (math.Pow(p.Qi/c.qlim, p.B) - 1) / (p.B * c.dnom)
	}

	for _, q := range [...]struct {
		name string
		v    float64
	}{
		{"nominal decline", c.dnom},
		{"limiting nominal decline", c.dlimNom},
		{"transition time", c.tlim},
		{"transition rate", c.qlim},
	} {
		if math.IsNaN(q.v) || math.IsInf(q.v, 0) {
			return nil, &DegeneracyError{Quantity: q.name, Value: q.v}
		}
	}

	return c, nil
}

func validate(p Params) error {
	for _, f := range [...]struct {
		name string
		v    float64
	}{
		{"qi", p.Qi}, {"d", p.D}, {"b", p.B}, {"dlim", p.Dlim}, {"years", p.Years},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return paramErr(f.name, f.v, "must be finite")
		}
	}
	if p.Qi <= 0 {
		return paramErr("qi", p.Qi, "initial rate must be > 0")
	}
	if p.D < 0 || p.D >= 1 {
		return paramErr("d", p.D, "effective decline must be in [0, 1)")
	}
	if p.B < 0 {
		return paramErr("b", p.B, "hyperbolic exponent must be >= 0")
	}
	if p.Dlim < 0 {
		return paramErr("dlim", p.Dlim, "limiting decline must be >= 0")
	}
	if p.Dlim > p.D {
		return paramErr("dlim", p.Dlim, "limiting decline must not exceed d")
	}
	if p.Years <= 0 {
		return paramErr("years", p.Years, "forecast horizon must be > 0")
	}
	return nil
}

// Params mengembalikan salinan parameter kurva.
func (c *Curve) Params() Params { return c.p }

// Years: panjang horizon, tahun.
func (c *Curve) Years() float64 { return c.p.Years }

// TLim mengembalikan (waktu transisi, true) bila regime switching aktif.
func (c *Curve) TLim() (float64, bool) {
	if c.reg != regimeSwitching {
		return 0, false
	}
	return c.tlim, true
}

func (c *Curve) checkTime(t float64) error {
	if math.IsNaN(t) || t < 0 || t > c.p.Years {
		return &TimeError{T: t, Years: c.p.Years}
	}
	return nil
}

// Rate: laju produksi di t (tahun), satuan sama dengan Qi.
func (c *Curve) Rate(t float64) (float64, error) {
	if err := c.checkTime(t); err != nil {
		return 0, err
	}
	return c.rateAt(t), nil
}

// Rates mengevaluasi laju untuk deretan waktu terurut.
func (c *Curve) Rates(ts []float64) ([]float64, error) {
	out := make([]float64, 0, len(ts))
	for _, t := range ts {
		if err := c.checkTime(t); err != nil {
			return nil, err
		}
		out = append(out, c.rateAt(t))
	}
	return out, nil
}

func (c *Curve) rateAt(t float64) float64 {
	switch c.reg {
	case regimeExponential:
		return c.p.Qi * math.Exp(-c.dlimNom*t)
	case regimeSwitching:
		if t >= c.tlim {
			return c.qlim * math.Exp(-c.dlimNom*(t-c.tlim))
		}
	}
	return c.hypRate(t)
}

func (c *Curve) hypRate(t float64) float64 {
	if c.dnom == 0 {
		return c.p.Qi
	}
	return c.p.Qi / math.Pow(1+c.p.B*c.dnom*t, 1/c.p.B)
}

// Cumulative: volume kumulatif Np di t (tahun). Satuan = satuan Qi x hari
// (laju harian diintegralkan, faktor 365 hari/tahun).
func (c *Curve) Cumulative(t float64) (float64, error) {
	if err := c.checkTime(t); err != nil {
		return 0, err
	}
	return c.cumAt(t), nil
}

// Cumulatives mengevaluasi kumulatif untuk deretan waktu terurut.
func (c *Curve) Cumulatives(ts []float64) ([]float64, error) {
	out := make([]float64, 0, len(ts))
	for _, t := range ts {
		if err := c.checkTime(t); err != nil {
			return nil, err
		}
		out = append(out, c.cumAt(t))
	}
	return out, nil
}

func (c *Curve) cumAt(t float64) float64 {
	switch c.reg {
	case regimeExponential:
		if c.dlimNom == 0 {
			return c.p.Qi * DaysPerYear * t
		}
		return c.p.Qi * DaysPerYear / c.dlimNom * (1 - math.Exp(-c.dlimNom*t))
	case regimeSwitching:
		if t > c.tlim {
			tail := c.qlim * DaysPerYear / c.dlimNom * (1 - math.Exp(-c.dlimNom*(t-c.tlim)))
			return c.hypCum(c.tlim) + tail
		}
	}
	return c.hypCum(t)
}

func (c *Curve) hypCum(t float64) float64 {
	switch {
	case c.dnom == 0:
		return c.p.Qi * DaysPerYear * t
	case c.p.B == 1:
		// kasus harmonik
		return c.p.Qi * DaysPerYear / c.dnom * math.Log(1+c.dnom*t)
	default:
		return c.p.Qi * DaysPerYear / ((1 - c.p.B) * c.dnom) *
			(1 - math.Pow(1+c.p.B*c.dnom*t, 1-1/c.p.B))
	}
}
