// internal/decline/errors.go
// Error bertipe untuk validasi parameter, waktu, dan degenerasi numerik

package decline

import "fmt"

// ParamError: parameter konstruksi di luar domain valid.
type ParamError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%g: %s", e.Param, e.Value, e.Reason)
}

// TimeError: waktu query di luar [0, years].
type TimeError struct {
	T     float64
	Years float64
}

func (e *TimeError) Error() string {
	return fmt.Sprintf("time %g outside forecast horizon [0, %g]", e.T, e.Years)
}

// DegeneracyError: hasil antara non-finite (NaN/Inf) saat menyiapkan kurva.
// Di-surface eksplisit, jangan diam-diam menghasilkan NaN ke pemanggil.
type DegeneracyError struct {
	Quantity string
	Value    float64
}

func (e *DegeneracyError) Error() string {
	return fmt.Sprintf("non-finite %s (%g) from supplied parameters", e.Quantity, e.Value)
}

func paramErr(name string, v float64, reason string) error {
	return &ParamError{Param: name, Value: v, Reason: reason}
}
