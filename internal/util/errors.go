// internal/util/errors.go
// Definisi error aplikasi standar untuk boundary HTTP

package util

import (
	"errors"
	"fmt"

	"dca-oilgas/internal/decline"
)

type AppError struct {
	Code    string // e.g., "bad_input", "not_found", "internal"
	Message string
}

func (e AppError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func BadInput(msg string) AppError { return AppError{Code: "bad_input", Message: msg} }
func NotFound(msg string) AppError { return AppError{Code: "not_found", Message: msg} }
func Internal(msg string) AppError { return AppError{Code: "internal", Message: msg} }

// FromDecline memetakan error bertipe dari core decline ke AppError + status HTTP.
// Error parameter/waktu adalah salah input pemanggil (400), sisanya internal (500).
func FromDecline(err error) (AppError, int) {
	var pe *decline.ParamError
	var te *decline.TimeError
	var de *decline.DegeneracyError
	switch {
	case errors.As(err, &pe):
		return AppError{Code: "invalid_parameter", Message: pe.Error()}, 400
	case errors.As(err, &te):
		return AppError{Code: "invalid_time", Message: te.Error()}, 400
	case errors.As(err, &de):
		return AppError{Code: "numeric_degeneracy", Message: de.Error()}, 400
	default:
		return Internal(err.Error()), 500
	}
}
