package metrics

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when a percentage is requested against a
// zero denominator. Callers must handle it explicitly; the computation never
// degrades to Inf or NaN.
var ErrDivisionByZero = errors.New("percentage: division by zero")

// Percentage returns 100*part/whole formatted to exactly two decimal places.
func Percentage(part, whole float64) (string, error) {
	if whole == 0 {
		return "", ErrDivisionByZero
	}
	return fmt.Sprintf("%.2f", 100*part/whole), nil
}
