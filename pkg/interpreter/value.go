package interpreter

import (
	"math"
	"strconv"
)

// significantDigits caps the precision of printed numbers
const significantDigits = 15

// FormatNumber renders v the way PRINT does: the shortest form with at most
// 15 significant digits, exponent notation for very large or small values.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	return strconv.FormatFloat(v, 'g', significantDigits, 64)
}

// parseNumber converts a NUM lexeme. Literals beyond the float64 range become
// infinities, matching strtod.
func parseNumber(lexeme string) (float64, bool) {
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return v, true
		}
		return 0, false
	}

	return v, true
}
