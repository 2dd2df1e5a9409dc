package output

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// ResultPlaces is the precision of a direct conversion result
	ResultPlaces = 8

	// TablePlaces is the precision of reference table cells
	TablePlaces = 2
)

// exactExponent asks decimal for every digit of the binary value
const exactExponent = math.MinInt32

var groupingPrinter = message.NewPrinter(language.English)

// FormatResult renders v with exactly ResultPlaces decimals, no grouping.
// The exact binary value is rounded half to even.
func FormatResult(v float64) string {
	if s, ok := formatNonFinite(v); ok {
		return s
	}
	return decimal.NewFromFloatWithExponent(v, exactExponent).
		RoundBank(ResultPlaces).
		StringFixed(ResultPlaces)
}

// FormatGrouped renders v with TablePlaces decimals and thousands separators.
// The printer rounds the exact binary value half to even.
func FormatGrouped(v float64) string {
	if s, ok := formatNonFinite(v); ok {
		return s
	}
	return groupingPrinter.Sprintf("%.2f", v)
}

// formatNonFinite handles values decimal cannot represent
func formatNonFinite(v float64) (string, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64), true
	}
	return "", false
}
