package calc

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// plainDecimal matches numerals whose fractional digits can be shown as typed.
var plainDecimal = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)$`)

// Format renders a numeral for the display: the integer part gets comma
// grouping and the fractional part is kept as typed. Anything that does not
// parse as a finite number formats as "0".
func Format(numeral string) string {
	v, ok := parseNumeral(numeral)
	if !ok {
		return "0"
	}
	if !plainDecimal.MatchString(numeral) {
		numeral = stringify(v)
	}

	var sign string
	switch numeral[0] {
	case '-':
		sign, numeral = "-", numeral[1:]
	case '+':
		numeral = numeral[1:]
	}

	intPart, frac, hasPoint := strings.Cut(numeral, ".")
	out := sign + groupDigits(intPart)
	if hasPoint {
		out += "." + frac
	}
	return out
}

func groupDigits(digits string) string {
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return "0"
	}
	return humanize.BigComma(n)
}

// parseNumeral reports the value of s if it is a finite decimal number.
func parseNumeral(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !finite(v) {
		return 0, false
	}
	return v, true
}

// stringify is the inverse of parseNumeral: the shortest plain decimal that
// parses back to v.
func stringify(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
