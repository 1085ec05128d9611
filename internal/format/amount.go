package format

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned when a string is not a non-negative decimal.
var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount converts a decimal string in rupees to paise.
//
// Only ASCII digits are accepted. Digit-group commas are ignored
// ("1,200.50" -> 120050). At most two fractional digits are kept; a third
// digit rounds half up.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, Symbol)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, ErrInvalidAmount
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart + fracPart {
		if r < '0' || r > '9' {
			return 0, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafe = (1<<63 - 1) / 100
	if iv > maxSafe {
		return 0, ErrInvalidAmount
	}

	var frac int64
	if len(fracPart) > 0 {
		frac = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			frac += int64(fracPart[1] - '0')
		}
		if len(fracPart) > 2 && fracPart[2] >= '5' {
			frac++
		}
	}
	return iv*100 + frac, nil
}

// ParseAmountOrZero is the form-field variant of ParseAmount: anything that
// does not parse yields zero instead of an error.
func ParseAmountOrZero(s string) int64 {
	v, err := ParseAmount(s)
	if err != nil {
		return 0
	}
	return v
}
