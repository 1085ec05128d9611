// Package format renders amounts and dates for display.
//
// Amounts are int64 minor units (paise). Rendering follows the en-IN
// conventions of the dashboard: a rupee sign, lakh/crore digit grouping
// (12,34,567) and a fractional part only when it is non-zero.
package format

import (
	"strconv"
	"strings"
)

// Symbol is the currency sign prefixed to every rendered amount.
const Symbol = "₹"

// lakh is one hundred thousand rupees expressed in paise.
const lakh = 100000 * 100

// Currency renders a non-negative magnitude, e.g. 12345650 -> "₹1,23,456.5".
// Negative input is rendered by its absolute value.
func Currency(minor int64) string {
	return Symbol + amount(abs(minor))
}

// SignedCurrency renders an amount with a leading minus for negatives,
// e.g. -50000 -> "-₹500".
func SignedCurrency(minor int64) string {
	if minor < 0 {
		return "-" + Currency(minor)
	}
	return Currency(minor)
}

// CompactCurrency abbreviates amounts of one lakh or more, e.g. "₹4.8L".
func CompactCurrency(minor int64) string {
	m := abs(minor)
	if m >= lakh {
		// one decimal, half up, on the lakh value
		tenths := (m*10 + lakh/2) / lakh
		return Symbol + strconv.FormatInt(tenths/10, 10) + "." + strconv.FormatInt(tenths%10, 10) + "L"
	}
	return Currency(m)
}

// SignedCompactCurrency is CompactCurrency with a leading minus for
// negatives, e.g. -25000000 -> "-₹2.5L".
func SignedCompactCurrency(minor int64) string {
	if minor < 0 {
		return "-" + CompactCurrency(minor)
	}
	return CompactCurrency(minor)
}

// Percent renders an integer percentage, e.g. 60 -> "60%".
func Percent(p int) string {
	return strconv.Itoa(p) + "%"
}

func amount(minor int64) string {
	whole := minor / 100
	frac := minor % 100

	s := groupIndian(strconv.FormatInt(whole, 10))
	if frac == 0 {
		return s
	}
	f := strconv.FormatInt(frac, 10)
	if frac < 10 {
		f = "0" + f
	}
	return s + "." + strings.TrimRight(f, "0")
}

// groupIndian inserts separators after the last three digits and then after
// every two digits.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(groups, ",") + "," + tail
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
