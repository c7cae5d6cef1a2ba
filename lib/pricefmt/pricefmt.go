// Package pricefmt converts display-formatted currency and percentage
// strings into numbers.
package pricefmt

import (
	"strconv"
	"strings"
)

// ParsePrice converts a display price like "$42,000.12" into a number.
// The boolean reports whether the string held a parseable value, so
// placeholders like "--" or "N/A" come back absent instead of as an
// error.
func ParsePrice(s string) (float64, bool) {
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// ParsePercent converts a display change like "-2.45%" into a number.
// The sign survives stripping.
func ParsePercent(s string) (float64, bool) {
	s = strings.ReplaceAll(s, "%", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
