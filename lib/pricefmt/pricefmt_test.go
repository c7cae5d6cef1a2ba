package pricefmt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		input  string
		value  float64
		parsed bool
	}{
		{"$42,000.12", 42000.12, true},
		{"$0.08123", 0.08123, true},
		{"1500", 1500, true},
		{" $845.50 ", 845.50, true},
		{"N/A", 0, false},
		{"--", 0, false},
		{"", 0, false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.input, func(t *testing.T) {
			value, parsed := ParsePrice(testCase.input)
			require.Equal(t, testCase.parsed, parsed)
			require.Equal(t, testCase.value, value)
		})
	}
}

func TestParsePercent(t *testing.T) {
	testCases := []struct {
		input  string
		value  float64
		parsed bool
	}{
		{"-2.45%", -2.45, true},
		{"5.91%", 5.91, true},
		{"+1,024.5%", 1024.5, true},
		{"0.00%", 0, true},
		{"", 0, false},
		{"--", 0, false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.input, func(t *testing.T) {
			value, parsed := ParsePercent(testCase.input)
			require.Equal(t, testCase.parsed, parsed)
			require.Equal(t, testCase.value, value)
		})
	}
}
