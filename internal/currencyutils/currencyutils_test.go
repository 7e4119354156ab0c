package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty string", "", "0"},
		{"Plain amount", "150.00", "150"},
		{"Negative amount", "-150.00", "-150"},
		{"Amount with currency suffix", "150.00 RUB", "150"},
		{"Amount with embedded spaces", " 1 500.25 ", "1500.25"},
		{"Garbage", "abc", "0"},
		{"Only separators", "..--", "0"},
		{"Mixed digits and letters", "12a.50", "12.5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			expected := decimal.RequireFromString(tc.expected)
			result := ParseAmount(tc.input)
			assert.True(t, expected.Equal(result),
				"expected %s, got %s", expected, result)
		})
	}
}

// ParseAmount must be total: any input yields a numeric value, never a panic.
func TestParseAmountNeverPanics(t *testing.T) {
	inputs := []string{"", "-", ".", "--..", "£€¥", "NaN", "1e10", "\n\r"}
	for _, input := range inputs {
		assert.NotPanics(t, func() {
			_ = ParseAmount(input)
		})
	}
}

func TestStandardizeAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Locale amount with ruble sign", "1 234,56 ₽", "1234.56"},
		{"Negative with RUB suffix", "-2 500,00 RUB", "-2500.00"},
		{"Non-breaking space separator", "1 234,56", "1234.56"},
		{"Plain decimal point", "1234.56", "1234.56"},
		{"No separators", "500", "500"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StandardizeAmount(tc.input))
		})
	}
}

func TestParseLocaleAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty string", "", "0"},
		{"Locale format", "1 234,56 ₽", "1234.56"},
		{"Negative locale format", "-10 000,00 ₽", "-10000"},
		{"Garbage", "н/д", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			expected := decimal.RequireFromString(tc.expected)
			result := ParseLocaleAmount(tc.input)
			assert.True(t, expected.Equal(result),
				"expected %s, got %s", expected, result)
		})
	}
}
