package textutils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty string", "", ""},
		{"Plain text", "Продукты", "Продукты"},
		{"Embedded newlines", "Оплата\nтоваров\r\nи услуг", "Оплата товаров и услуг"},
		{"Runs of spaces", "Кафе   у    дома", "Кафе у дома"},
		{"Leading and trailing whitespace", "  Перевод \n", "Перевод"},
		{"Tabs", "Оплата\tуслуг", "Оплата услуг"},
		{"Only whitespace", " \n\r\t ", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CleanText(tc.input))
		})
	}
}

func TestCleanTextIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Продукты",
		"Оплата\n\nтоваров  и услуг ",
		" \r\n ",
		"a  b\tc\nd",
	}

	for _, input := range inputs {
		once := CleanText(input)
		assert.Equal(t, once, CleanText(once), "CleanText must be idempotent for %q", input)
	}
}

func TestCleanTextNeverContainsRawWhitespaceRuns(t *testing.T) {
	inputs := []string{
		"a\nb",
		"a  b",
		"a\r\n\r\nb",
		"  a\t\tb  ",
	}

	for _, input := range inputs {
		cleaned := CleanText(input)
		assert.NotContains(t, cleaned, "\n")
		assert.NotContains(t, cleaned, "\r")
		assert.NotContains(t, cleaned, "  ")
	}
}

func TestStripTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		tokens   []string
		expected string
	}{
		{
			name:     "Single token",
			input:    "Оплата товаров/услуг на Платформе. Без НДС.",
			tokens:   []string{". Без НДС."},
			expected: "Оплата товаров/услуг на Платформе",
		},
		{
			name:     "Token absent",
			input:    "Продукты",
			tokens:   []string{". Без НДС."},
			expected: "Продукты",
		},
		{
			name:     "Multiple tokens",
			input:    "Оплата товаров и услуг. Кафе. Без НДС.",
			tokens:   []string{"Оплата товаров и услуг. ", ". Без НДС."},
			expected: "Кафе",
		},
		{
			name:     "Result is cleaned",
			input:    "Кафе  . Без НДС.",
			tokens:   []string{". Без НДС."},
			expected: "Кафе",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := StripTokens(tc.input, tc.tokens)
			assert.Equal(t, tc.expected, result)
			assert.False(t, strings.Contains(result, "  "))
		})
	}
}
