package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		expectedOk bool
		expected   time.Time
	}{
		{
			name:       "Valid timestamp",
			input:      "01.03.2024 10:00:00",
			expectedOk: true,
			expected:   time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:       "Timestamp with embedded newline",
			input:      "01.03.2024\n10:00:00",
			expectedOk: true,
			expected:   time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:       "Timestamp with surrounding whitespace",
			input:      "  02.03.2024 09:30:15 ",
			expectedOk: true,
			expected:   time.Date(2024, time.March, 2, 9, 30, 15, 0, time.UTC),
		},
		{"Empty string", "", false, time.Time{}},
		{"Date only", "01.03.2024", false, time.Time{}},
		{"ISO format", "2024-03-01 10:00:00", false, time.Time{}},
		{"Garbage", "not a date", false, time.Time{}},
		{"Impossible day", "32.01.2024 10:00:00", false, time.Time{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseDateTime(tc.input)
			if tc.expectedOk {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, parsed)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseDateTimeRoundTrip(t *testing.T) {
	timestamps := []time.Time{
		time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	for _, ts := range timestamps {
		parsed, err := ParseDateTime(ts.Format(DateTimeLayout))
		require.NoError(t, err)
		assert.True(t, ts.Equal(parsed), "round trip must preserve %v", ts)
	}
}

func TestHasDatePrefix(t *testing.T) {
	tests := []struct {
		name     string
		cell     string
		expected bool
	}{
		{"Full timestamp", "01.03.2024 10:00:00", true},
		{"Date only", "02.03.2024", true},
		{"Empty cell", "", false},
		{"Table title", "Выписка по счёту", false},
		{"Footer text", "Итого за период", false},
		{"Date beyond first ten chars", "Оплата услуг 01.03.2024", false},
		{"Partial date", "01.03.24 10:00:00", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, HasDatePrefix(tc.cell))
		})
	}
}
