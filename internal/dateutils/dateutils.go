// Package dateutils provides date parsing for statement rows.
package dateutils

import (
	"fmt"
	"regexp"
	"time"

	"dpetrov/vypiska-csv/internal/textutils"
)

// Date layouts used by the supported statement formats.
const (
	// DateTimeLayout is the operation timestamp layout used by all supported
	// statements (DD.MM.YYYY HH:MM:SS).
	DateTimeLayout = "02.01.2006 15:04:05"

	// DateLayout is the date-only prefix of DateTimeLayout.
	DateLayout = "02.01.2006"
)

// datePrefixRe matches the DD.MM.YYYY date pattern used to sniff candidate rows.
var datePrefixRe = regexp.MustCompile(`\d{2}\.\d{2}\.\d{4}`)

// ParseDateTime parses an operation timestamp in the fixed statement layout.
// The input is cleaned first, since PDF cells often carry embedded newlines.
// Parsing is strict: a row with an unparsable date must be rejected by the
// caller, because sorting requires a valid date.
func ParseDateTime(raw string) (time.Time, error) {
	cleaned := textutils.CleanText(raw)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date value")
	}

	t, err := time.Parse(DateTimeLayout, cleaned)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date '%s': %w", cleaned, err)
	}
	return t, nil
}

// HasDatePrefix reports whether the first ten characters of the cell contain
// the DD.MM.YYYY pattern. This is the cheap candidate-row pre-filter that
// rejects titles, blank rows and footer text before classification.
func HasDatePrefix(cell string) bool {
	if cell == "" {
		return false
	}
	runes := []rune(cell)
	if len(runes) > 10 {
		runes = runes[:10]
	}
	return datePrefixRe.MatchString(string(runes))
}
