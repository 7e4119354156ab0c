// Package currencyutils provides amount cleaning and parsing for statement cells.
package currencyutils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// nonAmountRe strips everything that is not a digit, decimal point or minus sign.
var nonAmountRe = regexp.MustCompile(`[^\d.-]`)

// ParseAmount parses an amount cell by stripping every character that is not a
// digit, decimal point or minus sign, then converting the remainder.
//
// The function is total: on conversion failure it logs a warning and returns
// zero, so a single bad amount never aborts the statement.
func ParseAmount(raw string) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}

	stripped := nonAmountRe.ReplaceAllString(raw, "")
	amount, err := decimal.NewFromString(stripped)
	if err != nil {
		log.WithField("value", raw).Warn("Unable to parse amount, using zero")
		return decimal.Zero
	}
	return amount
}

// StandardizeAmount converts a locale-formatted amount string to a form that
// decimal.NewFromString accepts. It handles patterns like "1 234,56 ₽",
// "-2 500,00 RUB" and "1234.56": currency suffixes and space (including
// non-breaking space) thousands separators are removed and a decimal comma is
// replaced with a point.
func StandardizeAmount(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "₽")
	s = strings.TrimSuffix(s, "RUB")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	return s
}

// ParseLocaleAmount parses an amount cell in the locale format produced by
// statements that report sums with thousands separators and a currency suffix.
// Like ParseAmount, it is total and returns zero on failure.
func ParseLocaleAmount(raw string) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(StandardizeAmount(raw))
	if err != nil {
		log.WithField("value", raw).Warn("Unable to parse amount, using zero")
		return decimal.Zero
	}
	return amount
}
