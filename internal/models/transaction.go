// Package models defines the canonical transaction record produced by the
// statement classifiers.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"dpetrov/vypiska-csv/internal/textutils"
)

// PaymentBoilerplate is the service phrase banks prepend to card payment
// descriptions. It carries no information and is stripped on construction.
const PaymentBoilerplate = "Оплата товаров и услуг. "

// commissionPrefix labels the merged commission amount in the description.
const commissionPrefix = " Комиссия: "

// Transaction is the canonical expense record extracted from one statement row.
// A Transaction is immutable once constructed; rows that should not produce a
// record are filtered before construction, never after.
type Transaction struct {
	// Expense is the non-negative total in the statement's native currency,
	// always including any commission.
	Expense decimal.Decimal

	// Date is the operation timestamp with second precision.
	Date time.Time

	// Description is the cleaned free-text label. It never contains raw
	// newlines or runs of whitespace longer than one space.
	Description string
}

// NewTransaction builds the canonical record from classified row fields.
// It is the single choke point every classifier routes through, guaranteeing
// the commission merge and description labelling are applied uniformly:
//
//   - the expense is the sum of the raw amount and the commission;
//   - the payment boilerplate phrase is removed from the description;
//   - a non-zero commission is reported as a description suffix, never as a
//     separate field.
func NewTransaction(expense decimal.Decimal, date time.Time, description string, commission decimal.Decimal) Transaction {
	total := expense.Add(commission)

	desc := strings.ReplaceAll(description, PaymentBoilerplate, "")
	desc = textutils.CleanText(desc)

	if !commission.IsZero() {
		desc += commissionPrefix + commission.String()
	}

	return Transaction{
		Expense:     total,
		Date:        date,
		Description: desc,
	}
}
