// Package classifier converts candidate statement rows into canonical
// transactions. Instead of one hand-written parser per bank format, a single
// classifier is parameterized by a per-format Config describing column
// offsets, boilerplate tokens and suppression rules.
package classifier

import (
	"strings"

	"github.com/shopspring/decimal"

	"dpetrov/vypiska-csv/internal/currencyutils"
	"dpetrov/vypiska-csv/internal/dateutils"
	"dpetrov/vypiska-csv/internal/extractor"
	"dpetrov/vypiska-csv/internal/logging"
	"dpetrov/vypiska-csv/internal/models"
	"dpetrov/vypiska-csv/internal/textutils"
)

// SkipReason explains why a candidate row produced no transaction.
// An empty reason means the row classified successfully.
type SkipReason string

const (
	// SkipNone marks a successful classification.
	SkipNone SkipReason = ""

	// SkipShortRow marks a row with fewer cells than the format requires.
	SkipShortRow SkipReason = "short_row"

	// SkipBadDate marks a row whose date cell could not be parsed.
	SkipBadDate SkipReason = "bad_date"

	// SkipNonExpense marks an incoming movement (deposit, refund credited
	// back) that is out of scope for expense reporting.
	SkipNonExpense SkipReason = "non_expense"

	// SkipZeroAmount marks a row carrying no monetary value.
	SkipZeroAmount SkipReason = "zero_amount"

	// SkipInternalTransfer marks a movement between the holder's own accounts.
	SkipInternalTransfer SkipReason = "internal_transfer"
)

// Malformed reports whether the reason describes a broken row rather than a
// business filter. Malformed rows are logged as errors; filtered rows are a
// normal, quiet part of processing.
func (r SkipReason) Malformed() bool {
	return r == SkipShortRow || r == SkipBadDate
}

// AmountMode selects the amount-cleaning regime of a format.
type AmountMode int

const (
	// AmountStrict strips everything that is not a digit, point or minus.
	AmountStrict AmountMode = iota

	// AmountLocale strips thousands separators and a currency suffix.
	AmountLocale
)

// Config describes how one statement format maps raw cells to transaction
// fields. Column offsets are positional; a negative DescriptionCol counts
// from the end of the row.
type Config struct {
	// Name identifies the format in logs.
	Name string

	// MinCells is the minimum cell count a row must have.
	MinCells int

	// DateCol is the offset of the operation timestamp cell.
	DateCol int

	// AmountCol is the offset of the raw amount cell.
	AmountCol int

	// CommissionCol is the offset of the commission cell, or -1 when the
	// format reports no commission.
	CommissionCol int

	// DescriptionCol is the offset of the description cell.
	DescriptionCol int

	// Amounts selects the amount-cleaning regime.
	Amounts AmountMode

	// ExpensesNegative is set for formats where debits are reported with a
	// negative sign; rows with a non-negative raw amount are rejected and the
	// sign is inverted on the rest.
	ExpensesNegative bool

	// AbsoluteAmount takes the absolute value of the raw amount.
	AbsoluteAmount bool

	// DropZeroAmount rejects rows whose amount is zero.
	DropZeroAmount bool

	// BoilerplateTokens are substrings stripped from the description.
	BoilerplateTokens []string

	// RefundPhrase, when found in the description, replaces the whole
	// description with RefundLabel.
	RefundPhrase string
	RefundLabel  string

	// SuppressPhrases reject the row when found in the description.
	SuppressPhrases []string
}

// Classifier turns candidate rows of one statement format into transactions.
type Classifier struct {
	cfg    Config
	logger logging.Logger
}

// NewClassifier creates a classifier for the given format configuration.
// If logger is nil, the process-wide default logger is used.
func NewClassifier(cfg Config, logger logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Classifier{
		cfg:    cfg,
		logger: logger.WithField(logging.FieldFormat, cfg.Name),
	}
}

// Config returns the format configuration the classifier was built with.
func (c *Classifier) Config() Config {
	return c.cfg
}

// Classify converts one candidate row into a transaction, or explains why the
// row yields none. Filtering happens here, before construction: a returned
// transaction is final and is never removed later.
func (c *Classifier) Classify(row extractor.Row) (models.Transaction, SkipReason) {
	if len(row) < c.cfg.MinCells {
		return models.Transaction{}, SkipShortRow
	}

	date, err := dateutils.ParseDateTime(row.Cell(c.cfg.DateCol))
	if err != nil {
		c.logger.WithError(err).Error("Rejecting row with unparsable date",
			logging.Field{Key: logging.FieldRow, Value: row})
		return models.Transaction{}, SkipBadDate
	}

	amount := c.parseAmount(row.Cell(c.cfg.AmountCol))
	description := textutils.CleanText(row.Cell(c.cfg.DescriptionCol))

	if c.cfg.ExpensesNegative {
		// Debits are negative in this format; anything else is an incoming
		// movement reported separately.
		if !amount.IsNegative() {
			return models.Transaction{}, SkipNonExpense
		}
		amount = amount.Abs()
	}
	if c.cfg.AbsoluteAmount {
		amount = amount.Abs()
	}

	if c.cfg.DropZeroAmount && amount.IsZero() {
		return models.Transaction{}, SkipZeroAmount
	}

	for _, phrase := range c.cfg.SuppressPhrases {
		if strings.Contains(description, phrase) {
			return models.Transaction{}, SkipInternalTransfer
		}
	}

	if c.cfg.RefundPhrase != "" && strings.Contains(description, c.cfg.RefundPhrase) {
		description = c.cfg.RefundLabel
	} else if len(c.cfg.BoilerplateTokens) > 0 {
		description = textutils.StripTokens(description, c.cfg.BoilerplateTokens)
	}

	commission := decimal.Zero
	if c.cfg.CommissionCol >= 0 {
		commission = c.parseAmount(row.Cell(c.cfg.CommissionCol))
	}

	return models.NewTransaction(amount, date, description, commission), SkipNone
}

func (c *Classifier) parseAmount(raw string) decimal.Decimal {
	if c.cfg.Amounts == AmountLocale {
		return currencyutils.ParseLocaleAmount(raw)
	}
	return currencyutils.ParseAmount(raw)
}
