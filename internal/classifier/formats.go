package classifier

import (
	"fmt"
	"sort"
)

// Format identifies a supported statement variant.
type Format string

const (
	// FormatOzonCredit is the Ozon platform credit card statement.
	FormatOzonCredit Format = "ozon-credit"

	// FormatVTBCredit is the VTB credit card statement with fixed columns.
	FormatVTBCredit Format = "vtb-credit"

	// FormatVTBDebit is the VTB debit account statement with fixed columns.
	FormatVTBDebit Format = "vtb-debit"

	// FormatVTBAutoCredit is the header-sniffed VTB credit statement variant.
	FormatVTBAutoCredit Format = "vtb-auto-credit"

	// FormatVTBAutoDebit is the header-sniffed VTB debit statement variant.
	FormatVTBAutoDebit Format = "vtb-auto-debit"
)

// Literal phrases the classifiers look for in statement cells. These come
// from the banks' own wording and are matched as substrings.
const (
	ozonRefundPhrase = "Перечисление денежных средств"
	ozonRefundLabel  = "Возврат денег, отмена заказа"
	ozonVATToken     = ". Без НДС."

	internalTransferPhrase = "Перевод между своими счетами"
)

type definition struct {
	config  Config
	scanner TableScanner
}

var registry = map[Format]definition{
	FormatOzonCredit: {
		config: Config{
			Name:     string(FormatOzonCredit),
			MinCells: 4,
			DateCol:  0, DescriptionCol: 2, AmountCol: 3,
			CommissionCol:     -1,
			ExpensesNegative:  true,
			RefundPhrase:      ozonRefundPhrase,
			RefundLabel:       ozonRefundLabel,
			BoilerplateTokens: []string{ozonVATToken},
		},
		scanner: FixedScanner{},
	},
	FormatVTBCredit: {
		config: Config{
			Name:     string(FormatVTBCredit),
			MinCells: 7,
			DateCol:  0, AmountCol: 4, CommissionCol: 5, DescriptionCol: -1,
		},
		scanner: FixedScanner{},
	},
	FormatVTBDebit: {
		config: Config{
			Name:     string(FormatVTBDebit),
			MinCells: 6,
			DateCol:  0, AmountCol: 2, CommissionCol: 4, DescriptionCol: 5,
			AbsoluteAmount:  true,
			DropZeroAmount:  true,
			SuppressPhrases: []string{internalTransferPhrase},
		},
		scanner: FixedScanner{},
	},
	FormatVTBAutoCredit: {
		config: Config{
			Name:     string(FormatVTBAutoCredit),
			MinCells: 7,
			DateCol:  0, AmountCol: 4, CommissionCol: 5, DescriptionCol: 6,
			Amounts:         AmountLocale,
			AbsoluteAmount:  true,
			DropZeroAmount:  true,
			SuppressPhrases: []string{internalTransferPhrase},
		},
		scanner: HeaderScanner{},
	},
	FormatVTBAutoDebit: {
		config: Config{
			Name:     string(FormatVTBAutoDebit),
			MinCells: 6,
			DateCol:  0, AmountCol: 2, CommissionCol: 4, DescriptionCol: 5,
			Amounts:         AmountLocale,
			AbsoluteAmount:  true,
			DropZeroAmount:  true,
			SuppressPhrases: []string{internalTransferPhrase},
		},
		scanner: HeaderScanner{},
	},
}

// ConfigFor returns the configuration and table scanner for a format.
func ConfigFor(format Format) (Config, TableScanner, error) {
	def, ok := registry[format]
	if !ok {
		return Config{}, nil, fmt.Errorf("unknown statement format: %s", format)
	}
	return def.config, def.scanner, nil
}

// Formats lists the supported format identifiers in stable order.
func Formats() []Format {
	formats := make([]Format, 0, len(registry))
	for f := range registry {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}
