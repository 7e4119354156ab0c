package classifier

import (
	"strings"

	"dpetrov/vypiska-csv/internal/extractor"
)

// Header phrases used to locate the data region in header-sniffed statements.
const (
	// DateHeader is the column header above the operation timestamp.
	DateHeader = "Дата и время"

	// StatusHeader marks the statement variant that carries an extra
	// operation-status column, which shifts the description one cell right.
	StatusHeader = "Статус"
)

// TableScanner locates the data rows of one table and resolves the effective
// format configuration for them. Two strategies exist: fixed-column legacy
// statements treat every row as a potential candidate, while header-sniffed
// statements only accept rows below a recognized header.
type TableScanner interface {
	// Scan returns the candidate data rows of the table together with the
	// configuration to classify them. ok is false when the table carries no
	// recognizable data region and must be skipped entirely.
	Scan(table extractor.Table, base Config) (rows []extractor.Row, cfg Config, ok bool)
}

// FixedScanner serves legacy formats without an additional header row: every
// row is a candidate and the configuration is used as declared.
type FixedScanner struct{}

// Scan returns all rows of the table unchanged.
func (FixedScanner) Scan(table extractor.Table, base Config) ([]extractor.Row, Config, bool) {
	return table, base, true
}

// HeaderScanner locates the header row by searching for the date-column
// phrase in any cell. Rows before the header are ignored entirely; tables
// without a header are skipped.
type HeaderScanner struct{}

// Scan finds the header row and returns the rows below it. When the header
// carries the status column variant, the description offset shifts by one.
func (HeaderScanner) Scan(table extractor.Table, base Config) ([]extractor.Row, Config, bool) {
	for i, row := range table {
		if !rowContains(row, DateHeader) {
			continue
		}

		cfg := base
		if rowContains(row, StatusHeader) {
			cfg.DescriptionCol++
			cfg.MinCells++
		}
		return table[i+1:], cfg, true
	}
	return nil, base, false
}

func rowContains(row extractor.Row, phrase string) bool {
	for _, cell := range row {
		if strings.Contains(cell, phrase) {
			return true
		}
	}
	return false
}
