// Package exporter serializes canonical transactions to delimited text files.
package exporter

import (
	"encoding/csv"
	"fmt"

	"github.com/gocarina/gocsv"

	"dpetrov/vypiska-csv/internal/dateutils"
	"dpetrov/vypiska-csv/internal/fileutils"
	"dpetrov/vypiska-csv/internal/logging"
	"dpetrov/vypiska-csv/internal/models"
)

// utf8BOM is prepended so spreadsheet tools pick up the encoding.
const utf8BOM = "\ufeff"

// Delimiter is the CSV field delimiter, configurable via SetDelimiter.
var Delimiter rune = ';'

// DateLayout is the layout used to serialize the operation timestamp.
// The default re-emits the statement's own input pattern rather than the
// locale's default rendering.
var DateLayout = dateutils.DateTimeLayout

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetDateLayout allows setting the output date layout
func SetDateLayout(layout string) {
	if layout != "" {
		DateLayout = layout
	}
}

// csvRecord maps one transaction to the fixed three-column export schema.
type csvRecord struct {
	Expense     string `csv:"Расход"`
	Date        string `csv:"Дата"`
	Description string `csv:"Описание"`
}

// WriteTransactionsToCSV writes transactions to a semicolon-delimited, UTF-8
// with BOM CSV file with a header row. When the transaction list is empty no
// file is written at all; an empty statement is a warning, not a failure.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.GetLogger()
	}

	if len(transactions) == 0 {
		logger.Warn("No operations to save, skipping CSV write",
			logging.Field{Key: logging.FieldOutputFile, Value: csvFile})
		return nil
	}

	file, err := fileutils.CreateFile(csvFile)
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file",
			logging.Field{Key: logging.FieldOutputFile, Value: csvFile})
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if _, err := file.WriteString(utf8BOM); err != nil {
		return fmt.Errorf("error writing BOM: %w", err)
	}

	records := make([]csvRecord, 0, len(transactions))
	for _, tx := range transactions {
		records = append(records, csvRecord{
			Expense:     tx.Expense.StringFixed(2),
			Date:        tx.Date.Format(DateLayout),
			Description: tx.Description,
		})
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(&records, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		logger.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	logger.Info("Saved operations to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	return nil
}
