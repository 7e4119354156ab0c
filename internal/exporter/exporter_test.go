package exporter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dpetrov/vypiska-csv/internal/logging"
	"dpetrov/vypiska-csv/internal/models"
)

func testTransaction(expense, desc string, date time.Time) models.Transaction {
	return models.NewTransaction(decimal.RequireFromString(expense), date, desc, decimal.Zero)
}

func TestWriteTransactionsToCSV(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "out", "statement.csv")
	transactions := []models.Transaction{
		testTransaction("150.00", "Продукты", time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)),
		testTransaction("99.90", "Кафе", time.Date(2024, time.March, 2, 11, 30, 0, 0, time.UTC)),
	}

	err := WriteTransactionsToCSV(transactions, csvFile, &logging.MockLogger{})
	require.NoError(t, err)

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	content := string(data)

	assert.True(t, strings.HasPrefix(content, "\ufeff"), "file must start with a UTF-8 BOM")

	lines := strings.Split(strings.TrimRight(strings.TrimPrefix(content, "\ufeff"), "\n"), "\n")
	require.Len(t, lines, 3, "header plus one line per transaction")
	assert.Equal(t, "Расход;Дата;Описание", lines[0])
	assert.Equal(t, "150.00;01.03.2024 10:00:00;Продукты", lines[1])
	assert.Equal(t, "99.90;02.03.2024 11:30:00;Кафе", lines[2])
}

func TestWriteTransactionsToCSVEmptyListWritesNoFile(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "statement.csv")
	logger := &logging.MockLogger{}

	err := WriteTransactionsToCSV(nil, csvFile, logger)
	require.NoError(t, err)

	_, statErr := os.Stat(csvFile)
	assert.True(t, os.IsNotExist(statErr), "no file must be written for an empty statement")

	warnings := logger.GetEntriesByLevel("WARN")
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0].Message, "No operations")
}

func TestWriteTransactionsToCSVCreatesDirectories(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "a", "b", "statement.csv")
	transactions := []models.Transaction{
		testTransaction("1.00", "x", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)),
	}

	err := WriteTransactionsToCSV(transactions, csvFile, &logging.MockLogger{})
	require.NoError(t, err)

	_, statErr := os.Stat(csvFile)
	assert.NoError(t, statErr)
}

func TestSetDateLayout(t *testing.T) {
	original := DateLayout
	defer SetDateLayout(original)

	SetDateLayout("2006-01-02")
	assert.Equal(t, "2006-01-02", DateLayout)

	// Empty layout is ignored.
	SetDateLayout("")
	assert.Equal(t, "2006-01-02", DateLayout)
}
