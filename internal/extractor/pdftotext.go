package extractor

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"dpetrov/vypiska-csv/internal/logging"
	"dpetrov/vypiska-csv/internal/parsererror"
)

// cellSeparatorRe splits a layouted text line into cells on runs of two or
// more spaces, matching how pdftotext -layout renders table columns.
var cellSeparatorRe = regexp.MustCompile(`\s{2,}`)

// PdftotextExtractor extracts tables from PDF statements using the pdftotext
// command-line tool. Pages are split on form feeds, tables on blank lines and
// cells on column gaps. This is deliberately heuristic: the classifiers only
// need cell text, not geometry.
type PdftotextExtractor struct {
	logger logging.Logger
}

// NewPdftotextExtractor creates a production extractor.
// If logger is nil, the process-wide default logger is used.
func NewPdftotextExtractor(logger logging.Logger) *PdftotextExtractor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &PdftotextExtractor{logger: logger}
}

// Extract runs pdftotext on the statement file and splits the layouted text
// into pages, tables and rows.
func (e *PdftotextExtractor) Extract(path string) (Document, error) {
	text, err := extractTextFromPDF(path)
	if err != nil {
		e.logger.WithError(err).Error("Failed to extract text from PDF",
			logging.Field{Key: logging.FieldFile, Value: path})
		return Document{}, &parsererror.DocumentError{
			FilePath: path,
			Reason:   "text extraction failed",
			Err:      err,
		}
	}

	doc := splitIntoDocument(text)
	e.logger.Debug("Extracted document",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(doc.Pages)})
	return doc, nil
}

// extractTextFromPDF is a variable so tests can substitute the external tool.
var extractTextFromPDF = func(pdfFile string) (string, error) {
	tempFile := pdfFile + ".txt"

	cmd := exec.Command("pdftotext", "-layout", pdfFile, tempFile)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("error running pdftotext: %w", err)
	}

	output, err := os.ReadFile(tempFile) // #nosec G304 -- temp file derived from user-provided input path
	if err != nil {
		return "", fmt.Errorf("error reading extracted text: %w", err)
	}

	_ = os.Remove(tempFile)

	return string(output), nil
}

// splitIntoDocument converts layouted text into the Document model.
// Form feeds separate pages; within a page, blank lines separate tables and
// column gaps separate cells.
func splitIntoDocument(text string) Document {
	var doc Document
	for _, pageText := range strings.Split(text, "\f") {
		page := Page{}
		for _, block := range strings.Split(pageText, "\n\n") {
			table := splitIntoTable(block)
			if len(table) > 0 {
				page.Tables = append(page.Tables, table)
			}
		}
		if len(page.Tables) > 0 {
			doc.Pages = append(doc.Pages, page)
		}
	}
	return doc
}

func splitIntoTable(block string) Table {
	var table Table
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := cellSeparatorRe.Split(strings.TrimLeft(line, " \t"), -1)
		table = append(table, Row(cells))
	}
	return table
}
