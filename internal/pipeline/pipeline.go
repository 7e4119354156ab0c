// Package pipeline orchestrates statement processing: it walks the tables
// yielded by the extractor, filters candidate rows, dispatches them to the
// format classifier, and collects the sorted result.
package pipeline

import (
	"sort"

	"dpetrov/vypiska-csv/internal/classifier"
	"dpetrov/vypiska-csv/internal/dateutils"
	"dpetrov/vypiska-csv/internal/exporter"
	"dpetrov/vypiska-csv/internal/extractor"
	"dpetrov/vypiska-csv/internal/fileutils"
	"dpetrov/vypiska-csv/internal/logging"
	"dpetrov/vypiska-csv/internal/models"
	"dpetrov/vypiska-csv/internal/parsererror"
)

// Report is the structured outcome of processing one statement. Partial
// failure stays observable to callers instead of only being logged: every
// skipped candidate is counted by reason.
type Report struct {
	// Transactions is the classified result, sorted by date ascending.
	// The sort is stable; ties keep original row-encounter order.
	Transactions []models.Transaction

	// Tables is the number of tables whose data region was scanned.
	Tables int

	// Candidates is the number of rows that passed the date-pattern sniff.
	Candidates int

	// Skipped counts candidate rows that produced no transaction, by reason.
	Skipped map[classifier.SkipReason]int
}

// Empty reports whether the statement yielded no operations.
func (r Report) Empty() bool {
	return len(r.Transactions) == 0
}

// SkippedTotal returns the total number of skipped candidate rows.
func (r Report) SkippedTotal() int {
	total := 0
	for _, n := range r.Skipped {
		total += n
	}
	return total
}

// Pipeline processes statement files with an injected table extractor.
// One statement is processed start-to-finish before the next; each run owns
// its own transaction list, so independent files may be processed by
// independent pipelines concurrently.
type Pipeline struct {
	extractor extractor.Extractor
	logger    logging.Logger
}

// New creates a pipeline. If logger is nil, the process-wide default logger
// is used.
func New(ext extractor.Extractor, logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Pipeline{
		extractor: ext,
		logger:    logger,
	}
}

// Process extracts and classifies one statement file.
// Document-level failures (missing file, empty file, extraction failure) are
// returned as errors and abort this file only; row-level failures are
// recovered, counted and never abort the statement.
func (p *Pipeline) Process(path string, format classifier.Format) (Report, error) {
	cfg, scanner, err := classifier.ConfigFor(format)
	if err != nil {
		return Report{}, err
	}

	if !fileutils.FileExists(path) {
		return Report{}, &parsererror.DocumentError{FilePath: path, Reason: "file not found"}
	}
	if fileutils.FileIsEmpty(path) {
		return Report{}, &parsererror.DocumentError{FilePath: path, Reason: "file is empty"}
	}

	p.logger.Info("Processing statement",
		logging.Field{Key: logging.FieldInputFile, Value: path},
		logging.Field{Key: logging.FieldFormat, Value: string(format)})

	doc, err := p.extractor.Extract(path)
	if err != nil {
		return Report{}, err
	}

	report := p.ProcessDocument(doc, cfg, scanner)

	if report.Empty() {
		p.logger.Warn("No operations found in statement",
			logging.Field{Key: logging.FieldInputFile, Value: path})
	} else {
		p.logger.Info("Extracted operations from statement",
			logging.Field{Key: logging.FieldInputFile, Value: path},
			logging.Field{Key: logging.FieldCount, Value: len(report.Transactions)})
	}

	return report, nil
}

// ProcessDocument classifies all tables of an already-extracted document.
func (p *Pipeline) ProcessDocument(doc extractor.Document, cfg classifier.Config, scanner classifier.TableScanner) Report {
	report := Report{
		Skipped: make(map[classifier.SkipReason]int),
	}

	for pageIdx, page := range doc.Pages {
		for tableIdx, table := range page.Tables {
			rows, tableCfg, ok := scanner.Scan(table, cfg)
			if !ok {
				p.logger.Debug("Skipping table without a recognizable header",
					logging.Field{Key: logging.FieldPage, Value: pageIdx},
					logging.Field{Key: logging.FieldTable, Value: tableIdx})
				continue
			}
			report.Tables++

			cls := classifier.NewClassifier(tableCfg, p.logger)
			p.classifyRows(rows, cls, &report)
		}
	}

	// Stable sort keeps encounter order for operations sharing a timestamp.
	sort.SliceStable(report.Transactions, func(i, j int) bool {
		return report.Transactions[i].Date.Before(report.Transactions[j].Date)
	})

	return report
}

func (p *Pipeline) classifyRows(rows []extractor.Row, cls *classifier.Classifier, report *Report) {
	for _, row := range rows {
		if len(row) == 0 || !dateutils.HasDatePrefix(row.Cell(0)) {
			continue
		}
		report.Candidates++

		tx, reason := cls.Classify(row)
		if reason == classifier.SkipNone {
			report.Transactions = append(report.Transactions, tx)
			continue
		}

		report.Skipped[reason]++
		if reason.Malformed() {
			p.logger.Error("Failed to classify row",
				logging.Field{Key: logging.FieldReason, Value: string(reason)},
				logging.Field{Key: logging.FieldRow, Value: row})
		} else {
			p.logger.Debug("Filtered row",
				logging.Field{Key: logging.FieldReason, Value: string(reason)},
				logging.Field{Key: logging.FieldRow, Value: row})
		}
	}
}

// ValidateFormat reports whether the file looks like a statement of the given
// format: at least one table must expose a data region the format's scanner
// recognizes. For fixed-column formats any table qualifies, so only the
// header-sniffed formats can reject a file here.
func (p *Pipeline) ValidateFormat(path string, format classifier.Format) (bool, error) {
	cfg, scanner, err := classifier.ConfigFor(format)
	if err != nil {
		return false, err
	}

	if !fileutils.FileExists(path) {
		return false, &parsererror.DocumentError{FilePath: path, Reason: "file not found"}
	}

	doc, err := p.extractor.Extract(path)
	if err != nil {
		return false, err
	}

	for _, page := range doc.Pages {
		for _, table := range page.Tables {
			if _, _, ok := scanner.Scan(table, cfg); ok {
				return true, nil
			}
		}
	}
	return false, nil
}

// ConvertToCSV processes one statement file and writes the result to a CSV
// file. This is a convenience wrapper combining Process and the export sink;
// an empty result writes no file and is not an error.
func (p *Pipeline) ConvertToCSV(inputFile, outputFile string, format classifier.Format) error {
	report, err := p.Process(inputFile, format)
	if err != nil {
		return err
	}

	return exporter.WriteTransactionsToCSV(report.Transactions, outputFile, p.logger)
}
