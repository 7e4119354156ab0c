// Package process handles single statement conversion commands
package process

import (
	"github.com/spf13/cobra"

	"dpetrov/vypiska-csv/cmd/root"
	"dpetrov/vypiska-csv/internal/classifier"
	"dpetrov/vypiska-csv/internal/extractor"
	"dpetrov/vypiska-csv/internal/fileutils"
	"dpetrov/vypiska-csv/internal/logging"
	"dpetrov/vypiska-csv/internal/pipeline"
)

// Cmd represents the process command
var Cmd = &cobra.Command{
	Use:   "process",
	Short: "Process a single statement file",
	Long: `Process a single bank statement PDF and export the extracted
operations as CSV. Use --format to select the statement variant.`,
	Run: processFunc,
}

func processFunc(cmd *cobra.Command, args []string) {
	logger := logging.NewLogrusAdapterFromLogger(root.Log)

	input := root.SharedFlags.Input
	output := root.SharedFlags.Output
	format := classifier.Format(root.SharedFlags.Format)

	if input == "" || output == "" || format == "" {
		root.Log.Error("process requires --input, --output and --format")
		return
	}

	if _, _, err := classifier.ConfigFor(format); err != nil {
		root.Log.Errorf("Unknown format %q, supported formats: %v", format, classifier.Formats())
		return
	}

	if !fileutils.FileExists(input) {
		root.Log.Errorf("File %s not found!", input)
		return
	}

	p := pipeline.New(extractor.NewPdftotextExtractor(logger), logger)
	if err := p.ConvertToCSV(input, output, format); err != nil {
		// Document-level failures abort this file only; the process still
		// exits zero and callers inspect the log.
		root.Log.Errorf("Error processing statement: %v", err)
		return
	}
}
