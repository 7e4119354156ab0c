// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"dpetrov/vypiska-csv/internal/config"
	"dpetrov/vypiska-csv/internal/currencyutils"
	"dpetrov/vypiska-csv/internal/exporter"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Format string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "vypiska-csv",
		Short: "A CLI tool to extract expense operations from bank statement PDFs into CSV.",
		Long: `vypiska-csv extracts expense operations from bank statement PDFs
(Ozon credit card, VTB credit and debit statements) and exports them as
semicolon-delimited CSV files.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to vypiska-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Warnf("Failed to load configuration, using defaults: %v", err)
				return
			}
			Cfg = cfg

			currencyutils.SetLogger(Log)
			exporter.SetDelimiter(cfg.DelimiterRune())
			exporter.SetDateLayout(cfg.CSV.DateFormat)
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// ManifestPath is the batch command manifest file
	ManifestPath string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input statement file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Statement format")
}
