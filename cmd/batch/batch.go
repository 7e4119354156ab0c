// Package batch handles manifest-driven conversion of multiple statements
package batch

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"dpetrov/vypiska-csv/cmd/root"
	"dpetrov/vypiska-csv/internal/classifier"
	"dpetrov/vypiska-csv/internal/extractor"
	"dpetrov/vypiska-csv/internal/fileutils"
	"dpetrov/vypiska-csv/internal/logging"
	"dpetrov/vypiska-csv/internal/pipeline"
)

// Job describes one statement conversion: which file, where to write the
// result, and which format classifier to use.
type Job struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Format string `yaml:"format"`
}

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Process statements listed in a YAML manifest",
	Long: `Process every statement listed in a YAML manifest of
{input, output, format} jobs. Missing input files are logged and skipped;
the command always exits zero once the manifest itself loads.`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	manifest := root.ManifestPath
	if manifest == "" && root.Cfg != nil {
		manifest = root.Cfg.Batch.Manifest
	}

	jobs, err := LoadManifest(manifest)
	if err != nil {
		root.Log.Errorf("Failed to load manifest %s: %v", manifest, err)
		return
	}

	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	p := pipeline.New(extractor.NewPdftotextExtractor(logger), logger)

	processed := 0
	for _, job := range jobs {
		if !fileutils.FileExists(job.Input) {
			root.Log.Errorf("File %s not found!", job.Input)
			continue
		}

		if err := p.ConvertToCSV(job.Input, job.Output, classifier.Format(job.Format)); err != nil {
			root.Log.Errorf("Error processing statement %s: %v", job.Input, err)
			continue
		}
		processed++
	}

	root.Log.Infof("Batch completed: %d of %d statements processed", processed, len(jobs))
}

// LoadManifest reads and validates the YAML job manifest.
func LoadManifest(path string) ([]Job, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- CLI tool reads user-provided manifest paths
	if err != nil {
		return nil, fmt.Errorf("error reading manifest: %w", err)
	}

	var jobs []Job
	if err := yaml.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("error parsing manifest: %w", err)
	}

	for i, job := range jobs {
		if job.Input == "" || job.Output == "" || job.Format == "" {
			return nil, fmt.Errorf("manifest entry %d is missing input, output or format", i)
		}
		if _, _, err := classifier.ConfigFor(classifier.Format(job.Format)); err != nil {
			return nil, fmt.Errorf("manifest entry %d: %w", i, err)
		}
	}

	return jobs, nil
}

func init() {
	Cmd.Flags().StringVarP(&root.ManifestPath, "manifest", "m", "", "YAML manifest of statements to process")
}
