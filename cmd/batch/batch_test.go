package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statements.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, `
- input: о1.pdf
  output: о1.csv
  format: ozon-credit
- input: д1.pdf
  output: д1.csv
  format: vtb-debit
`)

	jobs, err := LoadManifest(path)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "о1.pdf", jobs[0].Input)
	assert.Equal(t, "о1.csv", jobs[0].Output)
	assert.Equal(t, "ozon-credit", jobs[0].Format)
	assert.Equal(t, "vtb-debit", jobs[1].Format)
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "нет.yaml"))
	assert.Error(t, err)
}

func TestLoadManifestInvalidYAML(t *testing.T) {
	path := writeManifest(t, "{не yaml список")
	_, err := LoadManifest(path)
	assert.Error(t, err)
}

func TestLoadManifestIncompleteEntry(t *testing.T) {
	path := writeManifest(t, `
- input: о1.pdf
  format: ozon-credit
`)
	_, err := LoadManifest(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing input, output or format")
}

func TestLoadManifestUnknownFormat(t *testing.T) {
	path := writeManifest(t, `
- input: о1.pdf
  output: о1.csv
  format: sberbank
`)
	_, err := LoadManifest(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown statement format")
}
