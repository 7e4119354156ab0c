// Package extractor defines the table-extraction collaborator contract: a
// statement document is a sequence of pages, each page yields tables, each
// table is rows of nullable text cells. The pipeline never inspects layout or
// geometry, only the resulting cell text.
package extractor

// Row is an ordered sequence of text cells. A nil or missing cell is
// represented as an empty string; positional meaning differs per statement
// format.
type Row []string

// Cell returns the cell at index i, or an empty string when the row is too
// short. Negative indexes count from the end, so Cell(-1) is the last cell.
func (r Row) Cell(i int) string {
	if i < 0 {
		i += len(r)
	}
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Table is a sequence of rows detected on one page.
type Table []Row

// Page holds the tables detected on a single document page.
type Page struct {
	Tables []Table
}

// Document is the extracted content of one statement file.
type Document struct {
	Pages []Page
}

// Extractor converts a statement file into a Document.
// Implementations own the file I/O and table detection; extraction failures
// are document-level errors that abort that file only.
type Extractor interface {
	Extract(path string) (Document, error)
}
