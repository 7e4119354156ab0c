// Package parsererror defines the typed errors shared by the statement
// processing pipeline and its collaborators.
package parsererror

import "fmt"

// ParseError represents an error during parsing of a single field or row.
type ParseError struct {
	Format string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Format, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an error where the input file does not conform
// to the expected statement format.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// DocumentError represents a document-level failure: a missing, empty or
// unreadable statement file. It aborts processing of that file only.
type DocumentError struct {
	FilePath string
	Reason   string
	Err      error
}

func (e *DocumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot process statement '%s': %s: %v", e.FilePath, e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot process statement '%s': %s", e.FilePath, e.Reason)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}
