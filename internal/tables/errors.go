package tables

import "fmt"

// ColumnError reports a required header missing from a reference file.
type ColumnError struct {
	File   string
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%s: missing required column %q", e.File, e.Column)
}

// RowError reports a cell that could not be parsed. Row is 1-based and counts the header.
type RowError struct {
	File   string
	Row    int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s: row %d column %q: %v", e.File, e.Row, e.Column, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
