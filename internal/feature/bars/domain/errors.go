// Package domain defines domain-level errors for the bars feature.
package domain

import "fmt"

// InvalidDateError indicates that a request date string is malformed or names
// a non-existent calendar date. It is returned before any data access happens.
type InvalidDateError struct {
	Value string // The rejected input string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("Invalid date '%s'. Expected YYYY-MM-DD.", e.Value)
}

// SourceUnavailableError indicates that the backing dataset could not be
// located or opened at the configured path.
type SourceUnavailableError struct {
	Path string // Configured data source path
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("bar source unavailable at '%s'", e.Path)
}

// ColumnReadError indicates that a column required by the bars query is
// missing from the source or could not be read. The series query never
// returns this for indicator columns; those are skipped instead.
type ColumnReadError struct {
	Column string // Name of the missing or unreadable column
}

func (e *ColumnReadError) Error() string {
	return fmt.Sprintf("required column '%s' is missing or unreadable", e.Column)
}
