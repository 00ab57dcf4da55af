package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound is returned when the schools source does not exist.
	ErrSourceNotFound = errors.New("schools source not found")
	// ErrEmptySource is returned when the schools source has no header row.
	ErrEmptySource = errors.New("schools source is empty")
)

// MissingColumnError reports a required catalog column absent from the header.
type MissingColumnError struct {
	Path   string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: missing required column %q", e.Path, e.Column)
}

// ParseError reports a catalog field that could not be parsed.
// Row is 1-based and counts the header as row 1.
type ParseError struct {
	Path   string
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: row %d: column %q: cannot parse %q: %v", e.Path, e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// WriteError reports a destination that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
