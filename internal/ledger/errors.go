package ledger

import (
	"errors"
	"fmt"
)

// ErrStoreMissing is returned by ReadAll when the transactions file does not exist.
var ErrStoreMissing = errors.New("transactions file does not exist")

var errBadHeader = errors.New("unexpected header")

// IOError reports a store file that could not be opened, read or written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports a stored row that does not fit the schema.
type ParseError struct {
	Row    int // 1-based line in the file, header is row 1
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Column != "":
		return fmt.Sprintf("row %d: parsing %s %q: %v", e.Row, e.Column, e.Value, e.Err)
	default:
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }
