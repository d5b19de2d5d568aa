// core/dotbracket/errors.go
package dotbracket

import (
	"errors"
	"fmt"
)

var (
	ErrIncompleteTrace = errors.New("incomplete helix trace")
	ErrInvalidPairMap  = errors.New("invalid pair map")
	ErrNegativeBulge   = errors.New("bulge must be >= 0")
)

// UnmatchedClosingError reports a closing symbol with nothing left to close.
type UnmatchedClosingError struct {
	Pos    int
	Symbol byte
}

func (e *UnmatchedClosingError) Error() string {
	return fmt.Sprintf("no matching opening bracket for %q at position %d", e.Symbol, e.Pos)
}

// UnmatchedOpeningError reports an opening symbol still open at the end of the structure.
type UnmatchedOpeningError struct {
	Pos    int
	Symbol byte
}

func (e *UnmatchedOpeningError) Error() string {
	return fmt.Sprintf("no matching closing bracket for %q at position %d", e.Symbol, e.Pos)
}

// IncompleteTraceError is returned when a helix extension runs into the
// last position of the structure before it could be resolved.
type IncompleteTraceError struct {
	Pos int
}

func (e *IncompleteTraceError) Error() string {
	return fmt.Sprintf("%v: extension reached end of structure at position %d", ErrIncompleteTrace, e.Pos)
}

func (e *IncompleteTraceError) Unwrap() error { return ErrIncompleteTrace }
