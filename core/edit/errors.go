// core/edit/errors.go
package edit

import (
	"errors"
	"fmt"

	"seqedit/core/dna"
)

// Sentinel errors for rejected edits. None of them are transient.
var (
	// ErrOutOfRange is returned when a coordinate falls outside the sequence.
	ErrOutOfRange = errors.New("position out of range")

	// ErrCoordinateOrder is returned when start > end or backstart > breakpoint.
	ErrCoordinateOrder = errors.New("coordinates out of order")

	// ErrInvalidBases is returned when inserted bases fall outside A/C/G/T/N.
	ErrInvalidBases = dna.ErrInvalidBases

	// ErrInvalidGenomeEnd is returned when a copyback end is neither 5' nor 3'.
	ErrInvalidGenomeEnd = errors.New("gend must be either 5 or 3")

	// ErrUnknownOperation is returned for an Operation the engine cannot dispatch.
	ErrUnknownOperation = errors.New("unknown operation")
)

// RangeError identifies the coordinate that did not fit the sequence.
type RangeError struct {
	Field  string // e.g. "end position", "breakpoint"
	Value  int
	Length int
}

func (e *RangeError) Error() string {
	if e.Value < 1 {
		return fmt.Sprintf("%s %d is not 1-based (positions start at 1)", e.Field, e.Value)
	}
	return fmt.Sprintf("%s %d is beyond sequence length %d", e.Field, e.Value, e.Length)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }
