// internal/appcore/exit.go
package appcore

import (
	"context"
	"errors"

	"seqedit/core/edit"
	"seqedit/core/fasta"
	"seqedit/internal/batch"
	"seqedit/internal/writers"
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitEditFailed  = 1 // edit rejected, or at least one batch job failed
	ExitUsage       = 2 // bad arguments, config, manifest or input format
	ExitIO          = 3
	ExitInterrupted = 130
)

// UsageError marks errors caused by how the tool was invoked.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// Usage wraps err as a UsageError (nil stays nil).
func Usage(err error) error {
	if err == nil {
		return nil
	}
	return &UsageError{Err: err}
}

// IsUsage reports whether err is a UsageError.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

var editErrors = []error{
	edit.ErrOutOfRange, edit.ErrCoordinateOrder, edit.ErrInvalidBases,
	edit.ErrInvalidGenomeEnd, edit.ErrUnknownOperation, batch.ErrJobsFailed,
}

var inputErrors = []error{
	fasta.ErrEmptyInput, fasta.ErrNoHeader, fasta.ErrMultipleRecords,
	fasta.ErrEmptySequence, batch.ErrManifest,
}

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil, writers.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case IsUsage(err):
		return ExitUsage
	}
	for _, target := range inputErrors {
		if errors.Is(err, target) {
			return ExitUsage
		}
	}
	for _, target := range editErrors {
		if errors.Is(err, target) {
			return ExitEditFailed
		}
	}
	return ExitIO
}
