package stockavg

import (
	"errors"
	"fmt"
	"strings"
)

// Failures reported to the user. None of them is fatal: each is fixed by
// correcting the input and trying again.
var (
	ErrMissingLabel       = errors.New("stock name is required")
	ErrInvalidEntry       = errors.New("all quantities and prices must be greater than zero")
	ErrCannotRemove       = errors.New("at least two purchases are required")
	ErrInvalidEmailFormat = errors.New("invalid email address")
	ErrExportFailure      = errors.New("export failed")

	// ErrInvariant is an internal fault, it cannot be caused by user input.
	ErrInvariant = errors.New("internal invariant violated")
)

// Kind tags a failure for callers that do not deal with Go errors.
type Kind string

const (
	KindNone               Kind = ""
	KindMissingLabel       Kind = "MissingLabel"
	KindInvalidEntry       Kind = "InvalidEntry"
	KindCannotRemove       Kind = "CannotRemove"
	KindInvalidEmailFormat Kind = "InvalidEmailFormat"
	KindExportFailure      Kind = "ExportFailure"
	KindInvariant          Kind = "Invariant"
)

// KindOf returns the Kind of err. Unknown errors are reported as export failures,
// the only kind caused by collaborators.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrMissingLabel):
		return KindMissingLabel
	case errors.Is(err, ErrInvalidEntry):
		return KindInvalidEntry
	case errors.Is(err, ErrCannotRemove):
		return KindCannotRemove
	case errors.Is(err, ErrInvalidEmailFormat):
		return KindInvalidEmailFormat
	case errors.Is(err, ErrInvariant):
		return KindInvariant
	default:
		return KindExportFailure
	}
}

// Failure is the serializable form of an error, {"kind": "InvalidEntry"}.
type Failure struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message,omitempty"`
}

// NewFailure returns the Failure describing err.
func NewFailure(err error) Failure {
	return Failure{Kind: KindOf(err), Message: err.Error()}
}

// InvalidEntryError lists every incomplete purchase by its 1-based position.
// It matches ErrInvalidEntry with errors.Is.
type InvalidEntryError struct {
	Positions []int
}

func (e *InvalidEntryError) Error() string {
	pos := make([]string, len(e.Positions))
	for i, p := range e.Positions {
		pos[i] = fmt.Sprintf("%d", p)
	}
	return fmt.Sprintf("%v (purchase %s)", ErrInvalidEntry, strings.Join(pos, ", "))
}

func (e *InvalidEntryError) Is(target error) bool { return target == ErrInvalidEntry }
