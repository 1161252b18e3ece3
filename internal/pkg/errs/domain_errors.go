package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Kind groups domain failures for callers that only care about the category
// (HTTP status mapping, log levels).
type Kind string

const (
	KindUnknown    Kind = "UNKNOWN"
	KindValidation Kind = "VALIDATION"
	KindNotFound   Kind = "NOT_FOUND"
	KindConflict   Kind = "CONFLICT"
	KindNoOp       Kind = "NO_OP"
)

// Kind markers. Condition-level sentinels are marked with exactly one of these.
var (
	ErrValidation = cr.New("validation error")
	ErrNotFound   = cr.New("not found")
	ErrConflict   = cr.New("conflict")
	ErrNoOp       = cr.New("value unchanged")
)

func Validation(msg string) error { return cr.Mark(cr.New(msg), ErrValidation) }
func NotFound(msg string) error   { return cr.Mark(cr.New(msg), ErrNotFound) }
func Conflict(msg string) error   { return cr.Mark(cr.New(msg), ErrConflict) }
func NoOp(msg string) error       { return cr.Mark(cr.New(msg), ErrNoOp) }

func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case cr.Is(err, ErrValidation):
		return KindValidation
	case cr.Is(err, ErrNotFound):
		return KindNotFound
	case cr.Is(err, ErrConflict):
		return KindConflict
	case cr.Is(err, ErrNoOp):
		return KindNoOp
	default:
		return KindUnknown
	}
}
