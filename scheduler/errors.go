package scheduler

import (
	"errors"
	"fmt"
)

// Kind classifies an engine error so the boundary layer can map it to a
// response without string matching.
type Kind int

const (
	// KindValidation marks malformed, missing or out-of-range input; the
	// message is safe to surface verbatim.
	KindValidation Kind = iota + 1
	// KindNotFound marks an unknown service, staff member, holiday or
	// appointment.
	KindNotFound
	// KindConflict marks a slot that is no longer available, a duplicate
	// booking or a held slot lock. Conflict errors are retryable by the
	// caller; the engine never retries them itself.
	KindConflict
	// KindState marks an illegal status transition or a time guard
	// violation on a status change.
	KindState
)

// Error is the engine's error type. Repository failures are passed through
// untouched and carry no Kind.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newValidation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func newNotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func newConflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func newState(format string, args ...any) *Error {
	return &Error{Kind: KindState, Message: fmt.Sprintf(format, args...)}
}

// ErrorKind returns the Kind of err, or 0 when err is not an engine error.
func ErrorKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsRetryable reports whether the caller may retry the failed operation.
func IsRetryable(err error) bool {
	return ErrorKind(err) == KindConflict
}
