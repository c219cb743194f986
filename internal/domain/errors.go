package domain

import (
	"errors"
	"fmt"
)

// Kind classifies engine failures.
type Kind string

const (
	KindInputTooShort        Kind = "INPUT_TOO_SHORT"
	KindInputTooLong         Kind = "INPUT_TOO_LONG"
	KindEmptyDocument        Kind = "EMPTY_DOCUMENT"
	KindInvalidMode          Kind = "INVALID_MODE"
	KindInvalidSentenceCount Kind = "INVALID_SENTENCE_COUNT"
	KindResourceUnavailable  Kind = "RESOURCE_UNAVAILABLE"
)

// Error is a structured engine failure carrying its kind and a readable reason.
type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Kind, e.Reason)
}

// Is matches any *Error of the same kind, so callers can write
// errors.Is(err, &domain.Error{Kind: domain.KindEmptyDocument}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Errorf builds an *Error with a formatted reason.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
