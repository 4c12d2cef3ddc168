package apperr

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failure categories the gateway reports.
type Kind int

const (
	Validation Kind = iota
	UpstreamFailure
	AuthenticityMismatch
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case UpstreamFailure:
		return "upstream_failure"
	case AuthenticityMismatch:
		return "authenticity_mismatch"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind   Kind
	Detail string
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func Wrap(kind Kind, detail string, cause error) *Error {
	return &Error{Kind: kind, Detail: detail, Cause: cause}
}

// KindOf extracts the failure kind from err. Errors that did not originate
// from this package are reported as UpstreamFailure.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return UpstreamFailure
}

// Detail returns the human-readable detail carried by err, falling back to
// the error text itself.
func Detail(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Detail, e.Cause)
		}
		return e.Detail
	}
	return err.Error()
}
