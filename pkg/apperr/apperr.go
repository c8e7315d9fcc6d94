// Package apperr is the domain error taxonomy. Controllers map these to
// HTTP statuses; anything outside the taxonomy is reported as an internal
// error without leaking driver details to the client.
package apperr

import "fmt"

type Kind int

const (
	KindInternal   Kind = iota // unclassified -> 500
	KindValidation             // malformed/missing input -> 400
	KindForbidden              // role hierarchy / protected identity -> 403
	KindNotFound               // missing user/review/restaurant -> 404
	KindConflict               // duplicate vote, duplicate email -> 409
	KindBlocked                // login against a blocked account -> 403 + reason
)

type Error struct {
	Kind    Kind
	Message string
	Details string
	// Reason is set only for KindBlocked and carries the stored block
	// reason verbatim.
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func AccountBlocked(reason string) *Error {
	return &Error{Kind: KindBlocked, Message: "account is blocked", Reason: reason}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// KindOf classifies any error; non-taxonomy errors count as internal.
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindInternal
}
