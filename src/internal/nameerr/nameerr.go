// Package nameerr defines the error taxonomy shared by every layer that builds
// or formats a name: input (shape/arity), validation (content), not-allowed
// (refused operation) and unknown (anything foreign caught at a bridge).
package nameerr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies one branch of the taxonomy.
type Kind string

const (
	KindInput      Kind = "InputError"
	KindValidation Kind = "ValidationError"
	KindNotAllowed Kind = "NotAllowedError"
	KindUnknown    Kind = "UnknownError"
)

// Sentinels matched with errors.Is.
var (
	ErrInput      = errors.New("nameerr: input error")
	ErrValidation = errors.New("nameerr: validation error")
	ErrNotAllowed = errors.New("nameerr: operation not allowed")
	ErrUnknown    = errors.New("nameerr: unknown error")
)

// Error carries the offending source value and a readable message. NameType is
// set for validation failures, Operation for refused operations.
type Error struct {
	Kind      Kind
	Source    string
	Message   string
	NameType  string
	Operation string
	cause     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Source != "" {
		fmt.Fprintf(&b, " (%s)", e.Source)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.NameType != "" {
		fmt.Fprintf(&b, "; nameType=%s", e.NameType)
	}
	if e.Operation != "" {
		fmt.Fprintf(&b, "; operation=%s", e.Operation)
	}
	if e.cause != nil {
		fmt.Fprintf(&b, "; origin: %v", e.cause)
	}
	return b.String()
}

// Unwrap exposes the kind sentinel and, when present, the original cause.
func (e *Error) Unwrap() []error {
	out := []error{sentinel(e.Kind)}
	if e.cause != nil {
		out = append(out, e.cause)
	}
	return out
}

// Cause returns the wrapped foreign error, if any.
func (e *Error) Cause() error { return e.cause }

func sentinel(k Kind) error {
	switch k {
	case KindInput:
		return ErrInput
	case KindValidation:
		return ErrValidation
	case KindNotAllowed:
		return ErrNotAllowed
	default:
		return ErrUnknown
	}
}

// Input reports a malformed shape, arity or missing role.
func Input(source, message string) *Error {
	return &Error{Kind: KindInput, Source: source, Message: message}
}

// Validation reports content rejected by a role validator.
func Validation(source, nameType, message string) *Error {
	return &Error{Kind: KindValidation, Source: source, NameType: nameType, Message: message}
}

// NotAllowed reports a refused operation, e.g. an unsupported format character.
func NotAllowed(source, operation, message string) *Error {
	return &Error{Kind: KindNotAllowed, Source: source, Operation: operation, Message: message}
}

// Unknown wraps a foreign error caught while bridging layers.
func Unknown(source, message string, cause error) *Error {
	return &Error{Kind: KindUnknown, Source: source, Message: message, cause: cause}
}

// IsNameError reports whether err belongs to the taxonomy.
func IsNameError(err error) bool {
	var ne *Error
	return errors.As(err, &ne)
}

// Wrap passes taxonomy errors through unchanged and turns anything else into
// an unknown error. A nil err stays nil.
func Wrap(err error, source, message string) error {
	if err == nil {
		return nil
	}
	if IsNameError(err) {
		return err
	}
	return Unknown(source, message, err)
}
