// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages. The top-level command boundary uses the kind to decide
// between remediation guidance, a usage message, and a full diagnostic trace.
//
// The package supports wrapping underlying errors while maintaining error kind information,
// making it easier to handle different types of failures appropriately.
package errors

import "fmt"

// Kind is a machine-readable error category.
type Kind string

const (
	// ConnectionFailed indicates the provider socket could not be reached.
	ConnectionFailed Kind = "connection_failed"
	// UnsupportedAction indicates an action name outside the fixed catalog.
	UnsupportedAction Kind = "unsupported_action"
	// UnsupportedInput indicates a payload requirement that was not met.
	UnsupportedInput Kind = "unsupported_input"
	// IOFailed indicates a read or write failure in the middle of an exchange.
	IOFailed Kind = "io_failed"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying error so errors.Is/As can see through E.
func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }
