// Package mcerr implements mcx4's error taxonomy: a set of error
// *kinds*, grouped into two families, rather than a distinct Go type
// per exception (the taxonomy is a classification scheme, not a type
// hierarchy, per spec.md §6).
package mcerr

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind int

const (
	// Port family.

	Port Kind = iota
	PortSelfLink
	PortCompat
	Register

	// Run family.

	Run
	Label
	Command
)

func (k Kind) String() string {
	switch k {
	case Port:
		return "Port"
	case PortSelfLink:
		return "PortSelfLink"
	case PortCompat:
		return "PortCompat"
	case Register:
		return "Register"
	case Run:
		return "Run"
	case Label:
		return "Label"
	case Command:
		return "Command"
	default:
		return "Unknown"
	}
}

// Family groups related Kinds, mirroring the original exception
// hierarchy's two base classes.
type Family int

const (
	// PortFamily covers Port, PortSelfLink, PortCompat, and Register.
	PortFamily Family = iota
	// RunFamily covers Run, Label, and Command.
	RunFamily
)

func (k Kind) Family() Family {
	switch k {
	case Port, PortSelfLink, PortCompat, Register:
		return PortFamily
	default:
		return RunFamily
	}
}

// Error is mcx4's single error type; Kind says which of the taxonomy's
// kinds produced it.
type Error struct {
	Kind Kind
	msg  string
	err  error // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

// Unwrap supports errors.Is/errors.As against a wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error of the same Kind, so callers
// can do errors.Is(err, mcerr.New(mcerr.Label, "")) ... though the
// idiomatic check is Is(err, kind) below.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New constructs an Error of the given Kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap constructs an Error of the given Kind, wrapping cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...), err: cause}
}

// Is reports whether err is an mcx4 Error of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
