// Package errcode classifies fatal scaffolding failures and binds each
// class to its documented process exit code.
package errcode

import (
	"errors"
	"fmt"
)

// Kind is a class of fatal scaffolding failure.
type Kind int

const (
	// KindInternal is an unclassified failure.
	KindInternal Kind = iota
	// KindProjectExists is reported when the project directory already exists.
	KindProjectExists
	// KindNoMachines is reported when a project name is given without machine names.
	KindNoMachines
	// KindLayoutFailure is reported when a directory or file of the project
	// skeleton cannot be created.
	KindLayoutFailure
	// KindRepoInitFailure is reported when git repository initialization fails.
	KindRepoInitFailure
	// KindTemplateMissing is reported when a required template source is absent.
	KindTemplateMissing
	// KindRenderFailure is reported when template parsing or rendering fails.
	KindRenderFailure
)

// Process exit codes. 81 and 82 are kept for compatibility with earlier
// releases; the rest extend the table for failures that used to pass silently.
const (
	ExitCodeInternal        = 1
	ExitCodeProjectExists   = 81
	ExitCodeNoMachines      = 82
	ExitCodeLayoutFailure   = 83
	ExitCodeRepoInitFailure = 84
	ExitCodeTemplateMissing = 85
	ExitCodeRenderFailure   = 86
)

// ExitCode returns the process exit code documented for the kind.
func (k Kind) ExitCode() int {
	switch k {
	case KindProjectExists:
		return ExitCodeProjectExists
	case KindNoMachines:
		return ExitCodeNoMachines
	case KindLayoutFailure:
		return ExitCodeLayoutFailure
	case KindRepoInitFailure:
		return ExitCodeRepoInitFailure
	case KindTemplateMissing:
		return ExitCodeTemplateMissing
	case KindRenderFailure:
		return ExitCodeRenderFailure
	}
	return ExitCodeInternal
}

// String returns a short name of the kind.
func (k Kind) String() string {
	switch k {
	case KindProjectExists:
		return "project exists"
	case KindNoMachines:
		return "no machines"
	case KindLayoutFailure:
		return "layout failure"
	case KindRepoInitFailure:
		return "repository init failure"
	case KindTemplateMissing:
		return "template missing"
	case KindRenderFailure:
		return "render failure"
	}
	return "internal error"
}

// Error is an error tagged with a failure kind.
type Error struct {
	Kind Kind
	Err  error
}

// Error returns the message of the wrapped error.
func (e *Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind.
func New(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Wrap tags err with the given kind. Nil stays nil.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// ClassifyExitCode extracts the exit code from the error chain.
// Untagged errors map to ExitCodeInternal.
func ClassifyExitCode(err error) int {
	var kindErr *Error
	if errors.As(err, &kindErr) {
		return kindErr.Kind.ExitCode()
	}
	return ExitCodeInternal
}
