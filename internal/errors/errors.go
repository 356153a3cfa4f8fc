// Package errors wraps the stdlib errors helpers and pkg/errors behind a
// single import so call sites get stack traces by default.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error with a stack trace recorded at the call site.
func New(text string) error {
	return pkgerrors.New(text)
}

// Errorf formats according to a format specifier and records a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap annotates err with a stack trace and message. It returns nil when err is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

func WithMessage(err error, message string) error {
	return pkgerrors.WithMessage(err, message)
}

func WithMessagef(err error, format string, args ...any) error {
	return pkgerrors.WithMessagef(err, format, args...)
}

// Cause returns the innermost error of a pkg/errors chain.
func Cause(err error) error {
	return pkgerrors.Cause(err) //nolint:wrapcheck
}

// FromPanic converts a recovered panic value into an error with a stack trace.
// Errors passed to panic keep their identity for Is and As.
func FromPanic(recovered any) error {
	if err, ok := recovered.(error); ok {
		return pkgerrors.WithStack(fmt.Errorf("panic: %w", err))
	}

	return pkgerrors.Errorf("panic: %v", recovered)
}
