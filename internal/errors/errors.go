// Package errors provides the error model for fscmd.
//
// Most of the tool is fail-soft and never surfaces an error at all; the
// sync engine is the exception and reports failures as an *OpError
// carrying a coarse Kind so the CLI can print something actionable.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Error categories for fscmd operations.
var (
	ErrNotFound         = errors.New("path not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrIO               = errors.New("I/O error")
	ErrInvalidInput     = errors.New("invalid input")
)

// Kind is a coarse classification of an operation failure.
type Kind string

const (
	KindNotFound     Kind = "not-found"
	KindPermission   Kind = "permission-denied"
	KindIO           Kind = "io-error"
	KindInvalidInput Kind = "invalid-input"
)

// sentinel maps a Kind to its category error for errors.Is matching.
func (k Kind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindPermission:
		return ErrPermissionDenied
	case KindInvalidInput:
		return ErrInvalidInput
	default:
		return ErrIO
	}
}

// OpError describes a failed filesystem operation.
type OpError struct {
	Op   string
	Path string
	Kind Kind
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s %s: %s (%s)", e.Op, e.Path, e.Err, e.Kind)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func (e *OpError) Is(target error) bool {
	return errors.Is(target, e.Kind.sentinel())
}

// NewOpError wraps err with the operation and path that failed,
// classifying it into a Kind.
func NewOpError(op, path string, err error) *OpError {
	return &OpError{
		Op:   op,
		Path: path,
		Kind: Classify(err),
		Err:  err,
	}
}

// Classify maps an OS-level error onto a Kind.
func Classify(err error) Kind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	case errors.Is(err, fs.ErrInvalid):
		return KindInvalidInput
	default:
		return KindIO
	}
}

// IsNotFound checks if an error is a not-found failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsPermissionDenied checks if an error is a permission failure.
func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}
