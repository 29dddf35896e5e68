// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-resume.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	// ErrWouldBlock means the operation cannot make progress without waiting
	// for readiness. It is control flow, not a failure.
	ErrWouldBlock = errors.New("operation would block")

	ErrCompleted       = errors.New("computation already completed")
	ErrClosed          = errors.New("computation closed")
	ErrConcurrentUse   = errors.New("computation used from two goroutines at once")
	ErrNotBlocked      = errors.New("computation is not blocked on a resource")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotSupported    = errors.New("operation not supported")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeNotSupported
	ErrCodeMisuse
	ErrCodeInternal
)

func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "ok"
	case ErrCodeInvalidArgument:
		return "invalid-argument"
	case ErrCodeNotSupported:
		return "not-supported"
	case ErrCodeMisuse:
		return "misuse"
	default:
		return "internal"
	}
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	if len(e.Context) == 0 {
		return msg
	}
	return fmt.Sprintf("%s (context: %+v)", msg, e.Context)
}

// Unwrap exposes the underlying sentinel for errors.Is.
func (e *Error) Unwrap() error { return e.Err }

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// Misuse builds a protocol-misuse error wrapping cause.
func Misuse(cause error) *Error {
	e := NewError(ErrCodeMisuse, "protocol misuse")
	e.Err = cause
	return e
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// IOError is returned by Runtime implementations for failed syscalls.
// WouldBlock marks EAGAIN/EWOULDBLOCK so that errors.Is(err, ErrWouldBlock)
// holds without this package knowing about errno values.
type IOError struct {
	Op         string
	Fd         Fd
	Err        error
	WouldBlock bool
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s fd=%d: %v", e.Op, e.Fd, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is matches ErrWouldBlock for would-block failures.
func (e *IOError) Is(target error) bool {
	return target == ErrWouldBlock && e.WouldBlock
}

// IsWouldBlock reports whether err carries the would-block semantic.
func IsWouldBlock(err error) bool { return errors.Is(err, ErrWouldBlock) }
