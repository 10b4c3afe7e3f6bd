// File: error.go
// Title: Core Error Implementation
// Description: Implements the main Error type with error codes, severity,
//              operation context, and details. Compatible with the standard
//              library error interface and errors.Is/As/Unwrap.
// Author: msto63
// Version: v0.1.0
// Created: 2025-07-12
// Modified: 2025-07-12

package error

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Error represents a structured error with code, severity, and context
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time
	operation string
	details   map[string]interface{}
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  DefaultSeverity(),
		timestamp: time.Now(),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap creates a new Error wrapping a cause; returns nil if cause is nil
func Wrap(cause error, message string) *Error {
	if cause == nil {
		return nil
	}
	e := New(message)
	e.cause = cause

	// Inherit code and severity from a wrapped structured error
	var inner *Error
	if errors.As(cause, &inner) {
		e.code = inner.code
		e.severity = inner.severity
	}
	return e
}

// Wrapf creates a new Error wrapping a cause with a formatted message
func Wrapf(cause error, format string, args ...interface{}) *Error {
	return Wrap(cause, fmt.Sprintf(format, args...))
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.message)
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target matches this error by code
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.code == t.code && e.code != CodeUnknown
	}
	return false
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// WithSeverity sets the severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithOperation records the operation that produced the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail attaches a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.details == nil {
		e.details = make(map[string]interface{})
	}
	e.details[key] = value
	return e
}

// Message returns the message without the cause chain
func (e *Error) Message() string {
	return e.message
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Operation returns the recorded operation
func (e *Error) Operation() string {
	return e.operation
}

// Timestamp returns when the error was created
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Detail returns the detail stored under key
func (e *Error) Detail(key string) (interface{}, bool) {
	v, ok := e.details[key]
	return v, ok
}

// GetCode extracts the code from any error; CodeUnknown for foreign errors
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return CodeUnknown
}

// HasCode reports whether err carries the given code anywhere in its chain
func HasCode(err error, code Code) bool {
	return GetCode(err) == code
}

// IsRetryable reports whether err is worth retrying based on its code
func IsRetryable(err error) bool {
	return GetCode(err).IsRetryable()
}
