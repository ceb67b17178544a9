// Package mmbench structured error types for argument and allocation failures
package mmbench

import (
	"errors"
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Wrong number of positional arguments
	ErrTypeUsage ErrorType = iota
	// Invalid argument errors
	ErrTypeInvalidArg
	// Memory errors
	ErrTypeMemory
)

// BenchError represents a structured error with context
type BenchError struct {
	Type    ErrorType
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error if any
}

// Error implements the error interface
func (e *BenchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *BenchError) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeUsage:
		return "Usage"
	case ErrTypeInvalidArg:
		return "InvalidArgument"
	case ErrTypeMemory:
		return "Memory"
	default:
		return "Unknown"
	}
}

// NewUsageError creates an argument-count error
func NewUsageError(op string, message string) error {
	return &BenchError{
		Type:    ErrTypeUsage,
		Op:      op,
		Message: message,
	}
}

// NewInvalidArgError creates an invalid argument error
func NewInvalidArgError(op string, message string) error {
	return &BenchError{
		Type:    ErrTypeInvalidArg,
		Op:      op,
		Message: message,
	}
}

// NewMemoryError creates a memory-related error
func NewMemoryError(op string, message string, err error) error {
	return &BenchError{
		Type:    ErrTypeMemory,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

var (
	// ErrInvalidSize indicates a matrix size outside [1, MaxSize]
	ErrInvalidSize = NewInvalidArgError("CheckSize", "n must be between 1 and 4096")

	// ErrUnknownKernel indicates a kernel name other than ijk or kij
	ErrUnknownKernel = NewInvalidArgError("LookupKernel", "kernel must be 'ijk' or 'kij'")
)

func isType(err error, t ErrorType) bool {
	var e *BenchError
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// IsUsageError checks if an error is an argument-count error
func IsUsageError(err error) bool {
	return isType(err, ErrTypeUsage)
}

// IsInvalidArgError checks if an error is an invalid argument error
func IsInvalidArgError(err error) bool {
	return isType(err, ErrTypeInvalidArg)
}

// IsMemoryError checks if an error is a memory error
func IsMemoryError(err error) bool {
	return isType(err, ErrTypeMemory)
}
