// Package errors provides typed errors for paritygen operations.
// This enables callers to use errors.Is() and errors.As() for specific error handling.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
// Use errors.Is(err, errors.ErrInvalidLength) to check for specific errors.
var (
	// Codec errors
	ErrInvalidLength = errors.New("invalid length")
	ErrInvalidMode   = errors.New("invalid parity mode")

	// Input validation errors
	ErrNoInput    = errors.New("no input bytes specified")
	ErrInvalidHex = errors.New("invalid hex byte")

	// Operation errors
	ErrCancelled  = errors.New("operation cancelled")
	ErrFileExists = errors.New("file already exists")
)

// LengthError reports a buffer whose length is not a whole number of blocks.
// It always unwraps to ErrInvalidLength.
type LengthError struct {
	Op       string // "pack" or "unpack"
	Length   int    // Offending length
	Multiple int    // Required block size
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: length %d is not a multiple of %d", e.Op, e.Length, e.Multiple)
}

func (e *LengthError) Unwrap() error {
	return ErrInvalidLength
}

// NewLengthError creates a new LengthError.
func NewLengthError(op string, length, multiple int) *LengthError {
	return &LengthError{Op: op, Length: length, Multiple: multiple}
}

// FileError represents an error during file operations.
type FileError struct {
	Op   string // Operation: "open", "read", "write", "stat", "create"
	Path string // File path
	Err  error  // Underlying error
}

func (e *FileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s failed", e.Op, e.Path)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError creates a new FileError.
func NewFileError(op, path string, err error) *FileError {
	return &FileError{Op: op, Path: path, Err: err}
}

// ValidationError represents an input validation error.
type ValidationError struct {
	Field   string // Field or token that failed validation
	Message string // Human-readable error message
	Err     error  // Optional sentinel, e.g. ErrInvalidHex
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Is checks if target matches any of our sentinel errors.
// This is a convenience function for common error checks.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsInvalidLength checks if the error reports a buffer that is not a whole number of blocks.
func IsInvalidLength(err error) bool {
	return errors.Is(err, ErrInvalidLength)
}

// IsCancelled checks if the error indicates a cancelled operation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
