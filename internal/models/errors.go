package models

import "fmt"

// ErrorType represents different types of generator errors
type ErrorType int

const (
	ErrorTypeInput ErrorType = iota
	ErrorTypeParse
	ErrorTypeFileSystem
)

// String returns the string representation of the error type
func (t ErrorType) String() string {
	switch t {
	case ErrorTypeInput:
		return "InputError"
	case ErrorTypeParse:
		return "ParseError"
	case ErrorTypeFileSystem:
		return "FileSystemError"
	default:
		return "UnknownError"
	}
}

// GeneratorError represents an error that occurred during type generation
type GeneratorError struct {
	Type    ErrorType // type of error
	File    string    // file involved, when known
	Message string    // error message
	Cause   error     // underlying error cause
}

// Error implements the error interface
func (e *GeneratorError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error cause
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}
