package models

import (
	"errors"
	"testing"
)

func TestGeneratorError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *GeneratorError
		expected string
	}{
		{
			name: "with file",
			err: &GeneratorError{
				Type:    ErrorTypeInput,
				File:    "contentTypes.d.ts",
				Message: "schema file is empty",
			},
			expected: "contentTypes.d.ts: schema file is empty",
		},
		{
			name: "without file",
			err: &GeneratorError{
				Type:    ErrorTypeParse,
				Message: "unexpected parse failure",
			},
			expected: "unexpected parse failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestGeneratorError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &GeneratorError{
		Type:    ErrorTypeFileSystem,
		Message: "failed to write destination",
		Cause:   cause,
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is() should find the wrapped cause")
	}

	var generatorErr *GeneratorError
	if !errors.As(error(err), &generatorErr) {
		t.Error("errors.As() should match *GeneratorError")
	}
}

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeInput, "InputError"},
		{ErrorTypeParse, "ParseError"},
		{ErrorTypeFileSystem, "FileSystemError"},
		{ErrorType(99), "UnknownError"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.errorType.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}
