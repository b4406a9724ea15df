package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "missing column %q", "weight")

	if err.Code != ErrCodeInvalidFormat {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidFormat)
	}

	if err.Message != `missing column "weight"` {
		t.Errorf("Message = %v, want %v", err.Message, `missing column "weight"`)
	}

	expected := `INVALID_FORMAT: missing column "weight"`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrCodeFilesystem, cause, "create viz")

	if err.Code != ErrCodeFilesystem {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeFilesystem)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeEmptyGraph, "no edges"),
			code:     ErrCodeEmptyGraph,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeEmptyGraph, "no edges"),
			code:     ErrCodeNoConvergence,
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeEmptyGraph,
			expected: false,
		},
		{
			name:     "wrapped coded error",
			err:      fmt.Errorf("analyze: %w", New(ErrCodeNoConvergence, "budget exhausted")),
			code:     ErrCodeNoConvergence,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInternal, "mismatch")); got != ErrCodeInternal {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeInternal)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode() = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "missing column")
	if got := UserMessage(err); got != "missing column" {
		t.Errorf("UserMessage() = %v, want %v", got, "missing column")
	}
	plain := errors.New("plain message")
	if got := UserMessage(plain); got != "plain message" {
		t.Errorf("UserMessage() = %v, want %v", got, "plain message")
	}
}
