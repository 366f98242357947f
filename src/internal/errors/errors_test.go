package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "error without cause",
			err:      &Error{Code: ErrCodeConfig, Message: "invalid configuration"},
			expected: "[CONFIG_ERROR] invalid configuration",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeTransport, "failed to reach device", errors.New("connection refused")),
			expected: "[TRANSPORT_ERROR] failed to reach device: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "wrapper", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestError_Is(t *testing.T) {
	err1 := &Error{Code: ErrCodeAuth, Message: "test error"}
	err2 := &Error{Code: ErrCodeAuth, Message: "another error"}
	err3 := &Error{Code: ErrCodeAccess, Message: "access error"}

	if !err1.Is(err2) {
		t.Errorf("Expected errors with same code to match")
	}

	if err1.Is(err3) {
		t.Errorf("Expected errors with different codes to not match")
	}
}

func TestSentinels_MatchThroughWrapping(t *testing.T) {
	err := fmt.Errorf("query failed: %w", NewTimeoutError("device did not answer", errors.New("i/o timeout")))

	if !errors.Is(err, ErrTimeout) {
		t.Errorf("Expected wrapped timeout error to match ErrTimeout")
	}
	if errors.Is(err, ErrTransport) {
		t.Errorf("Expected timeout error not to match ErrTransport")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ErrCodeInternal},
		{"plain", errors.New("boom"), ErrCodeInternal},
		{"direct", NewAccessError("private", nil), ErrCodeAccess},
		{"wrapped", fmt.Errorf("ctx: %w", NewValidationError("bad key", nil)), ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewAuthError(t *testing.T) {
	cause := errors.New("probe returned empty hardware_version")
	err := NewAuthError("session authentication failed", cause)

	if err.Code != ErrCodeAuth {
		t.Errorf("Expected code %v, got %v", ErrCodeAuth, err.Code)
	}

	if err.Message != "session authentication failed" {
		t.Errorf("Expected message 'session authentication failed', got %v", err.Message)
	}

	if err.Cause != cause {
		t.Errorf("Expected cause to be preserved")
	}
}
