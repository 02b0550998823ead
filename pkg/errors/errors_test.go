package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnknownKind, "unknown object kind: %q", "blob")

	if err.Code != ErrCodeUnknownKind {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeUnknownKind)
	}

	if err.Message != `unknown object kind: "blob"` {
		t.Errorf("Message = %v", err.Message)
	}

	expected := `UNKNOWN_KIND: unknown object kind: "blob"`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidProject, cause, "failed to load layout")

	if err.Code != ErrCodeInvalidProject {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidProject)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

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
			err:      New(ErrCodeDuplicateID, "test"),
			code:     ErrCodeDuplicateID,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeDuplicateID, "test"),
			code:     ErrCodeObjectNotFound,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInvalidProject, New(ErrCodeInvalidSVG, "inner"), "outer"),
			code:     ErrCodeInvalidProject,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
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
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{name: "Error type", err: New(ErrCodeNoDrag, "test"), expected: ErrCodeNoDrag},
		{name: "plain error", err: errors.New("plain"), expected: ""},
		{name: "nil", err: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeObjectNotFound, "no such object")); got != "no such object" {
		t.Errorf("UserMessage() = %v", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %v", got)
	}
}

func TestValidateObjectID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid uuid", id: "0f2d6a3e-9c45-4a77-b9f0-1ad2c3e45f67", wantErr: false},
		{name: "valid short", id: "table-1", wantErr: false},
		{name: "empty", id: "", wantErr: true},
		{name: "control character", id: "table\x01", wantErr: true},
		{name: "path separator", id: "a/b", wantErr: true},
		{name: "too long", id: string(make([]byte, 129)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateObjectID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateObjectID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSizeMm(t *testing.T) {
	if err := ValidateSizeMm("width", 100); err != nil {
		t.Errorf("ValidateSizeMm(100) = %v, want nil", err)
	}
	if err := ValidateSizeMm("width", 0); !Is(err, ErrCodeInvalidSize) {
		t.Errorf("ValidateSizeMm(0) = %v, want INVALID_SIZE", err)
	}
	if err := ValidateSizeMm("width", -5); !Is(err, ErrCodeInvalidSize) {
		t.Errorf("ValidateSizeMm(-5) = %v, want INVALID_SIZE", err)
	}
	if err := ValidateSizeMm("width", 2_000_000); !Is(err, ErrCodeInvalidSize) {
		t.Errorf("ValidateSizeMm(2e6) = %v, want INVALID_SIZE", err)
	}
}
