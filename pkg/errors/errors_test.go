package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidEntry, "bad entry: %q", "x")

	if err.Code != ErrCodeInvalidEntry {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidEntry)
	}
	if err.Message != `bad entry: "x"` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("Cause should be nil, got %v", err.Cause)
	}
	if !strings.Contains(err.Error(), string(ErrCodeInvalidEntry)) {
		t.Errorf("Error() should contain code: %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeSave, cause, "write path file")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Error() should contain cause: %q", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeLoad, "read failed")

	if !Is(err, ErrCodeLoad) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeSave) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeLoad) {
		t.Error("Is should not match plain errors")
	}

	// Code is found through wrapping layers.
	wrapped := Wrap(ErrCodeInternal, err, "outer")
	if !Is(wrapped, ErrCodeInternal) {
		t.Error("Is should match the outermost code")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeDecode, "bad bytes")); got != ErrCodeDecode {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeDecode)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeSave, "could not persist the path")
	if got := UserMessage(err); got != "could not persist the path" {
		t.Errorf("UserMessage = %q", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage = %q", got)
	}
}
