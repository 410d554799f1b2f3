package csafval

import (
	"errors"
	"fmt"
	"testing"
)

func ExampleError() {
	fmt.Println(&Error{
		Kind:    ErrUnknownTest,
		Message: "test id \"9.9.99\" not registered",
		Op:      "ValidateByTest",
	})

	fmt.Println(&Error{
		Inner:   errors.New("unexpected end of JSON input"),
		Kind:    ErrDecode,
		Message: "could not decode document",
		Op:      "Load",
	})

	fmt.Println(fmt.Errorf("cmd/csafcheck: oops: %w", &Error{
		Inner:   errors.New("unexpected end of JSON input"),
		Kind:    ErrDecode,
		Message: "could not decode document",
		Op:      "Load",
	}))

	// Output:
	// ValidateByTest [unknown test]: test id "9.9.99" not registered
	// Load [decode]: could not decode document: unexpected end of JSON input
	// cmd/csafcheck: oops: Load [decode]: could not decode document: unexpected end of JSON input
}

func TestErrorIs(t *testing.T) {
	err := &Error{Kind: ErrInvariant, Message: "unrecognized remediation category"}
	if !errors.Is(err, ErrInvariant) {
		t.Error("expected errors.Is(err, ErrInvariant) to be true")
	}
	if errors.Is(err, ErrDecode) {
		t.Error("expected errors.Is(err, ErrDecode) to be false")
	}

	wrapped := fmt.Errorf("loader: %w", err)
	var got *Error
	if !errors.As(wrapped, &got) {
		t.Fatal("expected errors.As to unwrap to *Error")
	}
	if got.Kind != ErrInvariant {
		t.Errorf("got kind %q, want %q", got.Kind, ErrInvariant)
	}
}
