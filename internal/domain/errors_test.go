package domain

import (
	"errors"
	"testing"
)

func TestFetchError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewFetchError(cause)

	if err.Error() != FetchErrorMessage {
		t.Fatalf("expected %q, got %q", FetchErrorMessage, err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable via errors.Is")
	}

	var fe *FetchError
	if !errors.As(error(err), &fe) {
		t.Fatal("expected errors.As to match *FetchError")
	}

	// Zero message falls back to the standard text.
	empty := &FetchError{}
	if empty.Error() != FetchErrorMessage {
		t.Fatalf("expected fallback message, got %q", empty.Error())
	}
}
