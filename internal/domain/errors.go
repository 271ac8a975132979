package domain

import "errors"

// FetchErrorMessage is the user-facing text shown for any failed fetch.
const FetchErrorMessage = "Could not fetch recipes."

// Sentinel errors used across layers.
var (
	ErrNotFound = errors.New("not found")
)

// FetchError is the single error kind surfaced to the user: any transport
// failure, non-2xx status, or unreadable body collapses into it. The
// underlying cause is kept for logs, never shown in the UI.
type FetchError struct {
	Message string // user-facing; defaults to FetchErrorMessage
	Err     error  // underlying cause, may be nil
}

// NewFetchError wraps err with the standard user-facing message.
func NewFetchError(err error) *FetchError {
	return &FetchError{Message: FetchErrorMessage, Err: err}
}

func (e *FetchError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return FetchErrorMessage
}

func (e *FetchError) Unwrap() error { return e.Err }
