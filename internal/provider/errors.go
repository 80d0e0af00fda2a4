package provider

import "fmt"

// Error is a typed provider failure. Status and details are kept for
// diagnostics; the error itself is never surfaced to API callers.
type Error struct {
	Provider   string
	StatusCode int
	Details    string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Provider, e.StatusCode, e.Details)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Details)
}

func (e *Error) Unwrap() error {
	return e.Err
}
