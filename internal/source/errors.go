package source

import (
	"errors"
	"fmt"
)

// ErrLyricsNotFound marks a per-track lyrics miss. It is the one non-fatal
// failure: callers skip the track and continue.
var ErrLyricsNotFound = errors.New("lyrics not found")

// AuthError reports missing or rejected credentials for an external service.
type AuthError struct {
	Service string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: authentication failed", e.Service)
	}
	return fmt.Sprintf("%s: authentication failed: %v", e.Service, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// FetchError reports a network failure or an identifier that did not
// resolve against an external service.
type FetchError struct {
	Service string
	Err     error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: fetch failed: %v", e.Service, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
