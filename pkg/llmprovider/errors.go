package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrAllProvidersFailed indicates every configured provider failed.
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled.
	ErrNoProvidersConfigured = errors.New("no providers configured")
)

// FatalKind classifies non-retryable provider failures.
type FatalKind string

const (
	FatalAuth  FatalKind = "auth"
	FatalQuota FatalKind = "quota"
)

// FatalError is a provider failure that retrying cannot fix: invalid
// credentials or exhausted quota. Callers surface these instead of silently
// falling back.
type FatalError struct {
	Provider string
	Kind     FatalKind
	Err      error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("provider %s: %s error: %v", e.Provider, e.Kind, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err carries a non-retryable provider failure.
func IsFatal(err error) bool {
	_, ok := asFatal(err)
	return ok
}

func asFatal(err error) (*FatalError, bool) {
	var fe *FatalError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// classifyStatus maps an HTTP status to a fatal kind, or "" when the
// failure is transient and retryable.
func classifyStatus(status int) FatalKind {
	switch status {
	case 401, 403:
		return FatalAuth
	case 402, 429:
		return FatalQuota
	default:
		return ""
	}
}
