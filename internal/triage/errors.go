package triage

import "errors"

// Domain-specific errors for the triage package.
var (
	ErrEmptyQuery     = errors.New("search query is empty")
	ErrInvalidDate    = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTime    = errors.New("time must be in HH:MM format")
	ErrNoEventMatched = errors.New("no calendar event matched the query")
	ErrNoCalendar     = errors.New("calendar client is not configured")
)
