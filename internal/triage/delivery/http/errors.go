package http

import (
	"errors"
	"net/http"

	"email-meeting-triage/internal/triage"
	"email-meeting-triage/pkg/llmprovider"
)

// mapErrorStatus translates domain errors into HTTP status codes. Unknown
// errors map to 500 and the handler hides their detail from the response.
func mapErrorStatus(err error) int {
	switch {
	case errors.Is(err, triage.ErrInvalidDate),
		errors.Is(err, triage.ErrInvalidTime),
		errors.Is(err, triage.ErrEmptyQuery):
		return http.StatusBadRequest
	case errors.Is(err, triage.ErrNoEventMatched):
		return http.StatusNotFound
	case errors.Is(err, triage.ErrNoCalendar):
		return http.StatusServiceUnavailable
	case llmprovider.IsFatal(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
