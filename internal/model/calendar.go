package model

import "time"

// TimeSlot is a wall-clock slot inside the business-hours grid.
// Start and End are "HH:MM" 24-hour strings.
type TimeSlot struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

// BusyInterval is a time range already occupied on a calendar.
type BusyInterval struct {
	Start string `json:"start"` // "HH:MM"
	End   string `json:"end"`   // "HH:MM"
}

// MaxSuggestedTimes bounds the ranked suggestion list.
const MaxSuggestedTimes = 4

// AvailabilityResult is the reconciled view of a day's open slots.
// SuggestedTimes is derived from Slots plus the preferred time; regenerating
// it is deterministic and idempotent.
type AvailabilityResult struct {
	Date           string     `json:"date"`
	Slots          []TimeSlot `json:"slots"`
	SuggestedTimes []string   `json:"suggested_times"`
}

// CalendarEventRef is a lightweight reference to an existing calendar event.
type CalendarEventRef struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Attendees   []string  `json:"attendees"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Status      string    `json:"status"` // "confirmed", "cancelled", ...
	HTMLLink    string    `json:"html_link,omitempty"`
}

// EventSearchResult holds candidate events for a reschedule/cancel query.
// MatchedEvent, when present, is always a member of Events and the element
// with strictly maximal confidence (ties broken by earliest start).
type EventSearchResult struct {
	Events       []CalendarEventRef `json:"events"`
	MatchedEvent *CalendarEventRef  `json:"matched_event,omitempty"`
	Confidence   float64            `json:"confidence"`
}
