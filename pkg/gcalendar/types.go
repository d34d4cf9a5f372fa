package gcalendar

import "time"

// CreateEventRequest is the input for creating a calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Attendees   []string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "America/New_York"
}

// Event is a simplified view of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	Attendees   []string
	Status      string
	HTMLLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
}

// ListEventsRequest is the input for listing events in a time window.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// BusyInterval is an occupied range reported by the FreeBusy API.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// MoveEventRequest shifts an existing event to a new time.
type MoveEventRequest struct {
	CalendarID string
	EventID    string
	StartTime  time.Time
	EndTime    time.Time
	Timezone   string
	Reason     string // appended to the event description when non-empty
}
