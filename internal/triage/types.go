package triage

import "email-meeting-triage/internal/model"

// ParseEmailInput is the input for email parsing.
type ParseEmailInput struct {
	EmailText      string // Raw email body pasted or fetched upstream
	ForceHeuristic bool   // Skip the model path even when configured
}

// ParseEmailOutput is the parsing result plus its provenance.
type ParseEmailOutput struct {
	Record         model.ParsedEmail `json:"record"`
	Source         model.ParseSource `json:"source"`
	FallbackReason string            `json:"fallback_reason,omitempty"` // set when Source is fallback but a model was configured
}

// AvailabilityInput is the input for slot reconciliation.
type AvailabilityInput struct {
	Date              string   `json:"date"` // "2006-01-02"
	CalendarID        string   `json:"calendar_id"`
	Participants      []string `json:"participants"`
	PreferredTimeText string   `json:"preferred_time_text"` // free text, e.g. "around 10:00 AM works"
}

// FindEventInput is the input for event matching.
type FindEventInput struct {
	Query        string   `json:"query"`
	Participants []string `json:"participants"`
	CalendarID   string   `json:"calendar_id"`
	WindowDays   int      `json:"window_days"` // lookahead window, default 60
}

// ScheduleInput is the input for meeting creation.
type ScheduleInput struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Date            string   `json:"date"`       // "2006-01-02"
	StartTime       string   `json:"start_time"` // "HH:MM"
	DurationMinutes int      `json:"duration_minutes"`
	Participants    []string `json:"participants"`
	CalendarID      string   `json:"calendar_id"`
	ContactName     string   `json:"contact_name"`
	Company         string   `json:"company"`
}

// RescheduleInput is the input for moving an existing meeting.
type RescheduleInput struct {
	Query           string   `json:"query"`
	Participants    []string `json:"participants"`
	CalendarID      string   `json:"calendar_id"`
	NewDate         string   `json:"new_date"`       // "2006-01-02"
	NewStartTime    string   `json:"new_start_time"` // "HH:MM"
	DurationMinutes int      `json:"duration_minutes"`
	Reason          string   `json:"reason"`
}

// CancelInput is the input for cancelling an existing meeting.
type CancelInput struct {
	Query        string   `json:"query"`
	Participants []string `json:"participants"`
	CalendarID   string   `json:"calendar_id"`
	Reason       string   `json:"reason"`
}

// ScheduleOutput describes the created or moved event.
type ScheduleOutput struct {
	EventID      string `json:"event_id"`
	CalendarLink string `json:"calendar_link,omitempty"`
	Start        string `json:"start"` // RFC3339
	End          string `json:"end"`   // RFC3339
}

// CancelOutput describes the cancelled event.
type CancelOutput struct {
	EventID string `json:"event_id"`
	Title   string `json:"title"`
}

// TriageInput is the input for the end-to-end flow.
type TriageInput struct {
	EmailText  string `json:"email_text"`
	CalendarID string `json:"calendar_id"`
}

// TriageOutput bundles the parsed record with the intent-dependent next step.
type TriageOutput struct {
	Parsed       ParseEmailOutput          `json:"parsed"`
	Availability *model.AvailabilityResult `json:"availability,omitempty"` // set for schedule intent
	Match        *model.EventSearchResult  `json:"match,omitempty"`        // set for reschedule/cancel intent
}
