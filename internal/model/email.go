package model

// Intent is the classified purpose of an email relative to meetings.
type Intent string

const (
	IntentSchedule   Intent = "schedule_meeting"
	IntentReschedule Intent = "reschedule_meeting"
	IntentCancel     Intent = "cancel_meeting"
	IntentGeneral    Intent = "general"
)

// ParseSource records which path produced a ParsedEmail.
type ParseSource string

const (
	SourceModel    ParseSource = "model"
	SourceFallback ParseSource = "fallback"
)

// Sentinel values returned when extraction fails. Fixed placeholders avoid
// null/empty ambiguity downstream.
const (
	UnknownContact  = "Unknown Contact"
	UnknownCompany  = "Unknown Company"
	NoEmailSentinel = "no-email@example.com"
	NotSpecified    = "Not specified"
)

// MaxParticipants caps the participants list on a parsed email.
const MaxParticipants = 4

// ParsedEmail is the normalized output of the email parsing pipeline.
// Immutable once produced; created fresh per request.
type ParsedEmail struct {
	ContactName  string   `json:"contact_name"`
	Email        string   `json:"email"`
	Company      string   `json:"company"`
	DateTime     string   `json:"datetime"`
	Participants []string `json:"participants"`
	Intent       Intent   `json:"intent"`
	Confidence   float64  `json:"confidence"`
	Reasoning    string   `json:"reasoning"`
}
