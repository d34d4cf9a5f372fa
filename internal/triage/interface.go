package triage

import (
	"context"
	"time"

	"email-meeting-triage/internal/model"
	"email-meeting-triage/pkg/crm"
	"email-meeting-triage/pkg/gcalendar"
	"email-meeting-triage/pkg/llmprovider"
)

// UseCase defines the business logic interface for the email triage domain.
type UseCase interface {
	// ParseEmail extracts meeting intent, contact and datetime from raw email text,
	// preferring the model path and falling back to heuristics.
	ParseEmail(ctx context.Context, input ParseEmailInput) (ParseEmailOutput, error)

	// SuggestAvailability reconciles the calendar's busy intervals for a date
	// against the business-hours grid and an optional preferred time.
	SuggestAvailability(ctx context.Context, input AvailabilityInput) (model.AvailabilityResult, error)

	// FindEvent scores existing calendar events against a free-text query and
	// participant list to find a reschedule/cancel candidate.
	FindEvent(ctx context.Context, input FindEventInput) (model.EventSearchResult, error)

	// ScheduleMeeting creates a calendar event and syncs the contact to the CRM.
	ScheduleMeeting(ctx context.Context, input ScheduleInput) (ScheduleOutput, error)

	// RescheduleMeeting moves the best-matching event to a new start time.
	RescheduleMeeting(ctx context.Context, input RescheduleInput) (ScheduleOutput, error)

	// CancelMeeting deletes the best-matching event.
	CancelMeeting(ctx context.Context, input CancelInput) (CancelOutput, error)

	// Triage runs the full flow: parse the email, then depending on intent
	// attach availability suggestions or a matched event.
	Triage(ctx context.Context, input TriageInput) (TriageOutput, error)
}

// Calendar is the calendar collaborator. *gcalendar.Client satisfies it.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	FreeBusy(ctx context.Context, calID string, timeMin, timeMax time.Time) ([]gcalendar.BusyInterval, error)
	MoveEvent(ctx context.Context, req gcalendar.MoveEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calID, eventID string) error
}

// CRM is the one-way sync collaborator. *crm.Client satisfies it.
type CRM interface {
	SyncContact(ctx context.Context, req crm.ContactSyncRequest) (*crm.SyncResult, error)
	LogActivity(ctx context.Context, req crm.ActivityLogRequest) (*crm.SyncResult, error)
}

// TextGenerator is the model collaborator. *llmprovider.Manager satisfies it.
type TextGenerator interface {
	GenerateText(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}
