package usecase_test

import (
	"context"
	"testing"
	"time"

	"email-meeting-triage/internal/triage"
	"email-meeting-triage/internal/triage/usecase"
	"email-meeting-triage/pkg/crm"
	"email-meeting-triage/pkg/datemath"
	"email-meeting-triage/pkg/gcalendar"
	"email-meeting-triage/pkg/llmprovider"
	pkgLog "email-meeting-triage/pkg/log"
)

// Wednesday, January 10 2024, 09:00 UTC.
func fixedClock() time.Time {
	return time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)
}

type stubGenerator struct {
	text  string
	err   error
	calls int
}

func (s *stubGenerator) GenerateText(_ context.Context, _ *llmprovider.Request) (*llmprovider.Response, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{Text: s.text, ProviderName: "stub", ModelName: "stub-1"}, nil
}

type stubCalendar struct {
	busy   []gcalendar.BusyInterval
	events []gcalendar.Event

	freeBusyErr error
	listErr     error

	created []gcalendar.CreateEventRequest
	moved   []gcalendar.MoveEventRequest
	deleted []string
}

func (s *stubCalendar) CreateEvent(_ context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	s.created = append(s.created, req)
	return &gcalendar.Event{
		ID:        "created-1",
		Summary:   req.Summary,
		Attendees: req.Attendees,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		HTMLLink:  "https://calendar.example.com/created-1",
	}, nil
}

func (s *stubCalendar) ListEvents(_ context.Context, _ gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.events, nil
}

func (s *stubCalendar) FreeBusy(_ context.Context, _ string, _, _ time.Time) ([]gcalendar.BusyInterval, error) {
	if s.freeBusyErr != nil {
		return nil, s.freeBusyErr
	}
	return s.busy, nil
}

func (s *stubCalendar) MoveEvent(_ context.Context, req gcalendar.MoveEventRequest) (*gcalendar.Event, error) {
	s.moved = append(s.moved, req)
	return &gcalendar.Event{
		ID:        req.EventID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}

func (s *stubCalendar) DeleteEvent(_ context.Context, _, eventID string) error {
	s.deleted = append(s.deleted, eventID)
	return nil
}

type stubCRM struct {
	contacts   []crm.ContactSyncRequest
	activities []crm.ActivityLogRequest
	err        error
}

func (s *stubCRM) SyncContact(_ context.Context, req crm.ContactSyncRequest) (*crm.SyncResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.contacts = append(s.contacts, req)
	return &crm.SyncResult{SyncID: "sync-1", Status: "ok"}, nil
}

func (s *stubCRM) LogActivity(_ context.Context, req crm.ActivityLogRequest) (*crm.SyncResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.activities = append(s.activities, req)
	return &crm.SyncResult{SyncID: "sync-2", Status: "ok"}, nil
}

func newUseCase(t *testing.T, llm triage.TextGenerator, cal triage.Calendar, crmClient triage.CRM) triage.UseCase {
	t.Helper()

	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("failed to create date parser: %v", err)
	}

	return usecase.New(pkgLog.NewNop(), llm, cal, crmClient, dates, usecase.Config{Timezone: "UTC"}, fixedClock)
}
