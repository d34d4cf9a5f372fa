package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"email-meeting-triage/internal/triage"
	"email-meeting-triage/pkg/gcalendar"
)

func TestScheduleMeeting(t *testing.T) {
	t.Run("creates event and syncs crm", func(t *testing.T) {
		cal := &stubCalendar{}
		crmStub := &stubCRM{}
		uc := newUseCase(t, nil, cal, crmStub)

		out, err := uc.ScheduleMeeting(context.Background(), triage.ScheduleInput{
			Title:           "Intro call",
			Date:            "2024-01-15",
			StartTime:       "14:00",
			DurationMinutes: 30,
			Participants:    []string{"sarah@techcorp.com"},
			ContactName:     "Sarah Chen",
			Company:         "TechCorp Inc.",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.EventID != "created-1" {
			t.Errorf("unexpected event id %q", out.EventID)
		}
		if len(cal.created) != 1 {
			t.Fatalf("expected one created event, got %d", len(cal.created))
		}
		req := cal.created[0]
		if req.StartTime.Format("15:04") != "14:00" {
			t.Errorf("unexpected start %v", req.StartTime)
		}
		if req.EndTime.Sub(req.StartTime) != 30*time.Minute {
			t.Errorf("unexpected duration %v", req.EndTime.Sub(req.StartTime))
		}
		if len(req.Attendees) != 1 || req.Attendees[0] != "sarah@techcorp.com" {
			t.Errorf("unexpected attendees %v", req.Attendees)
		}

		if len(crmStub.contacts) != 1 || crmStub.contacts[0].Email != "sarah@techcorp.com" {
			t.Errorf("expected contact synced, got %v", crmStub.contacts)
		}
		if len(crmStub.activities) != 1 || crmStub.activities[0].Kind != "meeting_scheduled" {
			t.Errorf("expected scheduled activity, got %v", crmStub.activities)
		}
	})

	t.Run("sentinel participant never reaches calendar", func(t *testing.T) {
		cal := &stubCalendar{}
		uc := newUseCase(t, nil, cal, nil)

		_, err := uc.ScheduleMeeting(context.Background(), triage.ScheduleInput{
			Date:         "2024-01-15",
			StartTime:    "10:00",
			Participants: []string{"no-email@example.com"},
			ContactName:  "Unknown Contact",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cal.created[0].Attendees) != 0 {
			t.Errorf("sentinel must be dropped, got %v", cal.created[0].Attendees)
		}
	})

	t.Run("crm failure does not fail scheduling", func(t *testing.T) {
		cal := &stubCalendar{}
		crmStub := &stubCRM{err: errors.New("crm down")}
		uc := newUseCase(t, nil, cal, crmStub)

		_, err := uc.ScheduleMeeting(context.Background(), triage.ScheduleInput{
			Date:         "2024-01-15",
			StartTime:    "10:00",
			Participants: []string{"bob@acme.com"},
		})
		if err != nil {
			t.Fatalf("crm failure must be non-fatal, got %v", err)
		}
	})

	t.Run("invalid time rejected", func(t *testing.T) {
		uc := newUseCase(t, nil, &stubCalendar{}, nil)

		_, err := uc.ScheduleMeeting(context.Background(), triage.ScheduleInput{
			Date:      "2024-01-15",
			StartTime: "2pm",
		})
		if !errors.Is(err, triage.ErrInvalidTime) {
			t.Errorf("expected ErrInvalidTime, got %v", err)
		}
	})
}

func TestRescheduleMeeting(t *testing.T) {
	now := fixedClock()

	t.Run("moves the matched event", func(t *testing.T) {
		cal := &stubCalendar{events: []gcalendar.Event{
			eventAt("e1", "Acme sync", []string{"bob@acme.com"}, now.AddDate(0, 0, 2)),
		}}
		crmStub := &stubCRM{}
		uc := newUseCase(t, nil, cal, crmStub)

		out, err := uc.RescheduleMeeting(context.Background(), triage.RescheduleInput{
			Query:        "acme",
			Participants: []string{"bob@acme.com"},
			NewDate:      "2024-01-20",
			NewStartTime: "15:00",
			Reason:       "conflict came up",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(cal.moved) != 1 || cal.moved[0].EventID != "e1" {
			t.Fatalf("expected e1 moved, got %v", cal.moved)
		}
		if cal.moved[0].Reason != "conflict came up" {
			t.Errorf("unexpected reason %q", cal.moved[0].Reason)
		}
		if out.Start != "2024-01-20T15:00:00Z" {
			t.Errorf("unexpected new start %q", out.Start)
		}
		if len(crmStub.activities) != 1 || crmStub.activities[0].Kind != "meeting_rescheduled" {
			t.Errorf("expected rescheduled activity, got %v", crmStub.activities)
		}
	})

	t.Run("keeps original duration by default", func(t *testing.T) {
		cal := &stubCalendar{events: []gcalendar.Event{
			eventAt("e1", "Acme sync", nil, now.AddDate(0, 0, 2)),
		}}
		uc := newUseCase(t, nil, cal, nil)

		_, err := uc.RescheduleMeeting(context.Background(), triage.RescheduleInput{
			Query:        "acme",
			NewDate:      "2024-01-20",
			NewStartTime: "15:00",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		moved := cal.moved[0]
		if moved.EndTime.Sub(moved.StartTime) != time.Hour {
			t.Errorf("expected original one-hour duration, got %v", moved.EndTime.Sub(moved.StartTime))
		}
	})

	t.Run("no match returns error", func(t *testing.T) {
		uc := newUseCase(t, nil, &stubCalendar{}, nil)

		_, err := uc.RescheduleMeeting(context.Background(), triage.RescheduleInput{
			Query:        "ghost meeting",
			NewDate:      "2024-01-20",
			NewStartTime: "15:00",
		})
		if !errors.Is(err, triage.ErrNoEventMatched) {
			t.Errorf("expected ErrNoEventMatched, got %v", err)
		}
	})
}

func TestCancelMeeting(t *testing.T) {
	now := fixedClock()

	t.Run("deletes the matched event", func(t *testing.T) {
		cal := &stubCalendar{events: []gcalendar.Event{
			eventAt("e1", "Acme sync", []string{"bob@acme.com"}, now.AddDate(0, 0, 2)),
		}}
		crmStub := &stubCRM{}
		uc := newUseCase(t, nil, cal, crmStub)

		out, err := uc.CancelMeeting(context.Background(), triage.CancelInput{
			Query:        "acme",
			Participants: []string{"bob@acme.com"},
			Reason:       "no longer needed",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(cal.deleted) != 1 || cal.deleted[0] != "e1" {
			t.Fatalf("expected e1 deleted, got %v", cal.deleted)
		}
		if out.Title != "Acme sync" {
			t.Errorf("unexpected title %q", out.Title)
		}
		if len(crmStub.activities) != 1 || crmStub.activities[0].Kind != "meeting_cancelled" {
			t.Errorf("expected cancelled activity, got %v", crmStub.activities)
		}
	})

	t.Run("no match returns error", func(t *testing.T) {
		uc := newUseCase(t, nil, &stubCalendar{}, nil)

		_, err := uc.CancelMeeting(context.Background(), triage.CancelInput{Query: "ghost"})
		if !errors.Is(err, triage.ErrNoEventMatched) {
			t.Errorf("expected ErrNoEventMatched, got %v", err)
		}
	})
}
