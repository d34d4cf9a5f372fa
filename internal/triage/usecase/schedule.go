package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"email-meeting-triage/internal/model"
	"email-meeting-triage/internal/triage"
	"email-meeting-triage/pkg/crm"
	"email-meeting-triage/pkg/gcalendar"
)

const defaultMeetingMinutes = 60

// ScheduleMeeting creates the calendar event and syncs the contact to the
// CRM. CRM failures are logged, never propagated.
func (uc *implUseCase) ScheduleMeeting(ctx context.Context, input triage.ScheduleInput) (triage.ScheduleOutput, error) {
	if uc.calendar == nil {
		return triage.ScheduleOutput{}, triage.ErrNoCalendar
	}

	start, err := uc.combine(input.Date, input.StartTime)
	if err != nil {
		return triage.ScheduleOutput{}, err
	}
	duration := input.DurationMinutes
	if duration <= 0 {
		duration = defaultMeetingMinutes
	}
	end := start.Add(time.Duration(duration) * time.Minute)

	title := input.Title
	if title == "" {
		title = fmt.Sprintf("Meeting with %s", displayName(input.ContactName, input.Participants))
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  input.CalendarID,
		Summary:     title,
		Description: input.Description,
		StartTime:   start,
		EndTime:     end,
		Timezone:    uc.cfg.Timezone,
		Attendees:   realParticipants(input.Participants),
	})
	if err != nil {
		return triage.ScheduleOutput{}, fmt.Errorf("failed to create calendar event: %w", err)
	}

	uc.l.Infof(ctx, "ScheduleMeeting: created event %s at %s", event.ID, start.Format(time.RFC3339))

	uc.syncContact(ctx, input.ContactName, input.Company, input.Participants)
	uc.logActivity(ctx, input.Participants, "meeting_scheduled", title, start)

	return triage.ScheduleOutput{
		EventID:      event.ID,
		CalendarLink: event.HTMLLink,
		Start:        start.Format(time.RFC3339),
		End:          end.Format(time.RFC3339),
	}, nil
}

// RescheduleMeeting finds the best-matching event and moves it.
func (uc *implUseCase) RescheduleMeeting(ctx context.Context, input triage.RescheduleInput) (triage.ScheduleOutput, error) {
	matched, err := uc.requireMatch(ctx, input.Query, input.Participants, input.CalendarID)
	if err != nil {
		return triage.ScheduleOutput{}, err
	}

	start, err := uc.combine(input.NewDate, input.NewStartTime)
	if err != nil {
		return triage.ScheduleOutput{}, err
	}
	duration := input.DurationMinutes
	if duration <= 0 {
		duration = int(matched.End.Sub(matched.Start).Minutes())
	}
	if duration <= 0 {
		duration = defaultMeetingMinutes
	}
	end := start.Add(time.Duration(duration) * time.Minute)

	event, err := uc.calendar.MoveEvent(ctx, gcalendar.MoveEventRequest{
		CalendarID: input.CalendarID,
		EventID:    matched.ID,
		StartTime:  start,
		EndTime:    end,
		Timezone:   uc.cfg.Timezone,
		Reason:     input.Reason,
	})
	if err != nil {
		return triage.ScheduleOutput{}, fmt.Errorf("failed to move calendar event: %w", err)
	}

	uc.l.Infof(ctx, "RescheduleMeeting: moved event %s to %s", matched.ID, start.Format(time.RFC3339))

	uc.logActivity(ctx, input.Participants, "meeting_rescheduled", matched.Title, start)

	return triage.ScheduleOutput{
		EventID:      event.ID,
		CalendarLink: event.HTMLLink,
		Start:        start.Format(time.RFC3339),
		End:          end.Format(time.RFC3339),
	}, nil
}

// CancelMeeting finds the best-matching event and deletes it.
func (uc *implUseCase) CancelMeeting(ctx context.Context, input triage.CancelInput) (triage.CancelOutput, error) {
	matched, err := uc.requireMatch(ctx, input.Query, input.Participants, input.CalendarID)
	if err != nil {
		return triage.CancelOutput{}, err
	}

	if err := uc.calendar.DeleteEvent(ctx, input.CalendarID, matched.ID); err != nil {
		return triage.CancelOutput{}, fmt.Errorf("failed to delete calendar event: %w", err)
	}

	uc.l.Infof(ctx, "CancelMeeting: deleted event %s (%s)", matched.ID, matched.Title)

	uc.logActivity(ctx, input.Participants, "meeting_cancelled", matched.Title, matched.Start)

	return triage.CancelOutput{
		EventID: matched.ID,
		Title:   matched.Title,
	}, nil
}

func (uc *implUseCase) requireMatch(ctx context.Context, query string, participants []string, calendarID string) (*model.CalendarEventRef, error) {
	result, err := uc.FindEvent(ctx, triage.FindEventInput{
		Query:        query,
		Participants: participants,
		CalendarID:   calendarID,
	})
	if err != nil {
		return nil, err
	}
	if result.MatchedEvent == nil {
		return nil, triage.ErrNoEventMatched
	}
	return result.MatchedEvent, nil
}

// combine resolves a "2006-01-02" date and "HH:MM" clock into a local time.
func (uc *implUseCase) combine(date, clock string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, uc.dates.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", triage.ErrInvalidDate, date)
	}
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", triage.ErrInvalidTime, clock)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, uc.dates.Location()), nil
}

// syncContact fires the CRM contact upsert; failure is logged only.
func (uc *implUseCase) syncContact(ctx context.Context, name, company string, participants []string) {
	if uc.crm == nil {
		return
	}
	email := primaryParticipant(participants)
	if email == "" {
		return
	}
	if _, err := uc.crm.SyncContact(ctx, crm.ContactSyncRequest{
		Name:    name,
		Email:   email,
		Company: company,
	}); err != nil {
		uc.l.Warnf(ctx, "crm contact sync failed (non-fatal): %v", err)
	}
}

// logActivity fires the CRM activity log; failure is logged only.
func (uc *implUseCase) logActivity(ctx context.Context, participants []string, kind, subject string, occursAt time.Time) {
	if uc.crm == nil {
		return
	}
	email := primaryParticipant(participants)
	if email == "" {
		return
	}
	if _, err := uc.crm.LogActivity(ctx, crm.ActivityLogRequest{
		ContactEmail: email,
		Kind:         kind,
		Subject:      subject,
		OccursAt:     occursAt.Format(time.RFC3339),
	}); err != nil {
		uc.l.Warnf(ctx, "crm activity log failed (non-fatal): %v", err)
	}
}

// realParticipants drops the sentinel address before it reaches the calendar.
func realParticipants(participants []string) []string {
	out := make([]string, 0, len(participants))
	for _, p := range participants {
		if p == model.NoEmailSentinel || !strings.Contains(p, "@") {
			continue
		}
		out = append(out, p)
	}
	return out
}

func primaryParticipant(participants []string) string {
	for _, p := range participants {
		if p != model.NoEmailSentinel && strings.Contains(p, "@") {
			return p
		}
	}
	return ""
}

func displayName(contactName string, participants []string) string {
	if contactName != "" && contactName != model.UnknownContact {
		return contactName
	}
	if p := primaryParticipant(participants); p != "" {
		return p
	}
	return "contact"
}
