package usecase

import (
	"context"
	"strings"
	"time"

	"email-meeting-triage/internal/model"
	"email-meeting-triage/internal/triage"
)

// Triage runs the full flow: parse the email, then route on intent. Schedule
// intents get availability suggestions for the extracted date, reschedule and
// cancel intents get the best-matching existing event. A general intent
// returns the parsed record alone.
func (uc *implUseCase) Triage(ctx context.Context, input triage.TriageInput) (triage.TriageOutput, error) {
	parsed, err := uc.ParseEmail(ctx, triage.ParseEmailInput{EmailText: input.EmailText})
	if err != nil {
		return triage.TriageOutput{}, err
	}

	out := triage.TriageOutput{Parsed: parsed}
	record := parsed.Record

	switch record.Intent {
	case model.IntentSchedule:
		if uc.calendar == nil {
			return out, nil
		}
		availability, err := uc.SuggestAvailability(ctx, triage.AvailabilityInput{
			Date:              uc.targetDate(record.DateTime),
			CalendarID:        input.CalendarID,
			Participants:      record.Participants,
			PreferredTimeText: record.DateTime,
		})
		if err != nil {
			uc.l.Warnf(ctx, "Triage: availability lookup failed: %v", err)
			return out, nil
		}
		out.Availability = &availability

	case model.IntentReschedule, model.IntentCancel:
		if uc.calendar == nil {
			return out, nil
		}
		match, err := uc.FindEvent(ctx, triage.FindEventInput{
			Query:        matchQuery(record),
			Participants: record.Participants,
			CalendarID:   input.CalendarID,
		})
		if err != nil {
			uc.l.Warnf(ctx, "Triage: event lookup failed: %v", err)
			return out, nil
		}
		out.Match = &match
	}

	return out, nil
}

// targetDate resolves the extracted display datetime to a "2006-01-02" date,
// defaulting to tomorrow when nothing concrete was extracted.
func (uc *implUseCase) targetDate(display string) string {
	loc := uc.dates.Location()

	if display != "" && display != model.NotSpecified {
		datePart := display
		if idx := strings.Index(display, " at "); idx >= 0 {
			datePart = display[:idx]
		}
		if strings.EqualFold(datePart, "Today") {
			return uc.now().In(loc).Format("2006-01-02")
		}
		if t, err := time.ParseInLocation("January 2, 2006", datePart, loc); err == nil {
			return t.Format("2006-01-02")
		}
	}

	return uc.now().In(loc).AddDate(0, 0, 1).Format("2006-01-02")
}

// matchQuery picks the strongest free-text handle on the meeting being
// rescheduled or cancelled.
func matchQuery(record model.ParsedEmail) string {
	if record.Company != model.UnknownCompany {
		return record.Company
	}
	if record.ContactName != model.UnknownContact {
		return record.ContactName
	}
	return "meeting"
}
