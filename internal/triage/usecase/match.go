package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"email-meeting-triage/internal/model"
	"email-meeting-triage/internal/triage"
	"email-meeting-triage/pkg/gcalendar"
)

const (
	titleWeight       = 0.4
	participantWeight = 0.4
	recencyWeight     = 0.2
	recencyWindow     = 7 * 24 * time.Hour
)

// FindEvent lists upcoming and recent events from the calendar and scores
// them against the query and participant list.
func (uc *implUseCase) FindEvent(ctx context.Context, input triage.FindEventInput) (model.EventSearchResult, error) {
	if uc.calendar == nil {
		return model.EventSearchResult{}, triage.ErrNoCalendar
	}
	if strings.TrimSpace(input.Query) == "" && len(input.Participants) == 0 {
		return model.EventSearchResult{}, triage.ErrEmptyQuery
	}

	windowDays := input.WindowDays
	if windowDays <= 0 {
		windowDays = 60
	}

	now := uc.now()
	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: input.CalendarID,
		TimeMin:    now.AddDate(0, 0, -windowDays),
		TimeMax:    now.AddDate(0, 0, windowDays),
	})
	if err != nil {
		return model.EventSearchResult{}, fmt.Errorf("failed to list calendar events: %w", err)
	}

	refs := make([]model.CalendarEventRef, 0, len(events))
	for _, e := range events {
		refs = append(refs, model.CalendarEventRef{
			ID:          e.ID,
			Title:       e.Summary,
			Description: e.Description,
			Attendees:   e.Attendees,
			Start:       e.StartTime,
			End:         e.EndTime,
			Status:      e.Status,
			HTMLLink:    e.HTMLLink,
		})
	}

	result := uc.matchEvents(input.Query, input.Participants, refs)

	uc.l.Infof(ctx, "FindEvent: query=%q candidates=%d matched=%v confidence=%.2f",
		input.Query, len(result.Events), result.MatchedEvent != nil, result.Confidence)

	return result, nil
}

// matchEvents filters candidates to those loosely matching the query or a
// participant, then scores survivors. Title match is worth 0.4, matched
// participant fraction up to 0.4 and a start within seven days of now 0.2,
// so a stale event with a perfect title match does not outrank a current one.
func (uc *implUseCase) matchEvents(query string, participants []string, candidates []model.CalendarEventRef) model.EventSearchResult {
	queryLower := strings.ToLower(strings.TrimSpace(query))
	now := uc.now()

	var survivors []model.CalendarEventRef
	bestIdx := -1
	var bestScore float64

	for _, ev := range candidates {
		if strings.EqualFold(ev.Status, "cancelled") {
			continue
		}
		if !looseMatch(ev, queryLower, participants) {
			continue
		}
		survivors = append(survivors, ev)

		score := uc.scoreEvent(ev, queryLower, participants, now)
		idx := len(survivors) - 1
		if bestIdx == -1 || score > bestScore ||
			(score == bestScore && ev.Start.Before(survivors[bestIdx].Start)) {
			bestIdx = idx
			bestScore = score
		}
	}

	result := model.EventSearchResult{
		Events:     survivors,
		Confidence: bestScore,
	}
	if bestIdx >= 0 {
		result.MatchedEvent = &survivors[bestIdx]
	}
	return result
}

func (uc *implUseCase) scoreEvent(ev model.CalendarEventRef, queryLower string, participants []string, now time.Time) float64 {
	var score float64

	if queryLower != "" && strings.Contains(strings.ToLower(ev.Title), queryLower) {
		score += titleWeight
	}

	if len(participants) > 0 {
		matched := 0
		for _, p := range participants {
			if attendeesContain(ev.Attendees, p) {
				matched++
			}
		}
		score += participantWeight * float64(matched) / float64(len(participants))
	}

	delta := ev.Start.Sub(now)
	if delta < 0 {
		delta = -delta
	}
	if delta <= recencyWindow {
		score += recencyWeight
	}

	return score
}

// looseMatch reports whether the event's title, description or attendee list
// contains the query or any participant, case-insensitive.
func looseMatch(ev model.CalendarEventRef, queryLower string, participants []string) bool {
	title := strings.ToLower(ev.Title)
	description := strings.ToLower(ev.Description)

	if queryLower != "" && (strings.Contains(title, queryLower) || strings.Contains(description, queryLower)) {
		return true
	}
	for _, p := range participants {
		if attendeesContain(ev.Attendees, p) {
			return true
		}
	}
	return false
}

func attendeesContain(attendees []string, participant string) bool {
	p := strings.ToLower(strings.TrimSpace(participant))
	if p == "" {
		return false
	}
	for _, a := range attendees {
		if strings.Contains(strings.ToLower(a), p) {
			return true
		}
	}
	return false
}
