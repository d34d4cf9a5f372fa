package usecase

import (
	"context"
	"fmt"
	"time"

	"email-meeting-triage/internal/model"
	"email-meeting-triage/internal/triage"
)

// SuggestAvailability fetches the day's busy intervals from the calendar and
// reconciles them against the business-hours grid.
func (uc *implUseCase) SuggestAvailability(ctx context.Context, input triage.AvailabilityInput) (model.AvailabilityResult, error) {
	if uc.calendar == nil {
		return model.AvailabilityResult{}, triage.ErrNoCalendar
	}

	day, err := time.ParseInLocation("2006-01-02", input.Date, uc.dates.Location())
	if err != nil {
		return model.AvailabilityResult{}, fmt.Errorf("%w: %q", triage.ErrInvalidDate, input.Date)
	}

	dayStart := uc.dates.StartOfDay(day)
	dayEnd := dayStart.Add(24 * time.Hour)
	raw, err := uc.calendar.FreeBusy(ctx, input.CalendarID, dayStart, dayEnd)
	if err != nil {
		return model.AvailabilityResult{}, fmt.Errorf("failed to fetch busy intervals: %w", err)
	}

	// Intervals may spill past either midnight (all-day events, overnight
	// meetings). Clamp to the queried day before dropping to wall-clock form;
	// an end at next midnight renders as "24:00" so it still compares above
	// every in-day slot start.
	busy := make([]model.BusyInterval, 0, len(raw))
	for _, b := range raw {
		start, end := b.Start, b.End
		if start.Before(dayStart) {
			start = dayStart
		}
		if end.After(dayEnd) {
			end = dayEnd
		}
		if !start.Before(end) {
			continue
		}
		interval := model.BusyInterval{
			Start: start.In(uc.dates.Location()).Format("15:04"),
			End:   end.In(uc.dates.Location()).Format("15:04"),
		}
		if end.Equal(dayEnd) {
			interval.End = "24:00"
		}
		busy = append(busy, interval)
	}

	result := uc.reconcile(input.Date, busy, input.PreferredTimeText)

	uc.l.Infof(ctx, "SuggestAvailability: date=%s busy=%d suggested=%v",
		input.Date, len(busy), result.SuggestedTimes)

	return result, nil
}

// reconcile builds the business-hours slot grid, marks slots overlapping a
// busy interval unavailable, and derives the ranked suggestion list. Given
// the same inputs the output is identical, so regenerating suggestions from
// slots is idempotent.
func (uc *implUseCase) reconcile(date string, busy []model.BusyInterval, preferredText string) model.AvailabilityResult {
	startMin := parseClockMinutes(uc.cfg.DayStart)
	endMin := parseClockMinutes(uc.cfg.DayEnd)

	var slots []model.TimeSlot
	for m := startMin; m+uc.cfg.SlotMinutes <= endMin; m += uc.cfg.SlotMinutes {
		slot := model.TimeSlot{
			Start: formatClockMinutes(m),
			End:   formatClockMinutes(m + uc.cfg.SlotMinutes),
		}
		slot.Available = !overlapsAny(slot, busy)
		slots = append(slots, slot)
	}

	suggested := make([]string, 0, model.MaxSuggestedTimes)

	// The requester's stated time leads when it lands in a free slot, so the
	// user is not forced to re-scan the grid for the slot they asked for.
	if preferredText != "" {
		if preferred, ok := uc.dt.ExtractClockTime(preferredText); ok && preferredIsFree(preferred, slots) {
			suggested = append(suggested, preferred)
		}
	}

	for _, s := range slots {
		if len(suggested) == model.MaxSuggestedTimes {
			break
		}
		if !s.Available || contains(suggested, s.Start) {
			continue
		}
		suggested = append(suggested, s.Start)
	}

	return model.AvailabilityResult{
		Date:           date,
		Slots:          slots,
		SuggestedTimes: suggested,
	}
}

// overlapsAny reports half-open interval overlap between a slot and any busy
// interval: start1 < end2 && start2 < end1. Zero-padded "HH:MM" strings
// compare correctly as text.
func overlapsAny(slot model.TimeSlot, busy []model.BusyInterval) bool {
	for _, b := range busy {
		if slot.Start < b.End && b.Start < slot.End {
			return true
		}
	}
	return false
}

// preferredIsFree reports whether the preferred time exactly starts an
// available slot or falls within one's span.
func preferredIsFree(preferred string, slots []model.TimeSlot) bool {
	for _, s := range slots {
		if !s.Available {
			continue
		}
		if preferred == s.Start || (preferred > s.Start && preferred < s.End) {
			return true
		}
	}
	return false
}

func parseClockMinutes(clock string) int {
	var h, m int
	fmt.Sscanf(clock, "%d:%d", &h, &m)
	return h*60 + m
}

func formatClockMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
