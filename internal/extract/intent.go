package extract

import (
	"strings"

	"email-meeting-triage/internal/model"
)

// Phrase sets checked in precedence order. Reschedule and cancel must be
// tried before schedule: "reschedule the meeting" contains the schedule
// keyword "meeting" but is not a scheduling request.
var (
	reschedulePhrases = []string{
		"reschedule", "move the meeting", "move our meeting",
		"change the time", "change the date", "postpone", "push back",
		"different time", "another time",
	}
	cancelPhrases = []string{
		"cancel", "call off", "can't make it", "cannot make it",
		"won't be able to attend", "no longer need",
	}
	schedulePhrases = []string{
		"schedule", "meeting", "appointment", "call", "arrange",
		"set up a time", "invite you to", "available on", "let's connect",
		"let's meet", "catch up", "sync up", "get together", "demo",
	}
)

// ClassifyIntent maps email text to a meeting intent by case-insensitive
// phrase matching. The first matching set wins; no match means general.
func ClassifyIntent(text string) model.Intent {
	lower := strings.ToLower(text)

	if containsAny(lower, reschedulePhrases) {
		return model.IntentReschedule
	}
	if containsAny(lower, cancelPhrases) {
		return model.IntentCancel
	}
	if containsAny(lower, schedulePhrases) {
		return model.IntentSchedule
	}
	return model.IntentGeneral
}

func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
