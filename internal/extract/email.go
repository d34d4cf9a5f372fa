package extract

import (
	"regexp"
	"strings"

	"email-meeting-triage/internal/model"
)

var emailAddrRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// ExtractEmails returns the email addresses found in text, deduplicated by
// first appearance and capped at model.MaxParticipants. Returns nil when
// none are found.
func ExtractEmails(text string) []string {
	matches := emailAddrRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	var out []string
	for _, m := range matches {
		key := strings.ToLower(m)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, m)
		if len(out) == model.MaxParticipants {
			break
		}
	}
	return out
}

// PrimaryEmail returns the first plausible address, or the sentinel.
func PrimaryEmail(emails []string) string {
	if len(emails) == 0 {
		return model.NoEmailSentinel
	}
	return emails[0]
}

// BuildParticipants produces the participants list for a parsed email.
// The primary address always leads, every entry contains '@', and the
// sentinel case still yields a valid single-entry list.
func BuildParticipants(primary string, emails []string) []string {
	participants := make([]string, 0, model.MaxParticipants)
	if strings.Contains(primary, "@") {
		participants = append(participants, primary)
	}
	for _, e := range emails {
		if len(participants) == model.MaxParticipants {
			break
		}
		if !strings.Contains(e, "@") || strings.EqualFold(e, primary) {
			continue
		}
		participants = append(participants, e)
	}
	if len(participants) == 0 {
		participants = append(participants, model.NoEmailSentinel)
	}
	return participants
}
