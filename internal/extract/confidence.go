package extract

import (
	"strings"

	"email-meeting-triage/internal/model"
)

// Confidence scoring scheme. One fixed increment per resolved field keeps
// the score monotone in the number of non-sentinel fields.
const (
	confidenceBase      = 0.5
	confidenceIncrement = 0.15
	confidenceCap       = 0.95
)

// ScoreConfidence computes a bounded [0,1] quality score from the presence
// and validity of extracted fields. The cap leaves room below certainty:
// heuristic extraction is never fully trusted.
func ScoreConfidence(contactName, company, datetime string, emails []string) float64 {
	score := confidenceBase

	if contactName != model.UnknownContact && validName(contactName) {
		score += confidenceIncrement
	}
	if company != model.UnknownCompany && len(company) <= companyMaxLen {
		score += confidenceIncrement
	}
	if datetime != model.NotSpecified && strings.TrimSpace(datetime) != "" {
		score += confidenceIncrement
	}
	if len(emails) > 0 {
		score += confidenceIncrement
	}

	if score > confidenceCap {
		score = confidenceCap
	}
	return score
}
