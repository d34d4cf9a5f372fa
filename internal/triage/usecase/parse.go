package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"email-meeting-triage/internal/extract"
	"email-meeting-triage/internal/model"
	"email-meeting-triage/internal/triage"
	"email-meeting-triage/pkg/llmprovider"
)

// ParseEmail runs the extraction pipeline: clean the text, try the model
// path, validate or repair its output with the heuristic extractors, and fall
// back to pure heuristics when the model is unavailable. It never fails on
// malformed input; only fatal provider errors (auth, quota) are surfaced.
func (uc *implUseCase) ParseEmail(ctx context.Context, input triage.ParseEmailInput) (triage.ParseEmailOutput, error) {
	cleaned := extract.CleanBody(input.EmailText)

	if uc.llm == nil || input.ForceHeuristic {
		return triage.ParseEmailOutput{
			Record: uc.heuristicParse(cleaned),
			Source: model.SourceFallback,
		}, nil
	}

	record, reconstructed, err := uc.parseWithModel(ctx, cleaned)
	if err != nil {
		if llmprovider.IsFatal(err) {
			uc.l.Errorf(ctx, "ParseEmail: fatal provider error: %v", err)
			return triage.ParseEmailOutput{}, err
		}
		uc.l.Warnf(ctx, "ParseEmail: model path failed, using heuristics: %v", err)
		return triage.ParseEmailOutput{
			Record:         uc.heuristicParse(cleaned),
			Source:         model.SourceFallback,
			FallbackReason: err.Error(),
		}, nil
	}

	out := triage.ParseEmailOutput{
		Record: uc.repairRecord(record, cleaned),
		Source: model.SourceModel,
	}
	// A reconstructed record is heuristic output wearing a model request, so
	// it is labeled like any other fallback.
	if reconstructed {
		out.Source = model.SourceFallback
		out.FallbackReason = "model response was not valid JSON"
	}
	return out, nil
}

// heuristicParse assembles a record from the extractors alone. Deterministic,
// so results are cached by cleaned text.
func (uc *implUseCase) heuristicParse(cleaned string) model.ParsedEmail {
	if rec, ok := uc.parseCache.Get(cleaned); ok {
		return rec
	}

	emails := extract.ExtractEmails(cleaned)
	primary := extract.PrimaryEmail(emails)
	contactName := extract.ExtractContactName(cleaned)
	company := extract.ExtractCompany(cleaned)
	datetime := uc.dt.Extract(cleaned)

	rec := model.ParsedEmail{
		ContactName:  contactName,
		Email:        primary,
		Company:      company,
		DateTime:     datetime,
		Participants: extract.BuildParticipants(primary, emails),
		Intent:       extract.ClassifyIntent(cleaned),
		Confidence:   extract.ScoreConfidence(contactName, company, datetime, emails),
		Reasoning:    "Extracted with fallback heuristics",
	}

	uc.parseCache.Add(cleaned, rec)
	return rec
}

// modelRecord is the shape the prompt asks the model to return.
type modelRecord struct {
	ContactName  string   `json:"contact_name"`
	Email        string   `json:"email"`
	Company      string   `json:"company"`
	DateTime     string   `json:"datetime"`
	Participants []string `json:"participants"`
	Intent       string   `json:"intent"`
	Confidence   float64  `json:"confidence"`
	Reasoning    string   `json:"reasoning"`
}

const parseSystemPrompt = "You are an assistant that extracts meeting details from emails. " +
	"Respond with a single JSON object and no surrounding prose."

func buildParsePrompt(emailText string) string {
	var sb strings.Builder
	sb.WriteString("Extract the meeting details from the email below.\n\n")
	sb.WriteString("Return JSON with exactly these fields:\n")
	sb.WriteString(`{"contact_name": string, "email": string, "company": string, ` +
		`"datetime": string, "participants": [string], ` +
		`"intent": "schedule_meeting"|"reschedule_meeting"|"cancel_meeting"|"general", ` +
		`"confidence": number, "reasoning": string}` + "\n\n")
	sb.WriteString(`Use "Unknown Contact", "Unknown Company", "no-email@example.com" or ` +
		`"Not specified" when a field cannot be determined.` + "\n\n")
	sb.WriteString("Email:\n")
	sb.WriteString(emailText)
	return sb.String()
}

// parseWithModel asks the provider chain for a structured record. A response
// that cannot be decoded is rebuilt field by field from the original text
// rather than reported as an error; the reconstructed flag marks that path.
func (uc *implUseCase) parseWithModel(ctx context.Context, cleaned string) (model.ParsedEmail, bool, error) {
	resp, err := uc.llm.GenerateText(ctx, &llmprovider.Request{
		System:      parseSystemPrompt,
		Prompt:      buildParsePrompt(cleaned),
		Temperature: 0.2,
		MaxTokens:   1024,
	})
	if err != nil {
		return model.ParsedEmail{}, false, fmt.Errorf("model request failed: %w", err)
	}

	var raw modelRecord
	sanitized := sanitizeJSONResponse(resp.Text)
	if err := json.Unmarshal([]byte(sanitized), &raw); err != nil {
		uc.l.Warnf(ctx, "parseWithModel: undecodable response from %s, reconstructing: %v", resp.ProviderName, err)
		rec := uc.heuristicParse(cleaned)
		rec.Reasoning = "Model response was not valid JSON; reconstructed with heuristics"
		return rec, true, nil
	}

	return model.ParsedEmail{
		ContactName:  raw.ContactName,
		Email:        raw.Email,
		Company:      raw.Company,
		DateTime:     raw.DateTime,
		Participants: raw.Participants,
		Intent:       model.Intent(raw.Intent),
		Confidence:   raw.Confidence,
		Reasoning:    fmt.Sprintf("Extracted by %s: %s", resp.ProviderName, raw.Reasoning),
	}, false, nil
}

// repairRecord runs a model-produced record through the same field-level
// validators as the fallback path.
func (uc *implUseCase) repairRecord(rec model.ParsedEmail, cleaned string) model.ParsedEmail {
	if rec.ContactName == "" {
		rec.ContactName = extract.ExtractContactName(cleaned)
	}
	if rec.Company == "" {
		rec.Company = extract.ExtractCompany(cleaned)
	}

	if rec.Email == "" || !strings.Contains(rec.Email, "@") {
		emails := extract.ExtractEmails(cleaned)
		rec.Email = extract.PrimaryEmail(emails)
	}

	if rec.DateTime == "" || rec.DateTime == model.NotSpecified {
		rec.DateTime = uc.dt.Extract(cleaned)
	}

	participants := make([]string, 0, len(rec.Participants))
	for _, p := range rec.Participants {
		if strings.Contains(p, "@") {
			participants = append(participants, strings.ToLower(strings.TrimSpace(p)))
		}
		if len(participants) == model.MaxParticipants {
			break
		}
	}
	if rec.Email == model.NoEmailSentinel && len(participants) > 0 {
		rec.Email = participants[0]
	}
	rec.Participants = extract.BuildParticipants(rec.Email, participants)

	switch rec.Intent {
	case model.IntentSchedule, model.IntentReschedule, model.IntentCancel, model.IntentGeneral:
	default:
		rec.Intent = extract.ClassifyIntent(cleaned)
	}

	if rec.Confidence < 0 || rec.Confidence > 1 {
		rec.Confidence = extract.ScoreConfidence(rec.ContactName, rec.Company, rec.DateTime, rec.Participants)
	}

	return rec
}

var jsonFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse strips markdown code fences and surrounding prose that
// models often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if matches := jsonFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
