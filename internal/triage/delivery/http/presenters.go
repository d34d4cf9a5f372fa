package http

import (
	"email-meeting-triage/internal/model"
	"email-meeting-triage/internal/triage"
)

// --- Request DTOs ---

type parseReq struct {
	EmailText      string `json:"email_text"      binding:"required"`
	ForceHeuristic bool   `json:"force_heuristic"`
}

func (r parseReq) toInput() triage.ParseEmailInput {
	return triage.ParseEmailInput{
		EmailText:      r.EmailText,
		ForceHeuristic: r.ForceHeuristic,
	}
}

type triageReq struct {
	EmailText  string `json:"email_text"  binding:"required"`
	CalendarID string `json:"calendar_id"`
}

func (r triageReq) toInput() triage.TriageInput {
	return triage.TriageInput{
		EmailText:  r.EmailText,
		CalendarID: r.CalendarID,
	}
}

type availabilityReq struct {
	Date              string   `json:"date"           binding:"required"`
	CalendarID        string   `json:"calendar_id"`
	Participants      []string `json:"participants"`
	PreferredTimeText string   `json:"preferred_time"`
}

func (r availabilityReq) toInput() triage.AvailabilityInput {
	return triage.AvailabilityInput{
		Date:              r.Date,
		CalendarID:        r.CalendarID,
		Participants:      r.Participants,
		PreferredTimeText: r.PreferredTimeText,
	}
}

type findEventReq struct {
	Query        string   `json:"query"`
	Participants []string `json:"participants"`
	CalendarID   string   `json:"calendar_id"`
	WindowDays   int      `json:"window_days"`
}

func (r findEventReq) toInput() triage.FindEventInput {
	return triage.FindEventInput{
		Query:        r.Query,
		Participants: r.Participants,
		CalendarID:   r.CalendarID,
		WindowDays:   r.WindowDays,
	}
}

type scheduleReq struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Date            string   `json:"date"       binding:"required"`
	StartTime       string   `json:"start_time" binding:"required"`
	DurationMinutes int      `json:"duration_minutes"`
	Participants    []string `json:"participants"`
	CalendarID      string   `json:"calendar_id"`
	ContactName     string   `json:"contact_name"`
	Company         string   `json:"company"`
}

func (r scheduleReq) toInput() triage.ScheduleInput {
	return triage.ScheduleInput{
		Title:           r.Title,
		Description:     r.Description,
		Date:            r.Date,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		Participants:    r.Participants,
		CalendarID:      r.CalendarID,
		ContactName:     r.ContactName,
		Company:         r.Company,
	}
}

type rescheduleReq struct {
	Query           string   `json:"query"          binding:"required"`
	Participants    []string `json:"participants"`
	CalendarID      string   `json:"calendar_id"`
	NewDate         string   `json:"new_date"       binding:"required"`
	NewStartTime    string   `json:"new_start_time" binding:"required"`
	DurationMinutes int      `json:"duration_minutes"`
	Reason          string   `json:"reason"`
}

func (r rescheduleReq) toInput() triage.RescheduleInput {
	return triage.RescheduleInput{
		Query:           r.Query,
		Participants:    r.Participants,
		CalendarID:      r.CalendarID,
		NewDate:         r.NewDate,
		NewStartTime:    r.NewStartTime,
		DurationMinutes: r.DurationMinutes,
		Reason:          r.Reason,
	}
}

type cancelReq struct {
	Query        string   `json:"query" binding:"required"`
	Participants []string `json:"participants"`
	CalendarID   string   `json:"calendar_id"`
	Reason       string   `json:"reason"`
}

func (r cancelReq) toInput() triage.CancelInput {
	return triage.CancelInput{
		Query:        r.Query,
		Participants: r.Participants,
		CalendarID:   r.CalendarID,
		Reason:       r.Reason,
	}
}

// --- Response DTOs ---

type parseResp struct {
	Record         model.ParsedEmail `json:"record"`
	Source         string            `json:"source"`
	FallbackReason string            `json:"fallback_reason,omitempty"`
}

func newParseResp(out triage.ParseEmailOutput) parseResp {
	return parseResp{
		Record:         out.Record,
		Source:         string(out.Source),
		FallbackReason: out.FallbackReason,
	}
}

type triageResp struct {
	Parsed       parseResp                 `json:"parsed"`
	Availability *model.AvailabilityResult `json:"availability,omitempty"`
	Match        *model.EventSearchResult  `json:"match,omitempty"`
}

func newTriageResp(out triage.TriageOutput) triageResp {
	return triageResp{
		Parsed:       newParseResp(out.Parsed),
		Availability: out.Availability,
		Match:        out.Match,
	}
}
