package extract_test

import (
	"testing"
	"time"

	"email-meeting-triage/internal/extract"
	"email-meeting-triage/internal/model"
	"email-meeting-triage/pkg/datemath"
)

// Wednesday, January 10, 2024, 09:00 UTC.
func fixedClock() time.Time {
	return time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
}

func newExtractor(t *testing.T) *extract.DateTimeExtractor {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	return extract.NewDateTimeExtractor(dates, fixedClock)
}

func TestExtractDateTime(t *testing.T) {
	e := newExtractor(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "labeled date and time",
			text: "Meeting Details\nDate: January 15, 2024\nTime: 2:00 PM",
			want: "January 15, 2024 at 2:00 PM",
		},
		{
			name: "month day at time without year infers current year",
			text: "Let's talk on March 5 at 2.30 PM about the contract",
			want: "March 5, 2024 at 2:30 PM",
		},
		{
			name: "current month stays in current year",
			text: "How about January 5 at 10:00 AM works",
			want: "January 5, 2024 at 10:00 AM",
		},
		{
			name: "gmt offset preserved",
			text: "Call on June 12 at 14:00 GMT+2 with the Berlin office",
			want: "June 12, 2024 at 14:00 GMT+2",
		},
		{
			name: "inline month day year at time",
			text: "let's schedule a call on January 15th, 2024 at 2:00 PM.",
			want: "January 15, 2024 at 2:00 PM",
		},
		{
			name: "available on layout",
			text: "I'm available on February 20, 2024 anytime after 3:00 PM",
			want: "February 20, 2024 at 3:00 PM",
		},
		{
			name: "tomorrow with time",
			text: "Can we sync tomorrow at 11:30 AM?",
			want: "January 11, 2024 at 11:30 AM",
		},
		{
			name: "tomorrow without minutes",
			text: "tomorrow at 3 PM works for me",
			want: "January 11, 2024 at 3:00 PM",
		},
		{
			name: "next week on weekday is plus seven days",
			text: "How about next week on Friday at 3:00 PM?",
			want: "January 17, 2024 at 3:00 PM",
		},
		{
			name: "bare tomorrow gives date only",
			text: "We need to cancel tomorrow's meeting, sorry for the short notice.",
			want: "January 11, 2024",
		},
		{
			name: "bare next week gives date only",
			text: "Let's catch up sometime next week.",
			want: "January 17, 2024",
		},
		{
			name: "date only",
			text: "The conference runs on April 3, 2024 in Austin",
			want: "April 3, 2024",
		},
		{
			name: "relative date with time beats incidental bare date",
			text: "Let's meet tomorrow at 2 PM to review the January 15, 2024 report",
			want: "January 11, 2024 at 2:00 PM",
		},
		{
			name: "time only becomes today",
			text: "Does 4:00 PM suit you?",
			want: "Today at 4:00 PM",
		},
		{
			name: "nothing matches",
			text: "Thanks for the update on the project.",
			want: model.NotSpecified,
		},
		{
			name: "empty input",
			text: "",
			want: model.NotSpecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Extract(tt.text); got != tt.want {
				t.Errorf("Extract(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// Earlier patterns must win over later, more general ones.
func TestExtractDateTimePrecedence(t *testing.T) {
	e := newExtractor(t)

	// Contains both a labeled layout and a bare relative token.
	text := "Tomorrow works too, but officially:\nDate: March 1, 2024\nTime: 9:00 AM"
	if got, want := e.Extract(text), "March 1, 2024 at 9:00 AM"; got != want {
		t.Errorf("Extract = %q, want %q", got, want)
	}
}

// A stated month that has already passed this year resolves to next year.
func TestExtractDateTimeYearInference(t *testing.T) {
	dates, _ := datemath.NewParser("UTC")
	julyClock := func() time.Time {
		return time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	}
	e := extract.NewDateTimeExtractor(dates, julyClock)

	if got, want := e.Extract("See you March 5 at 2:00 PM"), "March 5, 2025 at 2:00 PM"; got != want {
		t.Errorf("Extract = %q, want %q", got, want)
	}
}

func TestExtractClockTime(t *testing.T) {
	e := newExtractor(t)

	tests := []struct {
		text   string
		want   string
		wantOK bool
	}{
		{"around 10:00 AM would be great", "10:00", true},
		{"2:30 PM or later", "14:30", true},
		{"12:15 AM counts as midnight", "00:15", true},
		{"12:00 PM is noon", "12:00", true},
		{"how about 3 PM", "15:00", true},
		{"at 14.45 if possible", "14:45", true},
		{"no time here", "", false},
	}

	for _, tt := range tests {
		got, ok := e.ExtractClockTime(tt.text)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ExtractClockTime(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.wantOK)
		}
	}
}
