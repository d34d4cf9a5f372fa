package datemath_test

import (
	"testing"
	"time"

	"email-meeting-triage/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	if _, err := datemath.NewParser("America/New_York"); err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}
	if _, err := datemath.NewParser("Not/AZone"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	// Wednesday, January 10, 2024
	base := time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC)
	startOfBase := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "today", relative: "today", want: startOfBase},
		{name: "tomorrow", relative: "tomorrow", want: startOfBase.AddDate(0, 0, 1)},
		{name: "yesterday", relative: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "next week is plus seven days", relative: "next week", want: startOfBase.AddDate(0, 0, 7)},
		{name: "in 3 days", relative: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "in 2 weeks", relative: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "in 1 month", relative: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "next friday", relative: "next friday", want: startOfBase.AddDate(0, 0, 2)},
		// Base is Wednesday, so "next wednesday" is a full week out.
		{name: "next wednesday wraps", relative: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "case insensitive", relative: "  Tomorrow ", want: startOfBase.AddDate(0, 0, 1)},
		{name: "unknown phrase errors", relative: "whenever", wantErr: true},
		{name: "unknown weekday errors", relative: "next someday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, base)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.relative)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.relative, got, tt.want)
			}
		})
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 1, 10, 23, 59, 59, 0, time.UTC)
	if got := parser.EndOfDay(start); !got.Equal(want) {
		t.Errorf("EndOfDay = %v, want %v", got, want)
	}
}
