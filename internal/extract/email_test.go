package extract_test

import (
	"reflect"
	"testing"

	"email-meeting-triage/internal/extract"
	"email-meeting-triage/internal/model"
)

func TestExtractEmails(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single address",
			text: "Reach me at sarah@techcorp.com anytime.",
			want: []string{"sarah@techcorp.com"},
		},
		{
			name: "dedup by appearance",
			text: "cc sarah@techcorp.com and bob@acme.io, again sarah@techcorp.com",
			want: []string{"sarah@techcorp.com", "bob@acme.io"},
		},
		{
			name: "case insensitive dedup keeps first form",
			text: "Sarah@TechCorp.com then sarah@techcorp.com",
			want: []string{"Sarah@TechCorp.com"},
		},
		{
			name: "capped at max participants",
			text: "a@x.com b@x.com c@x.com d@x.com e@x.com",
			want: []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com"},
		},
		{
			name: "none found",
			text: "no addresses in this text",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extract.ExtractEmails(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractEmails(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestBuildParticipants(t *testing.T) {
	t.Run("primary leads", func(t *testing.T) {
		got := extract.BuildParticipants("sarah@techcorp.com", []string{"bob@acme.io", "sarah@techcorp.com"})
		want := []string{"sarah@techcorp.com", "bob@acme.io"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("BuildParticipants = %v, want %v", got, want)
		}
	})

	t.Run("sentinel case still contains at sign", func(t *testing.T) {
		got := extract.BuildParticipants(model.NoEmailSentinel, nil)
		if !reflect.DeepEqual(got, []string{model.NoEmailSentinel}) {
			t.Errorf("BuildParticipants = %v, want sentinel list", got)
		}
	})
}
