package extract_test

import (
	"testing"

	"email-meeting-triage/internal/extract"
	"email-meeting-triage/internal/model"
)

func TestExtractContactName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "self introduction",
			text: "Hello, this is Maria Lopez from the sales side.",
			want: "Maria Lopez",
		},
		{
			name: "i am introduction",
			text: "Hi there, I'm David and I'd like to set up a time.",
			want: "David",
		},
		{
			name: "signature closing wins over greeting",
			text: "Hi John Smith, let's schedule a call. Best regards, Sarah",
			want: "Sarah",
		},
		{
			name: "sincerely closing",
			text: "Please confirm the slot.\n\nSincerely,\nJames Wong",
			want: "James Wong",
		},
		{
			name: "introduction beats closing",
			text: "Hi, this is Alice Chen.\nLooking forward to it.\nThanks,\nBob",
			want: "Alice Chen",
		},
		{
			name: "name above company line in signature",
			text: "See you then.\n\nPriya Sharma\nAcme Corp\n555-0100",
			want: "Priya Sharma",
		},
		{
			name: "stoplist word rejects candidate",
			text: "Best Regards\nMeeting Details",
			want: model.UnknownContact,
		},
		{
			name: "no name found",
			text: "please send the report as discussed.",
			want: model.UnknownContact,
		},
		{
			name: "empty input",
			text: "",
			want: model.UnknownContact,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extract.ExtractContactName(tt.text); got != tt.want {
				t.Errorf("ExtractContactName(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractCompany(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "legal suffix",
			text: "let's schedule a call with TechCorp Inc. on January 15th",
			want: "TechCorp Inc.",
		},
		{
			name: "multi word with suffix",
			text: "I represent Blue River Analytics LLC in this matter.",
			want: "Blue River Analytics LLC",
		},
		{
			name: "role at company",
			text: "I'm the CTO at Brightside and we need a demo.",
			want: "Brightside",
		},
		{
			name: "from clause",
			text: "Reaching out from Northwind about the renewal.",
			want: "Northwind",
		},
		{
			name: "with clause",
			text: "I work with Initech on their data platform.",
			want: "Initech",
		},
		{
			name: "known company lookup",
			text: "our procurement runs through Salesforce these days",
			want: "Salesforce",
		},
		{
			name: "excluded phrase not a company",
			text: "happy to meet with the team at your convenience.",
			want: model.UnknownCompany,
		},
		{
			name: "no company found",
			text: "see you soon, nothing else to add here.",
			want: model.UnknownCompany,
		},
		{
			name: "empty input",
			text: "",
			want: model.UnknownCompany,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extract.ExtractCompany(tt.text); got != tt.want {
				t.Errorf("ExtractCompany(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
