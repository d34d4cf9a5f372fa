package extract_test

import (
	"testing"

	"email-meeting-triage/internal/extract"
)

func TestCleanBody(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "mojibake apostrophe",
			in:   "Letâ€™s meet tomorrow",
			want: "Let's meet tomorrow",
		},
		{
			name: "collapse space runs but keep newlines",
			in:   "Hello   there\n\n\n\nBest,\nSam",
			want: "Hello there\n\nBest,\nSam",
		},
		{
			name: "crlf normalized",
			in:   "line one\r\nline two",
			want: "line one\nline two",
		},
		{
			name: "trimmed",
			in:   "  padded  ",
			want: "padded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extract.CleanBody(tt.in); got != tt.want {
				t.Errorf("CleanBody(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
