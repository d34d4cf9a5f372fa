package llmprovider_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"email-meeting-triage/pkg/llmprovider"
	"email-meeting-triage/pkg/log"
)

// stubProvider scripts a sequence of results for GenerateText.
type stubProvider struct {
	name    string
	results []stubResult
	calls   int
}

type stubResult struct {
	text string
	err  error
}

func (s *stubProvider) GenerateText(_ context.Context, _ *llmprovider.Request) (string, error) {
	r := s.results[min(s.calls, len(s.results)-1)]
	s.calls++
	return r.text, r.err
}

func (s *stubProvider) Name() string  { return s.name }
func (s *stubProvider) Model() string { return s.name + "-model" }

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func managerConfig() *llmprovider.Config {
	return &llmprovider.Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
		MaxTotalTimeout: time.Second,
	}
}

func TestManagerFirstProviderSucceeds(t *testing.T) {
	p := &stubProvider{name: "gemini", results: []stubResult{{text: "ok"}}}
	m := llmprovider.NewManager([]llmprovider.Provider{p}, managerConfig(), log.NewNop())

	resp, err := m.GenerateText(context.Background(), &llmprovider.Request{Prompt: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "ok" || resp.ProviderName != "gemini" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestManagerRetriesTransientThenSucceeds(t *testing.T) {
	p := &stubProvider{name: "gemini", results: []stubResult{
		{err: errors.New("connection reset")},
		{text: "ok"},
	}}
	m := llmprovider.NewManager([]llmprovider.Provider{p}, managerConfig(), log.NewNop())

	resp, err := m.GenerateText(context.Background(), &llmprovider.Request{Prompt: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "ok" {
		t.Errorf("got %q, want ok", resp.Text)
	}
	if p.calls != 2 {
		t.Errorf("calls = %d, want 2", p.calls)
	}
}

func TestManagerFallsBackToNextProvider(t *testing.T) {
	bad := &stubProvider{name: "gemini", results: []stubResult{{err: errors.New("boom")}}}
	good := &stubProvider{name: "deepseek", results: []stubResult{{text: "ok"}}}
	m := llmprovider.NewManager([]llmprovider.Provider{bad, good}, managerConfig(), log.NewNop())

	resp, err := m.GenerateText(context.Background(), &llmprovider.Request{Prompt: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ProviderName != "deepseek" {
		t.Errorf("provider = %q, want deepseek", resp.ProviderName)
	}
	// Transient failure retried before falling back.
	if bad.calls != 2 {
		t.Errorf("bad.calls = %d, want 2", bad.calls)
	}
}

func TestManagerFatalErrorNotRetried(t *testing.T) {
	fatal := &llmprovider.FatalError{Provider: "gemini", Kind: llmprovider.FatalAuth, Err: errors.New("invalid key")}
	p := &stubProvider{name: "gemini", results: []stubResult{{err: fatal}}}
	m := llmprovider.NewManager([]llmprovider.Provider{p}, managerConfig(), log.NewNop())

	_, err := m.GenerateText(context.Background(), &llmprovider.Request{Prompt: "x"})
	if !llmprovider.IsFatal(err) {
		t.Fatalf("expected fatal error, got %v", err)
	}
	if p.calls != 1 {
		t.Errorf("calls = %d, want 1 (no retry on fatal)", p.calls)
	}
}

func TestManagerAllFailReturnsWrappedError(t *testing.T) {
	a := &stubProvider{name: "gemini", results: []stubResult{{err: errors.New("x")}}}
	b := &stubProvider{name: "deepseek", results: []stubResult{{err: errors.New("y")}}}
	m := llmprovider.NewManager([]llmprovider.Provider{a, b}, managerConfig(), log.NewNop())

	_, err := m.GenerateText(context.Background(), &llmprovider.Request{Prompt: "x"})
	if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
		t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
	}
}

func TestManagerNoProviders(t *testing.T) {
	m := llmprovider.NewManager(nil, managerConfig(), log.NewNop())
	if _, err := m.GenerateText(context.Background(), &llmprovider.Request{}); !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
	}
}
