package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"email-meeting-triage/config"
	"email-meeting-triage/pkg/deepseek"
	"email-meeting-triage/pkg/gemini"
)

// InitializeProviders builds Provider instances from config, sorted by
// priority ascending, disabled entries filtered out. Providers that fail to
// initialize are skipped so one bad entry does not take the service down.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.Slice(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var initErrors []string
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors, fmt.Sprintf("%s: %v", p.Name, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no provider could be initialized: %v", initErrors)
	}
	return providers, nil
}

func createProvider(cfg config.ProviderConfig) (Provider, error) {
	timeout, _ := time.ParseDuration(cfg.Timeout)

	switch cfg.Name {
	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			APIURL:  cfg.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, err
		}
		return &geminiProvider{client: client}, nil
	case "deepseek":
		client, err := deepseek.New(deepseek.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, err
		}
		return &deepseekProvider{client: client}, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Name)
	}
}

// geminiProvider adapts pkg/gemini to the Provider interface.
type geminiProvider struct {
	client *gemini.Client
}

func (p *geminiProvider) GenerateText(ctx context.Context, req *Request) (string, error) {
	text, err := p.client.GenerateText(ctx, req.System, req.Prompt, req.Temperature, req.MaxTokens)
	if err != nil {
		var apiErr *gemini.APIError
		if errors.As(err, &apiErr) {
			if kind := classifyStatus(apiErr.StatusCode); kind != "" {
				return "", &FatalError{Provider: p.Name(), Kind: kind, Err: err}
			}
		}
		return "", err
	}
	return text, nil
}

func (p *geminiProvider) Name() string  { return "gemini" }
func (p *geminiProvider) Model() string { return p.client.Model() }

// deepseekProvider adapts pkg/deepseek to the Provider interface.
type deepseekProvider struct {
	client *deepseek.Client
}

func (p *deepseekProvider) GenerateText(ctx context.Context, req *Request) (string, error) {
	text, err := p.client.GenerateText(ctx, req.System, req.Prompt, req.Temperature, req.MaxTokens)
	if err != nil {
		var apiErr *deepseek.APIError
		if errors.As(err, &apiErr) {
			if kind := classifyStatus(apiErr.StatusCode); kind != "" {
				return "", &FatalError{Provider: p.Name(), Kind: kind, Err: err}
			}
		}
		return "", err
	}
	return text, nil
}

func (p *deepseekProvider) Name() string  { return "deepseek" }
func (p *deepseekProvider) Model() string { return p.client.Model() }
