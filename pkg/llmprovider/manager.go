package llmprovider

import (
	"context"
	"fmt"
	"time"

	"email-meeting-triage/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines retry and fallback behavior for the Manager.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int           // attempts per provider, fixed delay between them
	RetryDelay      time.Duration // fixed, not exponential
	MaxTotalTimeout time.Duration // budget for the entire fallback chain
}

// NewManager creates a Manager over the given providers (assumed already
// sorted by priority).
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// GenerateText tries each provider in priority order. Transient failures are
// retried a bounded number of times with a fixed delay, then the next
// provider is tried. Fatal failures (auth, quota) skip retries; if the whole
// chain fails and any failure was fatal, that fatal error is returned so the
// caller can surface it.
func (m *Manager) GenerateText(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	var firstFatal *FatalError

	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("fallback chain timed out: %w", ctx.Err())
		default:
		}

		text, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logger.Info(ctx, "LLM generation successful",
				"provider", provider.Name(),
				"model", provider.Model(),
			)
			return &Response{
				Text:         text,
				ProviderName: provider.Name(),
				ModelName:    provider.Model(),
			}, nil
		}

		m.logger.Warn(ctx, "LLM generation failed",
			"provider", provider.Name(),
			"model", provider.Model(),
			"error", err.Error(),
		)
		lastErr = err

		if fe, ok := asFatal(err); ok && firstFatal == nil {
			firstFatal = fe
		}

		if !m.config.FallbackEnabled {
			break
		}
	}

	if firstFatal != nil {
		return nil, firstFatal
	}
	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry runs a single provider with bounded fixed-delay retry.
// Fatal errors are returned immediately.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (string, error) {
	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(m.config.RetryDelay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		text, err := provider.GenerateText(ctx, req)
		if err == nil {
			return text, nil
		}
		if IsFatal(err) {
			return "", err
		}
		lastErr = err
	}

	return "", lastErr
}
