package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"email-meeting-triage/config"
	_ "email-meeting-triage/docs" // Swagger docs
	"email-meeting-triage/internal/httpserver"
	"email-meeting-triage/internal/middleware"
	"email-meeting-triage/internal/triage"
	triageHTTP "email-meeting-triage/internal/triage/delivery/http"
	"email-meeting-triage/internal/triage/usecase"
	"email-meeting-triage/pkg/crm"
	"email-meeting-triage/pkg/datemath"
	"email-meeting-triage/pkg/gcalendar"
	"email-meeting-triage/pkg/llmprovider"
	"email-meeting-triage/pkg/log"
)

// @title       Email Meeting Triage API
// @description Email-intent extraction, availability reconciliation and meeting scheduling over Google Calendar with CRM sync.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Email Meeting Triage...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM provider chain (optional; heuristics-only without it)
	var llm triage.TextGenerator
	if len(cfg.LLM.Providers) > 0 {
		providers, provErr := llmprovider.InitializeProviders(&cfg.LLM)
		if provErr != nil {
			logger.Warnf(ctx, "LLM providers unavailable, heuristics only: %v", provErr)
		} else {
			retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
			maxTimeout, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
			llm = llmprovider.NewManager(providers, &llmprovider.Config{
				FallbackEnabled: cfg.LLM.FallbackEnabled,
				RetryAttempts:   cfg.LLM.RetryAttempts,
				RetryDelay:      retryDelay,
				MaxTotalTimeout: maxTimeout,
			}, logger)
			logger.Infof(ctx, "LLM chain initialized with %d provider(s)", len(providers))
		}
	} else {
		logger.Warn(ctx, "No LLM providers configured, heuristics only")
	}

	// 4. Date parsing in the configured timezone
	timezone := cfg.Scheduling.Timezone
	dates, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		timezone = "UTC"
		dates, _ = datemath.NewParser(timezone)
	}

	// 5. Google Calendar client (optional)
	var calendar triage.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. CRM sync client (optional)
	var crmClient triage.CRM
	if cfg.CRM.URL != "" {
		crmClient = crm.NewClient(cfg.CRM.URL, cfg.CRM.AccessToken)
		logger.Infof(ctx, "CRM sync enabled: %s", cfg.CRM.URL)
	}

	// 7. Triage UseCase and HTTP delivery
	triageUC := usecase.New(logger, llm, calendar, crmClient, dates, usecase.Config{
		Timezone:    timezone,
		DayStart:    cfg.Scheduling.DayStart,
		DayEnd:      cfg.Scheduling.DayEnd,
		SlotMinutes: cfg.Scheduling.SlotMinutes,
		CacheSize:   cfg.Scheduling.ParseCacheSize,
	}, nil)

	triageHandler := triageHTTP.New(logger, triageUC)

	// 8. HTTP Server
	mw := middleware.New(logger, cfg.HTTPServer.RateLimitPerMin)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		Middleware:    mw,
		TriageHandler: triageHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
