package usecase

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"email-meeting-triage/internal/extract"
	"email-meeting-triage/internal/model"
	"email-meeting-triage/internal/triage"
	"email-meeting-triage/pkg/datemath"
	pkgLog "email-meeting-triage/pkg/log"
)

// Config tunes the reconciliation grid and the heuristic parse cache.
type Config struct {
	Timezone    string
	DayStart    string // "HH:MM", default "09:00"
	DayEnd      string // "HH:MM", default "17:00"
	SlotMinutes int    // default 60
	CacheSize   int    // heuristic parse cache entries, default 256
}

type implUseCase struct {
	l          pkgLog.Logger
	llm        triage.TextGenerator
	calendar   triage.Calendar
	crm        triage.CRM
	dt         *extract.DateTimeExtractor
	dates      *datemath.Parser
	parseCache *lru.Cache[string, model.ParsedEmail]
	cfg        Config
	now        func() time.Time
}

// New creates a new triage UseCase instance. llm and crmClient may be nil;
// the pipeline then runs heuristics-only and skips CRM sync. now may be nil.
func New(
	l pkgLog.Logger,
	llm triage.TextGenerator,
	calendar triage.Calendar,
	crmClient triage.CRM,
	dates *datemath.Parser,
	cfg Config,
	now func() time.Time,
) *implUseCase {
	if cfg.DayStart == "" {
		cfg.DayStart = "09:00"
	}
	if cfg.DayEnd == "" {
		cfg.DayEnd = "17:00"
	}
	if cfg.SlotMinutes <= 0 {
		cfg.SlotMinutes = 60
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 256
	}
	if now == nil {
		now = time.Now
	}

	cache, _ := lru.New[string, model.ParsedEmail](cfg.CacheSize)

	return &implUseCase{
		l:          l,
		llm:        llm,
		calendar:   calendar,
		crm:        crmClient,
		dt:         extract.NewDateTimeExtractor(dates, now),
		dates:      dates,
		parseCache: cache,
		cfg:        cfg,
		now:        now,
	}
}
