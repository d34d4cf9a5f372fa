package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging contract used across the service.
// All methods take a context so request-scoped fields can be attached later.
type Logger interface {
	Debug(ctx context.Context, msg string, keysAndValues ...any)
	Debugf(ctx context.Context, format string, args ...any)
	Info(ctx context.Context, msg string, keysAndValues ...any)
	Infof(ctx context.Context, format string, args ...any)
	Warn(ctx context.Context, msg string, keysAndValues ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Error(ctx context.Context, msg string, keysAndValues ...any)
	Errorf(ctx context.Context, format string, args ...any)
}

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug or production
	Encoding     string // console or json
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the zap-backed Logger from config.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(cfg.Level); err == nil {
		level = parsed
	}

	var zc zap.Config
	if cfg.Mode == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		if cfg.ColorEnabled {
			zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	if cfg.Encoding != "" {
		zc.Encoding = cfg.Encoding
	}

	base, err := zc.Build(zap.AddCallerSkip(1))
	if err != nil {
		base = zap.NewNop()
	}
	return &zapLogger{sugar: base.Sugar()}
}

// NewNop returns a Logger that discards everything. Used in tests.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *zapLogger) Debug(_ context.Context, msg string, kv ...any)  { l.sugar.Debugw(msg, kv...) }
func (l *zapLogger) Debugf(_ context.Context, f string, args ...any) { l.sugar.Debugf(f, args...) }
func (l *zapLogger) Info(_ context.Context, msg string, kv ...any)   { l.sugar.Infow(msg, kv...) }
func (l *zapLogger) Infof(_ context.Context, f string, args ...any)  { l.sugar.Infof(f, args...) }
func (l *zapLogger) Warn(_ context.Context, msg string, kv ...any)   { l.sugar.Warnw(msg, kv...) }
func (l *zapLogger) Warnf(_ context.Context, f string, args ...any)  { l.sugar.Warnf(f, args...) }
func (l *zapLogger) Error(_ context.Context, msg string, kv ...any)  { l.sugar.Errorw(msg, kv...) }
func (l *zapLogger) Errorf(_ context.Context, f string, args ...any) { l.sugar.Errorf(f, args...) }
