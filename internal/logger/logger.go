package logger

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps the underlying zap logger with domain helpers.
type Logger struct {
	*zap.SugaredLogger
}

// Config represents logger configuration
type Config struct {
	Level  string
	Format string
}

// New builds a Logger. Format "console" gives human-readable output,
// anything else gives JSON.
func New(cfg Config) (*Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, err
		}
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}

	base, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	return &Logger{SugaredLogger: base.Sugar()}, nil
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// WithFields returns a logger with the given fields attached.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &Logger{SugaredLogger: l.SugaredLogger.With(args...)}
}

// LogAPIRequest logs external API requests
func (l *Logger) LogAPIRequest(service string, endpoint string, duration time.Duration, err error) {
	fields := map[string]interface{}{
		"service":  service,
		"endpoint": endpoint,
		"duration": duration.Milliseconds(),
	}

	if err != nil {
		fields["error"] = err.Error()
		l.WithFields(fields).Error("API request failed")
	} else {
		l.WithFields(fields).Info("API request completed")
	}
}

// LogRecommendation logs one recommendation run.
func (l *Logger) LogRecommendation(riskProfile string, fundCount int, monthly float64, duration time.Duration) {
	l.WithFields(map[string]interface{}{
		"risk_profile": riskProfile,
		"fund_count":   fundCount,
		"monthly":      monthly,
		"duration":     duration.Milliseconds(),
	}).Info("Recommendations generated")
}

// LogFundFetch logs a fund-data fetch and its outcome.
func (l *Logger) LogFundFetch(schemeCode string, status string, duration time.Duration) {
	l.WithFields(map[string]interface{}{
		"scheme_code": schemeCode,
		"status":      status,
		"duration":    duration.Milliseconds(),
	}).Debug("Fund data fetched")
}
