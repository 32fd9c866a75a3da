package logging

import (
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/lmittmann/tint"
)

type SlogConfig struct {
	// Writer defaults to os.Stdout.
	Writer    io.Writer
	Level     slog.Leveler
	AddSource bool
	// IsJSON selects the JSON handler; otherwise tint renders colored text.
	IsJSON bool
}

// SlogLogger writes entries through log/slog.
type SlogLogger struct {
	logger *slog.Logger
}

func NewSlogLogger(cfg SlogConfig) *SlogLogger {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Level == nil {
		cfg.Level = slog.LevelInfo
	}

	var handler slog.Handler
	if cfg.IsJSON {
		handler = slog.NewJSONHandler(cfg.Writer, &slog.HandlerOptions{
			Level:     cfg.Level,
			AddSource: cfg.AddSource,
		})
	} else {
		handler = tint.NewHandler(cfg.Writer, &tint.Options{
			Level:      cfg.Level,
			AddSource:  cfg.AddSource,
			TimeFormat: "2006-01-02 15:04:05",
		})
	}
	return &SlogLogger{logger: slog.New(handler)}
}

// attrs sorts keys so output is stable.
func attrs(fields Fields) []any {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, slog.Any(k, fields[k]))
	}
	return out
}

func (l *SlogLogger) Debug(msg string, fields Fields) { l.logger.Debug(msg, attrs(fields)...) }
func (l *SlogLogger) Info(msg string, fields Fields)  { l.logger.Info(msg, attrs(fields)...) }
func (l *SlogLogger) Warn(msg string, fields Fields)  { l.logger.Warn(msg, attrs(fields)...) }

func (l *SlogLogger) Error(msg string, err error, fields Fields) {
	a := attrs(fields)
	if err != nil {
		a = append(a, slog.String("error", err.Error()))
	}
	l.logger.Error(msg, a...)
}

func (l *SlogLogger) WithFields(fields Fields) Logger {
	return &SlogLogger{logger: l.logger.With(attrs(fields)...)}
}
