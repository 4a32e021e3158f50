package logger

import (
	"errors"
	"fmt"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogLevel int

const (
	Debug LogLevel = iota
	Info
	Warn
	Error
)

var levelNames = map[string]LogLevel{
	"debug":   Debug,
	"info":    Info,
	"warn":    Warn,
	"warning": Warn,
	"error":   Error,
}

// ParseLevel maps a level name to a LogLevel; the empty string is Warn.
func ParseLevel(s string) (LogLevel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Warn, nil
	}
	if l, ok := levelNames[s]; ok {
		return l, nil
	}
	return Warn, fmt.Errorf("unknown log level %q", s)
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case Debug:
		return zap.DebugLevel
	case Info:
		return zap.InfoLevel
	case Error:
		return zap.ErrorLevel
	default:
		return zap.WarnLevel
	}
}

// ZapLogger adapts a sugared zap logger to the calculation engine's Logger.
type ZapLogger struct {
	logger *zap.SugaredLogger
}

// NewZapLogger builds a console logger writing to stderr, leaving stdout to
// the report. The returned func flushes buffered entries.
func NewZapLogger(level LogLevel) (*ZapLogger, func(), error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(level.zapLevel())

	l, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("can't init logger: %w", err)
	}

	logger := &ZapLogger{
		logger: l.Sugar(),
	}

	syncFunc := func() {
		if err := logger.Sync(); err != nil && !errors.Is(err, syscall.EBADF) && !errors.Is(err, syscall.ENOTTY) && !errors.Is(err, syscall.EINVAL) {
			logger.Errorf("%s: can't sync logger", err)
		}
	}

	return logger, syncFunc, nil
}

// New wraps an existing zap logger.
func New(l *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: l.Sugar()}
}

func (l *ZapLogger) With(args ...any) *ZapLogger {
	return &ZapLogger{
		logger: l.logger.With(args...),
	}
}

func (l *ZapLogger) Debugf(template string, args ...any) {
	l.logger.Debugf(template, args...)
}

func (l *ZapLogger) Infof(template string, args ...any) {
	l.logger.Infof(template, args...)
}

func (l *ZapLogger) Warnf(template string, args ...any) {
	l.logger.Warnf(template, args...)
}

func (l *ZapLogger) Errorf(template string, args ...any) {
	l.logger.Errorf(template, args...)
}

func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}
