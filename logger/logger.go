package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// nolint:gochecknoglobals
var Instance *zap.Logger

const (
	defaultLevel = zap.InfoLevel

	formatJSON    = "json"
	formatConsole = "console"
)

// nolint:gochecknoinits
func init() {
	level := parseLevel(os.Getenv("LOG_LEVEL"))
	format := parseFormat(os.Getenv("LOG_FORMAT"))

	Instance = newLogger(level, format)
	Instance.Debug("logger created",
		zap.String("log_level", level.String()),
		zap.String("log_format", format),
	)
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	case "fatal":
		return zap.FatalLevel
	default:
		return defaultLevel
	}
}

func parseFormat(s string) string {
	if strings.ToLower(s) == formatConsole {
		return formatConsole
	}
	return formatJSON
}

func newLogger(level zapcore.Level, format string) *zap.Logger {
	encCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var enc zapcore.Encoder
	if format == formatConsole {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	// stderr keeps stdout clean for command output
	return zap.New(
		zapcore.NewCore(enc, zapcore.AddSync(os.Stderr), zap.NewAtomicLevelAt(level)),
		zap.AddCaller(),
		zap.AddStacktrace(zap.FatalLevel),
	)
}

// Named returns a child logger for the given component.
func Named(component string) *zap.Logger {
	return Instance.Named(component)
}

func Debug(msg string, fields ...zap.Field) {
	Instance.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	Instance.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Instance.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Instance.Error(msg, fields...)
}

func Panic(msg string, fields ...zap.Field) {
	Instance.Panic(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	Instance.Fatal(msg, fields...)
}
