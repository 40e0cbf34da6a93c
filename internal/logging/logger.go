// Package logging provides debug logging for termctl.
//
// Logging is silent unless enabled through the environment, and it never
// writes to stdout or stderr: the library owns the controlling terminal,
// so log output would corrupt the display it is managing. When enabled,
// entries go to the file named by TERMCTL_LOG_FILE.
package logging

import (
	"encoding/hex"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// Environment variables controlling log output.
//
// LevelEnvVar selects verbosity ("debug", "info", "warn", "error");
// when unset, logging is disabled entirely. FileEnvVar names the log
// file; when unset, it defaults to "termctl.log" in the temp directory.
const (
	LevelEnvVar = "TERMCTL_LOG_LEVEL"
	FileEnvVar  = "TERMCTL_LOG_FILE"
)

// Initialize configures the package logger from the given level. An
// empty level falls back to TERMCTL_LOG_LEVEL; if that is also unset,
// the logger stays a nop.
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LevelEnvVar)
	}
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	path := os.Getenv(FileEnvVar)
	if path == "" {
		path = os.TempDir() + "/termctl.log"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built
	return nil
}

// InitializeFromEnv initializes the logger from TERMCTL_LOG_LEVEL,
// staying silent when the variable is unset.
func InitializeFromEnv() error {
	return Initialize("")
}

// Debug logs a debug message.
func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

// Info logs an info message.
func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

// Warn logs a warning message.
func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

// Error logs an error message.
func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

// LogRawBytes logs raw input bytes at debug level, as both a hex dump
// and a printable-ASCII rendering. Used by the input decoder when it
// fails to decode a sequence.
func LogRawBytes(label string, data []byte) {
	logger.Debug(label,
		zap.Int("length", len(data)),
		zap.String("hex", hexDump(data)),
		zap.String("ascii", asciiDump(data)),
	)
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = logger.Sync()
}

func hexDump(data []byte) string {
	if len(data) > 256 {
		return hex.EncodeToString(data[:256]) + "..."
	}
	return hex.EncodeToString(data)
}

func asciiDump(data []byte) string {
	if len(data) > 256 {
		data = data[:256]
	}
	out := make([]byte, len(data))
	for i, b := range data {
		if b >= 32 && b <= 126 {
			out[i] = b
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}
