package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a console logger writing to out at the named level.
// Unknown levels fall back to info.
func New(level string, out io.Writer) *zap.SugaredLogger {
	if out == nil {
		out = os.Stderr
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(out),
		ParseLevel(level),
	)
	return zap.New(core).Sugar().Named("aquaremind")
}

// ParseLevel converts a settings value to a zap level.
func ParseLevel(level string) zapcore.Level {
	parsed, err := zapcore.ParseLevel(strings.TrimSpace(strings.ToLower(level)))
	if err != nil {
		return zapcore.InfoLevel
	}
	return parsed
}

// ValidLevel reports whether level names a zap level.
func ValidLevel(level string) error {
	if _, err := zapcore.ParseLevel(strings.TrimSpace(strings.ToLower(level))); err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	return nil
}
