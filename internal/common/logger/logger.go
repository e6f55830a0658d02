package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a zap logger for a service.
// level: "debug", "info", "warn", "error" (default: "info")
// format: "json" or "console" (default: "json")
// serviceName is attached as a global field so logs from the intake path and
// the surveillance worker can be separated downstream.
func NewLogger(level string, format string, serviceName string) (*zap.Logger, error) {
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

	var config zap.Config
	if format == "console" {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	} else {
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		// stdout/stderr so Docker and log collectors can capture output
		config.OutputPaths = []string{"stdout"}
		config.ErrorOutputPaths = []string{"stderr"}
	}

	baseLogger, err := config.Build()
	if err != nil {
		return nil, err
	}

	if serviceName != "" {
		baseLogger = baseLogger.With(zap.String("service_name", serviceName))
	}

	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		baseLogger = baseLogger.With(zap.String("hostname", hostname))
	}

	return baseLogger, nil
}

// NewLoggerWithDefaults returns a logger with level="info", format="json".
func NewLoggerWithDefaults() (*zap.Logger, error) {
	return NewLogger("info", "json", "")
}
