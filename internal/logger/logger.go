package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewCommand builds the cli logger already carrying the command and catalog fields.
func NewCommand(json, debug bool, command, catalogPath string) (*zap.Logger, error) {
	logger, err := New(json, debug)
	if err != nil {
		return nil, err
	}
	return WithCommonFields(logger, command, catalogPath), nil
}

// New builds the cli logger. Console output goes to stderr so that rendered
// results on stdout stay clean.
func New(json bool, debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	encoding := "console"

	if json {
		encoding = "json"
	}

	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Encoding:          encoding,
		DisableStacktrace: !debug,
		Level:             zap.NewAtomicLevelAt(level),
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "step",

			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.RFC3339TimeEncoder,

			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,

			StacktraceKey:  "stacktrace",
			EncodeDuration: zapcore.StringDurationEncoder,
		},
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return logger, nil
}
