package main

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Logger      = zap.NewNop().Sugar()
	AtomicLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
)

// InitLogger replaces the no-op Logger with a console logger on stderr.
// Stdout is reserved for summary lines.
func InitLogger(level string) error {
	if level != "" {
		parsed, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return fmt.Errorf("failed to parse log level '%v': %w", level, err)
		}
		AtomicLevel.SetLevel(parsed.Level())
	}
	config := zap.Config{
		Level:       AtomicLevel,
		Development: false,
		Encoding:    "console",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:     "M",
			LevelKey:       "L",
			TimeKey:        "T",
			NameKey:        "N",
			CallerKey:      zapcore.OmitKey,
			FunctionKey:    zapcore.OmitKey,
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	Logger = logger.Sugar()
	return nil
}
