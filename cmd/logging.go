package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

func setLogger(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    5,
		MaxBackups: 5,
		Compress:   true,
	}, &slog.HandlerOptions{
		Level: level,
	}))

	slog.SetDefault(logger)
	slog.Debug("DEBUGGING ENABLED")
	return nil
}
