package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/not-rogue/config"
)

const (
	logFileName = "not-rogue.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging builds the process logger. The terminal UI owns stdout and stderr,
// so logs go to a file under cfg.Dir in debug mode and are discarded otherwise.
// The returned file is nil when nothing was opened
func setupLogging(cfg config.LogConfig) (*logrus.Logger, *os.File) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	logger.SetLevel(cfg.LogrusLevel())

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	if !cfg.Debug {
		return logger, nil
	}

	dir := cfg.Dir
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return logger, nil
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("not-rogue-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return logger, nil
	}

	logger.SetOutput(file)
	logger.WithField("pid", os.Getpid()).Info("logging started")
	return logger, file
}
