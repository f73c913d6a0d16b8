package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iwvelando/credit-portfolio-sim/internal/config"
	"github.com/iwvelando/credit-portfolio-sim/pkg/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logLevels = map[string]zapcore.Level{
	"debug":   zapcore.DebugLevel,
	"info":    zapcore.InfoLevel,
	"warn":    zapcore.WarnLevel,
	"warning": zapcore.WarnLevel,
	"error":   zapcore.ErrorLevel,
}

// parseLogLevel resolves the effective level; the -log-level flag wins over
// logging.level.
func parseLogLevel(configured, override string) (zapcore.Level, error) {
	level := configured
	if override != "" {
		level = override
	}
	if level == "" {
		level = constants.DefaultLogLevel
	}
	zapLevel, ok := logLevels[strings.ToLower(level)]
	if !ok {
		return zapcore.InfoLevel, fmt.Errorf("invalid logging.level %q: want debug, info, warn or error", level)
	}
	return zapLevel, nil
}

// resolveLogPath turns a directory (existing, or written with a trailing
// separator) into the default log file inside it.
func resolveLogPath(path string) string {
	if strings.HasSuffix(path, string(os.PathSeparator)) || strings.HasSuffix(path, "/") {
		return filepath.Join(path, constants.DefaultLogFile)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, constants.DefaultLogFile)
	}
	return path
}

// initializeLogger builds the portfolio-sim logger from the logging section
// and the -log-level flag.
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	zapLevel, err := parseLogLevel(loggingConfig.Level, logLevelOverride)
	if err != nil {
		return nil, err
	}

	var zapConfig zap.Config
	switch format := loggingConfig.Format; format {
	case "", "json":
		zapConfig = zap.NewProductionConfig()
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("invalid logging.format %q: want json or console", format)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	zapConfig.InitialFields = map[string]interface{}{"app": constants.AppName}

	// stdout carries the summary or the YAML manifest.
	zapConfig.OutputPaths = []string{"stderr"}

	if loggingConfig.OutputFile != "" {
		logPath := resolveLogPath(loggingConfig.OutputFile)
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory for %s: %w", logPath, err)
		}

		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", logPath, err)
		}
		_ = file.Close()

		zapConfig.OutputPaths = []string{logPath}
		zapConfig.ErrorOutputPaths = []string{logPath}
	}

	return zapConfig.Build()
}
