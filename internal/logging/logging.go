// Copyright (c) 2025 Visvasity LLC

// Package logging builds the zap logger used by the fieldgen command.
package logging

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/visvasity/fieldgen/internal/config"
)

const (
	EnvLogLevel       = "FIELDGEN_LOG_LEVEL"
	EnvLogDevelopment = "FIELDGEN_LOG_DEVELOPMENT"
)

// New returns a logger for the configuration. Environment variables
// FIELDGEN_LOG_LEVEL and FIELDGEN_LOG_DEVELOPMENT override the file settings.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	applyEnvOverrides(&cfg)

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var zcfg zap.Config
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
		zcfg.Encoding = "console"
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zcfg.Sampling = nil
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.DisableStacktrace = !cfg.Development

	return zcfg.Build()
}

func applyEnvOverrides(cfg *config.LogConfig) {
	if lvl := strings.TrimSpace(os.Getenv(EnvLogLevel)); lvl != "" {
		cfg.Level = strings.ToLower(lvl)
	}
	if v, ok := parseBool(os.Getenv(EnvLogDevelopment)); ok {
		cfg.Development = v
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
