// Copyright (c) 2025 Visvasity LLC

package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/visvasity/fieldgen/internal/config"
)

func TestNew(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogDevelopment, "")

	logger, err := New(config.LogConfig{Level: "warn"})
	if err != nil {
		t.Fatal(err)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info must be disabled at warn level")
	}
	if !logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatalf("error must be enabled at warn level")
	}
}

func TestNewEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvLogDevelopment, "true")

	logger, err := New(config.LogConfig{Level: "error"})
	if err != nil {
		t.Fatal(err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("environment must override the level to debug")
	}
}

func TestNewInvalidLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	if _, err := New(config.LogConfig{Level: "loud"}); err == nil {
		t.Fatalf("expected an error for an invalid level")
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		raw   string
		v, ok bool
	}{
		{"", false, false},
		{"true", true, true},
		{" 0 ", false, true},
		{"maybe", false, false},
	}
	for _, test := range tests {
		v, ok := parseBool(test.raw)
		if v != test.v || ok != test.ok {
			t.Errorf("parseBool(%q) = %v, %v; want %v, %v", test.raw, v, ok, test.v, test.ok)
		}
	}
}
