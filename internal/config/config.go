// Copyright (c) 2025 Visvasity LLC

// Package config loads the fieldgen TOML configuration file.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"

	"github.com/visvasity/fieldgen/fields"
)

type Config struct {
	Generator GeneratorConfig `toml:"generator"`
	Log       LogConfig       `toml:"log"`
}

type GeneratorConfig struct {
	InPkg  string   `toml:"inpkg"`
	OutDir string   `toml:"outdir"`
	OutPkg string   `toml:"outpkg"`
	Endian string   `toml:"endian"`
	Types  []string `toml:"types"`
}

type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Generator: GeneratorConfig{
			InPkg:  ".",
			Endian: "little",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the file at path over the defaults and validates the result.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := loadToml(path, &cfg); err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	meta, err := toml.DecodeFile(path, out)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return fmt.Errorf("config parse failed (%s): unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func Validate(cfg Config) error {
	if _, err := cfg.Generator.ByteOrder(); err != nil {
		return fmt.Errorf("generator.endian: %w", err)
	}
	if cfg.Generator.InPkg == "" {
		return fmt.Errorf("generator.inpkg must not be empty")
	}
	for i, typ := range cfg.Generator.Types {
		if typ == "" {
			return fmt.Errorf("generator.types[%d] is empty", i)
		}
		if slices.Index(cfg.Generator.Types, typ) != i {
			return fmt.Errorf("generator.types lists %q more than once", typ)
		}
	}
	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// ByteOrder returns the parsed default endian.
func (c GeneratorConfig) ByteOrder() (fields.Endian, error) {
	return fields.ParseEndian(c.Endian)
}
