// Copyright (c) 2025 Visvasity LLC

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/visvasity/fieldgen/fields"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fieldgen.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[generator]
inpkg = "./input"
outdir = "./output"
endian = "big"
types = ["Packet", "PageHeader"]

[log]
level = "debug"
development = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	want := Config{
		Generator: GeneratorConfig{
			InPkg:  "./input",
			OutDir: "./output",
			Endian: "big",
			Types:  []string{"Packet", "PageHeader"},
		},
		Log: LogConfig{Level: "debug", Development: true},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if e, err := cfg.Generator.ByteOrder(); err != nil || e != fields.BigEndian {
		t.Fatalf("ByteOrder() = %v, %v; want big", e, err)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[generator]
outdir = "./out"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Generator.InPkg != "." {
		t.Fatalf("unexpected inpkg: %q", cfg.Generator.InPkg)
	}
	if cfg.Generator.Endian != "little" {
		t.Fatalf("unexpected endian: %q", cfg.Generator.Endian)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("unexpected log level: %q", cfg.Log.Level)
	}
	// Types may come from the command line instead.
	if len(cfg.Generator.Types) != 0 {
		t.Fatalf("unexpected types: %q", cfg.Generator.Types)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad endian", "[generator]\nendian = \"middle\"\n", "generator.endian"},
		{"bad level", "[log]\nlevel = \"loud\"\n", "log.level"},
		{"unknown key", "[generator]\nouput = \"x\"\n", "unknown keys generator.ouput"},
		{"duplicate type", "[generator]\ntypes = [\"A\", \"A\"]\n", "more than once"},
		{"empty type", "[generator]\ntypes = [\"\"]\n", "is empty"},
		{"empty inpkg", "[generator]\ninpkg = \"\"\n", "inpkg must not be empty"},
		{"syntax", "[generator\n", "config load failed"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, test.content))
			if err == nil {
				t.Fatalf("expected an error")
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Fatalf("error %q does not contain %q", err, test.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), "config load failed") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
}
