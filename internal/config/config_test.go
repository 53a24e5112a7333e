package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"brise.toml", FormatTOML},
		{"brise.yaml", FormatYAML},
		{"BRISE.YML", FormatYAML},
		{"config", FormatTOML},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DetectFormat(tt.path); got != tt.want {
				t.Errorf("DetectFormat(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.REPL.Prompt != "brise> " || cfg.REPL.Continuation != "....   " {
		t.Errorf("unexpected REPL defaults %+v", cfg.REPL)
	}
	if cfg.Output.Format != "sexpr" || !cfg.Output.Color {
		t.Errorf("unexpected output defaults %+v", cfg.Output)
	}
}

func TestLoadTOML(t *testing.T) {
	t.Setenv("BRISE_TEST_DIR", "/var/tmp/brise")
	path := writeFile(t, t.TempDir(), "brise.toml", `
[log]
level = "debug"
file = "$BRISE_TEST_DIR/brise.log"

[repl]
prompt = "> "

[output]
format = "json"
color = false
show_ids = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Log.File != "/var/tmp/brise/brise.log" {
		t.Errorf("Log.File = %q, env vars were not expanded", cfg.Log.File)
	}
	if cfg.REPL.Prompt != "> " || cfg.REPL.Continuation != "....   " {
		t.Errorf("unexpected REPL config %+v", cfg.REPL)
	}
	if cfg.Output.Format != "json" || cfg.Output.Color || !cfg.Output.ShowIDs {
		t.Errorf("unexpected output config %+v", cfg.Output)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "brise.yaml", `
log:
  level: info
  journal: true
repl:
  continuation: "..  "
output:
  format: yaml
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "info" || !cfg.Log.Journal {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
	if cfg.REPL.Continuation != "..  " || cfg.REPL.Prompt != "brise> " {
		t.Errorf("unexpected REPL config %+v", cfg.REPL)
	}
	if cfg.Output.Format != "yaml" || !cfg.Output.Color {
		t.Errorf("unexpected output config %+v", cfg.Output)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"missing", filepath.Join(dir, "none.toml"), "config file not found"},
		{"syntax", writeFile(t, dir, "bad.toml", "[log\n"), "failed to parse config"},
		{"level", writeFile(t, dir, "level.toml", "[log]\nlevel = \"loud\"\n"), `invalid log level "loud"`},
		{"format", writeFile(t, dir, "format.yml", "output:\n  format: xml\n"), `invalid output format "xml"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Load() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadDefaultFromEnv(t *testing.T) {
	path := writeFile(t, t.TempDir(), "env.toml", "[output]\nformat = \"yaml\"\n")
	t.Setenv(EnvVar, path)

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Output.Format = %q, want yaml", cfg.Output.Format)
	}
}

func TestLoadDefaultWithoutFile(t *testing.T) {
	t.Setenv(EnvVar, "")
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}
	if cfg.Output.Format != "sexpr" {
		t.Errorf("expected defaults, got %+v", cfg.Output)
	}
}
