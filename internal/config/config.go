// Package config loads the brise command line configuration from TOML or
// YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "BRISE_CONFIG"

// Config holds the complete brise configuration.
type Config struct {
	Log    LogConfig    `toml:"log" yaml:"log"`
	REPL   REPLConfig   `toml:"repl" yaml:"repl"`
	Output OutputConfig `toml:"output" yaml:"output"`
}

// LogConfig selects where diagnostics go.
type LogConfig struct {
	Level   string `toml:"level" yaml:"level"`
	File    string `toml:"file" yaml:"file"`       // JSON lines, appended
	Journal bool   `toml:"journal" yaml:"journal"` // systemd journal
}

// REPLConfig holds interactive loop settings.
type REPLConfig struct {
	Prompt       string `toml:"prompt" yaml:"prompt"`
	Continuation string `toml:"continuation" yaml:"continuation"`
	HistoryFile  string `toml:"history_file" yaml:"history_file"` // default ~/.brise_history
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format  string `toml:"format" yaml:"format"` // sexpr, yaml or json
	Color   bool   `toml:"color" yaml:"color"`
	ShowIDs bool   `toml:"show_ids" yaml:"show_ids"`
}

// Format is a configuration file syntax.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// DetectFormat determines the configuration format from the file extension.
// Unknown extensions are read as TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.Output.Color = true
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(content, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes content in the given format and applies defaults.
func Parse(content []byte, format Format) (*Config, error) {
	cfg := &Config{Output: OutputConfig{Color: true}}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, err
		}
	default:
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	cfg.expandEnvVars()
	return cfg, nil
}

// LoadDefault loads the file named by BRISE_CONFIG, or the first of the
// default locations that exists. With no file found it returns Default().
func LoadDefault() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}
	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// DefaultPaths lists the locations LoadDefault searches, in order.
func DefaultPaths() []string {
	paths := []string{"./brise.toml", "./brise.yaml"}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "brise", "config.toml"))
	}
	return paths
}

// Validate reports values that cannot be defaulted away.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch c.Output.Format {
	case "", "sexpr", "yaml", "json":
	default:
		return fmt.Errorf("invalid output format %q", c.Output.Format)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "brise> "
	}
	if c.REPL.Continuation == "" {
		c.REPL.Continuation = "....   "
	}
	if c.REPL.HistoryFile == "" {
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			c.REPL.HistoryFile = filepath.Join(home, ".brise_history")
		}
	}
	if c.Output.Format == "" {
		c.Output.Format = "sexpr"
	}
}

func (c *Config) expandEnvVars() {
	c.Log.File = os.ExpandEnv(c.Log.File)
	c.REPL.HistoryFile = os.ExpandEnv(c.REPL.HistoryFile)
}
