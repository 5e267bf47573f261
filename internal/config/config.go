package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Paths     PathsConfig     `toml:"paths"`
	Report    ReportConfig    `toml:"report"`
	Reconcile ReconcileConfig `toml:"reconcile"`
	Logging   LoggingConfig   `toml:"logging"`
}

// PathsConfig names the Atom directories that are scanned. They are only
// read, never written.
type PathsConfig struct {
	Definitions string `toml:"definitions"`
	Executions  string `toml:"executions"`
	Logs        string `toml:"logs"`
}

type ReportConfig struct {
	TopN   int    `toml:"top_n"`
	Output string `toml:"output"`
	Format string `toml:"format"` // text, json or yaml
}

type ReconcileConfig struct {
	// ExactFallback buckets unknown process names by full name instead of a
	// reduced hash.
	ExactFallback bool `toml:"exact_fallback"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

// Formats accepted by Report.Format.
var ValidFormats = []string{"text", "json", "yaml"}

func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			Definitions: "/opt/Boomi/atom/jmxDemo/processes",
			Executions:  "/opt/Boomi/atom/jmxDemo/execution",
			Logs:        "/opt/Boomi/atom/jmxDemo/logs",
		},
		Report: ReportConfig{
			TopN:   20,
			Output: "boomi_log_space_report.csv",
			Format: "text",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "boomi-du", "config.toml")
}

func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // use defaults
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Validate checks values that have no sensible fallback.
func (c Config) Validate() error {
	if c.Report.TopN < 1 {
		return fmt.Errorf("report.top_n must be positive, got %d", c.Report.TopN)
	}
	if c.Report.Output == "" {
		return fmt.Errorf("report.output must not be empty")
	}
	if !isValidFormat(c.Report.Format) {
		return fmt.Errorf("invalid report.format %q: must be one of %v", c.Report.Format, ValidFormats)
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// ParseLevel maps a logging.level value onto a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid logging.level %q", s)
	}
	return level, nil
}
