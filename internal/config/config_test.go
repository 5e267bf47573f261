package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefault(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Definitions", cfg.Paths.Definitions, "/opt/Boomi/atom/jmxDemo/processes"},
		{"Executions", cfg.Paths.Executions, "/opt/Boomi/atom/jmxDemo/execution"},
		{"Logs", cfg.Paths.Logs, "/opt/Boomi/atom/jmxDemo/logs"},
		{"TopN", cfg.Report.TopN, 20},
		{"Output", cfg.Report.Output, "boomi_log_space_report.csv"},
		{"Format", cfg.Report.Format, "text"},
		{"ExactFallback", cfg.Reconcile.ExactFallback, false},
		{"Level", cfg.Logging.Level, "info"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("default %s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Paths.Definitions = "/srv/atom/processes"
	cfg.Report.TopN = 5
	cfg.Reconcile.ExactFallback = true

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("loaded = %+v, want %+v", loaded, cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := "[paths]\nlogs = \"/var/log/atom\"\n\n[report]\ntop_n = 3\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Paths.Logs != "/var/log/atom" {
		t.Errorf("logs = %q, want /var/log/atom", cfg.Paths.Logs)
	}
	if cfg.Report.TopN != 3 {
		t.Errorf("top_n = %d, want 3", cfg.Report.TopN)
	}
	if cfg.Paths.Definitions != DefaultConfig().Paths.Definitions {
		t.Errorf("definitions = %q, want default", cfg.Paths.Definitions)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	os.WriteFile(path, []byte("{{invalid toml}}"), 0644)

	_, err := Load(path)
	if err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero top_n", "[report]\ntop_n = 0\n"},
		{"empty output", "[report]\noutput = \"\"\n"},
		{"unknown format", "[report]\nformat = \"xml\"\n"},
		{"unknown level", "[logging]\nlevel = \"chatty\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}

func TestSave_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "perms.toml")

	if err := Save(DefaultConfig(), path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("permissions = %o, want 0600", perm)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
