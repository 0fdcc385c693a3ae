package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/calebmor/gauntlet/internal/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "performance_config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !cfg.Enabled {
		t.Error("Enabled = false, want true")
	}
	if cfg.DurationSeconds != model.DefaultDurationSeconds {
		t.Errorf("DurationSeconds = %d, want %d", cfg.DurationSeconds, model.DefaultDurationSeconds)
	}
	if cfg.ConcurrentOperations != model.DefaultConcurrentOperations {
		t.Errorf("ConcurrentOperations = %d, want %d", cfg.ConcurrentOperations, model.DefaultConcurrentOperations)
	}
	for _, cat := range model.WorkloadCategories {
		if !cfg.Scenarios[cat] {
			t.Errorf("scenario %s disabled by default, want enabled", cat)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `{
		"stress_test_config": {
			"enabled": true,
			"duration_seconds": 10,
			"concurrent_operations": 8,
			"test_scenarios": {
				"database_load": true,
				"memory_stress": false,
				"ui_responsiveness": false,
				"communication_throughput": false
			}
		}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DurationSeconds != 10 {
		t.Errorf("DurationSeconds = %d, want 10", cfg.DurationSeconds)
	}
	if cfg.ConcurrentOperations != 8 {
		t.Errorf("ConcurrentOperations = %d, want 8", cfg.ConcurrentOperations)
	}

	enabled := cfg.EnabledCategories()
	if len(enabled) != 1 || enabled[0] != model.CategoryDatabaseLoad {
		t.Errorf("EnabledCategories = %v, want [database_load]", enabled)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DurationSeconds != model.DefaultDurationSeconds {
		t.Errorf("DurationSeconds = %d, want default", cfg.DurationSeconds)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, `{not json`)
	if _, err := Load(path); err == nil {
		t.Error("Load succeeded on malformed JSON, want error")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, `{
		"stress_test_config": {
			"duration_seconds": 0
		}
	}`)
	if _, err := Load(path); err == nil {
		t.Error("Load succeeded with zero duration, want validation error")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
