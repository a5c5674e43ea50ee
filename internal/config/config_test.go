package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Valid(t *testing.T) {
	yaml := `
analyzer:
  extra_patterns:
    hedges:
      - "as far as I know"
alerts:
  rules:
    - name: high-drama
      condition: "drama_score > 8"
      severity: critical
      cooldown: 30m
watch:
  dir: /var/spool/threads
  glob: "*.jsonl"
telemetry:
  path: /tmp/dramascope.prom
`
	cfg := loadFromString(t, yaml)

	if got := cfg.Analyzer.ExtraPatterns["hedges"]; len(got) != 1 || got[0] != "as far as I know" {
		t.Errorf("extra_patterns.hedges: got %v", got)
	}
	if len(cfg.Alerts.Rules) != 1 {
		t.Fatalf("rules: got %d, want 1", len(cfg.Alerts.Rules))
	}
	rule := cfg.Alerts.Rules[0]
	if rule.Name != "high-drama" {
		t.Errorf("rule name: got %q", rule.Name)
	}
	if rule.Condition != "drama_score > 8" {
		t.Errorf("rule condition: got %q", rule.Condition)
	}
	if rule.Severity != "critical" {
		t.Errorf("rule severity: got %q", rule.Severity)
	}
	if rule.Cooldown != 30*time.Minute {
		t.Errorf("rule cooldown: got %v, want 30m", rule.Cooldown)
	}
	if cfg.Watch.Dir != "/var/spool/threads" {
		t.Errorf("watch dir: got %q", cfg.Watch.Dir)
	}
	if cfg.Telemetry.Path != "/tmp/dramascope.prom" {
		t.Errorf("telemetry path: got %q", cfg.Telemetry.Path)
	}
}

func TestLoad_Defaults(t *testing.T) {
	yaml := `
watch:
  dir: /var/spool/threads
`
	cfg := loadFromString(t, yaml)

	if cfg.Watch.Glob != DefaultWatchGlob {
		t.Errorf("default glob: got %q, want %q", cfg.Watch.Glob, DefaultWatchGlob)
	}
	if len(cfg.Alerts.Rules) != 0 {
		t.Errorf("rules: got %d, want 0", len(cfg.Alerts.Rules))
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Watch.Glob != DefaultWatchGlob {
		t.Errorf("Default() glob: got %q, want %q", cfg.Watch.Glob, DefaultWatchGlob)
	}
}

func TestLoad_UnknownPatternCategory(t *testing.T) {
	yaml := `
analyzer:
  extra_patterns:
    sarcasm:
      - "sure, whatever"
`
	if _, err := loadStringErr(t, yaml); err == nil {
		t.Fatal("expected error for unknown pattern category, got nil")
	}
}

func TestLoad_InvalidConditions(t *testing.T) {
	tests := []struct {
		name      string
		condition string
	}{
		{"too few fields", "drama_score >"},
		{"too many fields", "drama_score > 8 always"},
		{"unknown operator", "drama_score ~ 5"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			yaml := `
alerts:
  rules:
    - name: broken
      condition: "` + tc.condition + `"
`
			if _, err := loadStringErr(t, yaml); err == nil {
				t.Fatalf("expected error for condition %q, got nil", tc.condition)
			}
		})
	}
}

func TestLoad_MissingRuleName(t *testing.T) {
	yaml := `
alerts:
  rules:
    - condition: "drama_score > 8"
`
	if _, err := loadStringErr(t, yaml); err == nil {
		t.Fatal("expected error for missing rule name, got nil")
	}
}

func TestLoad_UnknownSeverity(t *testing.T) {
	yaml := `
alerts:
  rules:
    - name: shouty
      condition: "drama_score > 8"
      severity: catastrophic
`
	if _, err := loadStringErr(t, yaml); err == nil {
		t.Fatal("expected error for unknown severity, got nil")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

// loadFromString writes yaml to a temp file and calls Load, failing on error.
func loadFromString(t *testing.T, content string) *Config {
	t.Helper()
	cfg, err := loadStringErr(t, content)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	return cfg
}

// loadStringErr writes yaml to a temp file and calls Load, returning any error.
func loadStringErr(t *testing.T, content string) (*Config, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return Load(path)
}
