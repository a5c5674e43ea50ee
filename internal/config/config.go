package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dramascope/dramascope/internal/patterns"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultWatchGlob     = "*.jsonl"
	DefaultAlertCooldown = 15 * time.Minute
)

// Config is the top-level configuration for the dramascope CLI.
// Fields map 1:1 to config.example.yaml. The zero value is a valid
// configuration (default catalog, no alerts, no watch directory).
type Config struct {
	Analyzer  AnalyzerConfig  `yaml:"analyzer"`
	Alerts    AlertsConfig    `yaml:"alerts"`
	Watch     WatchConfig     `yaml:"watch"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// AnalyzerConfig tunes the pattern catalog.
type AnalyzerConfig struct {
	// ExtraPatterns maps a category name (e.g. "hedges", "dismissive") to
	// additional literal phrases merged into that category's pattern set.
	ExtraPatterns map[string][]string `yaml:"extra_patterns"`
}

// AlertsConfig holds the threshold alerting rules.
type AlertsConfig struct {
	Rules []AlertRule `yaml:"rules"`
}

// AlertRule defines one threshold-based alert condition over score records.
type AlertRule struct {
	// Name is the human-readable alert identifier.
	Name string `yaml:"name"`

	// Condition is an expression like "drama_score > 8" or "health == toxic".
	Condition string `yaml:"condition"`

	// Severity is one of: critical | warning | info.
	Severity string `yaml:"severity"`

	// Cooldown suppresses re-fires for this duration after an alert fires.
	Cooldown time.Duration `yaml:"cooldown"`
}

// WatchConfig configures watch mode: new thread files dropped into Dir are
// scored as they appear.
type WatchConfig struct {
	// Dir is the directory to watch for thread files.
	Dir string `yaml:"dir"`

	// Glob filters file names within Dir (default "*.jsonl").
	Glob string `yaml:"glob"`
}

// TelemetryConfig configures the Prometheus text exposition dump.
type TelemetryConfig struct {
	// Path is the file the counter dump is written to. Empty disables it.
	Path string `yaml:"path"`
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return defaults()
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		Watch: WatchConfig{Glob: DefaultWatchGlob},
	}
}

// validate checks required fields and structural constraints.
func validate(cfg *Config) error {
	for cat := range cfg.Analyzer.ExtraPatterns {
		if !patterns.ValidCategory(cat) {
			return fmt.Errorf("analyzer.extra_patterns: unknown category %q", cat)
		}
	}
	for i, rule := range cfg.Alerts.Rules {
		if rule.Name == "" {
			return fmt.Errorf("alerts.rules[%d]: name is required", i)
		}
		if err := checkCondition(rule.Condition); err != nil {
			return fmt.Errorf("alerts.rules[%d] %q: %w", i, rule.Name, err)
		}
		switch rule.Severity {
		case "critical", "warning", "info", "":
		default:
			return fmt.Errorf("alerts.rules[%d] %q: unknown severity %q", i, rule.Name, rule.Severity)
		}
	}
	return nil
}

// checkCondition verifies the "field op value" shape without interpreting the
// field name; unknown fields simply never fire (the alerts engine decides).
func checkCondition(cond string) error {
	parts := strings.Fields(cond)
	if len(parts) != 3 {
		return fmt.Errorf("condition %q must have the form \"field op value\"", cond)
	}
	switch parts[1] {
	case ">", ">=", "<", "<=", "==":
		return nil
	default:
		return fmt.Errorf("condition %q: unknown operator %q", cond, parts[1])
	}
}
