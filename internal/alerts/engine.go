package alerts

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dramascope/dramascope/internal/config"
	"github.com/dramascope/dramascope/pkg/types"
)

const (
	maxHistoryLen     = 200
	recentWindowHours = 1
)

// Alert represents a single alert event produced by the rule engine.
type Alert struct {
	ID         string     `json:"id"`
	RuleName   string     `json:"rule_name"`
	SourceID   string     `json:"source_id"`
	Severity   string     `json:"severity"`
	Message    string     `json:"message"`
	Value      float64    `json:"value"`
	FiredAt    time.Time  `json:"fired_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	State      string     `json:"state"` // "firing" | "resolved"
}

// Notifier receives fired and resolved alerts. Delivery beyond the process
// boundary is the caller's concern; the engine itself only logs.
type Notifier func(*Alert)

// Engine evaluates alert rules against score records (a source is an author
// handle or a thread identifier, whatever the caller scores).
//
// Engine is safe for concurrent use.
type Engine struct {
	mu       sync.Mutex
	rules    []config.AlertRule
	active   map[string]*Alert    // key: "ruleName:sourceID"
	lastFire map[string]time.Time // last fire time per key (for cooldown)
	history  []*Alert             // recently resolved alerts
	notify   Notifier
	now      func() time.Time // injectable for deterministic tests
}

// New creates an Engine from the alert configuration. notify may be nil.
// An Engine with empty rules is valid — Evaluate becomes a no-op.
func New(cfg config.AlertsConfig, notify Notifier) *Engine {
	return &Engine{
		rules:    cfg.Rules,
		active:   make(map[string]*Alert),
		lastFire: make(map[string]time.Time),
		notify:   notify,
		now:      time.Now,
	}
}

// SetRules swaps the rule set, for config hot-reload. Active alerts survive;
// rules that disappeared simply stop firing and resolve on next evaluation.
func (e *Engine) SetRules(rules []config.AlertRule) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rules = rules
}

// Evaluate tests all configured rules against the score record for sourceID.
// Alerts that fire are stored and notified; alerts that were firing but whose
// condition is now false are resolved.
func (e *Engine) Evaluate(sourceID string, scores types.DimensionalScores) {
	e.mu.Lock()
	rules := e.rules
	e.mu.Unlock()
	if len(rules) == 0 {
		return
	}

	now := e.now()
	for _, rule := range rules {
		key := rule.Name + ":" + sourceID
		fires, value := evalCondition(rule.Condition, scores)

		e.mu.Lock()

		if fires {
			cooldown := rule.Cooldown
			if cooldown <= 0 {
				cooldown = config.DefaultAlertCooldown
			}
			if now.Sub(e.lastFire[key]) > cooldown {
				sev := rule.Severity
				if sev == "" {
					sev = "warning"
				}
				a := &Alert{
					ID:       fmt.Sprintf("%s:%s:%d", rule.Name, sourceID, now.UnixNano()),
					RuleName: rule.Name,
					SourceID: sourceID,
					Severity: sev,
					Value:    value,
					Message: fmt.Sprintf("[%s] %s fired on %s — %s = %.2f",
						sev, rule.Name, sourceID, rule.Condition, value),
					FiredAt: now,
					State:   "firing",
				}
				e.active[key] = a
				e.lastFire[key] = now
				alertCopy := *a
				e.mu.Unlock()

				slog.Warn("alert fired",
					"rule", rule.Name,
					"source", sourceID,
					"value", value,
					"severity", sev,
				)
				e.deliver(&alertCopy)
			} else {
				e.mu.Unlock()
			}
		} else {
			if a, ok := e.active[key]; ok && a.State == "firing" {
				resolved := now
				a.State = "resolved"
				a.ResolvedAt = &resolved
				delete(e.active, key)

				e.history = append(e.history, a)
				if len(e.history) > maxHistoryLen {
					e.history = e.history[len(e.history)-maxHistoryLen:]
				}
				alertCopy := *a
				e.mu.Unlock()

				slog.Info("alert resolved",
					"rule", rule.Name,
					"source", sourceID,
				)
				e.deliver(&alertCopy)
			} else {
				e.mu.Unlock()
			}
		}
	}
}

// Active returns copies of all currently firing alerts plus any alerts
// resolved within the past hour.
func (e *Engine) Active() []*Alert {
	e.mu.Lock()
	defer e.mu.Unlock()

	cutoff := e.now().Add(-recentWindowHours * time.Hour)
	out := make([]*Alert, 0, len(e.active))

	for _, a := range e.active {
		cp := *a
		out = append(out, &cp)
	}
	for _, a := range e.history {
		if a.ResolvedAt != nil && a.ResolvedAt.After(cutoff) {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out
}

func (e *Engine) deliver(a *Alert) {
	if e.notify != nil {
		e.notify(a)
	}
}
