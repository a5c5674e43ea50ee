package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dramascope/dramascope/internal/alerts"
	"github.com/dramascope/dramascope/internal/analyze"
	"github.com/dramascope/dramascope/internal/config"
	"github.com/dramascope/dramascope/internal/patterns"
	"github.com/dramascope/dramascope/internal/profile"
	"github.com/dramascope/dramascope/internal/telemetry"
	"github.com/dramascope/dramascope/internal/thread"
	"github.com/dramascope/dramascope/pkg/types"
)

// app bundles the long-lived analysis components built from one config.
type app struct {
	scorer    *analyze.Analyzer
	threads   *thread.Analyzer
	profiler  *profile.Profiler
	engine    *alerts.Engine
	collector *telemetry.Collector
}

// report is the JSON document printed for each analyzed thread.
type report struct {
	Thread                types.ThreadAnalysis                `json:"thread"`
	Profiles              map[string]types.ParticipantProfile `json:"profiles,omitempty"`
	DifficultParticipants []string                            `json:"difficult_participants,omitempty"`
	Alerts                []*alerts.Alert                     `json:"alerts,omitempty"`
}

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	inputPath := flag.String("input", "-", "thread file in JSON Lines format, or - for stdin")
	watchMode := flag.Bool("watch", false, "watch the configured directory for new thread files")
	metricsPath := flag.String("metrics", "", "write a Prometheus text exposition dump here on exit (overrides config)")
	flag.Parse()

	// Structured logs go to stderr; stdout carries the report JSON.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "err", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *metricsPath != "" {
		cfg.Telemetry.Path = *metricsPath
	}

	a := newApp(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var runErr error
	if *watchMode {
		runErr = a.runWatch(ctx, *configPath, cfg)
	} else {
		runErr = a.runOnce(*inputPath)
	}

	if cfg.Telemetry.Path != "" {
		if err := a.collector.WriteFile(cfg.Telemetry.Path); err != nil {
			slog.Error("failed to write telemetry dump", "err", err)
		}
	}
	if runErr != nil {
		slog.Error("run failed", "err", runErr)
		os.Exit(1)
	}
}

func newApp(cfg *config.Config) *app {
	scorer := analyze.New(patterns.NewLibraryWithExtras(cfg.Analyzer.ExtraPatterns))
	return &app{
		scorer:    scorer,
		threads:   thread.New(scorer),
		profiler:  profile.New(scorer),
		engine:    alerts.New(cfg.Alerts, nil),
		collector: telemetry.New(),
	}
}

// runOnce scores a single thread from inputPath and prints the report.
func (a *app) runOnce(inputPath string) error {
	r := io.Reader(os.Stdin)
	if inputPath != "-" {
		f, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	msgs := readMessages(r)
	rep := a.processThread(inputPath, msgs)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// processThread runs the full pipeline over one message list.
func (a *app) processThread(source string, msgs []types.Message) report {
	for _, m := range msgs {
		author := m.Author
		if author == "" {
			author = thread.UnknownAuthor
		}
		score := a.scorer.Analyze(m.Content)
		a.collector.RecordMessage(score.HealthAssessment)
		a.engine.Evaluate(author, score)
		a.profiler.AddScore(author, score)
	}

	ta := a.threads.AnalyzeThread(msgs)
	a.collector.RecordThread()

	slog.Info("thread analyzed",
		"source", source,
		"messages", ta.MessageCount,
		"drama", ta.DramaScore,
		"neutrality", ta.NeutralityScore,
		"health", ta.HealthAssessment,
		"pile_on", ta.IsPileOn,
	)

	return report{
		Thread:                ta,
		Profiles:              a.profiler.Profiles(),
		DifficultParticipants: a.profiler.DifficultParticipants(),
		Alerts:                a.engine.Active(),
	}
}

// readMessages decodes JSON Lines into messages. Malformed lines are logged
// and skipped so one bad record never fails the whole thread.
func readMessages(r io.Reader) []types.Message {
	var msgs []types.Message
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var m types.Message
		if err := json.Unmarshal(line, &m); err != nil {
			slog.Warn("skipping malformed message", "line", lineNo, "err", err)
			continue
		}
		msgs = append(msgs, m)
	}
	if err := sc.Err(); err != nil {
		slog.Warn("input truncated", "err", err)
	}
	return msgs
}
