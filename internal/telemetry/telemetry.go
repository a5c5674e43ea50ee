package telemetry

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// Collector accumulates analysis counters for one process run and renders
// them in Prometheus text exposition format. Safe for concurrent use.
type Collector struct {
	mu            sync.Mutex
	messages      float64
	shortCircuits float64
	threads       float64
	byHealth      map[string]float64
}

// New returns an empty Collector.
func New() *Collector {
	return &Collector{byHealth: make(map[string]float64)}
}

// RecordMessage counts one analyzed message under its health label.
// The "unknown" label doubles as the short-circuit counter: it is only
// assigned to text too short to score.
func (c *Collector) RecordMessage(health string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages++
	c.byHealth[health]++
	if health == "unknown" {
		c.shortCircuits++
	}
}

// RecordThread counts one aggregated thread.
func (c *Collector) RecordThread() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.threads++
}

// Families returns the counters as Prometheus metric families, with health
// labels in sorted order for deterministic output.
func (c *Collector) Families() []*dto.MetricFamily {
	c.mu.Lock()
	defer c.mu.Unlock()

	healthMetrics := make([]*dto.Metric, 0, len(c.byHealth))
	labels := make([]string, 0, len(c.byHealth))
	for h := range c.byHealth {
		labels = append(labels, h)
	}
	sort.Strings(labels)
	for _, h := range labels {
		healthMetrics = append(healthMetrics, &dto.Metric{
			Label:   []*dto.LabelPair{{Name: strPtr("health"), Value: strPtr(h)}},
			Counter: &dto.Counter{Value: f64Ptr(c.byHealth[h])},
		})
	}

	return []*dto.MetricFamily{
		counterFamily("dramascope_messages_analyzed_total",
			"Messages scored by the dimensional analyzer.",
			[]*dto.Metric{{Counter: &dto.Counter{Value: f64Ptr(c.messages)}}}),
		counterFamily("dramascope_messages_short_circuited_total",
			"Messages below the minimum analyzable length.",
			[]*dto.Metric{{Counter: &dto.Counter{Value: f64Ptr(c.shortCircuits)}}}),
		counterFamily("dramascope_threads_analyzed_total",
			"Threads aggregated.",
			[]*dto.Metric{{Counter: &dto.Counter{Value: f64Ptr(c.threads)}}}),
		counterFamily("dramascope_messages_by_health_total",
			"Messages scored, partitioned by health label.",
			healthMetrics),
	}
}

// Write encodes all metric families to w in text exposition format.
func (c *Collector) Write(w io.Writer) error {
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range c.Families() {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("telemetry: encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// WriteFile writes the exposition dump to path, replacing any previous file.
func (c *Collector) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("telemetry: create %s: %w", path, err)
	}
	if err := c.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func counterFamily(name, help string, metrics []*dto.Metric) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name:   strPtr(name),
		Help:   strPtr(help),
		Type:   dto.MetricType_COUNTER.Enum(),
		Metric: metrics,
	}
}

func strPtr(s string) *string { return &s }

func f64Ptr(v float64) *float64 { return &v }
