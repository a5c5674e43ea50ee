package telemetry

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func seededCollector() *Collector {
	c := New()
	c.RecordMessage("toxic")
	c.RecordMessage("productive")
	c.RecordMessage("unknown") // short-circuited
	c.RecordThread()
	return c
}

func TestCollector_Families(t *testing.T) {
	c := seededCollector()
	families := c.Families()
	if len(families) != 4 {
		t.Fatalf("Families() = %d families, want 4", len(families))
	}

	byName := map[string]float64{}
	for _, mf := range families {
		if len(mf.Metric) == 1 && len(mf.Metric[0].Label) == 0 {
			byName[mf.GetName()] = mf.Metric[0].Counter.GetValue()
		}
	}
	if got := byName["dramascope_messages_analyzed_total"]; got != 3 {
		t.Errorf("messages_analyzed = %v, want 3", got)
	}
	if got := byName["dramascope_messages_short_circuited_total"]; got != 1 {
		t.Errorf("short_circuited = %v, want 1", got)
	}
	if got := byName["dramascope_threads_analyzed_total"]; got != 1 {
		t.Errorf("threads_analyzed = %v, want 1", got)
	}
}

func TestCollector_HealthLabelsSorted(t *testing.T) {
	c := seededCollector()

	var labels []string
	for _, mf := range c.Families() {
		if mf.GetName() != "dramascope_messages_by_health_total" {
			continue
		}
		for _, m := range mf.Metric {
			if len(m.Label) != 1 || m.Label[0].GetName() != "health" {
				t.Fatalf("unexpected label set: %+v", m.Label)
			}
			labels = append(labels, m.Label[0].GetValue())
			if m.Counter.GetValue() != 1 {
				t.Errorf("count for %s = %v, want 1", m.Label[0].GetValue(), m.Counter.GetValue())
			}
		}
	}

	want := []string{"productive", "toxic", "unknown"}
	if len(labels) != len(want) {
		t.Fatalf("health labels = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("label[%d] = %q, want %q", i, labels[i], want[i])
		}
	}
}

func TestCollector_Write(t *testing.T) {
	c := seededCollector()

	var buf bytes.Buffer
	if err := c.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# TYPE dramascope_messages_analyzed_total counter",
		"dramascope_messages_analyzed_total 3",
		"dramascope_threads_analyzed_total 1",
		`dramascope_messages_by_health_total{health="toxic"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("exposition output missing %q:\n%s", want, out)
		}
	}
}

func TestCollector_WriteFile(t *testing.T) {
	c := seededCollector()
	path := filepath.Join(t.TempDir(), "metrics.prom")

	if err := c.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}
	if !strings.Contains(string(data), "dramascope_messages_analyzed_total") {
		t.Errorf("dump missing counter, got:\n%s", data)
	}
}

func TestCollector_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := New().Write(&buf); err != nil {
		t.Fatalf("Write on empty collector: %v", err)
	}
	if !strings.Contains(buf.String(), "dramascope_messages_analyzed_total 0") {
		t.Errorf("empty dump missing zero counter:\n%s", buf.String())
	}
}
