package sentiment

import (
	_ "embed"
	"strconv"
	"strings"
)

//go:embed valence.tsv
var valenceTSV string

//go:embed subjectivity.tsv
var subjectivityTSV string

// Lexicons built once at init; read-only afterwards.
var (
	valence      map[string]float64
	subjectivity map[string]float64
)

func init() {
	valence = parseLexicon(valenceTSV)
	subjectivity = parseLexicon(subjectivityTSV)
}

// parseLexicon parses tab-separated "word\tscore" lines. Blank lines and
// #-comments are skipped; malformed lines are ignored.
func parseLexicon(raw string) map[string]float64 {
	m := make(map[string]float64, 256)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		word := strings.TrimSpace(parts[0])
		score, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			continue
		}
		m[word] = score
	}
	return m
}
