package thread

import (
	"math"

	"github.com/dramascope/dramascope/internal/analyze"
	"github.com/dramascope/dramascope/pkg/types"
)

// UnknownAuthor is substituted for messages that arrive without an author
// handle, so one malformed record never fails the whole thread.
const UnknownAuthor = "unknown"

// Pile-on rule: all three conditions must hold.
const (
	pileOnMeanDrama  = 5.0
	pileOnMinAuthors = 5
	pileOnMaxDrama   = 7.0
)

// Per-thread "difficult participant" rule. These thresholds deliberately
// differ from the profiler's cross-history rule: a thread judges an author on
// a single conversation only.
const (
	difficultStonewalling = 2
	difficultDrama        = 6.0
	difficultNeutrality   = 4.0
)

// Analyzer derives thread-level aggregates by scoring each message with the
// dimensional analyzer. Stateless; safe for concurrent use.
type Analyzer struct {
	scorer *analyze.Analyzer
}

// New returns a thread Analyzer on top of the given message scorer.
func New(scorer *analyze.Analyzer) *Analyzer {
	return &Analyzer{scorer: scorer}
}

// AnalyzeThread scores every message and aggregates the results. An empty
// message list returns the sentinel {drama 0, neutrality 5, health "empty"}.
// The result is recomputed wholesale from msgs on every call.
func (t *Analyzer) AnalyzeThread(msgs []types.Message) types.ThreadAnalysis {
	if len(msgs) == 0 {
		return types.ThreadAnalysis{
			NeutralityScore:  5,
			HealthAssessment: types.HealthEmpty,
		}
	}

	var (
		scores      = make([]types.DimensionalScores, 0, len(msgs))
		byAuthor    = make(map[string][]types.DimensionalScores)
		authorOrder []string
	)
	for _, msg := range msgs {
		score := t.scorer.Analyze(msg.Content)
		scores = append(scores, score)

		author := msg.Author
		if author == "" {
			author = UnknownAuthor
		}
		if _, seen := byAuthor[author]; !seen {
			authorOrder = append(authorOrder, author)
		}
		byAuthor[author] = append(byAuthor[author], score)
	}

	var dramaSum, neutralitySum, maxDrama float64
	for _, s := range scores {
		dramaSum += s.DramaScore
		neutralitySum += s.NeutralityScore
		if s.DramaScore > maxDrama {
			maxDrama = s.DramaScore
		}
	}
	meanDrama := dramaSum / float64(len(scores))
	meanNeutrality := neutralitySum / float64(len(scores))

	out := types.ThreadAnalysis{
		DramaScore:       round2(meanDrama),
		NeutralityScore:  round2(meanNeutrality),
		MaxDrama:         round2(maxDrama),
		MessageCount:     len(msgs),
		UniqueAuthors:    len(byAuthor),
		IsPileOn:         meanDrama > pileOnMeanDrama && len(byAuthor) > pileOnMinAuthors && maxDrama > pileOnMaxDrama,
		HealthAssessment: analyze.Classify(meanDrama, meanNeutrality),
		AuthorAnalysis:   make(map[string]types.AuthorStats, len(byAuthor)),
	}

	for _, author := range authorOrder {
		stats := rollupAuthor(byAuthor[author])
		out.AuthorAnalysis[author] = stats
		if stats.IsDifficult {
			out.DifficultParticipants = append(out.DifficultParticipants, author)
		}
	}
	return out
}

// rollupAuthor aggregates one author's per-message scores within the thread.
func rollupAuthor(scores []types.DimensionalScores) types.AuthorStats {
	var dramaSum, neutralitySum float64
	stonewalling := 0
	for _, s := range scores {
		dramaSum += s.DramaScore
		neutralitySum += s.NeutralityScore
		stonewalling += s.StonewallingIndicators
	}
	n := float64(len(scores))
	meanDrama := dramaSum / n
	meanNeutrality := neutralitySum / n

	return types.AuthorStats{
		MessageCount:           len(scores),
		AvgDrama:               round2(meanDrama),
		AvgNeutrality:          round2(meanNeutrality),
		StonewallingIndicators: stonewalling,
		IsDifficult: stonewalling > difficultStonewalling ||
			(meanDrama > difficultDrama && meanNeutrality < difficultNeutrality),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
