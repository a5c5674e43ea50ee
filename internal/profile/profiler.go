package profile

import (
	"math"
	"sync"

	"github.com/dramascope/dramascope/internal/analyze"
	"github.com/dramascope/dramascope/pkg/types"
)

// Cross-history "difficult participant" rule. Deliberately stricter on
// stonewalling and extended with an accusation-rate branch compared to the
// per-thread rule: the profiler judges an author across everything observed.
const (
	difficultStonewalling   = 3
	difficultDrama          = 6.0
	difficultNeutrality     = 4.0
	difficultAccusationRate = 20.0
)

// Profiler maintains running per-author aggregates as messages arrive.
// All methods are safe for concurrent use; writes for the same handle are
// serialized by the internal lock, which keeps the recompute-from-history
// step consistent.
type Profiler struct {
	scorer *analyze.Analyzer

	mu       sync.RWMutex
	history  map[string][]types.DimensionalScores
	profiles map[string]types.ParticipantProfile
	order    []string // handles in first-seen order
}

// New returns an empty Profiler on top of the given message scorer.
func New(scorer *analyze.Analyzer) *Profiler {
	return &Profiler{
		scorer:   scorer,
		history:  make(map[string][]types.DimensionalScores),
		profiles: make(map[string]types.ParticipantProfile),
	}
}

// AddMessage scores content, appends the result to handle's history, and
// recomputes the handle's full profile from that history. The recompute is a
// fresh average over all stored scores, so the result is independent of
// update order. Returns the updated profile.
func (p *Profiler) AddMessage(handle, content string) types.ParticipantProfile {
	// Scoring is pure; keep it outside the lock.
	return p.AddScore(handle, p.scorer.Analyze(content))
}

// AddScore is AddMessage for callers that already hold the score record,
// avoiding a second analysis pass.
func (p *Profiler) AddScore(handle string, score types.DimensionalScores) types.ParticipantProfile {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, seen := p.history[handle]; !seen {
		p.order = append(p.order, handle)
	}
	p.history[handle] = append(p.history[handle], score)

	prof := recompute(handle, p.history[handle])
	p.profiles[handle] = prof
	return prof
}

// Profile returns the profile for handle, and whether the handle is known.
func (p *Profiler) Profile(handle string) (types.ParticipantProfile, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	prof, ok := p.profiles[handle]
	return prof, ok
}

// Profiles returns a copy of all profiles keyed by handle.
func (p *Profiler) Profiles() map[string]types.ParticipantProfile {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]types.ParticipantProfile, len(p.profiles))
	for handle, prof := range p.profiles {
		out[handle] = prof
	}
	return out
}

// DifficultParticipants returns the handles currently flagged difficult, in
// first-seen order.
func (p *Profiler) DifficultParticipants() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var out []string
	for _, handle := range p.order {
		if p.profiles[handle].IsDifficult {
			out = append(out, handle)
		}
	}
	return out
}

// recompute builds a fresh profile from the full score history of one handle.
func recompute(handle string, history []types.DimensionalScores) types.ParticipantProfile {
	n := float64(len(history))
	prof := types.ParticipantProfile{
		Handle:       handle,
		MessageCount: len(history),
	}

	var drama, neutrality, politeness, quality, subjectivity, fallacy, threats float64
	var directives, expressives, accusations, challenges int
	for _, s := range history {
		drama += s.DramaScore
		neutrality += s.NeutralityScore
		politeness += s.Politeness
		quality += s.ArgumentQuality
		subjectivity += s.Subjectivity
		fallacy += s.FallacyScore
		threats += s.FaceThreats

		directives += s.DirectiveCount
		expressives += s.ExpressiveCount
		accusations += s.AccusationCount
		challenges += s.ChallengeCount

		prof.TotalStonewalling += s.StonewallingIndicators
	}

	prof.AvgDrama = round2(drama / n)
	prof.AvgNeutrality = round2(neutrality / n)
	prof.AvgPoliteness = round2(politeness / n)
	prof.AvgArgumentQuality = round2(quality / n)
	prof.AvgSubjectivity = round2(subjectivity / n)
	prof.AvgFallacyRate = round2(fallacy / n)
	prof.AvgFaceThreats = round2(threats / n)

	// Rates are percentages of the author's total speech acts; the floor of 1
	// avoids division by zero for authors with none.
	totalActs := directives + expressives + accusations + challenges
	denom := float64(max(1, totalActs))
	prof.DirectiveRate = round2(float64(directives) / denom * 100)
	prof.ExpressiveRate = round2(float64(expressives) / denom * 100)
	prof.AccusationRate = round2(float64(accusations) / denom * 100)

	prof.IsDifficult = prof.TotalStonewalling > difficultStonewalling ||
		(prof.AvgDrama > difficultDrama && prof.AvgNeutrality < difficultNeutrality) ||
		prof.AccusationRate > difficultAccusationRate

	return prof
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
