package analyze

import (
	"strings"

	"github.com/dramascope/dramascope/internal/patterns"
	"github.com/dramascope/dramascope/internal/sentiment"
	"github.com/dramascope/dramascope/pkg/types"
)

// minAnalyzableLen is the trimmed length below which text is not scored at
// all and the default record is returned with health "unknown".
const minAnalyzableLen = 10

// Analyzer scores a single text body across all dimensions. It is stateless
// apart from the injected read-only pattern library, so one Analyzer may be
// shared freely across goroutines.
type Analyzer struct {
	lib *patterns.Library
}

// New returns an Analyzer using the given pattern library.
func New(lib *patterns.Library) *Analyzer {
	return &Analyzer{lib: lib}
}

// NewDefault returns an Analyzer over the default pattern catalog.
func NewDefault() *Analyzer {
	return New(patterns.NewLibrary())
}

// Analyze runs the full multi-dimensional analysis of text and returns a
// fresh score record. Deterministic and side-effect free; callers must treat
// the result as immutable.
func (a *Analyzer) Analyze(text string) types.DimensionalScores {
	scores := defaultScores()
	scores.Evidence = map[string]any{
		"text_length": len(text),
		"word_count":  len(strings.Fields(text)),
	}

	if len(strings.TrimSpace(text)) < minAnalyzableLen {
		return scores
	}

	a.scoreSentiment(text, &scores)
	a.scorePoliteness(text, &scores)
	a.scoreSpeechActs(text, &scores)
	a.scoreArgumentQuality(text, &scores)
	a.scoreFallacies(text, &scores)
	a.scoreSpecialPatterns(text, &scores)
	applyComposites(&scores)

	return scores
}

// defaultScores returns the neutral record used for unscoreable text.
func defaultScores() types.DimensionalScores {
	return types.DimensionalScores{
		Politeness:       5,
		ArgumentQuality:  5,
		HealthAssessment: types.HealthUnknown,
	}
}

// scoreSentiment maps the lexicon polarity and subjectivity primitives onto
// the 0–10 scales: compound -1 → negativity 10, compound +1 → negativity 0.
func (a *Analyzer) scoreSentiment(text string, s *types.DimensionalScores) {
	compound := sentiment.Compound(text)
	s.VaderNegativity = round2((1 - compound) * 5)

	subj := sentiment.Subjectivity(text)
	s.Subjectivity = round2(subj * 10)

	s.Evidence["vader"] = map[string]float64{"compound": round2(compound)}
	s.Evidence["subjectivity"] = map[string]float64{"raw": round2(subj)}
}

// scorePoliteness derives the politeness and face-threat dimensions from the
// four politeness-family categories.
func (a *Analyzer) scorePoliteness(text string, s *types.DimensionalScores) {
	positive := a.lib.Count(patterns.PositivePoliteness, text)
	hedges := a.lib.Count(patterns.Hedges, text)
	fta := a.lib.Count(patterns.FaceThreatening, text)
	indirect := a.lib.Count(patterns.IndirectAggression, text)

	raw := float64(positive*2+hedges) - (float64(fta)*2 + float64(indirect)*1.5)
	s.Politeness = round2(clamp10(5 + raw))
	s.FaceThreats = round2(clamp10(float64(fta+indirect) * 2))

	s.Evidence["politeness"] = map[string]int{
		"positive_markers":    positive,
		"hedges":              hedges,
		"face_threatening":    fta,
		"indirect_aggression": indirect,
	}
}

// scoreSpeechActs records the raw per-category speech act counts.
func (a *Analyzer) scoreSpeechActs(text string, s *types.DimensionalScores) {
	s.DirectiveCount = a.lib.Count(patterns.Directives, text)
	s.ExpressiveCount = a.lib.Count(patterns.Expressives, text)
	s.AccusationCount = a.lib.Count(patterns.Accusations, text)
	s.ChallengeCount = a.lib.Count(patterns.Challenges, text)

	s.Evidence["speech_acts"] = map[string]int{
		"directives":  s.DirectiveCount,
		"expressives": s.ExpressiveCount,
		"accusations": s.AccusationCount,
		"challenges":  s.ChallengeCount,
	}
}

// scoreArgumentQuality weighs evidence, acknowledgment, and constructive
// proposals against dismissive language.
func (a *Analyzer) scoreArgumentQuality(text string, s *types.DimensionalScores) {
	evidence := a.lib.Count(patterns.EvidenceMarkers, text)
	ack := a.lib.Count(patterns.Acknowledgment, text)
	constructive := a.lib.Count(patterns.Constructive, text)
	dismissive := a.lib.Count(patterns.Dismissive, text)

	raw := float64(evidence*2+ack*2) + float64(constructive)*1.5 - float64(dismissive)*2
	s.ArgumentQuality = round2(clamp10(5 + raw))

	s.Evidence["argument_quality"] = map[string]int{
		"evidence_citations": evidence,
		"acknowledgments":    ack,
		"constructive":       constructive,
		"dismissive":         dismissive,
	}
}

// scoreFallacies sums the five fallacy categories into the fallacy score.
func (a *Analyzer) scoreFallacies(text string, s *types.DimensionalScores) {
	adHominem := a.lib.Count(patterns.AdHominem, text)
	strawman := a.lib.Count(patterns.Strawman, text)
	authority := a.lib.Count(patterns.AppealToAuthority, text)
	goalposts := a.lib.Count(patterns.MovingGoalposts, text)
	whatabout := a.lib.Count(patterns.Whataboutism, text)

	total := adHominem + strawman + authority + goalposts + whatabout
	s.FallacyScore = round2(clamp10(float64(total) * fallacyStep))

	s.Evidence["fallacies"] = map[string]int{
		"ad_hominem":          adHominem,
		"strawman":            strawman,
		"appeal_to_authority": authority,
		"moving_goalposts":    goalposts,
		"whataboutism":        whatabout,
		"total":               total,
	}
}

// scoreSpecialPatterns counts stonewalling (two categories summed) and
// threat/ultimatum language.
func (a *Analyzer) scoreSpecialPatterns(text string, s *types.DimensionalScores) {
	s.StonewallingIndicators = a.lib.Count(patterns.Stonewalling, text) +
		a.lib.Count(patterns.DismissWithoutEngagement, text)
	s.ThreatIndicators = a.lib.Count(patterns.Threats, text)

	s.Evidence["special"] = map[string]int{
		"stonewalling": s.StonewallingIndicators,
		"threats":      s.ThreatIndicators,
	}
}
