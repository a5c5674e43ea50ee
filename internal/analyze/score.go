package analyze

import (
	"math"

	"github.com/dramascope/dramascope/pkg/types"
)

// Weight constants for the drama score formula. The seven weighted terms sum
// to 1.0; the stonewalling penalty is added on top and the result clamped.
const (
	weightNegativity   = 0.20
	weightImpoliteness = 0.20
	weightFaceThreats  = 0.15
	weightSubjectivity = 0.10
	weightFallacies    = 0.15
	weightLowQuality   = 0.10
	weightSpeechActs   = 0.10
)

// Weight constants for the neutrality score formula. They sum to 1.0.
const (
	weightObjectivity = 0.30
	weightQuality     = 0.30
	weightPoliteness  = 0.20
	weightLogic       = 0.10
	weightNonThreat   = 0.10
)

// Speech act contributions to the drama sub-score, per occurrence.
const (
	accusationWeight = 3.0
	challengeWeight  = 2.5
	expressiveWeight = 1.5
	directiveWeight  = 0.5
)

const (
	// Each fallacy occurrence adds 2.5 to the fallacy score (cap 10).
	fallacyStep = 2.5

	// Stonewalling adds an additive drama penalty, capped at 3.
	stonewallingStep       = 1.5
	maxStonewallingPenalty = 3.0
)

// Classification thresholds for the five-branch health rule.
const (
	toxicDrama       = 6.0
	heatedDrama      = 5.0
	calmDrama        = 4.0
	fairNeutrality   = 5.0
	strongNeutrality = 6.0
)

// Classify maps a (drama, neutrality) pair to a health label. Branches are
// evaluated in priority order; the first match wins.
func Classify(drama, neutrality float64) string {
	switch {
	case drama >= toxicDrama && neutrality < fairNeutrality:
		return types.HealthToxic
	case drama >= heatedDrama && neutrality >= fairNeutrality:
		return types.HealthHeated
	case drama < calmDrama && neutrality >= strongNeutrality:
		return types.HealthProductive
	case drama < calmDrama && neutrality < fairNeutrality:
		return types.HealthDismissive
	default:
		return types.HealthMixed
	}
}

// applyComposites fills in the drama score, neutrality score, and health
// label from the already-computed dimensions.
func applyComposites(s *types.DimensionalScores) {
	speechActDrama := clamp10(float64(s.AccusationCount)*accusationWeight +
		float64(s.ChallengeCount)*challengeWeight +
		float64(s.ExpressiveCount)*expressiveWeight +
		float64(s.DirectiveCount)*directiveWeight)

	stonewallingPenalty := math.Min(maxStonewallingPenalty,
		float64(s.StonewallingIndicators)*stonewallingStep)

	drama := s.VaderNegativity*weightNegativity +
		(10-s.Politeness)*weightImpoliteness +
		s.FaceThreats*weightFaceThreats +
		s.Subjectivity*weightSubjectivity +
		s.FallacyScore*weightFallacies +
		(10-s.ArgumentQuality)*weightLowQuality +
		speechActDrama*weightSpeechActs
	s.DramaScore = round2(clamp10(drama + stonewallingPenalty))

	neutrality := (10-s.Subjectivity)*weightObjectivity +
		s.ArgumentQuality*weightQuality +
		s.Politeness*weightPoliteness +
		(10-s.FallacyScore)*weightLogic +
		(10-s.FaceThreats)*weightNonThreat
	s.NeutralityScore = round2(clamp10(neutrality))

	s.HealthAssessment = Classify(s.DramaScore, s.NeutralityScore)
}

// clamp10 restricts v to the range [0, 10].
func clamp10(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

// round2 rounds to two decimal places, matching the precision the scores are
// serialized with.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
