package alerts

import (
	"strconv"
	"strings"

	"github.com/dramascope/dramascope/pkg/types"
)

// evalCondition evaluates a rule condition string against a score record.
//
// Supported expressions (field operator value):
//
//	drama_score > 8
//	neutrality_score < 3
//	face_threats >= 6
//	fallacy_score > 5
//	politeness < 2
//	argument_quality < 2
//	subjectivity > 8
//	vader_negativity > 8
//	stonewalling_indicators > 2
//	threat_indicators > 0
//	accusation_count > 1
//	challenge_count > 1
//	health == toxic
//
// Returns (fires bool, triggering value float64).
// Returns (false, 0) if the expression cannot be parsed or the field is unknown.
func evalCondition(cond string, scores types.DimensionalScores) (bool, float64) {
	parts := strings.Fields(cond)
	if len(parts) != 3 {
		return false, 0
	}
	field, op, rhs := parts[0], parts[1], parts[2]

	if field == "health" {
		if op == "==" {
			return scores.HealthAssessment == rhs, 0
		}
		return false, 0
	}

	v, ok := numericField(field, scores)
	if !ok {
		return false, 0
	}
	threshold, err := strconv.ParseFloat(rhs, 64)
	if err != nil {
		return false, 0
	}
	return compareFloat(v, op, threshold), v
}

// numericField maps a field name to its value in the score record.
func numericField(field string, s types.DimensionalScores) (float64, bool) {
	switch field {
	case "drama_score":
		return s.DramaScore, true
	case "neutrality_score":
		return s.NeutralityScore, true
	case "vader_negativity":
		return s.VaderNegativity, true
	case "subjectivity":
		return s.Subjectivity, true
	case "politeness":
		return s.Politeness, true
	case "face_threats":
		return s.FaceThreats, true
	case "argument_quality":
		return s.ArgumentQuality, true
	case "fallacy_score":
		return s.FallacyScore, true
	case "stonewalling_indicators":
		return float64(s.StonewallingIndicators), true
	case "threat_indicators":
		return float64(s.ThreatIndicators), true
	case "accusation_count":
		return float64(s.AccusationCount), true
	case "challenge_count":
		return float64(s.ChallengeCount), true
	case "directive_count":
		return float64(s.DirectiveCount), true
	case "expressive_count":
		return float64(s.ExpressiveCount), true
	default:
		return 0, false
	}
}

// compareFloat applies a comparison operator to two float64 values.
func compareFloat(v float64, op string, threshold float64) bool {
	switch op {
	case ">":
		return v > threshold
	case ">=":
		return v >= threshold
	case "<":
		return v < threshold
	case "<=":
		return v <= threshold
	case "==":
		return v == threshold
	default:
		return false
	}
}
