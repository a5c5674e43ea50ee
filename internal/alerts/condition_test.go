package alerts

import (
	"testing"

	"github.com/dramascope/dramascope/pkg/types"
)

func TestEvalCondition(t *testing.T) {
	scores := types.DimensionalScores{
		DramaScore:             8.5,
		NeutralityScore:        2,
		VaderNegativity:        9,
		Politeness:             1,
		FaceThreats:            6,
		ArgumentQuality:        1.5,
		StonewallingIndicators: 3,
		ThreatIndicators:       0,
		AccusationCount:        2,
		HealthAssessment:       types.HealthToxic,
	}

	tests := []struct {
		cond      string
		wantFires bool
		wantValue float64
	}{
		{"drama_score > 8", true, 8.5},
		{"drama_score > 9", false, 8.5},
		{"drama_score >= 8.5", true, 8.5},
		{"neutrality_score < 3", true, 2},
		{"neutrality_score <= 2", true, 2},
		{"politeness < 2", true, 1},
		{"face_threats >= 6", true, 6},
		{"argument_quality < 2", true, 1.5},
		{"stonewalling_indicators > 2", true, 3},
		{"threat_indicators > 0", false, 0},
		{"accusation_count == 2", true, 2},
		{"health == toxic", true, 0},
		{"health == productive", false, 0},

		// Unparseable or unknown expressions never fire.
		{"health > toxic", false, 0},
		{"drama_score >", false, 0},
		{"drama_score > high", false, 0},
		{"mystery_field > 1", false, 0},
		{"", false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.cond, func(t *testing.T) {
			fires, value := evalCondition(tc.cond, scores)
			if fires != tc.wantFires {
				t.Errorf("evalCondition(%q) fires = %v, want %v", tc.cond, fires, tc.wantFires)
			}
			if fires && value != tc.wantValue {
				t.Errorf("evalCondition(%q) value = %.2f, want %.2f", tc.cond, value, tc.wantValue)
			}
		})
	}
}

func TestNumericField_CountFields(t *testing.T) {
	s := types.DimensionalScores{
		DirectiveCount:  1,
		ExpressiveCount: 2,
		AccusationCount: 3,
		ChallengeCount:  4,
	}
	tests := []struct {
		field string
		want  float64
	}{
		{"directive_count", 1},
		{"expressive_count", 2},
		{"accusation_count", 3},
		{"challenge_count", 4},
	}
	for _, tc := range tests {
		got, ok := numericField(tc.field, s)
		if !ok || got != tc.want {
			t.Errorf("numericField(%s) = (%v, %v), want (%v, true)", tc.field, got, ok, tc.want)
		}
	}
}

func TestCompareFloat(t *testing.T) {
	tests := []struct {
		v    float64
		op   string
		rhs  float64
		want bool
	}{
		{5, ">", 4, true},
		{5, ">", 5, false},
		{5, ">=", 5, true},
		{3, "<", 4, true},
		{4, "<=", 4, true},
		{4, "==", 4, true},
		{4, "==", 4.1, false},
		{4, "!=", 3, false}, // unsupported operator
	}
	for _, tc := range tests {
		if got := compareFloat(tc.v, tc.op, tc.rhs); got != tc.want {
			t.Errorf("compareFloat(%v %s %v) = %v, want %v", tc.v, tc.op, tc.rhs, got, tc.want)
		}
	}
}
