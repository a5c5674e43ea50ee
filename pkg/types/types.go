package types

// Health labels assigned to a single text, a whole thread, or a participant.
// Classification is a pure function of (drama_score, neutrality_score); see
// the analyze package for the branch order.
const (
	HealthToxic      = "toxic"
	HealthHeated     = "heated-but-fair"
	HealthProductive = "productive"
	HealthDismissive = "dismissive"
	HealthMixed      = "mixed"

	// HealthUnknown is returned for text too short to score.
	HealthUnknown = "unknown"

	// HealthEmpty is the sentinel label for a thread with no messages.
	HealthEmpty = "empty"
)

// Message is one entry of a discussion thread as handed in by a collaborator
// (scraper, archive loader, test fixture). Timestamp is carried through
// verbatim; the analysis itself never interprets it.
type Message struct {
	Author    string `json:"author"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

// DimensionalScores is the per-text result record. All continuous scores are
// bounded to [0, 10] and clamped after every arithmetic step; the counter
// fields are raw non-negative match counts. A DimensionalScores value is
// constructed once per analysis call and never mutated afterwards.
type DimensionalScores struct {
	// Core dimensions (0–10). Politeness and ArgumentQuality use 5 as the
	// neutral midpoint; the others start at 0.
	VaderNegativity float64 `json:"vader_negativity"`
	Subjectivity    float64 `json:"subjectivity"`
	Politeness      float64 `json:"politeness"`
	FaceThreats     float64 `json:"face_threats"`
	ArgumentQuality float64 `json:"argument_quality"`
	FallacyScore    float64 `json:"fallacy_score"`

	// Speech act profile (raw counts, unbounded).
	DirectiveCount  int `json:"directive_count"`
	ExpressiveCount int `json:"expressive_count"`
	AccusationCount int `json:"accusation_count"`
	ChallengeCount  int `json:"challenge_count"`

	// Special pattern counts.
	StonewallingIndicators int `json:"stonewalling_indicators"`
	ThreatIndicators       int `json:"threat_indicators"`

	// Composite scores (0–10).
	DramaScore      float64 `json:"drama_score"`
	NeutralityScore float64 `json:"neutrality_score"`

	// HealthAssessment is one of the Health* labels above.
	HealthAssessment string `json:"health_assessment"`

	// Evidence holds per-step diagnostic breakdowns (match counts, raw
	// sentiment output). It never influences downstream logic.
	Evidence map[string]any `json:"evidence,omitempty"`
}

// AuthorStats is the per-author rollup inside one thread.
type AuthorStats struct {
	MessageCount           int     `json:"message_count"`
	AvgDrama               float64 `json:"avg_drama"`
	AvgNeutrality          float64 `json:"avg_neutrality"`
	StonewallingIndicators int     `json:"stonewalling_indicators"`
	IsDifficult            bool    `json:"is_difficult"`
}

// ThreadAnalysis is the read-only aggregate over one ordered message list.
// It is recomputed wholesale on every call — there is no incremental state.
type ThreadAnalysis struct {
	DramaScore       float64 `json:"thread_drama_score"`
	NeutralityScore  float64 `json:"thread_neutrality_score"`
	MaxDrama         float64 `json:"max_drama"`
	MessageCount     int     `json:"message_count"`
	UniqueAuthors    int     `json:"unique_authors"`
	IsPileOn         bool    `json:"is_pile_on"`
	HealthAssessment string  `json:"health_assessment"`

	AuthorAnalysis map[string]AuthorStats `json:"author_analysis,omitempty"`

	// DifficultParticipants lists flagged author handles in encounter order.
	DifficultParticipants []string `json:"difficult_participants,omitempty"`
}

// ParticipantProfile is the running cross-thread aggregate for one author
// handle, recomputed from the full per-author history after every message.
type ParticipantProfile struct {
	Handle       string `json:"handle"`
	MessageCount int    `json:"message_count"`

	AvgDrama           float64 `json:"avg_drama"`
	AvgNeutrality      float64 `json:"avg_neutrality"`
	AvgPoliteness      float64 `json:"avg_politeness"`
	AvgArgumentQuality float64 `json:"avg_argument_quality"`
	AvgSubjectivity    float64 `json:"avg_subjectivity"`
	AvgFallacyRate     float64 `json:"avg_fallacy_rate"`
	AvgFaceThreats     float64 `json:"avg_face_threats"`

	// Speech act rates as a percentage of the author's total speech acts.
	DirectiveRate  float64 `json:"directive_rate"`
	ExpressiveRate float64 `json:"expressive_rate"`
	AccusationRate float64 `json:"accusation_rate"`

	TotalStonewalling int  `json:"total_stonewalling"`
	IsDifficult       bool `json:"is_difficult"`
}
