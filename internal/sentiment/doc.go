// Package sentiment provides the two general-purpose NLP primitives used by
// the dimensional analyzer: a lexicon/rule-based polarity score (Compound,
// in [-1, +1]) and an opinion/subjectivity score (Subjectivity, in [0, 1]).
//
// Both scan embedded tab-separated lexicons parsed once at init. The polarity
// scorer applies negation flips, booster scaling, all-caps emphasis, and
// exclamation emphasis before normalizing the valence sum with
// sum / sqrt(sum² + 15). No I/O, no state, safe for concurrent use.
package sentiment
