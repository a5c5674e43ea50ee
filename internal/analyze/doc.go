// Package analyze implements the multi-dimensional text scorer that turns
// one text body into a DimensionalScores record.
//
// analyzer.go runs the pipeline: lexicon sentiment and subjectivity, then the
// pattern-library counters for politeness, speech acts, argument quality,
// fallacies, and special patterns. Text shorter than 10 trimmed characters
// short-circuits to a default record with health "unknown".
//
// score.go provides the composite formulas: drama weights
// negativity(20%) + impoliteness(20%) + face_threats(15%) + subjectivity(10%)
// + fallacies(15%) + low_quality(10%) + speech_acts(10%), plus an additive
// stonewalling penalty capped at 3; neutrality weights objectivity(30%) +
// quality(30%) + politeness(20%) + logic(10%) + non-threat(10%). Classify
// maps the pair to one of five health labels, first match wins.
//
// Every bounded field is clamped to [0, 10] before it is stored, so no
// out-of-range value ever escapes the package.
package analyze
