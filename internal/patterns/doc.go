// Package patterns holds the fixed catalog of phrase and regex pattern sets
// used by the dimensional analyzer, grouped into five families: politeness,
// speech acts, argument quality, fallacies, and special patterns.
//
// A PatternSet reports the number of non-overlapping occurrences of its rules
// in a text (CountMatches). Phrase rules are case-insensitive and anchored on
// token boundaries; regex rules carry their own flags. The Library registry
// maps category names to compiled sets and is built once at startup, then
// injected into the analyzer — never referenced as ambient global state.
package patterns
