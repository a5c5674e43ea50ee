package patterns

import (
	"regexp"
	"strings"
	"unicode"
)

// PatternSet is an immutable, ordered collection of compiled match rules for
// one linguistic category. Construct once at startup; safe for concurrent
// reads afterwards.
type PatternSet struct {
	name  string
	rules []*regexp.Regexp
}

// NewPhraseSet compiles literal phrases into case-insensitive rules.
// When wordBoundary is true, \b anchors are applied at each phrase edge that
// is a word character, so "ack" does not match inside "backup" but a
// punctuation-final phrase like "no." still matches before whitespace.
func NewPhraseSet(name string, phrases []string, wordBoundary bool) *PatternSet {
	rules := make([]*regexp.Regexp, 0, len(phrases))
	for _, p := range phrases {
		rules = append(rules, regexp.MustCompile(phrasePattern(p, wordBoundary)))
	}
	return &PatternSet{name: name, rules: rules}
}

// NewRegexSet compiles full regular expressions as-is. Callers add their own
// case-insensitivity and boundary flags.
func NewRegexSet(name string, exprs []string) *PatternSet {
	rules := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		rules = append(rules, regexp.MustCompile(e))
	}
	return &PatternSet{name: name, rules: rules}
}

// Name returns the category name this set was registered under.
func (s *PatternSet) Name() string { return s.name }

// Len returns the number of rules in the set.
func (s *PatternSet) Len() int { return len(s.rules) }

// CountMatches returns the number of non-overlapping occurrences of any rule
// in text. Occurrences are non-overlapping per rule; counts are summed across
// rules, so two rules matching the same span both count.
func (s *PatternSet) CountMatches(text string) int {
	n := 0
	for _, re := range s.rules {
		n += len(re.FindAllStringIndex(text, -1))
	}
	return n
}

// extend returns a new set with extra phrases appended. The receiver is not
// modified.
func (s *PatternSet) extend(phrases []string) *PatternSet {
	out := &PatternSet{name: s.name, rules: make([]*regexp.Regexp, 0, len(s.rules)+len(phrases))}
	out.rules = append(out.rules, s.rules...)
	for _, p := range phrases {
		out.rules = append(out.rules, regexp.MustCompile(phrasePattern(p, true)))
	}
	return out
}

func phrasePattern(phrase string, wordBoundary bool) string {
	quoted := regexp.QuoteMeta(phrase)
	if !wordBoundary || phrase == "" {
		return "(?i)" + quoted
	}
	var b strings.Builder
	b.WriteString("(?i)")
	runes := []rune(phrase)
	if isWordRune(runes[0]) {
		b.WriteString(`\b`)
	}
	b.WriteString(quoted)
	if isWordRune(runes[len(runes)-1]) {
		b.WriteString(`\b`)
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
