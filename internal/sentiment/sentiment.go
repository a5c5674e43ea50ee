package sentiment

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// Rule constants for the compound score. Negated words keep a damped share of
// their valence; all-caps and exclamation marks add emphasis only when the
// rest of the text is mixed-case.
const (
	negationScale  = -0.74
	negationWindow = 3
	boosterDecay   = 0.95
	capsEmphasis   = 0.733
	bangEmphasis   = 0.292
	maxBangs       = 4

	// normalizationAlpha flattens the raw valence sum into [-1, 1]:
	// compound = sum / sqrt(sum² + alpha).
	normalizationAlpha = 15.0
)

var wordPattern = regexp.MustCompile(`[A-Za-z']+`)

// negations flip the valence of a following lexicon word.
var negations = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "none": {}, "neither": {}, "nor": {},
	"cannot": {}, "can't": {}, "won't": {}, "wouldn't": {}, "shouldn't": {},
	"couldn't": {}, "don't": {}, "doesn't": {}, "didn't": {}, "isn't": {},
	"aren't": {}, "wasn't": {}, "weren't": {}, "ain't": {}, "without": {},
	"hardly": {}, "rarely": {}, "seldom": {},
}

// boosters scale the valence of a following lexicon word up or down.
var boosters = map[string]float64{
	"absolutely": 0.293, "completely": 0.293, "extremely": 0.293,
	"utterly": 0.293, "incredibly": 0.293, "totally": 0.267,
	"really": 0.267, "very": 0.267, "hugely": 0.267, "deeply": 0.267,
	"so": 0.2, "too": 0.2, "quite": 0.18, "pretty": 0.18,
	"somewhat": -0.15, "slightly": -0.293, "marginally": -0.293,
	"barely": -0.293, "scarcely": -0.293,
}

// Compound returns a lexicon-based polarity score in [-1, +1] for text.
// 0 means neutral or no recognized sentiment-bearing words. The function is
// pure and deterministic.
func Compound(text string) float64 {
	tokens := wordPattern.FindAllString(text, -1)
	if len(tokens) == 0 {
		return 0
	}

	// Caps emphasis only means anything when the writer mixes cases;
	// a fully shouted text carries no per-word signal.
	mixed := hasMixedCase(tokens)

	var sum float64
	for i, tok := range tokens {
		w := strings.ToLower(tok)
		v, ok := valence[w]
		if !ok {
			continue
		}
		// Negation words carry their own valence ("no" is mildly negative)
		// but should not additionally be treated as sentiment targets when
		// they act as modifiers — the flip below handles that.
		v = applyBoosters(v, tokens, i)
		if negatedBefore(tokens, i) {
			v *= negationScale
		}
		if mixed && isShouted(tok) {
			if v > 0 {
				v += capsEmphasis
			} else {
				v -= capsEmphasis
			}
		}
		sum += v
	}

	if sum == 0 {
		return 0
	}
	sum += bangBoost(text, sum)

	compound := sum / math.Sqrt(sum*sum+normalizationAlpha)
	return math.Max(-1, math.Min(1, compound))
}

// applyBoosters scales v by intensity modifiers among the two preceding
// tokens. The farther modifier contributes at a decayed rate.
func applyBoosters(v float64, tokens []string, i int) float64 {
	for dist := 1; dist <= 2 && i-dist >= 0; dist++ {
		b, ok := boosters[strings.ToLower(tokens[i-dist])]
		if !ok {
			continue
		}
		if v < 0 {
			b = -b
		}
		if dist == 2 {
			b *= boosterDecay
		}
		v += b
	}
	return v
}

// negatedBefore reports whether any of the negationWindow tokens preceding
// position i is a negation word.
func negatedBefore(tokens []string, i int) bool {
	for dist := 1; dist <= negationWindow && i-dist >= 0; dist++ {
		if _, ok := negations[strings.ToLower(tokens[i-dist])]; ok {
			return true
		}
	}
	return false
}

// bangBoost returns the exclamation-mark emphasis, signed to match the
// direction of the running sum.
func bangBoost(text string, sum float64) float64 {
	bangs := strings.Count(text, "!")
	if bangs > maxBangs {
		bangs = maxBangs
	}
	boost := float64(bangs) * bangEmphasis
	if sum < 0 {
		return -boost
	}
	return boost
}

// isShouted reports whether tok is at least two letters and all upper case.
func isShouted(tok string) bool {
	letters := 0
	for _, r := range tok {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters >= 2
}

// hasMixedCase reports whether tokens contain both shouted and non-shouted
// words.
func hasMixedCase(tokens []string) bool {
	var caps, lower bool
	for _, t := range tokens {
		if isShouted(t) {
			caps = true
		} else {
			lower = true
		}
		if caps && lower {
			return true
		}
	}
	return false
}
