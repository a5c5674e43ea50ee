package sentiment

import "strings"

// Subjectivity returns an opinion score in [0, 1] for text: 0 when no
// opinion-lexicon word is present, otherwise the average subjectivity weight
// of the matched words, lightly raised by nearby intensity modifiers.
// Pure and deterministic.
func Subjectivity(text string) float64 {
	tokens := wordPattern.FindAllString(text, -1)
	if len(tokens) == 0 {
		return 0
	}

	var sum float64
	matched := 0
	for i, tok := range tokens {
		w := strings.ToLower(tok)
		weight, ok := subjectivity[w]
		if !ok {
			continue
		}
		// An intensifier in front of an opinion word marks the statement as
		// more subjective regardless of polarity direction.
		if i > 0 {
			if b, ok := boosters[strings.ToLower(tokens[i-1])]; ok && b > 0 {
				weight += 0.1
			}
		}
		if weight > 1 {
			weight = 1
		}
		sum += weight
		matched++
	}

	if matched == 0 {
		return 0
	}
	avg := sum / float64(matched)
	if avg > 1 {
		avg = 1
	}
	return avg
}
