package sentiment

import (
	"math"
	"testing"
)

// almostEqual returns true if a and b are within epsilon of each other.
func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// --- Compound() ---

func TestCompound_Signs(t *testing.T) {
	tests := []struct {
		name string
		text string
		sign int // -1, 0, +1
	}{
		{"positive", "This is a great improvement, thanks", +1},
		{"negative", "This is a terrible, broken mess", -1},
		{"no lexicon words", "The function returns a pointer to the struct", 0},
		{"empty", "", 0},
		{"whitespace only", "   \n\t  ", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Compound(tc.text)
			switch {
			case tc.sign > 0 && got <= 0:
				t.Errorf("Compound(%q) = %.4f, want > 0", tc.text, got)
			case tc.sign < 0 && got >= 0:
				t.Errorf("Compound(%q) = %.4f, want < 0", tc.text, got)
			case tc.sign == 0 && got != 0:
				t.Errorf("Compound(%q) = %.4f, want 0", tc.text, got)
			}
		})
	}
}

func TestCompound_Negation(t *testing.T) {
	pos := Compound("this is good")
	neg := Compound("this is not good")
	if pos <= 0 {
		t.Fatalf("Compound(\"this is good\") = %.4f, want > 0", pos)
	}
	if neg >= 0 {
		t.Errorf("Compound(\"this is not good\") = %.4f, want < 0 after negation flip", neg)
	}
}

func TestCompound_NegationWindow(t *testing.T) {
	// The negation is two tokens back, inside the window.
	inWindow := Compound("never any good")
	if inWindow >= 0 {
		t.Errorf("negation three tokens back: Compound = %.4f, want < 0", inWindow)
	}
	// Four tokens back is outside the window; the valence stays positive.
	outside := Compound("never before was it this good")
	if outside <= 0 {
		t.Errorf("negation four tokens back: Compound = %.4f, want > 0", outside)
	}
}

func TestCompound_Boosters(t *testing.T) {
	plain := Compound("great work")
	boosted := Compound("really great work")
	if boosted <= plain {
		t.Errorf("booster: %.4f <= %.4f, want intensified", boosted, plain)
	}

	// Dampeners pull the valence toward zero.
	harsh := Compound("annoying behavior")
	damped := Compound("slightly annoying behavior")
	if damped <= harsh {
		t.Errorf("dampener: %.4f <= %.4f, want closer to zero", damped, harsh)
	}
}

func TestCompound_Exclamation(t *testing.T) {
	if a, b := Compound("This is great!"), Compound("This is great"); a <= b {
		t.Errorf("positive exclamation: %.4f <= %.4f", a, b)
	}
	if a, b := Compound("This is broken!"), Compound("This is broken"); a >= b {
		t.Errorf("negative exclamation: %.4f >= %.4f", a, b)
	}
}

func TestCompound_CapsEmphasis(t *testing.T) {
	shouted := Compound("this is WRONG and broken")
	plain := Compound("this is wrong and broken")
	if shouted >= plain {
		t.Errorf("caps emphasis: %.4f >= %.4f, want more negative", shouted, plain)
	}

	// A fully shouted text carries no per-word caps signal.
	allCaps := Compound("THIS IS WRONG AND BROKEN")
	if !almostEqual(allCaps, plain, 0.0001) {
		t.Errorf("all-caps text: %.4f, want %.4f (no emphasis)", allCaps, plain)
	}
}

func TestCompound_Bounds(t *testing.T) {
	texts := []string{
		"awful terrible horrible garbage broken useless pathetic disaster!!!!",
		"great excellent wonderful amazing fantastic brilliant outstanding!!!!",
		"fine",
		"not not not not bad",
	}
	for _, text := range texts {
		got := Compound(text)
		if got < -1 || got > 1 {
			t.Errorf("Compound(%q) = %.4f out of [-1, 1]", text, got)
		}
	}
}

// --- Subjectivity() ---

func TestSubjectivity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"no opinion words", "The server restarted at noon", 0},
		{"empty", "", 0},
		{"single strong opinion", "that approach is ugly", 1.0},
		// (think 0.8 + probably 0.5 + wrong 0.7) / 3
		{"mixed opinion and fact", "I think this is probably wrong", 0.6667},
		{"intensified opinion", "really nice", 0.9},
		{"intensifier capped at one", "really ugly", 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Subjectivity(tc.text)
			if !almostEqual(got, tc.want, 0.001) {
				t.Errorf("Subjectivity(%q) = %.4f, want %.4f", tc.text, got, tc.want)
			}
		})
	}
}

func TestSubjectivity_Range(t *testing.T) {
	texts := []string{
		"obviously this is absolutely the worst idea honestly",
		"the patch modifies three files",
		"I personally believe it seems fine",
	}
	for _, text := range texts {
		got := Subjectivity(text)
		if got < 0 || got > 1 {
			t.Errorf("Subjectivity(%q) = %.4f out of [0, 1]", text, got)
		}
	}
}

// --- lexicon parsing ---

func TestParseLexicon(t *testing.T) {
	raw := "# comment line\n\nword\t1.5\nother\t-0.5\nmalformed line\nbadscore\tx\n"
	m := parseLexicon(raw)
	if len(m) != 2 {
		t.Fatalf("parseLexicon: got %d entries, want 2", len(m))
	}
	if m["word"] != 1.5 {
		t.Errorf("word = %v, want 1.5", m["word"])
	}
	if m["other"] != -0.5 {
		t.Errorf("other = %v, want -0.5", m["other"])
	}
}

func TestEmbeddedLexicons(t *testing.T) {
	if len(valence) == 0 || len(subjectivity) == 0 {
		t.Fatal("embedded lexicons are empty")
	}
	if valence["great"] <= 0 {
		t.Errorf("valence[great] = %v, want > 0", valence["great"])
	}
	if valence["terrible"] >= 0 {
		t.Errorf("valence[terrible] = %v, want < 0", valence["terrible"])
	}
	if subjectivity["obviously"] != 1.0 {
		t.Errorf("subjectivity[obviously] = %v, want 1.0", subjectivity["obviously"])
	}
}
