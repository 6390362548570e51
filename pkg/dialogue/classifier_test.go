package dialogue

import "testing"

func TestClassifyDefaults(t *testing.T) {
	classifier := NewDefaultClassifier()

	tests := []struct {
		name  string
		input string
		want  Verdict
	}{
		{name: "plain yes", input: "はい", want: VerdictYes},
		{name: "yes with whitespace", input: "  はい  ", want: VerdictYes},
		{name: "english yes uppercase", input: "YES", want: VerdictYes},
		{name: "polite confirmation", input: "お願いします", want: VerdictYes},
		{name: "plain no", input: "いいえ", want: VerdictNo},
		{name: "request to fix", input: "修正したいです", want: VerdictNo},
		{name: "negative kanji variant", input: "違う", want: VerdictNo},
		{name: "empty", input: "", want: VerdictUnclear},
		{name: "whitespace only", input: "   ", want: VerdictUnclear},
		{name: "unrelated text", input: "てすと", want: VerdictUnclear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.Classify(tt.input); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// A response matching both lists must never read as a confirmation.
func TestClassifyNegativeWinsOverlap(t *testing.T) {
	classifier := NewDefaultClassifier()

	overlapping := []string{
		"はい、でも修正したいです",
		"はい いいえ",
		"ok、やり直しで",
	}
	for _, input := range overlapping {
		if got := classifier.Classify(input); got != VerdictNo {
			t.Errorf("Classify(%q) = %v, want VerdictNo", input, got)
		}
	}
}

func TestClassifyInjectedPhrases(t *testing.T) {
	classifier := NewClassifier([]string{"go"}, []string{"stop"})

	if got := classifier.Classify("GO"); got != VerdictYes {
		t.Errorf("Classify(GO) = %v, want VerdictYes", got)
	}
	if got := classifier.Classify("stop"); got != VerdictNo {
		t.Errorf("Classify(stop) = %v, want VerdictNo", got)
	}
	if got := classifier.Classify("はい"); got != VerdictUnclear {
		t.Errorf("Classify(はい) = %v, want VerdictUnclear with custom lists", got)
	}
}
