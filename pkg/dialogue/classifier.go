package dialogue

import "strings"

// Verdict is the three-way outcome of classifying a confirmation response.
type Verdict int

const (
	VerdictUnclear Verdict = iota
	VerdictYes
	VerdictNo
)

// Classifier decides whether a free-text response confirms or rejects a
// pending action. Phrase lists are injectable so deployments can tune them
// without touching flow logic. A response matching both lists is classified
// No: an ambiguous confirmation must never commit a write.
type Classifier struct {
	positive []string
	negative []string
}

func NewClassifier(positive, negative []string) *Classifier {
	return &Classifier{positive: positive, negative: negative}
}

func NewDefaultClassifier() *Classifier {
	return NewClassifier(DefaultPositivePhrases(), DefaultNegativePhrases())
}

func DefaultPositivePhrases() []string {
	return []string{
		"はい", "yes", "y", "ok", "おk", "オーケー",
		"確認", "送信", "登録", "よろしく", "お願いします",
		"大丈夫", "だいじょうぶ", "👍", "✅",
	}
}

func DefaultNegativePhrases() []string {
	return []string{
		"いいえ", "no", "n", "ng", "だめ", "ダメ",
		"修正", "変更", "やり直し", "もう一度", "いや",
		"ちがう", "違う", "間違い", "❌", "🙅",
	}
}

// Classify matches the lowercased, trimmed input against both phrase lists
// by substring containment. Negative wins over positive.
func (c *Classifier) Classify(input string) Verdict {
	text := strings.ToLower(strings.TrimSpace(input))
	if text == "" {
		return VerdictUnclear
	}

	for _, phrase := range c.negative {
		if strings.Contains(text, strings.ToLower(phrase)) {
			return VerdictNo
		}
	}
	for _, phrase := range c.positive {
		if strings.Contains(text, strings.ToLower(phrase)) {
			return VerdictYes
		}
	}
	return VerdictUnclear
}
