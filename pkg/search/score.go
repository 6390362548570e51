package search

import (
	"strings"

	"manualbot-be/internal/entity"
)

// MatchKind records why a manual matched a query. When several signals
// contribute, the highest-weighted one wins.
type MatchKind string

const (
	MatchExactTitle   MatchKind = "exact_title"
	MatchPartialTitle MatchKind = "partial_title"
	MatchTag          MatchKind = "tag"
	MatchContent      MatchKind = "content"
	MatchCategory     MatchKind = "category"
)

// Weights are the per-signal score contributions. Each signal contributes at
// most once; the sum is clamped to 1.0. The absolute values are not
// load-bearing beyond their relative order (title > tag > content >
// category).
type Weights struct {
	ExactTitle   float64
	PartialTitle float64
	Tag          float64
	Content      float64
	Category     float64
}

func DefaultWeights() Weights {
	return Weights{
		ExactTitle:   1.0,
		PartialTitle: 0.8,
		Tag:          0.6,
		Content:      0.5,
		Category:     0.4,
	}
}

// DefaultCategorySynonyms associates each major category with keywords that
// should surface its manuals even when the query never names the category.
func DefaultCategorySynonyms() map[string][]string {
	return map[string][]string{
		"経理": {"経費", "精算", "会計", "請求", "支払い", "領収書"},
		"人事": {"有給", "休暇", "勤怠", "申請", "評価", "給与"},
		"IT": {"パスワード", "システム", "ソフト", "パソコン", "ネット"},
		"総務": {"備品", "施設", "会議室", "駐車場", "受付", "郵便"},
		"営業": {"見積", "契約", "顧客", "商談", "提案", "売上"},
		"製造": {"生産", "品質", "安全", "設備", "在庫", "出荷"},
	}
}

// scoreManual computes the clamped score and the match kind for a single
// manual against a normalized keyword. A zero score means no signal matched.
func (e *Engine) scoreManual(manual *entity.Manual, keyword string) (float64, MatchKind) {
	score := 0.0
	kind := MatchKind("")
	title := strings.ToLower(manual.Title)

	if title == keyword {
		score += e.weights.ExactTitle
		kind = MatchExactTitle
	} else if strings.Contains(title, keyword) {
		score += e.weights.PartialTitle
		kind = MatchPartialTitle
	}

	if e.tagMatches(manual, keyword) {
		score += e.weights.Tag
		if kind == "" {
			kind = MatchTag
		}
	}

	if manual.Content != "" && strings.Contains(strings.ToLower(manual.Content), keyword) {
		score += e.weights.Content
		if kind == "" {
			kind = MatchContent
		}
	}

	if e.categoryMatches(manual, keyword) {
		score += e.weights.Category
		if kind == "" {
			kind = MatchCategory
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score, kind
}

func (e *Engine) tagMatches(manual *entity.Manual, keyword string) bool {
	for _, tag := range manual.Tags {
		if strings.Contains(strings.ToLower(tag), keyword) {
			return true
		}
	}
	return false
}

// categoryMatches checks the static category→synonym table in both
// directions: the query may name part of a synonym or contain one.
func (e *Engine) categoryMatches(manual *entity.Manual, keyword string) bool {
	synonyms, ok := e.categorySynonyms[manual.Category.Major]
	if !ok {
		return false
	}
	for _, synonym := range synonyms {
		lowered := strings.ToLower(synonym)
		if strings.Contains(lowered, keyword) || strings.Contains(keyword, lowered) {
			return true
		}
	}
	return false
}
