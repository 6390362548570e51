package search

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"manualbot-be/internal/entity"
	"manualbot-be/internal/pkg/logger"
	"manualbot-be/internal/repository/contract"
	"manualbot-be/pkg/permission"
)

const (
	// MinKeywordLength and MaxKeywordLength bound a raw query after trimming.
	MinKeywordLength = 2
	MaxKeywordLength = 100

	// ScoreThreshold drops weak keyword matches from result lists.
	ScoreThreshold = 0.3

	// MaxResults caps the result list.
	MaxResults = 10

	// DetailScoreThreshold is the score at or above which a lone keyword hit
	// should be rendered as a full detail view by the caller.
	DetailScoreThreshold = 0.9
)

// InvalidQueryError reports a rejected raw query. The reason is safe to show
// to the user.
type InvalidQueryError struct {
	Reason string
}

func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("invalid query: %s", e.Reason)
}

// ScoredResult pairs a manual with its relevance score and the reason it
// matched. Derived, never persisted.
type ScoredResult struct {
	Manual    *entity.Manual
	Score     float64
	MatchKind MatchKind
}

// CategoryCount is one row of the permission-filtered category overview.
type CategoryCount struct {
	Category string
	Count    int
}

// Engine matches free-text queries against the manual corpus and returns
// ordered, access-controlled results.
type Engine struct {
	manuals          contract.ManualRepository
	weights          Weights
	categorySynonyms map[string][]string
	logger           logger.ILogger
}

func NewEngine(manuals contract.ManualRepository, log logger.ILogger) *Engine {
	return &Engine{
		manuals:          manuals,
		weights:          DefaultWeights(),
		categorySynonyms: DefaultCategorySynonyms(),
		logger:           log,
	}
}

// Search runs a keyword search at the given permission level. Results are
// sorted by score descending; equal scores keep corpus order. Returns
// *InvalidQueryError for a malformed query.
func (e *Engine) Search(ctx context.Context, rawQuery string, userLevel permission.Level) ([]ScoredResult, error) {
	keyword, err := normalizeKeyword(rawQuery)
	if err != nil {
		return nil, err
	}

	manuals, err := e.manuals.AllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("load manual corpus: %w", err)
	}

	var results []ScoredResult
	for _, manual := range e.visible(manuals, userLevel) {
		score, kind := e.scoreManual(manual, keyword)
		if score < ScoreThreshold {
			continue
		}
		results = append(results, ScoredResult{Manual: manual, Score: score, MatchKind: kind})
	}

	// Stable: equal scores preserve corpus order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}

	e.logger.Info("SearchEngine", "Keyword search completed", map[string]interface{}{
		"keyword": keyword,
		"level":   int(userLevel),
		"hits":    len(results),
	})
	return results, nil
}

// SearchByCategory returns every active, visible manual whose major category
// exactly equals categoryName. Matches score 1.0; no threshold applies.
func (e *Engine) SearchByCategory(ctx context.Context, categoryName string, userLevel permission.Level) ([]ScoredResult, error) {
	manuals, err := e.manuals.AllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("load manual corpus: %w", err)
	}

	var results []ScoredResult
	for _, manual := range e.visible(manuals, userLevel) {
		if manual.Category.Major != categoryName {
			continue
		}
		results = append(results, ScoredResult{Manual: manual, Score: 1.0, MatchKind: MatchCategory})
	}

	e.logger.Info("SearchEngine", "Category search completed", map[string]interface{}{
		"category": categoryName,
		"level":    int(userLevel),
		"hits":     len(results),
	})
	return results, nil
}

// Categories counts visible active manuals per major category, in corpus
// order of first appearance.
func (e *Engine) Categories(ctx context.Context, userLevel permission.Level) ([]CategoryCount, error) {
	manuals, err := e.manuals.AllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("load manual corpus: %w", err)
	}

	counts := map[string]int{}
	var order []string
	for _, manual := range e.visible(manuals, userLevel) {
		major := manual.Category.Major
		if major == "" {
			major = "その他"
		}
		if _, seen := counts[major]; !seen {
			order = append(order, major)
		}
		counts[major]++
	}

	result := make([]CategoryCount, 0, len(order))
	for _, category := range order {
		result = append(result, CategoryCount{Category: category, Count: counts[category]})
	}
	return result, nil
}

// IsKnownCategory reports whether the name is a major category in the
// synonym table, used by the router to turn bare category names into
// category searches.
func (e *Engine) IsKnownCategory(name string) bool {
	_, ok := e.categorySynonyms[name]
	return ok
}

func (e *Engine) visible(manuals []*entity.Manual, userLevel permission.Level) []*entity.Manual {
	var out []*entity.Manual
	for _, manual := range manuals {
		if !manual.Active {
			continue
		}
		if !permission.IsVisible(userLevel, manual.RequiredPermission) {
			continue
		}
		out = append(out, manual)
	}
	return out
}

func normalizeKeyword(rawQuery string) (string, error) {
	keyword := strings.ToLower(strings.TrimSpace(rawQuery))
	length := utf8.RuneCountInString(keyword)
	if length < MinKeywordLength {
		return "", &InvalidQueryError{Reason: fmt.Sprintf("キーワードは%d文字以上で入力してください", MinKeywordLength)}
	}
	if length > MaxKeywordLength {
		return "", &InvalidQueryError{Reason: fmt.Sprintf("キーワードが長すぎます（%d文字以内）", MaxKeywordLength)}
	}
	return keyword, nil
}
