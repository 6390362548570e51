package search

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"manualbot-be/internal/entity"
	"manualbot-be/internal/pkg/logger"
	"manualbot-be/pkg/permission"
)

type stubManualRepo struct {
	manuals []*entity.Manual
}

func (r *stubManualRepo) AllActive(ctx context.Context) ([]*entity.Manual, error) {
	return r.manuals, nil
}

func (r *stubManualRepo) Create(ctx context.Context, manual *entity.Manual) error {
	r.manuals = append(r.manuals, manual)
	return nil
}

func manual(title, major string, tags []string, required permission.Level, active bool) *entity.Manual {
	return &entity.Manual{
		Id:                 uuid.New(),
		Category:           entity.CategoryPath{Major: major},
		Title:              title,
		Content:            "手順の説明です。",
		Tags:               tags,
		RequiredPermission: required,
		Active:             active,
	}
}

func newTestEngine(manuals ...*entity.Manual) *Engine {
	return NewEngine(&stubManualRepo{manuals: manuals}, logger.NewNop())
}

func TestSearchRejectsInvalidQueries(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name  string
		query string
	}{
		{name: "empty", query: ""},
		{name: "whitespace only", query: "   "},
		{name: "single rune", query: "経"},
		{name: "too long", query: repeatRune('あ', 101)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Search(context.Background(), tt.query, permission.LevelGeneral)
			if err == nil {
				t.Fatalf("Search(%q) expected error, got nil", tt.query)
			}
			if _, ok := err.(*InvalidQueryError); !ok {
				t.Errorf("Search(%q) error = %T, want *InvalidQueryError", tt.query, err)
			}
		})
	}
}

func repeatRune(r rune, n int) string {
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = r
	}
	return string(runes)
}

func TestSearchPartialTitleMatch(t *testing.T) {
	// Single document titled 経費精算, neutral category so only the title
	// signal contributes: expect a list-worthy score below the detail cutoff.
	engine := newTestEngine(manual("経費精算", "ガイド", nil, permission.LevelGeneral, true))

	results, err := engine.Search(context.Background(), "経費", permission.LevelGeneral)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if results[0].MatchKind != MatchPartialTitle {
		t.Errorf("MatchKind = %q, want %q", results[0].MatchKind, MatchPartialTitle)
	}
	if results[0].Score < 0.5 {
		t.Errorf("Score = %f, want >= 0.5", results[0].Score)
	}
	if results[0].Score >= DetailScoreThreshold {
		t.Errorf("Score = %f, want < %f (list, not detail view)", results[0].Score, DetailScoreThreshold)
	}
}

func TestSearchExactTitleBeatsPartial(t *testing.T) {
	exact := manual("有給申請", "ガイド", nil, permission.LevelGeneral, true)
	partial := manual("有給申請の承認手順", "ガイド", nil, permission.LevelGeneral, true)
	engine := newTestEngine(partial, exact)

	results, err := engine.Search(context.Background(), "有給申請", permission.LevelGeneral)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Manual.Id != exact.Id {
		t.Errorf("results[0] = %q, want exact-title match first", results[0].Manual.Title)
	}
	if results[0].MatchKind != MatchExactTitle {
		t.Errorf("MatchKind = %q, want %q", results[0].MatchKind, MatchExactTitle)
	}
}

func TestSearchScoreBounds(t *testing.T) {
	// A document matching on every signal must still clamp to 1.0.
	m := manual("経費", "経理", []string{"経費"}, permission.LevelGeneral, true)
	m.Content = "経費の手続き"
	engine := newTestEngine(m)

	results, err := engine.Search(context.Background(), "経費", permission.LevelGeneral)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	for _, r := range results {
		if r.Score < 0 || r.Score > 1.0 {
			t.Errorf("Score = %f, want within [0,1]", r.Score)
		}
	}
}

func TestSearchFiltersByPermissionAndActive(t *testing.T) {
	visible := manual("経費精算", "経理", nil, permission.LevelGeneral, true)
	restricted := manual("経費精算の監査", "経理", nil, permission.LevelExecutive, true)
	inactive := manual("経費精算（旧版）", "経理", nil, permission.LevelGeneral, false)
	engine := newTestEngine(visible, restricted, inactive)

	results, err := engine.Search(context.Background(), "経費精算", permission.LevelGeneral)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if results[0].Manual.Id != visible.Id {
		t.Errorf("unexpected manual %q in results", results[0].Manual.Title)
	}

	execResults, err := engine.Search(context.Background(), "経費精算", permission.LevelExecutive)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(execResults) != 2 {
		t.Errorf("executive search len = %d, want 2 (inactive stays hidden)", len(execResults))
	}
}

func TestSearchStableTieBreak(t *testing.T) {
	first := manual("会議室の予約手順", "総務", nil, permission.LevelGeneral, true)
	second := manual("会議室の利用ルール", "総務", nil, permission.LevelGeneral, true)
	engine := newTestEngine(first, second)

	results, err := engine.Search(context.Background(), "会議室", permission.LevelGeneral)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Manual.Id != first.Id || results[1].Manual.Id != second.Id {
		t.Errorf("equal-score results reordered: got [%q, %q]", results[0].Manual.Title, results[1].Manual.Title)
	}
}

func TestSearchTruncatesToMaxResults(t *testing.T) {
	var manuals []*entity.Manual
	for i := 0; i < MaxResults+5; i++ {
		manuals = append(manuals, manual("安全点検手順 その"+string(rune('A'+i)), "製造", nil, permission.LevelGeneral, true))
	}
	engine := newTestEngine(manuals...)

	results, err := engine.Search(context.Background(), "安全点検", permission.LevelGeneral)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != MaxResults {
		t.Errorf("len(results) = %d, want %d", len(results), MaxResults)
	}
}

func TestSearchCategorySynonym(t *testing.T) {
	// Title, tags and content never mention the query; only the 経理 synonym
	// table links 領収書 to this manual.
	m := manual("精算業務のルール", "経理", nil, permission.LevelGeneral, true)
	m.Content = "ルールの説明"
	engine := newTestEngine(m)

	results, err := engine.Search(context.Background(), "領収書", permission.LevelGeneral)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	// Category alone contributes 0.4, which passes the 0.3 threshold.
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1 (category-synonym hit)", len(results))
	}
	if results[0].MatchKind != MatchCategory {
		t.Errorf("MatchKind = %q, want %q", results[0].MatchKind, MatchCategory)
	}
}

func TestSearchByCategoryExactMatch(t *testing.T) {
	accounting := manual("経費精算", "経理", nil, permission.LevelGeneral, true)
	accountingRestricted := manual("決算処理", "経理", nil, permission.LevelExecutive, true)
	hr := manual("有給申請", "人事", nil, permission.LevelGeneral, true)
	partialName := manual("経理部の紹介", "経理部", nil, permission.LevelGeneral, true)
	engine := newTestEngine(accounting, accountingRestricted, hr, partialName)

	results, err := engine.SearchByCategory(context.Background(), "経理", permission.LevelGeneral)
	if err != nil {
		t.Fatalf("SearchByCategory() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1 (exact major category, visible only)", len(results))
	}
	if results[0].Manual.Id != accounting.Id {
		t.Errorf("unexpected manual %q", results[0].Manual.Title)
	}
	if results[0].Score != 1.0 || results[0].MatchKind != MatchCategory {
		t.Errorf("got score=%f kind=%q, want 1.0/%q", results[0].Score, results[0].MatchKind, MatchCategory)
	}
}

func TestCategories(t *testing.T) {
	engine := newTestEngine(
		manual("経費精算", "経理", nil, permission.LevelGeneral, true),
		manual("決算処理", "経理", nil, permission.LevelExecutive, true),
		manual("有給申請", "人事", nil, permission.LevelGeneral, true),
	)

	counts, err := engine.Categories(context.Background(), permission.LevelGeneral)
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}
	want := map[string]int{"経理": 1, "人事": 1}
	if len(counts) != len(want) {
		t.Fatalf("len(counts) = %d, want %d", len(counts), len(want))
	}
	for _, c := range counts {
		if want[c.Category] != c.Count {
			t.Errorf("count[%q] = %d, want %d", c.Category, c.Count, want[c.Category])
		}
	}
}
