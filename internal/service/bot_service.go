package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"manualbot-be/internal/constant"
	"manualbot-be/internal/entity"
	"manualbot-be/internal/pkg/logger"
	"manualbot-be/internal/repository/contract"
	"manualbot-be/pkg/dialogue"
	"manualbot-be/pkg/search"
	"manualbot-be/pkg/store"
)

// IBotService routes one inbound chat message to the right feature and
// returns the reply text.
type IBotService interface {
	HandleMessage(ctx context.Context, lineId, text string) (string, error)
}

type botService struct {
	users     contract.UserRepository
	inquiries contract.InquiryRepository
	engine    *search.Engine
	dialogues *dialogue.Controller
	logger    logger.ILogger
	now       func() time.Time
}

func NewBotService(
	users contract.UserRepository,
	inquiries contract.InquiryRepository,
	engine *search.Engine,
	dialogues *dialogue.Controller,
	log logger.ILogger,
) IBotService {
	return &botService{
		users:     users,
		inquiries: inquiries,
		engine:    engine,
		dialogues: dialogues,
		logger:    log,
		now:       time.Now,
	}
}

var registrationTriggers = map[string]bool{
	"登録":       true,
	"ユーザー登録":   true,
	"register": true,
	"始める":      true,
	"開始":       true,
	"start":    true,
}

// HandleMessage applies the routing order: active flow first, then the
// registration gate, then commands, then search. Errors it can speak about
// become user-facing replies; only transport-level failures propagate.
func (s *botService) HandleMessage(ctx context.Context, lineId, text string) (string, error) {
	started := s.now()
	input := strings.TrimSpace(text)

	// A live flow owns the whole message, commands included.
	if s.dialogues.InFlow(lineId) {
		reply, err := s.dialogues.Handle(ctx, lineId, input)
		if err == nil {
			return reply.Text, nil
		}
		if !errors.Is(err, dialogue.ErrNoActiveFlow) {
			return constant.MsgSystemError, nil
		}
		// The flow expired between InFlow and Handle; fall through.
	}

	user, err := s.users.FindByLineId(ctx, lineId)
	if err != nil {
		s.logger.Error("BotService", "User lookup failed", map[string]interface{}{
			"line_id": lineId,
			"error":   err.Error(),
		})
		return constant.MsgSystemError, nil
	}

	if user == nil || !user.Active {
		return s.handleUnregistered(ctx, lineId, input)
	}

	s.touchAndLog(ctx, user, actionFor(input), started)

	switch {
	case isHelpCommand(input):
		return constant.MsgHelp, nil

	case isCategoryListCommand(input):
		return s.renderCategoryOverview(ctx, user)

	case isInquiryCommand(input):
		seed := map[string]string{
			store.FieldUserName:  user.Name,
			store.FieldUserEmail: user.Email,
		}
		reply, err := s.dialogues.Start(ctx, store.FlowInquiry, lineId, seed)
		if err != nil {
			return constant.MsgSystemError, nil
		}
		return reply.Text, nil

	case registrationTriggers[strings.ToLower(input)]:
		return fmt.Sprintf(constant.MsgAlreadyRegisteredFmt, user.Name), nil

	case s.engine.IsKnownCategory(input):
		return s.renderCategorySearch(ctx, user, input)
	}

	return s.renderKeywordSearch(ctx, user, input)
}

func (s *botService) handleUnregistered(ctx context.Context, lineId, input string) (string, error) {
	if isHelpCommand(input) {
		return constant.MsgHelp, nil
	}
	if registrationTriggers[strings.ToLower(input)] {
		reply, err := s.dialogues.Start(ctx, store.FlowRegistration, lineId, nil)
		if err != nil {
			return constant.MsgSystemError, nil
		}
		return reply.Text, nil
	}
	return constant.MsgRegistrationPrompt, nil
}

func (s *botService) renderKeywordSearch(ctx context.Context, user *entity.User, keyword string) (string, error) {
	results, err := s.engine.Search(ctx, keyword, user.Level())
	if err != nil {
		var invalid *search.InvalidQueryError
		if errors.As(err, &invalid) {
			return "❌ " + invalid.Reason, nil
		}
		s.logger.Error("BotService", "Keyword search failed", map[string]interface{}{
			"keyword": keyword,
			"error":   err.Error(),
		})
		return constant.MsgSystemError, nil
	}

	if len(results) == 0 {
		return fmt.Sprintf(constant.MsgSearchNoResultsFmt, keyword), nil
	}
	// A single confident hit skips the list and goes straight to the manual.
	if len(results) == 1 && results[0].Score >= search.DetailScoreThreshold {
		return renderManualDetail(results[0].Manual), nil
	}
	return renderResultList(keyword, results), nil
}

func (s *botService) renderCategorySearch(ctx context.Context, user *entity.User, category string) (string, error) {
	results, err := s.engine.SearchByCategory(ctx, category, user.Level())
	if err != nil {
		s.logger.Error("BotService", "Category search failed", map[string]interface{}{
			"category": category,
			"error":    err.Error(),
		})
		return constant.MsgSystemError, nil
	}
	if len(results) == 0 {
		return fmt.Sprintf(constant.MsgSearchNoResultsFmt, category), nil
	}
	return renderResultList(category, results), nil
}

func (s *botService) renderCategoryOverview(ctx context.Context, user *entity.User) (string, error) {
	counts, err := s.engine.Categories(ctx, user.Level())
	if err != nil {
		s.logger.Error("BotService", "Category overview failed", map[string]interface{}{
			"error": err.Error(),
		})
		return constant.MsgSystemError, nil
	}

	var b strings.Builder
	b.WriteString("📁 カテゴリ一覧\n")
	for _, c := range counts {
		fmt.Fprintf(&b, "\n• %s（%d件）", c.Category, c.Count)
	}
	b.WriteString("\n\n💡 カテゴリ名を入力すると、そのカテゴリのマニュアル一覧を表示します。")
	return b.String(), nil
}

// touchAndLog records last-access and an access-log row. Both are
// best-effort: a failed write is logged and the reply goes out regardless.
func (s *botService) touchAndLog(ctx context.Context, user *entity.User, action string, started time.Time) {
	if err := s.users.TouchLastAccess(ctx, user.LineId); err != nil {
		s.logger.Warn("BotService", "TouchLastAccess failed", map[string]interface{}{
			"line_id": user.LineId,
			"error":   err.Error(),
		})
	}
	if err := s.inquiries.CreateAccessLog(ctx, &entity.AccessLog{
		LineId:       user.LineId,
		UserName:     user.Name,
		Action:       action,
		ResponseTime: s.now().Sub(started).Milliseconds(),
	}); err != nil {
		s.logger.Warn("BotService", "Access log write failed", map[string]interface{}{
			"line_id": user.LineId,
			"error":   err.Error(),
		})
	}
}

func actionFor(input string) string {
	switch {
	case isHelpCommand(input):
		return "help"
	case isCategoryListCommand(input):
		return "category_list"
	case isInquiryCommand(input):
		return "inquiry_start"
	default:
		return "search"
	}
}

func isHelpCommand(input string) bool {
	switch strings.ToLower(input) {
	case "ヘルプ", "help", "使い方", "メニュー":
		return true
	}
	return false
}

func isCategoryListCommand(input string) bool {
	switch input {
	case "カテゴリ", "カテゴリー", "カテゴリ一覧":
		return true
	}
	return false
}

func isInquiryCommand(input string) bool {
	switch input {
	case "問い合わせ", "お問い合わせ", "問合せ":
		return true
	}
	return false
}

func matchIcon(kind search.MatchKind) string {
	switch kind {
	case search.MatchExactTitle:
		return "🎯"
	case search.MatchPartialTitle:
		return "📝"
	case search.MatchTag:
		return "🏷️"
	case search.MatchContent:
		return "📄"
	case search.MatchCategory:
		return "📁"
	}
	return "🔍"
}

func renderResultList(keyword string, results []search.ScoredResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔍 「%s」の検索結果（%d件）\n", keyword, len(results))
	for i, r := range results {
		fmt.Fprintf(&b, "\n%d. %s %s\n", i+1, matchIcon(r.MatchKind), r.Manual.Title)
		fmt.Fprintf(&b, "   📁 %s ｜ 関連度 %.0f%%\n", r.Manual.Category.Major, r.Score*100)
	}
	b.WriteString("\n💡 マニュアルのタイトルをそのまま入力すると詳細を表示します。")
	return b.String()
}

func renderManualDetail(manual *entity.Manual) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📖 %s\n", manual.Title)
	fmt.Fprintf(&b, "\n📁 %s", manual.Category.Major)
	if manual.Category.Middle != "" {
		fmt.Fprintf(&b, " > %s", manual.Category.Middle)
	}
	if manual.Category.Minor != "" {
		fmt.Fprintf(&b, " > %s", manual.Category.Minor)
	}
	b.WriteString("\n\n")
	b.WriteString(manual.Content)
	if len(manual.Tags) > 0 {
		fmt.Fprintf(&b, "\n\n🏷️ %s", strings.Join(manual.Tags, "、"))
	}
	return b.String()
}
