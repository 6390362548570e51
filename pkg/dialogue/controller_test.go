package dialogue

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"manualbot-be/internal/constant"
	"manualbot-be/internal/entity"
	"manualbot-be/internal/pkg/logger"
	"manualbot-be/pkg/events"
	"manualbot-be/pkg/store"
)

type fakeSessionRepo struct {
	sessions map[string]*store.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*store.Session{}}
}

func (r *fakeSessionRepo) Get(userKey string) *store.Session {
	if s, ok := r.sessions[userKey]; ok {
		return s
	}
	return store.NewSession(userKey)
}

func (r *fakeSessionRepo) Set(userKey string, session *store.Session, ttl time.Duration) {
	r.sessions[userKey] = session
}

func (r *fakeSessionRepo) Clear(userKey string) {
	delete(r.sessions, userKey)
}

type fakeUserRepo struct {
	byEmail   map[string]*entity.User
	created   []*entity.User
	createErr error
	findErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	user.Id = uuid.New()
	r.created = append(r.created, user)
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) FindByLineId(ctx context.Context, lineId string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.LineId == lineId {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) TouchLastAccess(ctx context.Context, lineId string) error {
	return nil
}

type fakeInquiryRepo struct {
	created   []*entity.Inquiry
	createErr error
}

func (r *fakeInquiryRepo) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	if r.createErr != nil {
		return r.createErr
	}
	inquiry.Id = uuid.New()
	r.created = append(r.created, inquiry)
	return nil
}

func (r *fakeInquiryRepo) CreateAccessLog(ctx context.Context, log *entity.AccessLog) error {
	return nil
}

type fakePublisher struct {
	published []events.Event
}

func (p *fakePublisher) Publish(ctx context.Context, event events.Event) {
	p.published = append(p.published, event)
}

type fixture struct {
	controller *Controller
	sessions   *fakeSessionRepo
	users      *fakeUserRepo
	inquiries  *fakeInquiryRepo
	publisher  *fakePublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		sessions:  newFakeSessionRepo(),
		users:     newFakeUserRepo(),
		inquiries: &fakeInquiryRepo{},
		publisher: &fakePublisher{},
	}
	f.controller = NewController(f.sessions, f.users, f.inquiries, f.publisher, Config{}, logger.NewNop())
	return f
}

func (f *fixture) handle(t *testing.T, userKey, input string) string {
	t.Helper()
	reply, err := f.controller.Handle(context.Background(), userKey, input)
	if err != nil {
		t.Fatalf("Handle(%q) error: %v", input, err)
	}
	return reply.Text
}

const testUserKey = "U1234567890"

func TestStartRegistrationFlow(t *testing.T) {
	f := newFixture(t)

	reply, err := f.controller.Start(context.Background(), store.FlowRegistration, testUserKey, nil)
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}
	if reply.Text != constant.MsgRegistrationWelcome {
		t.Errorf("initial reply = %q, want welcome message", reply.Text)
	}
	if !f.controller.InFlow(testUserKey) {
		t.Error("InFlow = false after Start")
	}

	session := f.sessions.Get(testUserKey)
	if session.Flow != store.FlowRegistration || session.Step != store.StepWaitingEmail {
		t.Errorf("session = %s/%s, want REGISTRATION/WAITING_EMAIL", session.Flow, session.Step)
	}
}

func TestStartReplacesExistingFlow(t *testing.T) {
	f := newFixture(t)

	f.controller.Start(context.Background(), store.FlowRegistration, testUserKey, nil)
	f.handle(t, testUserKey, "yamada@company.com")

	// Starting a new flow discards the half-done registration.
	f.controller.Start(context.Background(), store.FlowInquiry, testUserKey, nil)

	session := f.sessions.Get(testUserKey)
	if session.Flow != store.FlowInquiry || session.Step != store.StepTypeSelection {
		t.Errorf("session = %s/%s, want INQUIRY/INQUIRY_TYPE_SELECTION", session.Flow, session.Step)
	}
	if _, ok := session.Fields[store.FieldEmail]; ok {
		t.Error("fields from the replaced flow leaked into the new session")
	}
}

func TestHandleWithoutFlowReturnsErrNoActiveFlow(t *testing.T) {
	f := newFixture(t)

	_, err := f.controller.Handle(context.Background(), testUserKey, "経費精算")
	if !errors.Is(err, ErrNoActiveFlow) {
		t.Fatalf("Handle error = %v, want ErrNoActiveFlow", err)
	}
}

func TestRegistrationHappyPath(t *testing.T) {
	f := newFixture(t)
	f.controller.Start(context.Background(), store.FlowRegistration, testUserKey, nil)

	reply := f.handle(t, testUserKey, "yamada@company.com")
	if !strings.Contains(reply, "yamada@company.com") {
		t.Errorf("name prompt should echo the email, got %q", reply)
	}

	reply = f.handle(t, testUserKey, "山田太郎")
	if !strings.Contains(reply, "山田太郎") || !strings.Contains(reply, "yamada@company.com") {
		t.Errorf("confirmation should echo both fields, got %q", reply)
	}

	reply = f.handle(t, testUserKey, "はい")
	if !strings.Contains(reply, "登録完了") {
		t.Errorf("completion reply = %q", reply)
	}

	if len(f.users.created) != 1 {
		t.Fatalf("users created = %d, want 1", len(f.users.created))
	}
	user := f.users.created[0]
	if user.LineId != testUserKey || user.Email != "yamada@company.com" || user.Name != "山田太郎" {
		t.Errorf("created user = %+v", user)
	}
	if !user.Active || user.PermissionLabel != "一般" {
		t.Errorf("new user should be active with 一般 permission, got %+v", user)
	}

	if f.controller.InFlow(testUserKey) {
		t.Error("flow should be cleared after completion")
	}
	if len(f.publisher.published) != 1 || f.publisher.published[0].EventType() != events.TypeUserRegistered {
		t.Errorf("published = %+v, want one USER_REGISTERED", f.publisher.published)
	}
}

func TestRegistrationEmailValidationIdempotent(t *testing.T) {
	f := newFixture(t)
	f.controller.Start(context.Background(), store.FlowRegistration, testUserKey, nil)

	// Repeated bad input re-prompts without advancing or accumulating state.
	for i := 0; i < 3; i++ {
		reply := f.handle(t, testUserKey, "not-an-email")
		if !strings.Contains(reply, "メールアドレスの形式") {
			t.Fatalf("reply = %q, want invalid email message", reply)
		}
	}

	session := f.sessions.Get(testUserKey)
	if session.Step != store.StepWaitingEmail {
		t.Errorf("step = %s, want WAITING_EMAIL", session.Step)
	}
	if len(session.Fields) != 0 {
		t.Errorf("fields = %v, want empty", session.Fields)
	}
}

func TestRegistrationDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.users.byEmail["taken@company.com"] = &entity.User{Email: "taken@company.com"}
	f.controller.Start(context.Background(), store.FlowRegistration, testUserKey, nil)

	reply := f.handle(t, testUserKey, "taken@company.com")
	if reply != constant.MsgEmailDuplicate {
		t.Errorf("reply = %q, want duplicate email message", reply)
	}
	if f.sessions.Get(testUserKey).Step != store.StepWaitingEmail {
		t.Error("duplicate email must not advance the step")
	}
}

func TestRegistrationConfirmNoRestarts(t *testing.T) {
	f := newFixture(t)
	f.controller.Start(context.Background(), store.FlowRegistration, testUserKey, nil)
	f.handle(t, testUserKey, "yamada@company.com")
	f.handle(t, testUserKey, "山田太郎")

	reply := f.handle(t, testUserKey, "いいえ")
	if reply != constant.MsgRegistrationRestart {
		t.Errorf("reply = %q, want restart message", reply)
	}

	session := f.sessions.Get(testUserKey)
	if session.Step != store.StepWaitingEmail {
		t.Errorf("step = %s, want WAITING_EMAIL", session.Step)
	}
	if len(session.Fields) != 0 {
		t.Errorf("fields = %v, want discarded", session.Fields)
	}
	if len(f.users.created) != 0 {
		t.Error("no user may be created on rejection")
	}
}

func TestRegistrationConfirmUnclearStays(t *testing.T) {
	f := newFixture(t)
	f.controller.Start(context.Background(), store.FlowRegistration, testUserKey, nil)
	f.handle(t, testUserKey, "yamada@company.com")
	f.handle(t, testUserKey, "山田太郎")

	reply := f.handle(t, testUserKey, "うーん")
	if reply != constant.MsgConfirmUnclear {
		t.Errorf("reply = %q, want unclear prompt", reply)
	}
	if f.sessions.Get(testUserKey).Step != store.StepConfirming {
		t.Error("unclear answer must keep the confirmation step")
	}
	if len(f.users.created) != 0 {
		t.Error("no user may be created on unclear answer")
	}
}

func TestRegistrationPersistenceFailureAborts(t *testing.T) {
	f := newFixture(t)
	f.users.createErr = errors.New("db down")
	f.controller.Start(context.Background(), store.FlowRegistration, testUserKey, nil)
	f.handle(t, testUserKey, "yamada@company.com")
	f.handle(t, testUserKey, "山田太郎")

	reply := f.handle(t, testUserKey, "はい")
	if reply != constant.MsgRegistrationFailed {
		t.Errorf("reply = %q, want failure message", reply)
	}
	if f.controller.InFlow(testUserKey) {
		t.Error("session must be cleared after a persistence failure")
	}
	if len(f.publisher.published) != 0 {
		t.Error("no event may be published on failure")
	}
}

func TestRegistrationLookupFailureAborts(t *testing.T) {
	f := newFixture(t)
	f.users.findErr = errors.New("db down")
	f.controller.Start(context.Background(), store.FlowRegistration, testUserKey, nil)

	reply := f.handle(t, testUserKey, "yamada@company.com")
	if reply != constant.MsgRegistrationFailed {
		t.Errorf("reply = %q, want failure message", reply)
	}
	if f.controller.InFlow(testUserKey) {
		t.Error("session must be cleared after a lookup failure")
	}
}

func TestInquiryHappyPath(t *testing.T) {
	f := newFixture(t)
	seed := map[string]string{
		store.FieldUserName:  "山田太郎",
		store.FieldUserEmail: "yamada@company.com",
	}
	reply, err := f.controller.Start(context.Background(), store.FlowInquiry, testUserKey, seed)
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}
	if reply.Text != constant.MsgInquiryStart {
		t.Errorf("initial reply = %q, want inquiry menu", reply.Text)
	}

	text := f.handle(t, testUserKey, "2")
	if !strings.Contains(text, "要望・改善提案") {
		t.Errorf("content prompt should name the chosen type, got %q", text)
	}

	content := "マニュアル検索の精度を改善してほしいです"
	text = f.handle(t, testUserKey, content)
	if !strings.Contains(text, content) {
		t.Errorf("confirmation should echo the content, got %q", text)
	}

	text = f.handle(t, testUserKey, "はい")
	if !strings.Contains(text, "送信しました") {
		t.Errorf("completion reply = %q", text)
	}

	if len(f.inquiries.created) != 1 {
		t.Fatalf("inquiries created = %d, want 1", len(f.inquiries.created))
	}
	inquiry := f.inquiries.created[0]
	if inquiry.Type != entity.InquiryTypeRequest || inquiry.Content != content {
		t.Errorf("created inquiry = %+v", inquiry)
	}
	if inquiry.UserName != "山田太郎" || inquiry.Email != "yamada@company.com" {
		t.Errorf("seed fields not carried into the inquiry: %+v", inquiry)
	}
	if inquiry.Status != entity.InquiryStatusPending {
		t.Errorf("status = %s, want pending", inquiry.Status)
	}
	if !strings.Contains(text, inquiry.Id.String()) {
		t.Errorf("completion reply should carry the receipt number, got %q", text)
	}

	if f.controller.InFlow(testUserKey) {
		t.Error("flow should be cleared after completion")
	}
	if len(f.publisher.published) != 1 || f.publisher.published[0].EventType() != events.TypeInquiryCreated {
		t.Errorf("published = %+v, want one INQUIRY_CREATED", f.publisher.published)
	}
}

func TestInquiryTypeValidation(t *testing.T) {
	f := newFixture(t)
	f.controller.Start(context.Background(), store.FlowInquiry, testUserKey, nil)

	for _, input := range []string{"5", "0", "abc", "１"} {
		reply := f.handle(t, testUserKey, input)
		if reply != constant.MsgInquiryTypeInvalid {
			t.Errorf("Handle(%q) = %q, want invalid type message", input, reply)
		}
	}
	if f.sessions.Get(testUserKey).Step != store.StepTypeSelection {
		t.Error("invalid selections must not advance the step")
	}
}

func TestInquiryContentLengthBounds(t *testing.T) {
	f := newFixture(t)
	f.controller.Start(context.Background(), store.FlowInquiry, testUserKey, nil)
	f.handle(t, testUserKey, "1")

	tests := []struct {
		name    string
		content string
		ok      bool
	}{
		{name: "too short", content: "短い", ok: false},
		{name: "nine runes", content: strings.Repeat("あ", 9), ok: false},
		{name: "ten runes", content: strings.Repeat("あ", 10), ok: true},
		{name: "thousand runes", content: strings.Repeat("あ", 1000), ok: true},
		{name: "over thousand", content: strings.Repeat("あ", 1001), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.controller.Start(context.Background(), store.FlowInquiry, testUserKey, nil)
			f.handle(t, testUserKey, "1")

			f.handle(t, testUserKey, tt.content)
			step := f.sessions.Get(testUserKey).Step
			if tt.ok && step != store.StepConfirmingContent {
				t.Errorf("step = %s, want confirmation for valid content", step)
			}
			if !tt.ok && step != store.StepWritingContent {
				t.Errorf("step = %s, want to stay on content input", step)
			}
		})
	}
}

func TestInquiryConfirmNoKeepsType(t *testing.T) {
	f := newFixture(t)
	f.controller.Start(context.Background(), store.FlowInquiry, testUserKey, nil)
	f.handle(t, testUserKey, "3")
	f.handle(t, testUserKey, "ログイン画面でエラーが表示されます")

	reply := f.handle(t, testUserKey, "いいえ")
	if reply != constant.MsgInquiryModify {
		t.Errorf("reply = %q, want modify prompt", reply)
	}

	session := f.sessions.Get(testUserKey)
	if session.Step != store.StepWritingContent {
		t.Errorf("step = %s, want back on content input", session.Step)
	}
	if session.Fields[store.FieldInquiryType] != string(entity.InquiryTypeBugReport) {
		t.Error("rejecting the content must keep the chosen type")
	}
}

func TestInquiryPersistenceFailureAborts(t *testing.T) {
	f := newFixture(t)
	f.inquiries.createErr = errors.New("db down")
	f.controller.Start(context.Background(), store.FlowInquiry, testUserKey, nil)
	f.handle(t, testUserKey, "1")
	f.handle(t, testUserKey, "休暇申請の手順がわかりません")

	reply := f.handle(t, testUserKey, "はい")
	if reply != constant.MsgInquiryFailed {
		t.Errorf("reply = %q, want failure message", reply)
	}
	if f.controller.InFlow(testUserKey) {
		t.Error("session must be cleared after a persistence failure")
	}
	if len(f.publisher.published) != 0 {
		t.Error("no event may be published on failure")
	}
}

func TestCancelFromEveryStep(t *testing.T) {
	scenarios := []struct {
		name  string
		flow  store.Flow
		steps []string
	}{
		{name: "registration at email", flow: store.FlowRegistration},
		{name: "registration at name", flow: store.FlowRegistration, steps: []string{"yamada@company.com"}},
		{name: "registration at confirm", flow: store.FlowRegistration, steps: []string{"yamada@company.com", "山田太郎"}},
		{name: "inquiry at type selection", flow: store.FlowInquiry},
		{name: "inquiry at content", flow: store.FlowInquiry, steps: []string{"1"}},
		{name: "inquiry at confirm", flow: store.FlowInquiry, steps: []string{"1", "休暇申請の手順がわかりません"}},
	}

	for _, tt := range scenarios {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if _, err := f.controller.Start(context.Background(), tt.flow, testUserKey, nil); err != nil {
				t.Fatalf("Start error: %v", err)
			}
			for _, input := range tt.steps {
				f.handle(t, testUserKey, input)
			}

			reply := f.handle(t, testUserKey, "キャンセル")
			if reply != constant.MsgFlowCancelled {
				t.Errorf("reply = %q, want cancellation message", reply)
			}
			if f.controller.InFlow(testUserKey) {
				t.Error("InFlow = true after cancellation")
			}
			if len(f.users.created) != 0 || len(f.inquiries.created) != 0 {
				t.Error("cancellation must not persist anything")
			}
		})
	}
}

func TestCancelPhraseVariants(t *testing.T) {
	for _, phrase := range []string{"キャンセル", "やめる", "中止", "CANCEL", "  quit  "} {
		t.Run(phrase, func(t *testing.T) {
			f := newFixture(t)
			f.controller.Start(context.Background(), store.FlowRegistration, testUserKey, nil)

			reply := f.handle(t, testUserKey, phrase)
			if reply != constant.MsgFlowCancelled {
				t.Errorf("Handle(%q) = %q, want cancellation", phrase, reply)
			}
		})
	}
}

// Cancel phrases match the whole message, not substrings: an email whose
// local part mentions "cancel" must still be treated as input.
func TestCancelRequiresExactMatch(t *testing.T) {
	f := newFixture(t)
	f.controller.Start(context.Background(), store.FlowRegistration, testUserKey, nil)

	reply := f.handle(t, testUserKey, "cancel-policy@company.com")
	if reply == constant.MsgFlowCancelled {
		t.Fatal("substring cancel phrase must not cancel the flow")
	}
	if f.sessions.Get(testUserKey).Step != store.StepWaitingName {
		t.Error("the message should have been consumed as a valid email")
	}
}

func TestExpiredSessionTreatedAsNoFlow(t *testing.T) {
	f := newFixture(t)
	f.controller.Start(context.Background(), store.FlowRegistration, testUserKey, nil)

	// Jump past the registration TTL without waiting for the store sweep.
	f.controller.now = func() time.Time { return time.Now().Add(6 * time.Minute) }

	if f.controller.InFlow(testUserKey) {
		t.Error("InFlow = true past the logical deadline")
	}
	_, err := f.controller.Handle(context.Background(), testUserKey, "yamada@company.com")
	if !errors.Is(err, ErrNoActiveFlow) {
		t.Fatalf("Handle error = %v, want ErrNoActiveFlow", err)
	}
}

func TestHandleRefreshesExpiry(t *testing.T) {
	f := newFixture(t)
	f.controller.Start(context.Background(), store.FlowRegistration, testUserKey, nil)
	before := f.sessions.Get(testUserKey).ExpiresAt

	f.controller.now = func() time.Time { return time.Now().Add(3 * time.Minute) }
	f.handle(t, testUserKey, "yamada@company.com")

	after := f.sessions.Get(testUserKey).ExpiresAt
	if !after.After(before) {
		t.Errorf("expiry not refreshed: before=%v after=%v", before, after)
	}
}
