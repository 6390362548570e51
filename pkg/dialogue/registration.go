package dialogue

import (
	"context"
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"manualbot-be/internal/constant"
	"manualbot-be/internal/entity"
	"manualbot-be/pkg/events"
	"manualbot-be/pkg/permission"
	"manualbot-be/pkg/store"
)

const maxEmailLength = 254

var (
	validate = validator.New()

	// Kanji, kana, latin letters, digits, space, hyphen, dot.
	nameAllowList = regexp.MustCompile(`^[a-zA-Z0-9ぁ-んァ-ヶー一-龯\s\-\.]+$`)
)

func registrationFlow() *flowDefinition {
	return &flowDefinition{
		name:        store.FlowRegistration,
		ttl:         func(c *Controller) time.Duration { return c.cfg.RegistrationTTL },
		initialStep: store.StepWaitingEmail,
		initialReply: func(c *Controller, s *store.Session) string {
			return constant.MsgRegistrationWelcome
		},
		steps: []stepDefinition{
			{name: store.StepWaitingEmail, handle: handleEmailInput},
			{name: store.StepWaitingName, handle: handleNameInput},
			{name: store.StepConfirming, handle: handleRegistrationConfirm},
		},
	}
}

func handleEmailInput(ctx context.Context, c *Controller, session *store.Session, input string) (string, outcome, error) {
	if reason := validateEmail(input); reason != "" {
		return fmt.Sprintf(constant.MsgEmailInvalidFmt, reason), outcomeStay, nil
	}

	existing, err := c.users.FindByEmail(ctx, input)
	if err != nil {
		return constant.MsgRegistrationFailed, outcomeStay, fmt.Errorf("duplicate email lookup: %w", err)
	}
	if existing != nil {
		return constant.MsgEmailDuplicate, outcomeStay, nil
	}

	session.Fields[store.FieldEmail] = input
	session.Step = store.StepWaitingName
	return fmt.Sprintf(constant.MsgNamePromptFmt, input), outcomeAdvance, nil
}

func handleNameInput(ctx context.Context, c *Controller, session *store.Session, input string) (string, outcome, error) {
	if reason := validateName(input); reason != "" {
		return fmt.Sprintf(constant.MsgNameInvalidFmt, reason), outcomeStay, nil
	}

	session.Fields[store.FieldName] = input
	session.Step = store.StepConfirming
	return fmt.Sprintf(constant.MsgConfirmRegistrationFmt, session.Fields[store.FieldEmail], input), outcomeAdvance, nil
}

func handleRegistrationConfirm(ctx context.Context, c *Controller, session *store.Session, input string) (string, outcome, error) {
	switch c.classifier.Classify(input) {
	case VerdictNo:
		// Back to the beginning, prior fields discarded.
		session.Fields = map[string]string{}
		session.Step = store.StepWaitingEmail
		return constant.MsgRegistrationRestart, outcomeAdvance, nil

	case VerdictUnclear:
		return constant.MsgConfirmUnclear, outcomeStay, nil
	}

	user := &entity.User{
		LineId:          session.UserKey,
		Email:           session.Fields[store.FieldEmail],
		Name:            session.Fields[store.FieldName],
		PermissionLabel: permission.LevelGeneral.Label(),
		Active:          true,
	}
	if err := c.users.Create(ctx, user); err != nil {
		return constant.MsgRegistrationFailed, outcomeTerminal, fmt.Errorf("create user: %w", err)
	}

	c.publisher.Publish(ctx, events.NewUserRegistered(user.LineId, user.Email, user.Name))

	return fmt.Sprintf(constant.MsgRegistrationCompleteFmt, user.Name), outcomeTerminal, nil
}

func validateEmail(email string) string {
	if email == "" {
		return "メールアドレスが入力されていません"
	}
	if len(email) > maxEmailLength {
		return "メールアドレスが長すぎます"
	}
	if err := validate.Var(email, "email"); err != nil {
		return "メールアドレスの形式が正しくありません"
	}
	return ""
}

func validateName(name string) string {
	if name == "" {
		return "お名前を入力してください"
	}
	if utf8.RuneCountInString(name) > 50 {
		return "お名前が長すぎます（50文字以内）"
	}
	if !nameAllowList.MatchString(name) {
		return "使用できない文字が含まれています"
	}
	return ""
}
