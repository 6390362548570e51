package dialogue

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"manualbot-be/internal/constant"
	"manualbot-be/internal/entity"
	"manualbot-be/pkg/events"
	"manualbot-be/pkg/store"
)

const (
	minInquiryContentLength = 10
	maxInquiryContentLength = 1000
)

var inquiryTypeChoices = map[string]entity.InquiryType{
	"1": entity.InquiryTypeQuestion,
	"2": entity.InquiryTypeRequest,
	"3": entity.InquiryTypeBugReport,
	"4": entity.InquiryTypeOther,
}

var inquiryTypeDisplayNames = map[entity.InquiryType]string{
	entity.InquiryTypeQuestion:  "質問・疑問",
	entity.InquiryTypeRequest:   "要望・改善提案",
	entity.InquiryTypeBugReport: "不具合報告",
	entity.InquiryTypeOther:     "その他",
}

func inquiryFlow() *flowDefinition {
	return &flowDefinition{
		name:        store.FlowInquiry,
		ttl:         func(c *Controller) time.Duration { return c.cfg.InquiryTTL },
		initialStep: store.StepTypeSelection,
		initialReply: func(c *Controller, s *store.Session) string {
			return constant.MsgInquiryStart
		},
		steps: []stepDefinition{
			{name: store.StepTypeSelection, handle: handleTypeSelection},
			{name: store.StepWritingContent, handle: handleContentInput},
			{name: store.StepConfirmingContent, handle: handleInquiryConfirm},
		},
	}
}

func handleTypeSelection(ctx context.Context, c *Controller, session *store.Session, input string) (string, outcome, error) {
	inquiryType, ok := inquiryTypeChoices[input]
	if !ok {
		return constant.MsgInquiryTypeInvalid, outcomeStay, nil
	}

	session.Fields[store.FieldInquiryType] = string(inquiryType)
	session.Step = store.StepWritingContent
	prompt := fmt.Sprintf(constant.MsgInquiryContentPromptFmt,
		inquiryTypeDisplayNames[inquiryType], minInquiryContentLength, maxInquiryContentLength)
	return prompt, outcomeAdvance, nil
}

func handleContentInput(ctx context.Context, c *Controller, session *store.Session, input string) (string, outcome, error) {
	if reason := validateInquiryContent(input); reason != "" {
		return fmt.Sprintf(constant.MsgInquiryContentInvalidFmt,
			reason, minInquiryContentLength, maxInquiryContentLength), outcomeStay, nil
	}

	session.Fields[store.FieldContent] = input
	session.Step = store.StepConfirmingContent
	typeName := inquiryTypeDisplayNames[entity.InquiryType(session.Fields[store.FieldInquiryType])]
	return fmt.Sprintf(constant.MsgInquiryConfirmFmt, typeName, input), outcomeAdvance, nil
}

func handleInquiryConfirm(ctx context.Context, c *Controller, session *store.Session, input string) (string, outcome, error) {
	switch c.classifier.Classify(input) {
	case VerdictNo:
		session.Step = store.StepWritingContent
		return constant.MsgInquiryModify, outcomeAdvance, nil

	case VerdictUnclear:
		return constant.MsgInquiryConfirmUnclear, outcomeStay, nil
	}

	inquiry := &entity.Inquiry{
		LineId:   session.UserKey,
		UserName: session.Fields[store.FieldUserName],
		Email:    session.Fields[store.FieldUserEmail],
		Type:     entity.InquiryType(session.Fields[store.FieldInquiryType]),
		Content:  session.Fields[store.FieldContent],
		Status:   entity.InquiryStatusPending,
	}
	if err := c.inquiries.Create(ctx, inquiry); err != nil {
		return constant.MsgInquiryFailed, outcomeTerminal, fmt.Errorf("create inquiry: %w", err)
	}

	// Notification fan-out rides the event bus; delivery is best-effort and
	// never part of the completion contract.
	c.publisher.Publish(ctx, events.NewInquiryCreated(
		inquiry.Id.String(), inquiry.LineId, inquiry.UserName, inquiry.Email,
		string(inquiry.Type), inquiry.Content,
	))

	typeName := inquiryTypeDisplayNames[inquiry.Type]
	return fmt.Sprintf(constant.MsgInquiryCompleteFmt, typeName, inquiry.Id.String()), outcomeTerminal, nil
}

func validateInquiryContent(content string) string {
	length := utf8.RuneCountInString(content)
	if length == 0 {
		return "内容が入力されていません"
	}
	if length < minInquiryContentLength {
		return fmt.Sprintf("内容は%d文字以上で入力してください", minInquiryContentLength)
	}
	if length > maxInquiryContentLength {
		return fmt.Sprintf("内容は%d文字以内で入力してください", maxInquiryContentLength)
	}
	return ""
}
