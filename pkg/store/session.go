package store

import "time"

// Flow identifies the multi-step conversational procedure a user is in.
type Flow string

const (
	FlowNone         Flow = "NONE"
	FlowRegistration Flow = "REGISTRATION"
	FlowInquiry      Flow = "INQUIRY"
)

// Registration steps
const (
	StepWaitingEmail = "WAITING_EMAIL"
	StepWaitingName  = "WAITING_NAME"
	StepConfirming   = "CONFIRMING_REGISTRATION"
)

// Inquiry steps
const (
	StepTypeSelection     = "INQUIRY_TYPE_SELECTION"
	StepWritingContent    = "INQUIRY_WRITING_CONTENT"
	StepConfirmingContent = "INQUIRY_CONFIRMING_CONTENT"
)

// Field keys accumulated inside a flow.
const (
	FieldEmail       = "email"
	FieldName        = "name"
	FieldInquiryType = "inquiry_type"
	FieldContent     = "content"

	// Seed fields carried into the inquiry flow from the caller.
	FieldUserName  = "user_name"
	FieldUserEmail = "user_email"
)

// Session is the ephemeral per-user conversation state. It is owned by the
// session repository and mutated only through the dialogue controller.
type Session struct {
	UserKey   string            `json:"user_key"`
	Flow      Flow              `json:"flow"`
	Step      string            `json:"step"`
	Fields    map[string]string `json:"fields"`
	CreatedAt time.Time         `json:"created_at"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// NewSession returns a zero-flow session for the given user.
func NewSession(userKey string) *Session {
	return &Session{
		UserKey:   userKey,
		Flow:      FlowNone,
		Fields:    map[string]string{},
		CreatedAt: time.Now(),
	}
}

// Active reports whether the session carries a live flow at the given time.
// A session past its logical deadline is treated as no-flow even if the
// store's sweep has not removed it yet.
func (s *Session) Active(now time.Time) bool {
	if s == nil || s.Flow == FlowNone {
		return false
	}
	if !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt) {
		return false
	}
	return true
}
