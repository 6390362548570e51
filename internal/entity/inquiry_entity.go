package entity

import (
	"time"

	"github.com/google/uuid"
)

type InquiryType string
type InquiryStatus string

const (
	InquiryTypeQuestion  InquiryType = "question"
	InquiryTypeRequest   InquiryType = "request"
	InquiryTypeBugReport InquiryType = "bug_report"
	InquiryTypeOther     InquiryType = "other"

	InquiryStatusPending  InquiryStatus = "pending"
	InquiryStatusResolved InquiryStatus = "resolved"
)

// Inquiry is a submitted question/request/bug report awaiting an
// administrator's answer.
type Inquiry struct {
	Id        uuid.UUID
	LineId    string
	UserName  string
	Email     string
	Type      InquiryType
	Content   string
	Status    InquiryStatus
	CreatedAt time.Time
}

// AccessLog is a best-effort usage record. Writing one must never affect the
// user-facing outcome of the action it describes.
type AccessLog struct {
	Id           uuid.UUID
	LineId       string
	UserName     string
	Action       string
	ResponseTime int64 // milliseconds
	CreatedAt    time.Time
}
