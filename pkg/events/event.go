package events

import "time"

// Event type codes emitted by the core.
const (
	TypeUserRegistered = "USER_REGISTERED"
	TypeInquiryCreated = "INQUIRY_CREATED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "INQUIRY_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation used by all publishers here.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewUserRegistered builds the event emitted after a successful registration
// write.
func NewUserRegistered(lineId, email, name string) BaseEvent {
	return BaseEvent{
		Type: TypeUserRegistered,
		Data: map[string]interface{}{
			"line_id": lineId,
			"email":   email,
			"name":    name,
		},
		OccurredAt: time.Now(),
	}
}

// NewInquiryCreated builds the event emitted after an inquiry record is
// persisted. Consumers use it for best-effort admin notification only.
func NewInquiryCreated(inquiryId, lineId, userName, email, inquiryType, content string) BaseEvent {
	return BaseEvent{
		Type: TypeInquiryCreated,
		Data: map[string]interface{}{
			"inquiry_id": inquiryId,
			"line_id":    lineId,
			"user_name":  userName,
			"email":      email,
			"type":       inquiryType,
			"content":    content,
		},
		OccurredAt: time.Now(),
	}
}
