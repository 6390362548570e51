package dto

// WebhookRequest is the inbound payload from the messaging platform. The
// shape follows the LINE Messaging API webhook format.
type WebhookRequest struct {
	Destination string         `json:"destination"`
	Events      []WebhookEvent `json:"events" validate:"required"`
}

type WebhookEvent struct {
	Type       string          `json:"type" validate:"required"`
	ReplyToken string          `json:"replyToken"`
	Timestamp  int64           `json:"timestamp"`
	Source     WebhookSource   `json:"source"`
	Message    *WebhookMessage `json:"message"`
}

type WebhookSource struct {
	Type   string `json:"type"`
	UserId string `json:"userId"`
}

type WebhookMessage struct {
	Id   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// WebhookReply pairs a reply token with the text to send back for it.
type WebhookReply struct {
	ReplyToken string `json:"replyToken"`
	Text       string `json:"text"`
}

type WebhookResponse struct {
	Replies []WebhookReply `json:"replies"`
}
