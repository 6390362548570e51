package service

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"manualbot-be/internal/pkg/logger"
	"manualbot-be/internal/pkg/mailer"
	"manualbot-be/pkg/events"
)

// NotificationService consumes core events off the in-process bus and
// fans out admin email notifications. Delivery is best-effort throughout:
// a failed mail is logged and the message is still acked, since the
// triggering user action has already committed.
type NotificationService struct {
	pubSub     *gochannel.GoChannel
	mail       mailer.IEmailService
	recipients []string
	logger     logger.ILogger
}

func NewNotificationService(pubSub *gochannel.GoChannel, mail mailer.IEmailService, recipients []string, log logger.ILogger) *NotificationService {
	return &NotificationService{
		pubSub:     pubSub,
		mail:       mail,
		recipients: recipients,
		logger:     log,
	}
}

// Start subscribes to the event topic and processes messages until ctx ends.
func (s *NotificationService) Start(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, events.Topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg.Payload)
			msg.Ack()
		}
	}()

	s.logger.Info("NotificationService", "Listening for events", map[string]interface{}{
		"topic":      events.Topic,
		"recipients": len(s.recipients),
	})
	return nil
}

func (s *NotificationService) processMessage(ctx context.Context, payload []byte) {
	event, err := events.DecodeEnvelope(payload)
	if err != nil {
		s.logger.Warn("NotificationService", "Undecodable event payload", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	switch event.EventType() {
	case events.TypeInquiryCreated:
		s.notifyInquiryCreated(event)
	case events.TypeUserRegistered:
		s.logger.Info("NotificationService", "User registered", map[string]interface{}{
			"line_id": event.Payload()["line_id"],
		})
	}
}

func (s *NotificationService) notifyInquiryCreated(event events.Event) {
	data := event.Payload()
	notification := mailer.InquiryNotification{
		InquiryId: stringField(data, "inquiry_id"),
		UserName:  stringField(data, "user_name"),
		UserEmail: stringField(data, "email"),
		Type:      stringField(data, "type"),
		Content:   stringField(data, "content"),
	}

	for _, recipient := range s.recipients {
		if err := s.mail.SendInquiryNotification(recipient, notification); err != nil {
			s.logger.Warn("NotificationService", "Admin notification mail failed", map[string]interface{}{
				"recipient":  recipient,
				"inquiry_id": notification.InquiryId,
				"error":      err.Error(),
			})
			continue
		}
		s.logger.Info("NotificationService", "Admin notified of inquiry", map[string]interface{}{
			"recipient":  recipient,
			"inquiry_id": notification.InquiryId,
		})
	}
}

func stringField(data map[string]interface{}, key string) string {
	v, _ := data[key].(string)
	return v
}
