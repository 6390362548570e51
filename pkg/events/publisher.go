package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"manualbot-be/internal/pkg/logger"
)

// Topic is the in-process bus topic all core events land on.
const Topic = "events"

// Publisher is what flow-completion code publishes through. Publishing is
// best-effort: a failed publish is logged and swallowed, never surfaced to
// the user whose action produced the event.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// envelope is the wire form shared by the gochannel bus and the NATS relay.
type envelope struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt int64                  `json:"occurred_at"`
}

// BusPublisher publishes to the watermill in-process bus and, when a relay
// is attached, mirrors each event to it (e.g. NATS for multi-instance
// deployments).
type BusPublisher struct {
	pubSub *gochannel.GoChannel
	relay  Relay
	logger logger.ILogger
}

// Relay forwards events beyond the current process. Optional.
type Relay interface {
	Publish(ctx context.Context, event Event) error
}

func NewBusPublisher(pubSub *gochannel.GoChannel, relay Relay, log logger.ILogger) *BusPublisher {
	return &BusPublisher{pubSub: pubSub, relay: relay, logger: log}
}

func (p *BusPublisher) Publish(ctx context.Context, event Event) {
	payload, err := json.Marshal(envelope{
		Type:       event.EventType(),
		Data:       event.Payload(),
		OccurredAt: event.Timestamp().Unix(),
	})
	if err != nil {
		p.logger.Error("EventPublisher", "Failed to marshal event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := p.pubSub.Publish(Topic, msg); err != nil {
		p.logger.Error("EventPublisher", "Failed to publish event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}

	if p.relay != nil {
		if err := p.relay.Publish(ctx, event); err != nil {
			p.logger.Warn("EventPublisher", "Relay publish failed", map[string]interface{}{
				"type":  event.EventType(),
				"error": err.Error(),
			})
		}
	}
}

// DecodeEnvelope reconstructs an Event from a bus message payload.
func DecodeEnvelope(payload []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, err
	}
	return BaseEvent{
		Type:       env.Type,
		Data:       env.Data,
		OccurredAt: time.Unix(env.OccurredAt, 0),
	}, nil
}
