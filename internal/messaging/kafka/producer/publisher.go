package producer

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=publisher.go -destination=../../../mock/producer/publisher_mock.go -package=mock

const (
	EventItemAdded     = "ITEM_ADDED"
	EventItemRemoved   = "ITEM_REMOVED"
	EventQtyUpdated    = "QTY_UPDATED"
	EventCouponApplied = "COUPON_APPLIED"
	EventCouponRemoved = "COUPON_REMOVED"
	EventCartCleared   = "CART_CLEARED"
	EventCartSynced    = "CART_SYNCED"
)

// CartEvent is the activity record emitted on every cart mutation.
type CartEvent struct {
	Type       string    `json:"type"`
	CartKey    string    `json:"cartKey"`
	ItemID     string    `json:"itemId,omitempty"`
	ProductID  string    `json:"productId,omitempty"`
	Quantity   int       `json:"quantity,omitempty"`
	CouponCode string    `json:"couponCode,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher is fire-and-forget: cart mutations never block or fail on event
// delivery.
type Publisher interface {
	Publish(event CartEvent)
}

// NopPublisher drops every event; used by binaries that do not emit activity.
type NopPublisher struct{}

func (NopPublisher) Publish(CartEvent) {}

// KafkaPublisher buffers events in memory and drains them to Kafka from a
// single worker. A full buffer drops the event rather than stalling a cart
// mutation.
type KafkaPublisher struct {
	writer *kafka.Writer
	queue  chan CartEvent
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{
		writer: writer,
		queue:  make(chan CartEvent, 256),
	}
}

func (p *KafkaPublisher) Publish(event CartEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	select {
	case p.queue <- event:
	default:
		log.Printf("[PRODUCER] Event queue full, dropping %s for %s", event.Type, event.CartKey)
	}
}

func (p *KafkaPublisher) Start(ctx context.Context) {
	log.Println("[PRODUCER] Cart event publisher started")

	for {
		select {
		case <-ctx.Done():
			return
		case event := <-p.queue:
			if err := p.publish(ctx, event); err != nil {
				log.Printf("[PRODUCER] Failed to publish %s: %v", event.Type, err)
			}
		}
	}
}

func (p *KafkaPublisher) publish(ctx context.Context, event CartEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.CartKey),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}
