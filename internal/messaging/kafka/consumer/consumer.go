package consumer

import (
	"context"
	"log"

	"github.com/segmentio/kafka-go"

	"go-saree-api/internal/cart"
)

// ConsumeMessages clears a user's local cart when the platform reports that
// their order completed; checkout completion empties the cart.
func ConsumeMessages(ctx context.Context, reader *kafka.Reader, cartService cart.Service) {
	log.Println("[CONSUMER] Started consuming messages")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[CONSUMER] Error fetching message: %v", err)
			continue
		}

		eventType := getHeader(msg.Headers, "event_type")

		if eventType == "ORDER_COMPLETED" {
			if err := handleOrderCompleted(ctx, msg.Value, cartService); err != nil {
				log.Printf("[CONSUMER] Error handling ORDER_COMPLETED: %v", err)
			} else {
				if err := reader.CommitMessages(ctx, msg); err != nil {
					log.Printf("[CONSUMER] Error committing message: %v", err)
				}
			}
		} else {
			// Skip unknown event types
			_ = reader.CommitMessages(ctx, msg)
		}
	}
}
