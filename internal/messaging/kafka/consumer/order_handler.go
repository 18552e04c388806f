package consumer

import (
	"context"
	"encoding/json"
	"log"

	"go-saree-api/internal/cart"
)

type orderCompletedPayload struct {
	UserID  string `json:"user_id"`
	OrderID string `json:"order_id"`
}

func handleOrderCompleted(ctx context.Context, payload []byte, cartService cart.Service) error {
	var data orderCompletedPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}

	log.Printf("[CONSUMER] Clearing cart for user %s (order %s)", data.UserID, data.OrderID)

	if err := cartService.ClearCart(ctx, cart.UserKey(data.UserID)); err != nil {
		return err
	}

	return nil
}
