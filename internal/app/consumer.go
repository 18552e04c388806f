package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"

	"go-saree-api/internal/cart"
	"go-saree-api/internal/messaging/kafka/consumer"
	"go-saree-api/internal/messaging/kafka/producer"
	"go-saree-api/internal/shared/connection"
	"go-saree-api/internal/storage"
)

// RunConsumer drains platform order events and clears local carts when orders
// complete.
func RunConsumer() error {
	log.Println("[CONSUMER] Starting cart consumer...")

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	cartStorage := storage.NewRedisCartStorage(redisClient)
	cartStore := cart.NewStore(cartStorage, nil)
	cartService := cart.NewService(cartStore, nil, producer.NopPublisher{})

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   "order.events",
		GroupID: "cart-consumer-group",
	})
	defer reader.Close()
	log.Println("[CONSUMER] Kafka reader initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMessages(ctx, reader, cartService)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[CONSUMER] Shutting down...")
	cancel()
	log.Println("[CONSUMER] Stopped")

	return nil
}
