package app

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-saree-api/internal/messaging/kafka/producer"
	"go-saree-api/internal/shared/connection"
)

func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	// 1. Setup Infrastructure
	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(os.Getenv("KAFKA_BROKER"), "cart.events", 5)
	if err != nil {
		return err
	}

	events := producer.NewKafkaPublisher(kafkaWriter)
	go events.Start(context.Background())

	// 2. Register Modules & Routes
	registerModules(router, deps{
		redis:  redisClient,
		events: events,
		logger: logger,
	})

	return nil
}
