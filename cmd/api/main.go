package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"go-saree-api/internal/app"
	"go-saree-api/internal/bootstrap"
)

func main() {
	_ = godotenv.Load()
	r := gin.Default()

	auditLogger := bootstrap.NewStdoutAuditLogger()
	defer auditLogger.Sync()

	// build dependency + routes
	if err := app.BuildApp(r, auditLogger); err != nil {
		log.Fatal(err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		auditLogger,
	)
}
