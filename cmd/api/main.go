package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/CcubeNetvix/medTracker/internal/config"
	"github.com/CcubeNetvix/medTracker/internal/infrastructure/dynamo"
	jwtinfra "github.com/CcubeNetvix/medTracker/internal/infrastructure/jwt"
	"github.com/CcubeNetvix/medTracker/internal/infrastructure/smtp"
	"github.com/CcubeNetvix/medTracker/internal/infrastructure/sns"
	transporthttp "github.com/CcubeNetvix/medTracker/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	jwtProvider := jwtinfra.NewProvider(cfg)

	// SMTP mailer is optional. A nil mailer degrades the email channel to
	// "not configured" delivery results instead of crashing.
	var mailer smtp.Mailer
	if cfg.SMTPHost != "" {
		mailer = smtp.NewMailer(cfg)
	} else {
		log.Println("WARN: SMTP not configured, email channel disabled")
	}

	// SNS SMS sender is optional, with the same degradation.
	var smsSender sns.SMSSender
	if cfg.SNSEnabled {
		sender, err := sns.NewSender(cfg)
		if err != nil {
			log.Printf("WARN: SNS sender not available: %v", err)
		} else {
			smsSender = sender
		}
	} else {
		log.Println("WARN: SNS not enabled, SMS channel disabled")
	}

	deps := &transporthttp.Deps{
		UserRepo:    dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users),
		Mailer:      mailer,
		SMSSender:   smsSender,
		JWTProvider: jwtProvider,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
