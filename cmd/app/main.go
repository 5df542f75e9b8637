package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	_ "github.com/mikededo/hubbl-sub000/docs"
	"github.com/mikededo/hubbl-sub000/internal/config"
	"github.com/mikededo/hubbl-sub000/internal/db"
	"github.com/mikededo/hubbl-sub000/internal/logger"
	"github.com/mikededo/hubbl-sub000/internal/mq"
	"github.com/mikededo/hubbl-sub000/internal/notify"
	"github.com/mikededo/hubbl-sub000/internal/server"
)

// @title Hubbl API
// @version 1.0
// @description Gym management API: virtual gyms, zones, events and appointments.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logger.InitWithLevel(cfg.LogLevel)
	logger.Info("Starting Hubbl application", "timezone", cfg.Timezone)

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	sender := notify.NewSMTPSender(cfg.EmailFrom, cfg.EmailFromName, cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	notifier := notify.New(rdb, sender)
	defer notifier.Close()

	var publisher mq.Publisher = mq.NopPublisher{}
	if cfg.AMQPURL != "" {
		p, err := mq.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			logger.Fatalf("Failed to connect to message broker: %v", err)
		}
		publisher = p
		logger.Info("Publishing domain events", "exchange", cfg.AMQPExchange)
	}
	defer publisher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go notifier.Start(ctx)

	srv := server.New(database, cfg, notifier, publisher)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
