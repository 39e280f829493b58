package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/flightdesk/config"
	"github.com/Domenick1991/flightdesk/internal/email"
	"github.com/Domenick1991/flightdesk/internal/kafka"
	"github.com/Domenick1991/flightdesk/internal/logger"
	"go.uber.org/zap"
)

// The worker prints a confirmation notice for every booking event.
func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logg.Sync()

	if !cfg.Kafka.Enabled() {
		logg.Fatal("kafka is not configured: set kafka.brokers and kafka.booking_events_topic")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.BookingEventsTopic, logg)
	defer consumer.Close()

	sender := email.NewSender(os.Stdout, logg)

	logg.Info("worker started", zap.String("topic", cfg.Kafka.BookingEventsTopic), zap.String("group_id", cfg.Kafka.GroupID))
	if err := consumer.Consume(ctx, sender.Send); err != nil {
		logg.Error("consumer stopped", zap.Error(err))
	}
	logg.Info("worker stopped")
}
