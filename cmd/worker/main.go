package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/spacebooking/config"
	"github.com/Domenick1991/spacebooking/internal/email"
	"github.com/Domenick1991/spacebooking/internal/kafka"
	"github.com/Domenick1991/spacebooking/internal/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logg := logger.New(cfg.Log)
	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.NotificationsTopic == "" {
		logg.Fatal("worker requires kafka.brokers and kafka.notifications_topic")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic, logg)
	defer consumer.Close()

	emailSender := email.NewSender(logg)

	logg.WithField("topic", cfg.Kafka.NotificationsTopic).Info("worker consuming booking notifications")
	err = consumer.Consume(ctx, kafka.EventBookingCreated, func(ctx context.Context, event kafka.BookingEvent) error {
		if err := emailSender.Send(ctx, event); err != nil {
			logg.WithError(err).WithFields(logrus.Fields{"booking_id": event.BookingID}).Error("send confirmation")
		}
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logg.WithError(err).Fatal("consumer stopped")
	}
	logg.Info("worker stopped")
}
