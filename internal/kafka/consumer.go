package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// BookingEventHandler receives decoded events. A returned error stops Consume.
type BookingEventHandler func(ctx context.Context, event BookingEvent) error

type Consumer struct {
	reader *kafka.Reader
	logger *logrus.Logger
}

func NewConsumer(brokers []string, groupID, topic string, logger *logrus.Logger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
		logger: logger,
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume delivers every event of the given type to handler until ctx is
// cancelled or the reader fails. Undecodable messages and other event types
// are skipped.
func (c *Consumer) Consume(ctx context.Context, eventType string, handler BookingEventHandler) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}
		if err := c.dispatch(ctx, msg, eventType, handler); err != nil {
			return err
		}
	}
}

func (c *Consumer) dispatch(ctx context.Context, msg kafka.Message, eventType string, handler BookingEventHandler) error {
	event, err := DecodeBookingEvent(msg)
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"topic":  msg.Topic,
			"offset": msg.Offset,
		}).Warn("skipping undecodable event")
		return nil
	}
	if event.Type != eventType {
		c.logger.WithFields(logrus.Fields{
			"type":       event.Type,
			"booking_id": event.BookingID,
		}).Debug("skipping event")
		return nil
	}
	return handler(ctx, event)
}

func DecodeBookingEvent(msg kafka.Message) (BookingEvent, error) {
	var event BookingEvent
	err := json.Unmarshal(msg.Value, &event)
	return event, err
}
