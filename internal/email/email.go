package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/spacebooking/internal/kafka"
	"github.com/sirupsen/logrus"
)

// Sender delivers booking confirmations. Delivery is a structured log line
// until an SMTP relay is configured.
type Sender struct {
	logger *logrus.Logger
}

func NewSender(logger *logrus.Logger) *Sender {
	return &Sender{logger: logger}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	if event.BookingID == 0 {
		return fmt.Errorf("booking event without booking id")
	}

	s.logger.WithFields(logrus.Fields{
		"event":       event.Type,
		"booking_id":  event.BookingID,
		"user_id":     event.UserID,
		"destination": event.DestinationName,
		"departure":   event.DepartureDate.Format("2006-01-02"),
		"total_price": event.TotalPrice,
	}).Info(Subject(event))
	return nil
}

func Subject(event kafka.BookingEvent) string {
	return fmt.Sprintf("Your trip to %s is %s (booking #%d)", event.DestinationName, event.Status, event.BookingID)
}
