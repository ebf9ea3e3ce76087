package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBookingEvent(t *testing.T) {
	dep := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	in := BookingEvent{
		Type:          EventBookingCreated,
		BookingID:     42,
		UserID:        1,
		DestinationID: 1,
		Passengers:    2,
		TotalPrice:    4380000,
		Status:        "Confirmed",
		DepartureDate: dep,
		ReturnDate:    dep.AddDate(0, 0, 15),
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	out, err := DecodeBookingEvent(kafka.Message{Value: data})
	require.NoError(t, err)
	assert.Equal(t, in.BookingID, out.BookingID)
	assert.Equal(t, in.TotalPrice, out.TotalPrice)
	assert.True(t, in.ReturnDate.Equal(out.ReturnDate))
}

func TestDecodeBookingEvent_Garbage(t *testing.T) {
	_, err := DecodeBookingEvent(kafka.Message{Value: []byte("not json")})
	assert.Error(t, err)
}

func TestProducer_CheckConnection_NoBrokers(t *testing.T) {
	p := NewProducer(nil, logrus.New())
	defer p.Close()

	err := p.CheckConnection(context.Background())
	assert.Error(t, err)
}

func TestConsumer_Dispatch(t *testing.T) {
	logger, hook := test.NewNullLogger()
	c := &Consumer{logger: logger}
	ctx := context.Background()

	created, err := json.Marshal(BookingEvent{Type: EventBookingCreated, BookingID: 7})
	require.NoError(t, err)
	other, err := json.Marshal(BookingEvent{Type: "booking_cancelled", BookingID: 8})
	require.NoError(t, err)

	var handled []int64
	handler := func(ctx context.Context, event BookingEvent) error {
		handled = append(handled, event.BookingID)
		return nil
	}

	require.NoError(t, c.dispatch(ctx, kafka.Message{Value: created}, EventBookingCreated, handler))
	require.NoError(t, c.dispatch(ctx, kafka.Message{Value: other}, EventBookingCreated, handler))
	require.NoError(t, c.dispatch(ctx, kafka.Message{Value: []byte("{")}, EventBookingCreated, handler))

	assert.Equal(t, []int64{7}, handled)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "skipping undecodable event", hook.LastEntry().Message)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestConsumer_DispatchHandlerError(t *testing.T) {
	logger, _ := test.NewNullLogger()
	c := &Consumer{logger: logger}

	payload, err := json.Marshal(BookingEvent{Type: EventBookingCreated, BookingID: 7})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = c.dispatch(context.Background(), kafka.Message{Value: payload}, EventBookingCreated, func(context.Context, BookingEvent) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestConsumer_CloseNil(t *testing.T) {
	var c *Consumer
	assert.NoError(t, c.Close())
}
