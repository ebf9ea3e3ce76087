package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/spacebooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

// createBookingRequest has no price or status fields; any sent by the
// client are dropped during decoding.
type createBookingRequest struct {
	UserID          int64     `json:"user_id" binding:"required"`
	DestinationID   int64     `json:"destination_id" binding:"required"`
	SeatClassID     int64     `json:"seat_class_id" binding:"required"`
	AccommodationID int64     `json:"accommodation_id" binding:"required"`
	DepartureDate   Timestamp `json:"departure_date"`
	ReturnDate      Timestamp `json:"return_date"`
	Passengers      int       `json:"passengers"`
}

// Timestamp accepts RFC 3339, a zoneless ISO-8601 date-time or a bare date.
// Zoneless values are read as UTC.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", raw)
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		UserID:          req.UserID,
		DestinationID:   req.DestinationID,
		SeatClassID:     req.SeatClassID,
		AccommodationID: req.AccommodationID,
		DepartureDate:   req.DepartureDate.Time,
		ReturnDate:      req.ReturnDate.Time,
		Passengers:      req.Passengers,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newBookingResponse(*created))
}
