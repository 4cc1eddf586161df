package usecase

import (
	"context"
	"time"
)

const (
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
)

type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  int64     `json:"booking_id"`
	UserID     int64     `json:"user_id"`
	RoomTypeID int64     `json:"room_type_id"`
	TotalPrice float64   `json:"total_price"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher fans booking lifecycle events out to interested consumers.
// Publishing is best effort: command flows log failures and continue, the
// booking itself is already committed.
type EventPublisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}
