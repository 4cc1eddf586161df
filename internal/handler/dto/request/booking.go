package request

import (
	"strings"

	"hotelhub/internal/domain/booking"
)

type CreateBookingRequest struct {
	UserID     int64  `json:"user_id" binding:"required"`
	RoomTypeID int64  `json:"room_type_id" binding:"required"`
	CheckIn    string `json:"check_in" binding:"required"`
	CheckOut   string `json:"check_out" binding:"required"`
	Guests     int    `json:"guests" binding:"required,min=1"`
}

func (r CreateBookingRequest) ToStayPeriod() (booking.StayPeriod, error) {
	return booking.ParseStayPeriod(r.CheckIn, r.CheckOut)
}

type PaymentDetailsRequest struct {
	Method   string `json:"method" binding:"required"`
	Token    string `json:"token" binding:"required"`
	CardName string `json:"card_name"`
}

// ProcessBookingRequest is the payment-backed intake. The room type may be
// referenced by id or resolved by name, optionally scoped to a hotel.
type ProcessBookingRequest struct {
	UserID     *int64                 `json:"user_id"`
	RoomTypeID *int64                 `json:"room_type_id"`
	HotelID    *int64                 `json:"hotel_id"`
	RoomName   *string                `json:"room_name"`
	CheckIn    string                 `json:"check_in" binding:"required"`
	CheckOut   string                 `json:"check_out" binding:"required"`
	Guests     *int                   `json:"guests"`
	TotalPrice *float64               `json:"total_price"`
	Payment    *PaymentDetailsRequest `json:"payment"`
}

func (r ProcessBookingRequest) ToStayPeriod() (booking.StayPeriod, error) {
	return booking.ParseStayPeriod(r.CheckIn, r.CheckOut)
}

func (r ProcessBookingRequest) GetRoomName() *string {
	if r.RoomName == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.RoomName)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// GetGuests defaults to a single guest when the field is omitted.
func (r ProcessBookingRequest) GetGuests() int {
	if r.Guests == nil {
		return 1
	}
	return *r.Guests
}
