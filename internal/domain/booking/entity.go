package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidGuests = errors.New("guests must be at least 1")
	ErrNegativePrice = errors.New("total price cannot be negative")
	ErrPaymentBound  = errors.New("booking already has a payment")
)

// Booking is a reservation of one room type by one user for a date range.
// Room type and user are referenced by id only; traversal goes through the
// lookup stores, never through embedded object graphs.
type Booking struct {
	id         int64
	userID     int64
	roomTypeID int64
	stay       StayPeriod
	guests     int
	totalPrice float64
	status     Status
	payment    *PaymentRecord
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBooking creates a CONFIRMED booking. There is no reachable PENDING
// state: a booking either commits as confirmed or is never persisted.
func NewBooking(userID, roomTypeID int64, stay StayPeriod, guests int, totalPrice float64) (*Booking, error) {
	if guests < 1 {
		return nil, ErrInvalidGuests
	}
	if totalPrice < 0 {
		return nil, ErrNegativePrice
	}
	return &Booking{
		userID:     userID,
		roomTypeID: roomTypeID,
		stay:       stay,
		guests:     guests,
		totalPrice: totalPrice,
		status:     StatusConfirmed,
	}, nil
}

func ReconstructBooking(
	id, userID, roomTypeID int64,
	stay StayPeriod,
	guests int,
	totalPrice float64,
	status Status,
	payment *PaymentRecord,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		userID:     userID,
		roomTypeID: roomTypeID,
		stay:       stay,
		guests:     guests,
		totalPrice: totalPrice,
		status:     status,
		payment:    payment,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// AttachPayment binds the settlement snapshot. A booking owns at most one
// payment and the record is never replaced.
func (b *Booking) AttachPayment(p PaymentRecord) error {
	if b.payment != nil {
		return ErrPaymentBound
	}
	b.payment = &p
	return nil
}

// Cancel transitions the booking to CANCELLED. It reports false when the
// booking was already cancelled; re-cancelling is a no-op, not an error.
func (b *Booking) Cancel() bool {
	if b.status == StatusCancelled {
		return false
	}
	b.status = StatusCancelled
	return true
}

func (b *Booking) IsActive() bool {
	return b.status.Active()
}

func (b *Booking) ID() int64                 { return b.id }
func (b *Booking) UserID() int64             { return b.userID }
func (b *Booking) RoomTypeID() int64         { return b.roomTypeID }
func (b *Booking) Stay() StayPeriod          { return b.stay }
func (b *Booking) Guests() int               { return b.guests }
func (b *Booking) TotalPrice() float64       { return b.totalPrice }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) Payment() *PaymentRecord   { return b.payment }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }
