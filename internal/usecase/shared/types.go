package shared

import "hotelhub/internal/domain/roomtype"

// Write-side snapshots keep command flows off the read-side view types.

type RoomTypeSnapshot struct {
	ID           int64
	HotelID      int64
	Name         string
	BasePrice    float64
	SpecialPrice *float64
	Available    bool
}

func (s RoomTypeSnapshot) NightlyRate() float64 {
	return roomtype.NightlyRate(s.BasePrice, s.SpecialPrice)
}

type BookingSnapshot struct {
	ID         int64
	UserID     int64
	RoomTypeID int64
	Status     string
}
