package roomtype

import "errors"

var (
	ErrInvalidName      = errors.New("room type name is required")
	ErrInvalidBasePrice = errors.New("base price must be positive")
)

type Availability string

const (
	Available   Availability = "AVAILABLE"
	Unavailable Availability = "UNAVAILABLE"
)

func (a Availability) String() string {
	return string(a)
}

func AvailabilityFor(available bool) Availability {
	if available {
		return Available
	}
	return Unavailable
}

// RoomType is a bookable inventory unit. Its availability flag is a cached
// projection of booking state; every mutation of it goes through the
// inventory ledger under a row lock, never through a direct field write.
type RoomType struct {
	id           int64
	hotelID      int64
	name         string
	basePrice    float64
	specialPrice *float64
	roomSize     int
	availability Availability
}

func NewRoomType(hotelID int64, name string, basePrice float64, specialPrice *float64, roomSize int) (*RoomType, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if basePrice <= 0 {
		return nil, ErrInvalidBasePrice
	}
	return &RoomType{
		hotelID:      hotelID,
		name:         name,
		basePrice:    basePrice,
		specialPrice: specialPrice,
		roomSize:     roomSize,
		availability: Available,
	}, nil
}

func ReconstructRoomType(id, hotelID int64, name string, basePrice float64, specialPrice *float64, roomSize int, availability Availability) *RoomType {
	return &RoomType{
		id:           id,
		hotelID:      hotelID,
		name:         name,
		basePrice:    basePrice,
		specialPrice: specialPrice,
		roomSize:     roomSize,
		availability: availability,
	}
}

// NightlyRate applies the special-overrides-base pricing rule.
func NightlyRate(basePrice float64, specialPrice *float64) float64 {
	if specialPrice != nil {
		return *specialPrice
	}
	return basePrice
}

func (r *RoomType) NightlyRate() float64 {
	return NightlyRate(r.basePrice, r.specialPrice)
}

func (r *RoomType) IsAvailable() bool {
	return r.availability == Available
}

func (r *RoomType) ID() int64                  { return r.id }
func (r *RoomType) HotelID() int64             { return r.hotelID }
func (r *RoomType) Name() string               { return r.name }
func (r *RoomType) BasePrice() float64         { return r.basePrice }
func (r *RoomType) SpecialPrice() *float64     { return r.specialPrice }
func (r *RoomType) RoomSize() int              { return r.roomSize }
func (r *RoomType) Availability() Availability { return r.availability }
