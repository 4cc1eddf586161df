package hotel

import "errors"

var (
	ErrInvalidName       = errors.New("hotel name is required")
	ErrInvalidStarRating = errors.New("star rating must be between 1 and 5")
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

type Hotel struct {
	id            int64
	name          string
	location      string
	city          string
	propertyType  string
	starRating    int
	description   string
	status        Status
	startingPrice float64
}

func NewHotel(name, location, city, propertyType string, starRating int, description string, startingPrice float64) (*Hotel, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if starRating < 1 || starRating > 5 {
		return nil, ErrInvalidStarRating
	}
	return &Hotel{
		name:          name,
		location:      location,
		city:          city,
		propertyType:  propertyType,
		starRating:    starRating,
		description:   description,
		status:        StatusActive,
		startingPrice: startingPrice,
	}, nil
}

func ReconstructHotel(id int64, name, location, city, propertyType string, starRating int, description string, status Status, startingPrice float64) *Hotel {
	return &Hotel{
		id:            id,
		name:          name,
		location:      location,
		city:          city,
		propertyType:  propertyType,
		starRating:    starRating,
		description:   description,
		status:        status,
		startingPrice: startingPrice,
	}
}

func (h *Hotel) ID() int64              { return h.id }
func (h *Hotel) Name() string           { return h.name }
func (h *Hotel) Location() string       { return h.location }
func (h *Hotel) City() string           { return h.city }
func (h *Hotel) PropertyType() string   { return h.propertyType }
func (h *Hotel) StarRating() int        { return h.starRating }
func (h *Hotel) Description() string    { return h.description }
func (h *Hotel) Status() Status         { return h.status }
func (h *Hotel) StartingPrice() float64 { return h.startingPrice }
