package readmodel

type RoomTypeRM struct {
	ID           int64    `json:"id"`
	HotelID      int64    `json:"hotel_id"`
	Name         string   `json:"name"`
	BasePrice    float64  `json:"base_price"`
	SpecialPrice *float64 `json:"special_price,omitempty"`
	RoomSize     int      `json:"room_size"`
	Availability string   `json:"availability"`
}

type HotelRM struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	City          string  `json:"city"`
	PropertyType  string  `json:"property_type"`
	StarRating    int     `json:"star_rating"`
	Description   string  `json:"description"`
	Status        string  `json:"status"`
	StartingPrice float64 `json:"starting_price"`
}

type AuthorizedUserRM struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
