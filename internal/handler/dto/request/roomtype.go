package request

type CreateRoomTypeRequest struct {
	HotelID      int64    `json:"hotel_id" binding:"required"`
	Name         string   `json:"name" binding:"required"`
	BasePrice    float64  `json:"base_price" binding:"required,gt=0"`
	SpecialPrice *float64 `json:"special_price,omitempty"`
	RoomSize     int      `json:"room_size" binding:"required,gt=0"`
}

type UpdateRoomTypeRequest struct {
	Name         string   `json:"name" binding:"required"`
	BasePrice    float64  `json:"base_price" binding:"required,gt=0"`
	SpecialPrice *float64 `json:"special_price,omitempty"`
	RoomSize     int      `json:"room_size" binding:"required,gt=0"`
}
