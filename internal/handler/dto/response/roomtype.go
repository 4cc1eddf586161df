package response

import (
	"github.com/jinzhu/copier"

	"hotelhub/internal/usecase/readmodel"
)

type RoomTypeResponse struct {
	ID           int64    `json:"id"`
	HotelID      int64    `json:"hotel_id"`
	Name         string   `json:"name"`
	BasePrice    float64  `json:"base_price"`
	SpecialPrice *float64 `json:"special_price,omitempty"`
	RoomSize     int      `json:"room_size"`
	Availability string   `json:"availability"`
}

func FromRoomTypeRM(rm *readmodel.RoomTypeRM) *RoomTypeResponse {
	var resp RoomTypeResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromRoomTypeRMs(rms []readmodel.RoomTypeRM) []RoomTypeResponse {
	resp := make([]RoomTypeResponse, 0, len(rms))
	_ = copier.Copy(&resp, &rms)
	return resp
}
