package response

import (
	"github.com/jinzhu/copier"

	"hotelhub/internal/usecase/readmodel"
)

type HotelResponse struct {
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

func FromHotelRM(rm *readmodel.HotelRM) *HotelResponse {
	var resp HotelResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromHotelRMs(rms []readmodel.HotelRM) []HotelResponse {
	resp := make([]HotelResponse, 0, len(rms))
	_ = copier.Copy(&resp, &rms)
	return resp
}
