package request

type CreateHotelRequest struct {
	Name          string  `json:"name" binding:"required"`
	Location      string  `json:"location" binding:"required"`
	City          string  `json:"city" binding:"required"`
	PropertyType  string  `json:"property_type" binding:"required"`
	StarRating    int     `json:"star_rating" binding:"required,min=1,max=5"`
	Description   string  `json:"description"`
	StartingPrice float64 `json:"starting_price" binding:"required,gt=0"`
}

type UpdateHotelRequest struct {
	Name          string  `json:"name" binding:"required"`
	Location      string  `json:"location" binding:"required"`
	City          string  `json:"city" binding:"required"`
	PropertyType  string  `json:"property_type" binding:"required"`
	StarRating    int     `json:"star_rating" binding:"required,min=1,max=5"`
	Description   string  `json:"description"`
	Status        string  `json:"status" binding:"required,oneof=ACTIVE INACTIVE"`
	StartingPrice float64 `json:"starting_price" binding:"required,gt=0"`
}
