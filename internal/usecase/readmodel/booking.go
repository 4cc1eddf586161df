package readmodel

import "time"

type BookingRM struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	RoomTypeID int64      `json:"room_type_id"`
	RoomName   string     `json:"room_name"`
	CheckIn    time.Time  `json:"check_in"`
	CheckOut   time.Time  `json:"check_out"`
	Guests     int        `json:"guests"`
	TotalPrice float64    `json:"total_price"`
	Status     string     `json:"status"`
	Payment    *PaymentRM `json:"payment,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type PaymentRM struct {
	ProviderPaymentID string    `json:"provider_payment_id"`
	Provider          string    `json:"provider"`
	Method            string    `json:"method"`
	Status            string    `json:"status"`
	Amount            float64   `json:"amount"`
	Currency          string    `json:"currency"`
	CardLast4         *string   `json:"card_last4,omitempty"`
	CardBrand         *string   `json:"card_brand,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type BookingListRM struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	RoomTypeID int64     `json:"room_type_id"`
	RoomName   string    `json:"room_name"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}
