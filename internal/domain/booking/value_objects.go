package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidStayPeriod = errors.New("check-out must be after check-in")
	ErrInvalidDateFormat = errors.New("invalid date format, use ISO yyyy-mm-dd")
)

const dateLayout = "2006-01-02"

// StayPeriod is a pair of calendar dates spanning at least one night.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	checkIn = truncateToDate(checkIn)
	checkOut = truncateToDate(checkOut)
	if !checkOut.After(checkIn) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}, nil
}

// ParseStayPeriod builds a StayPeriod from ISO calendar-date strings.
func ParseStayPeriod(checkIn, checkOut string) (StayPeriod, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return StayPeriod{}, ErrInvalidDateFormat
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return StayPeriod{}, ErrInvalidDateFormat
	}
	return NewStayPeriod(in, out)
}

func (s StayPeriod) CheckIn() time.Time  { return s.checkIn }
func (s StayPeriod) CheckOut() time.Time { return s.checkOut }

func (s StayPeriod) Nights() int64 {
	return int64(s.checkOut.Sub(s.checkIn) / (24 * time.Hour))
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// PaymentRecord is the immutable settlement snapshot embedded in a booking
// created through the payment-backed path. Only the masked card suffix is
// retained, never full card data.
type PaymentRecord struct {
	ProviderPaymentID string
	Provider          string
	Method            string
	Status            string
	Amount            float64
	Currency          string
	CardLast4         string
	CardBrand         string
	CreatedAt         time.Time
}

const defaultCurrency = "USD"

func NewPaymentRecord(providerPaymentID, provider, method, status string, amount float64, currency, cardLast4, cardBrand string, createdAt time.Time) PaymentRecord {
	if currency == "" {
		currency = defaultCurrency
	}
	return PaymentRecord{
		ProviderPaymentID: providerPaymentID,
		Provider:          provider,
		Method:            method,
		Status:            status,
		Amount:            amount,
		Currency:          currency,
		CardLast4:         cardLast4,
		CardBrand:         cardBrand,
		CreatedAt:         createdAt,
	}
}
