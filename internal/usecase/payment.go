package usecase

import "context"

const (
	PaymentStatusSuccess = "SUCCESS"
	PaymentStatusFailed  = "FAILED"
)

type PaymentDetails struct {
	Method   string
	Token    string
	CardName string
}

type PaymentResult struct {
	PaymentID string
	Status    string
	Provider  string
	Method    string
	CardLast4 string
	CardBrand string
	Message   string
	Currency  string
}

func (r PaymentResult) Succeeded() bool {
	return r.Status == PaymentStatusSuccess
}

// PaymentGateway captures a charge before the booking is written. A capture
// is not repeatable: callers must run the subsequent write in a
// single-attempt transaction and void the capture if that write fails.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, details PaymentDetails, amount float64) (*PaymentResult, error)
	// VoidPayment reverses a capture whose booking never got persisted.
	VoidPayment(ctx context.Context, paymentID string) error
}
