package payment

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"hotelhub/internal/pkg/config"
	"hotelhub/internal/usecase"
)

const demoProvider = "demo"

// DemoGateway approves every charge. It stands in for a real processor in
// development and demo environments; the configured provider name is stamped
// on every capture so stored payments reveal which environment took them.
type DemoGateway struct {
	provider string
	logger   *slog.Logger
}

func NewDemoGateway(cfg config.PaymentConfig, logger *slog.Logger) *DemoGateway {
	provider := cfg.Provider
	if provider == "" {
		provider = demoProvider
	}
	return &DemoGateway{provider: provider, logger: logger}
}

func (g *DemoGateway) ProcessPayment(ctx context.Context, details usecase.PaymentDetails, amount float64) (*usecase.PaymentResult, error) {
	paymentID := "DEMO-" + uuid.NewString()

	result := &usecase.PaymentResult{
		PaymentID: paymentID,
		Status:    usecase.PaymentStatusSuccess,
		Provider:  g.provider,
		Method:    details.Method,
		CardLast4: last4Digits(details.Token),
		CardBrand: brandFromToken(details.Token),
		Message:   "approved",
		Currency:  "USD",
	}

	g.logger.InfoContext(ctx, "demo payment captured",
		slog.String("payment_id", paymentID),
		slog.Float64("amount", amount),
		slog.String("method", details.Method),
	)
	return result, nil
}

func (g *DemoGateway) VoidPayment(ctx context.Context, paymentID string) error {
	g.logger.InfoContext(ctx, "demo payment voided", slog.String("payment_id", paymentID))
	return nil
}

// last4Digits keeps only the digits of a card token and returns the trailing
// four, or everything when fewer remain.
func last4Digits(token string) string {
	var digits strings.Builder
	for _, r := range token {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	s := digits.String()
	if len(s) <= 4 {
		return s
	}
	return s[len(s)-4:]
}

func brandFromToken(token string) string {
	switch {
	case strings.Contains(token, "visa"):
		return "visa"
	case strings.Contains(token, "mc"), strings.Contains(token, "mastercard"):
		return "mastercard"
	case strings.Contains(token, "amex"):
		return "amex"
	default:
		return "card"
	}
}
