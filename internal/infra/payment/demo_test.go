//go:build unit

package payment_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"hotelhub/internal/infra/payment"
	"hotelhub/internal/pkg/config"
	"hotelhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(provider string) *payment.DemoGateway {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return payment.NewDemoGateway(config.PaymentConfig{Provider: provider}, logger)
}

func TestProcessPayment(t *testing.T) {
	t.Run("captures with the configured provider", func(t *testing.T) {
		g := newGateway("demo-eu")

		result, err := g.ProcessPayment(context.Background(), usecase.PaymentDetails{
			Method: "card",
			Token:  "tok_visa_4242424242424242",
		}, 300)
		require.NoError(t, err)

		assert.True(t, result.Succeeded())
		assert.Equal(t, "demo-eu", result.Provider)
		assert.True(t, strings.HasPrefix(result.PaymentID, "DEMO-"))
		assert.Equal(t, "4242", result.CardLast4)
		assert.Equal(t, "visa", result.CardBrand)
		assert.Equal(t, "USD", result.Currency)
	})

	t.Run("empty provider falls back to demo", func(t *testing.T) {
		g := newGateway("")

		result, err := g.ProcessPayment(context.Background(), usecase.PaymentDetails{
			Method: "card",
			Token:  "tok_12",
		}, 100)
		require.NoError(t, err)

		assert.Equal(t, "demo", result.Provider)
		assert.Equal(t, "12", result.CardLast4)
		assert.Equal(t, "card", result.CardBrand)
	})
}
