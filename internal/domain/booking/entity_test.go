//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotelhub/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStay(t *testing.T, checkIn, checkOut string) booking.StayPeriod {
	t.Helper()
	stay, err := booking.ParseStayPeriod(checkIn, checkOut)
	require.NoError(t, err)
	return stay
}

func TestStayPeriod(t *testing.T) {
	t.Run("nights span calendar dates", func(t *testing.T) {
		cases := []struct {
			name     string
			checkIn  string
			checkOut string
			nights   int64
		}{
			{"single night", "2026-03-10", "2026-03-11", 1},
			{"three nights", "2026-03-10", "2026-03-13", 3},
			{"across month boundary", "2026-03-30", "2026-04-02", 3},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				stay := mustStay(t, tc.checkIn, tc.checkOut)
				assert.Equal(t, tc.nights, stay.Nights())
			})
		}
	})

	t.Run("rejects zero-night stay", func(t *testing.T) {
		_, err := booking.ParseStayPeriod("2026-03-10", "2026-03-10")
		assert.ErrorIs(t, err, booking.ErrInvalidStayPeriod)
	})

	t.Run("rejects reversed dates", func(t *testing.T) {
		_, err := booking.ParseStayPeriod("2026-03-13", "2026-03-10")
		assert.ErrorIs(t, err, booking.ErrInvalidStayPeriod)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		_, err := booking.ParseStayPeriod("10/03/2026", "2026-03-13")
		assert.ErrorIs(t, err, booking.ErrInvalidDateFormat)
	})

	t.Run("truncates time-of-day before comparing", func(t *testing.T) {
		in := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)
		out := time.Date(2026, 3, 11, 0, 15, 0, 0, time.UTC)
		stay, err := booking.NewStayPeriod(in, out)
		require.NoError(t, err)
		assert.Equal(t, int64(1), stay.Nights())
	})
}

func TestNewBooking(t *testing.T) {
	stay := mustStay(t, "2026-03-10", "2026-03-13")

	t.Run("created bookings are confirmed", func(t *testing.T) {
		b, err := booking.NewBooking(1, 2, stay, 2, 300)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.True(t, b.IsActive())
	})

	t.Run("rejects zero guests", func(t *testing.T) {
		_, err := booking.NewBooking(1, 2, stay, 0, 300)
		assert.ErrorIs(t, err, booking.ErrInvalidGuests)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := booking.NewBooking(1, 2, stay, 2, -1)
		assert.ErrorIs(t, err, booking.ErrNegativePrice)
	})
}

func TestCancel(t *testing.T) {
	stay := mustStay(t, "2026-03-10", "2026-03-13")

	t.Run("first cancel transitions", func(t *testing.T) {
		b, err := booking.NewBooking(1, 2, stay, 2, 300)
		require.NoError(t, err)

		assert.True(t, b.Cancel())
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.False(t, b.IsActive())
	})

	t.Run("second cancel is a no-op", func(t *testing.T) {
		b, err := booking.NewBooking(1, 2, stay, 2, 300)
		require.NoError(t, err)

		require.True(t, b.Cancel())
		assert.False(t, b.Cancel())
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})
}

func TestAttachPayment(t *testing.T) {
	stay := mustStay(t, "2026-03-10", "2026-03-13")
	record := booking.NewPaymentRecord("DEMO-1", "demo", "card", "SUCCESS", 300, "", "4242", "visa", time.Now())

	t.Run("currency defaults to USD", func(t *testing.T) {
		assert.Equal(t, "USD", record.Currency)
	})

	t.Run("payment binds once", func(t *testing.T) {
		b, err := booking.NewBooking(1, 2, stay, 2, 300)
		require.NoError(t, err)

		require.NoError(t, b.AttachPayment(record))
		require.NotNil(t, b.Payment())
		assert.Equal(t, "DEMO-1", b.Payment().ProviderPaymentID)

		assert.ErrorIs(t, b.AttachPayment(record), booking.ErrPaymentBound)
	})
}
