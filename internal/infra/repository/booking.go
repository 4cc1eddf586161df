package repository

import (
	"context"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/infra"
	infradb "hotelhub/internal/infra/db"
	"hotelhub/internal/pkg/pgconv"
)

type BookingRepository struct {
	db infradb.DBTX
}

func NewBookingRepository(db infradb.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (int64, error) {
	const insertBooking = `
		INSERT INTO bookings (user_id, room_type_id, check_in, check_out, guests, total_price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var bookingID int64
	err := r.db.QueryRow(ctx, insertBooking,
		b.UserID(),
		b.RoomTypeID(),
		b.Stay().CheckIn(),
		b.Stay().CheckOut(),
		b.Guests(),
		b.TotalPrice(),
		b.Status().String(),
	).Scan(&bookingID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}

	if p := b.Payment(); p != nil {
		const insertPayment = `
			INSERT INTO payments (booking_id, provider_payment_id, provider, method, status, amount, currency, card_last4, card_brand, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

		_, err := r.db.Exec(ctx, insertPayment,
			bookingID,
			p.ProviderPaymentID,
			p.Provider,
			p.Method,
			p.Status,
			p.Amount,
			p.Currency,
			nullableString(p.CardLast4),
			nullableString(p.CardBrand),
			p.CreatedAt,
		)
		if err != nil {
			return 0, infra.WrapRepoErr("failed to create payment record", err)
		}
	}

	return bookingID, nil
}

func (r *BookingRepository) SetStatus(ctx context.Context, bookingID int64, status booking.Status) error {
	const query = `
		UPDATE bookings
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, bookingID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return pgconv.StringToPgtype(s)
}
