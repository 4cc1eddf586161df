package readstore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"hotelhub/internal/infra"
	infradb "hotelhub/internal/infra/db"
	"hotelhub/internal/pkg/pgconv"
	"hotelhub/internal/usecase/readmodel"
)

type BookingReadStore struct {
	db infradb.DBTX
}

func NewBookingReadStore(db infradb.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const bookingDetailQuery = `
	SELECT b.id, b.user_id, b.room_type_id, rt.name,
	       b.check_in, b.check_out, b.guests, b.total_price, b.status,
	       b.created_at, b.updated_at,
	       p.provider_payment_id, p.provider, p.method, p.status,
	       p.amount, p.currency, p.card_last4, p.card_brand, p.created_at
	FROM bookings b
	JOIN room_types rt ON rt.id = b.room_type_id
	LEFT JOIN payments p ON p.booking_id = b.id`

func (r *BookingReadStore) GetByID(ctx context.Context, bookingID int64) (*readmodel.BookingRM, error) {
	query := bookingDetailQuery + `
	WHERE b.id = $1`

	rm, err := scanBookingDetail(r.db.QueryRow(ctx, query, bookingID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	return rm, nil
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID int64) ([]readmodel.BookingListRM, error) {
	const query = `
		SELECT b.id, b.user_id, b.room_type_id, rt.name,
		       b.check_in, b.check_out, b.status, b.total_price, b.created_at
		FROM bookings b
		JOIN room_types rt ON rt.id = b.room_type_id
		WHERE b.user_id = $1
		ORDER BY b.id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for user", err)
	}
	defer rows.Close()

	return scanBookingList(rows)
}

func (r *BookingReadStore) ListAll(ctx context.Context) ([]readmodel.BookingListRM, error) {
	const query = `
		SELECT b.id, b.user_id, b.room_type_id, rt.name,
		       b.check_in, b.check_out, b.status, b.total_price, b.created_at
		FROM bookings b
		JOIN room_types rt ON rt.id = b.room_type_id
		ORDER BY b.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	return scanBookingList(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingDetail(row rowScanner) (*readmodel.BookingRM, error) {
	var (
		rm readmodel.BookingRM

		payProviderID pgtype.Text
		payProvider   pgtype.Text
		payMethod     pgtype.Text
		payStatus     pgtype.Text
		payAmount     pgtype.Float8
		payCurrency   pgtype.Text
		payLast4      pgtype.Text
		payBrand      pgtype.Text
		payCreatedAt  pgtype.Timestamptz
	)
	err := row.Scan(
		&rm.ID, &rm.UserID, &rm.RoomTypeID, &rm.RoomName,
		&rm.CheckIn, &rm.CheckOut, &rm.Guests, &rm.TotalPrice, &rm.Status,
		&rm.CreatedAt, &rm.UpdatedAt,
		&payProviderID, &payProvider, &payMethod, &payStatus,
		&payAmount, &payCurrency, &payLast4, &payBrand, &payCreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if payProviderID.Valid {
		rm.Payment = &readmodel.PaymentRM{
			ProviderPaymentID: payProviderID.String,
			Provider:          pgconv.StringFromPgtype(payProvider),
			Method:            pgconv.StringFromPgtype(payMethod),
			Status:            pgconv.StringFromPgtype(payStatus),
			Amount:            payAmount.Float64,
			Currency:          pgconv.StringFromPgtype(payCurrency),
			CardLast4:         pgconv.StringPtrFromPgtype(payLast4),
			CardBrand:         pgconv.StringPtrFromPgtype(payBrand),
			CreatedAt:         pgconv.TimeFromPgtype(payCreatedAt),
		}
	}
	return &rm, nil
}

func scanBookingList(rows pgx.Rows) ([]readmodel.BookingListRM, error) {
	list := make([]readmodel.BookingListRM, 0)
	for rows.Next() {
		var rm readmodel.BookingListRM
		err := rows.Scan(
			&rm.ID, &rm.UserID, &rm.RoomTypeID, &rm.RoomName,
			&rm.CheckIn, &rm.CheckOut, &rm.Status, &rm.TotalPrice, &rm.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		list = append(list, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return list, nil
}
