package readstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"hotelhub/internal/domain/roomtype"
	"hotelhub/internal/infra"
	infradb "hotelhub/internal/infra/db"
	"hotelhub/internal/pkg/pgconv"
	"hotelhub/internal/usecase/shared"
)

// CommandReads serves the validation lookups command flows run inside
// their transaction. It shares the transaction's DBTX so reads see the
// flow's own uncommitted writes.
type CommandReads struct {
	db infradb.DBTX
}

func NewCommandReads(db infradb.DBTX) *CommandReads {
	return &CommandReads{db: db}
}

func (r *CommandReads) UserExists(ctx context.Context, userID int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return exists, nil
}

func (r *CommandReads) RoomTypeByID(ctx context.Context, roomTypeID int64) (*shared.RoomTypeSnapshot, error) {
	const query = `
		SELECT id, hotel_id, name, base_price, special_price, availability
		FROM room_types
		WHERE id = $1`

	var (
		snap         shared.RoomTypeSnapshot
		specialPrice pgtype.Float8
		availability string
	)
	err := r.db.QueryRow(ctx, query, roomTypeID).Scan(
		&snap.ID, &snap.HotelID, &snap.Name, &snap.BasePrice, &specialPrice, &availability,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room type", err)
	}
	snap.SpecialPrice = pgconv.Float64PtrFromPgtype(specialPrice)
	snap.Available = availability == roomtype.Available.String()
	return &snap, nil
}

// ResolveRoomTypeID matches by (hotel, name) first, then by name alone.
// Both matches are case-insensitive; ties resolve to the lowest id.
func (r *CommandReads) ResolveRoomTypeID(ctx context.Context, hotelID *int64, name string) (int64, error) {
	const byHotelAndName = `
		SELECT id
		FROM room_types
		WHERE hotel_id = $1 AND lower(name) = lower($2)
		ORDER BY id
		LIMIT 1`
	const byName = `
		SELECT id
		FROM room_types
		WHERE lower(name) = lower($1)
		ORDER BY id
		LIMIT 1`

	var id int64
	if hotelID != nil {
		err := r.db.QueryRow(ctx, byHotelAndName, *hotelID, name).Scan(&id)
		if err == nil {
			return id, nil
		}
		if !pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("failed to resolve room type by hotel and name", err)
		}
	}

	err := r.db.QueryRow(ctx, byName, name).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("room type not found by name", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to resolve room type by name", err)
	}
	return id, nil
}

func (r *CommandReads) BookingByID(ctx context.Context, bookingID int64) (*shared.BookingSnapshot, error) {
	const query = `
		SELECT id, user_id, room_type_id, status
		FROM bookings
		WHERE id = $1`

	var snap shared.BookingSnapshot
	err := r.db.QueryRow(ctx, query, bookingID).Scan(
		&snap.ID, &snap.UserID, &snap.RoomTypeID, &snap.Status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return &snap, nil
}

// AnyBookingForRoomType reports historical references too: a cancelled
// booking still counts, since the row keeps pointing at the room type.
func (r *CommandReads) AnyBookingForRoomType(ctx context.Context, roomTypeID int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM bookings WHERE room_type_id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, roomTypeID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check bookings for room type", err)
	}
	return exists, nil
}
