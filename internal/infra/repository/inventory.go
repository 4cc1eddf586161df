package repository

import (
	"context"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/domain/roomtype"
	"hotelhub/internal/infra"
	infradb "hotelhub/internal/infra/db"
	"hotelhub/internal/pkg/pgconv"
	"hotelhub/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

// InventoryRepository owns reads and writes of the room-type availability
// flag. The flag is a cached projection of booking state, so both the read
// and the write side of any transition happen under the row lock taken by
// AcquireForUpdate.
type InventoryRepository struct {
	db infradb.DBTX
}

func NewInventoryRepository(db infradb.DBTX) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) AcquireForUpdate(ctx context.Context, roomTypeID int64) (*shared.RoomTypeSnapshot, error) {
	const query = `
		SELECT id, hotel_id, name, base_price, special_price, availability
		FROM room_types
		WHERE id = $1
		FOR UPDATE`

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
		return nil, infra.WrapRepoErr("failed to lock room type row", err)
	}

	snap.SpecialPrice = pgconv.Float64PtrFromPgtype(specialPrice)
	snap.Available = roomtype.Availability(availability) == roomtype.Available
	return &snap, nil
}

func (r *InventoryRepository) SetAvailability(ctx context.Context, roomTypeID int64, available bool) error {
	const query = `
		UPDATE room_types
		SET availability = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, roomTypeID, roomtype.AvailabilityFor(available).String())
	if err != nil {
		return infra.WrapRepoErr("failed to set room type availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room type not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *InventoryRepository) CountActiveBookings(ctx context.Context, roomTypeID int64) (int64, error) {
	const query = `
		SELECT count(*)
		FROM bookings
		WHERE room_type_id = $1 AND status <> $2`

	var count int64
	err := r.db.QueryRow(ctx, query, roomTypeID, booking.StatusCancelled.String()).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active bookings", err)
	}
	return count, nil
}
