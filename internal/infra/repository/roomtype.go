package repository

import (
	"context"

	"hotelhub/internal/domain/roomtype"
	"hotelhub/internal/infra"
	infradb "hotelhub/internal/infra/db"
	"hotelhub/internal/pkg/pgconv"
)

type RoomTypeRepository struct {
	db infradb.DBTX
}

func NewRoomTypeRepository(db infradb.DBTX) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

func (r *RoomTypeRepository) Create(ctx context.Context, rt *roomtype.RoomType) (int64, error) {
	const query = `
		INSERT INTO room_types (hotel_id, name, base_price, special_price, room_size, availability)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		rt.HotelID(),
		rt.Name(),
		rt.BasePrice(),
		pgconv.Float64PtrToPgtype(rt.SpecialPrice()),
		rt.RoomSize(),
		rt.Availability().String(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create room type", err)
	}
	return id, nil
}

func (r *RoomTypeRepository) Update(ctx context.Context, rt *roomtype.RoomType) error {
	const query = `
		UPDATE room_types
		SET name = $2, base_price = $3, special_price = $4, room_size = $5, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		rt.ID(),
		rt.Name(),
		rt.BasePrice(),
		pgconv.Float64PtrToPgtype(rt.SpecialPrice()),
		rt.RoomSize(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room type not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete removes the row. A foreign key rejection surfaces as
// KindForeignKeyViolated so the caller can translate a race against a
// concurrently created booking into the same conflict as the guard check.
func (r *RoomTypeRepository) Delete(ctx context.Context, roomTypeID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM room_types WHERE id = $1`, roomTypeID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room type not found", nil, infra.KindNotFound)
	}
	return nil
}
