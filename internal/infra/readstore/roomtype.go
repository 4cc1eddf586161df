package readstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"hotelhub/internal/infra"
	infradb "hotelhub/internal/infra/db"
	"hotelhub/internal/pkg/pgconv"
	"hotelhub/internal/usecase/readmodel"
)

type RoomTypeReadStore struct {
	db infradb.DBTX
}

func NewRoomTypeReadStore(db infradb.DBTX) *RoomTypeReadStore {
	return &RoomTypeReadStore{db: db}
}

const roomTypeColumns = `id, hotel_id, name, base_price, special_price, room_size, availability`

func (r *RoomTypeReadStore) GetByID(ctx context.Context, roomTypeID int64) (*readmodel.RoomTypeRM, error) {
	query := `SELECT ` + roomTypeColumns + ` FROM room_types WHERE id = $1`

	var (
		rm           readmodel.RoomTypeRM
		specialPrice pgtype.Float8
	)
	err := r.db.QueryRow(ctx, query, roomTypeID).Scan(
		&rm.ID, &rm.HotelID, &rm.Name, &rm.BasePrice, &specialPrice, &rm.RoomSize, &rm.Availability,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room type", err)
	}
	rm.SpecialPrice = pgconv.Float64PtrFromPgtype(specialPrice)
	return &rm, nil
}

func (r *RoomTypeReadStore) ListByHotel(ctx context.Context, hotelID int64) ([]readmodel.RoomTypeRM, error) {
	query := `SELECT ` + roomTypeColumns + ` FROM room_types WHERE hotel_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types for hotel", err)
	}
	defer rows.Close()

	list := make([]readmodel.RoomTypeRM, 0)
	for rows.Next() {
		var (
			rm           readmodel.RoomTypeRM
			specialPrice pgtype.Float8
		)
		err := rows.Scan(
			&rm.ID, &rm.HotelID, &rm.Name, &rm.BasePrice, &specialPrice, &rm.RoomSize, &rm.Availability,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room type row", err)
		}
		rm.SpecialPrice = pgconv.Float64PtrFromPgtype(specialPrice)
		list = append(list, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room type rows", err)
	}
	return list, nil
}
