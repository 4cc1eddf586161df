package readstore

import (
	"context"

	"hotelhub/internal/infra"
	infradb "hotelhub/internal/infra/db"
	"hotelhub/internal/pkg/pgconv"
	"hotelhub/internal/usecase/readmodel"
)

type HotelReadStore struct {
	db infradb.DBTX
}

func NewHotelReadStore(db infradb.DBTX) *HotelReadStore {
	return &HotelReadStore{db: db}
}

const hotelColumns = `id, name, location, city, property_type, star_rating, description, status, starting_price`

func (r *HotelReadStore) GetByID(ctx context.Context, hotelID int64) (*readmodel.HotelRM, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels WHERE id = $1`

	var rm readmodel.HotelRM
	err := r.db.QueryRow(ctx, query, hotelID).Scan(
		&rm.ID, &rm.Name, &rm.Location, &rm.City, &rm.PropertyType,
		&rm.StarRating, &rm.Description, &rm.Status, &rm.StartingPrice,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get hotel", err)
	}
	return &rm, nil
}

func (r *HotelReadStore) ListActive(ctx context.Context) ([]readmodel.HotelRM, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels WHERE status = 'ACTIVE' ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotels", err)
	}
	defer rows.Close()

	list := make([]readmodel.HotelRM, 0)
	for rows.Next() {
		var rm readmodel.HotelRM
		err := rows.Scan(
			&rm.ID, &rm.Name, &rm.Location, &rm.City, &rm.PropertyType,
			&rm.StarRating, &rm.Description, &rm.Status, &rm.StartingPrice,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan hotel row", err)
		}
		list = append(list, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate hotel rows", err)
	}
	return list, nil
}
