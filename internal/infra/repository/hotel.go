package repository

import (
	"context"

	"hotelhub/internal/domain/hotel"
	"hotelhub/internal/infra"
	infradb "hotelhub/internal/infra/db"
)

type HotelRepository struct {
	db infradb.DBTX
}

func NewHotelRepository(db infradb.DBTX) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) Create(ctx context.Context, h *hotel.Hotel) (int64, error) {
	const query = `
		INSERT INTO hotels (name, location, city, property_type, star_rating, description, status, starting_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		h.Name(), h.Location(), h.City(), h.PropertyType(),
		h.StarRating(), h.Description(), string(h.Status()), h.StartingPrice(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create hotel", err)
	}
	return id, nil
}

func (r *HotelRepository) Update(ctx context.Context, h *hotel.Hotel) error {
	const query = `
		UPDATE hotels
		SET name = $2, location = $3, city = $4, property_type = $5,
		    star_rating = $6, description = $7, status = $8, starting_price = $9,
		    updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		h.ID(), h.Name(), h.Location(), h.City(), h.PropertyType(),
		h.StarRating(), h.Description(), string(h.Status()), h.StartingPrice(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update hotel", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *HotelRepository) Delete(ctx context.Context, hotelID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM hotels WHERE id = $1`, hotelID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete hotel", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}
	return nil
}
