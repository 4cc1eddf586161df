package usecase

import (
	"context"
	"errors"

	"hotelhub/internal/domain/hotel"
	reqdto "hotelhub/internal/handler/dto/request"
	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/readmodel"
	"hotelhub/internal/usecase/shared"
)

var (
	ErrHotelNotFound = errors.New("hotel not found")
	ErrHotelInUse    = errors.New("hotel still has room types")
)

type HotelViews interface {
	GetByID(ctx context.Context, hotelID int64) (*readmodel.HotelRM, error)
	ListActive(ctx context.Context) ([]readmodel.HotelRM, error)
}

type HotelUseCase interface {
	CreateHotel(ctx context.Context, req reqdto.CreateHotelRequest) (*readmodel.HotelRM, error)
	UpdateHotel(ctx context.Context, hotelID int64, req reqdto.UpdateHotelRequest) (*readmodel.HotelRM, error)
	DeleteHotel(ctx context.Context, hotelID int64) error
	GetHotel(ctx context.Context, hotelID int64) (*readmodel.HotelRM, error)
	ListHotels(ctx context.Context) ([]readmodel.HotelRM, error)
}

type hotelUseCaseImpl struct {
	uow   shared.UnitOfWork
	views HotelViews
}

func NewHotelUseCase(uow shared.UnitOfWork, views HotelViews) HotelUseCase {
	return &hotelUseCaseImpl{uow: uow, views: views}
}

func (u *hotelUseCaseImpl) CreateHotel(ctx context.Context, req reqdto.CreateHotelRequest) (*readmodel.HotelRM, error) {
	h, err := hotel.NewHotel(req.Name, req.Location, req.City, req.PropertyType, req.StarRating, req.Description, req.StartingPrice)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	var id int64
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Hotels().Create(ctx, h)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.views.GetByID(ctx, id)
}

func (u *hotelUseCaseImpl) UpdateHotel(ctx context.Context, hotelID int64, req reqdto.UpdateHotelRequest) (*readmodel.HotelRM, error) {
	h := hotel.ReconstructHotel(
		hotelID, req.Name, req.Location, req.City, req.PropertyType,
		req.StarRating, req.Description, hotel.Status(req.Status), req.StartingPrice,
	)

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Hotels().Update(ctx, h); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrHotelNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.views.GetByID(ctx, hotelID)
}

func (u *hotelUseCaseImpl) DeleteHotel(ctx context.Context, hotelID int64) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Hotels().Delete(ctx, hotelID); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return ErrHotelNotFound
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				return ErrHotelInUse
			default:
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
}

func (u *hotelUseCaseImpl) GetHotel(ctx context.Context, hotelID int64) (*readmodel.HotelRM, error) {
	rm, err := u.views.GetByID(ctx, hotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, errs.Wrap(err, "failed to get hotel")
	}
	return rm, nil
}

func (u *hotelUseCaseImpl) ListHotels(ctx context.Context) ([]readmodel.HotelRM, error) {
	list, err := u.views.ListActive(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list hotels")
	}
	return list, nil
}
