package usecase

import (
	"context"
	"errors"

	"hotelhub/internal/domain/roomtype"
	reqdto "hotelhub/internal/handler/dto/request"
	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/readmodel"
	"hotelhub/internal/usecase/shared"
)

var (
	ErrRoomTypeInUse = errors.New("room type has booking history")
)

type RoomTypeViews interface {
	GetByID(ctx context.Context, roomTypeID int64) (*readmodel.RoomTypeRM, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]readmodel.RoomTypeRM, error)
}

type RoomTypeUseCase interface {
	CreateRoomType(ctx context.Context, req reqdto.CreateRoomTypeRequest) (*readmodel.RoomTypeRM, error)
	UpdateRoomType(ctx context.Context, roomTypeID int64, req reqdto.UpdateRoomTypeRequest) (*readmodel.RoomTypeRM, error)
	DeleteRoomType(ctx context.Context, roomTypeID int64) error
	SetRoomAvailability(ctx context.Context, roomTypeID int64, available bool) error
	GetRoomType(ctx context.Context, roomTypeID int64) (*readmodel.RoomTypeRM, error)
	GetHotelRoomTypes(ctx context.Context, hotelID int64) ([]readmodel.RoomTypeRM, error)
}

type roomTypeUseCaseImpl struct {
	uow   shared.UnitOfWork
	views RoomTypeViews
}

func NewRoomTypeUseCase(uow shared.UnitOfWork, views RoomTypeViews) RoomTypeUseCase {
	return &roomTypeUseCaseImpl{uow: uow, views: views}
}

func (u *roomTypeUseCaseImpl) CreateRoomType(ctx context.Context, req reqdto.CreateRoomTypeRequest) (*readmodel.RoomTypeRM, error) {
	rt, err := roomtype.NewRoomType(req.HotelID, req.Name, req.BasePrice, req.SpecialPrice, req.RoomSize)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	var id int64
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.RoomTypes().Create(ctx, rt)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrHotelNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.views.GetByID(ctx, id)
}

func (u *roomTypeUseCaseImpl) UpdateRoomType(ctx context.Context, roomTypeID int64, req reqdto.UpdateRoomTypeRequest) (*readmodel.RoomTypeRM, error) {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Inventory().AcquireForUpdate(ctx, roomTypeID)
		if err != nil {
			return translateInventoryErr(err)
		}

		rt := roomtype.ReconstructRoomType(
			snap.ID, snap.HotelID, req.Name, req.BasePrice, req.SpecialPrice,
			req.RoomSize, roomtype.AvailabilityFor(snap.Available),
		)
		if err := tx.RoomTypes().Update(ctx, rt); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.views.GetByID(ctx, roomTypeID)
}

// DeleteRoomType refuses to remove a room type any booking has ever
// referenced, cancelled ones included; history must stay resolvable. The
// existence check and the delete run in one transaction, and a booking that
// sneaks in between them trips the foreign key, which is reported the same
// way as the guard itself.
func (u *roomTypeUseCaseImpl) DeleteRoomType(ctx context.Context, roomTypeID int64) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().RoomTypeByID(ctx, roomTypeID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomTypeNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		referenced, err := tx.Reads().AnyBookingForRoomType(ctx, roomTypeID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if referenced {
			return ErrRoomTypeInUse
		}

		if err := tx.RoomTypes().Delete(ctx, roomTypeID); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrRoomTypeInUse
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// SetRoomAvailability is the manual override. It still goes through the row
// lock so it serializes with in-flight bookings and cancellations.
func (u *roomTypeUseCaseImpl) SetRoomAvailability(ctx context.Context, roomTypeID int64, available bool) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Inventory().AcquireForUpdate(ctx, roomTypeID); err != nil {
			return translateInventoryErr(err)
		}
		if err := tx.Inventory().SetAvailability(ctx, roomTypeID, available); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (u *roomTypeUseCaseImpl) GetRoomType(ctx context.Context, roomTypeID int64) (*readmodel.RoomTypeRM, error) {
	rm, err := u.views.GetByID(ctx, roomTypeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, errs.Wrap(err, "failed to get room type")
	}
	return rm, nil
}

func (u *roomTypeUseCaseImpl) GetHotelRoomTypes(ctx context.Context, hotelID int64) ([]readmodel.RoomTypeRM, error) {
	list, err := u.views.ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list room types")
	}
	return list, nil
}
