package usecase

import (
	"context"
	"errors"
	"log/slog"

	"hotelhub/internal/domain/booking"
	reqdto "hotelhub/internal/handler/dto/request"
	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/clock"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/readmodel"
	"hotelhub/internal/usecase/shared"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrRoomTypeNotFound = errors.New("room type not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrRoomNotAvailable = errors.New("room type is not available")
	ErrInvalidDates     = errors.New("invalid stay dates")
	ErrRoomTypeRequired = errors.New("room type id or room name required")
	ErrUserRequired     = errors.New("user id required")
	ErrPaymentRequired  = errors.New("payment details required")
	ErrPaymentFailed    = errors.New("payment was declined")
	ErrLockNotAcquired  = errors.New("room type is locked by another request")

	// Error markers for categorization
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// BookingViews serves the read side after commands commit.
type BookingViews interface {
	GetByID(ctx context.Context, bookingID int64) (*readmodel.BookingRM, error)
	ListByUser(ctx context.Context, userID int64) ([]readmodel.BookingListRM, error)
	ListAll(ctx context.Context) ([]readmodel.BookingListRM, error)
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*readmodel.BookingRM, error)
	CreateBookingWithPayment(ctx context.Context, req reqdto.ProcessBookingRequest) (*readmodel.BookingRM, error)
	CancelBooking(ctx context.Context, bookingID int64) (*readmodel.BookingRM, error)
	GetBooking(ctx context.Context, bookingID int64) (*readmodel.BookingRM, error)
	GetUserBookings(ctx context.Context, userID int64) ([]readmodel.BookingListRM, error)
	ListBookings(ctx context.Context) ([]readmodel.BookingListRM, error)
}

type bookingUseCaseImpl struct {
	uow       shared.UnitOfWork
	views     BookingViews
	gateway   PaymentGateway
	publisher EventPublisher
	clock     clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	views BookingViews,
	gateway PaymentGateway,
	publisher EventPublisher,
	clock clock.Clock,
) BookingUseCase {
	return &bookingUseCaseImpl{
		uow:       uow,
		views:     views,
		gateway:   gateway,
		publisher: publisher,
		clock:     clock,
	}
}

// CreateBooking books a room type and flips it unavailable in one
// transaction. The row lock taken by AcquireForUpdate serializes concurrent
// requests for the same room type, so the availability check and the flip
// cannot interleave with another booking.
func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*readmodel.BookingRM, error) {
	stay, err := req.ToStayPeriod()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDates)
	}

	var bookingID int64
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Inventory().AcquireForUpdate(ctx, req.RoomTypeID)
		if err != nil {
			return translateInventoryErr(err)
		}

		exists, err := tx.Reads().UserExists(ctx, req.UserID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !exists {
			return ErrUserNotFound
		}

		if !snap.Available {
			return ErrRoomNotAvailable
		}

		totalPrice := snap.NightlyRate() * float64(stay.Nights())
		b, err := booking.NewBooking(req.UserID, req.RoomTypeID, stay, req.Guests, totalPrice)
		if err != nil {
			return errs.Mark(err, ErrDomainValidationFailed)
		}

		bookingID, err = tx.Bookings().Create(ctx, b)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Inventory().SetAvailability(ctx, req.RoomTypeID, false); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	rm, err := u.views.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.publish(ctx, EventBookingConfirmed, rm)
	return rm, nil
}

// CreateBookingWithPayment charges first, writes second. The room-type row
// lock is taken before the charge so no competing booking can slip in
// between capture and commit. The transaction runs once, never retried: a
// retry would double-charge. If the write fails after a successful capture
// the charge is voided before the error is returned.
func (u *bookingUseCaseImpl) CreateBookingWithPayment(ctx context.Context, req reqdto.ProcessBookingRequest) (*readmodel.BookingRM, error) {
	stay, err := req.ToStayPeriod()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDates)
	}
	if req.UserID == nil {
		return nil, ErrUserRequired
	}
	if req.Payment == nil {
		return nil, ErrPaymentRequired
	}

	var (
		bookingID         int64
		capturedPaymentID string
	)
	err = u.uow.WithinOnce(ctx, func(ctx context.Context, tx shared.Tx) error {
		roomTypeID, err := u.resolveRoomType(ctx, tx, req)
		if err != nil {
			return err
		}

		snap, err := tx.Inventory().AcquireForUpdate(ctx, roomTypeID)
		if err != nil {
			return translateInventoryErr(err)
		}

		exists, err := tx.Reads().UserExists(ctx, *req.UserID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !exists {
			return ErrUserNotFound
		}

		if !snap.Available {
			return ErrRoomNotAvailable
		}

		totalPrice := snap.NightlyRate() * float64(stay.Nights())
		if req.TotalPrice != nil {
			totalPrice = *req.TotalPrice
		}

		b, err := booking.NewBooking(*req.UserID, roomTypeID, stay, req.GetGuests(), totalPrice)
		if err != nil {
			return errs.Mark(err, ErrDomainValidationFailed)
		}

		details := PaymentDetails{
			Method:   req.Payment.Method,
			Token:    req.Payment.Token,
			CardName: req.Payment.CardName,
		}
		result, err := u.gateway.ProcessPayment(ctx, details, totalPrice)
		if err != nil {
			return errs.Mark(err, ErrPaymentFailed)
		}
		if !result.Succeeded() {
			return errs.Mark(errs.New(result.Message), ErrPaymentFailed)
		}
		capturedPaymentID = result.PaymentID

		record := booking.NewPaymentRecord(
			result.PaymentID, result.Provider, result.Method, result.Status,
			totalPrice, result.Currency, result.CardLast4, result.CardBrand,
			u.clock.Now(),
		)
		if err := b.AttachPayment(record); err != nil {
			return errs.Mark(err, ErrDomainValidationFailed)
		}

		bookingID, err = tx.Bookings().Create(ctx, b)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Inventory().SetAvailability(ctx, roomTypeID, false); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		if capturedPaymentID != "" {
			u.voidCapture(ctx, capturedPaymentID)
		}
		return nil, err
	}

	rm, err := u.views.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.publish(ctx, EventBookingConfirmed, rm)
	return rm, nil
}

// CancelBooking is idempotent: cancelling a cancelled booking changes
// nothing and returns the current view. The room type is re-locked so the recount of active
// bookings and the availability restore cannot race a concurrent create.
func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID int64) (*readmodel.BookingRM, error) {
	var freshlyCancelled bool
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		freshlyCancelled = false

		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if snap.Status == booking.StatusCancelled.String() {
			return nil
		}

		if _, err := tx.Inventory().AcquireForUpdate(ctx, snap.RoomTypeID); err != nil {
			return translateInventoryErr(err)
		}

		if err := tx.Bookings().SetStatus(ctx, bookingID, booking.StatusCancelled); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		active, err := tx.Inventory().CountActiveBookings(ctx, snap.RoomTypeID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if active == 0 {
			if err := tx.Inventory().SetAvailability(ctx, snap.RoomTypeID, true); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		freshlyCancelled = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	rm, err := u.views.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if freshlyCancelled {
		u.publish(ctx, EventBookingCancelled, rm)
	}
	return rm, nil
}

func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, bookingID int64) (*readmodel.BookingRM, error) {
	rm, err := u.views.GetByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to get booking")
	}
	return rm, nil
}

func (u *bookingUseCaseImpl) GetUserBookings(ctx context.Context, userID int64) ([]readmodel.BookingListRM, error) {
	list, err := u.views.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list user bookings")
	}
	return list, nil
}

func (u *bookingUseCaseImpl) ListBookings(ctx context.Context) ([]readmodel.BookingListRM, error) {
	list, err := u.views.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}
	return list, nil
}

func (u *bookingUseCaseImpl) resolveRoomType(ctx context.Context, tx shared.Tx, req reqdto.ProcessBookingRequest) (int64, error) {
	if req.RoomTypeID != nil {
		return *req.RoomTypeID, nil
	}
	name := req.GetRoomName()
	if name == nil {
		return 0, ErrRoomTypeRequired
	}

	id, err := tx.Reads().ResolveRoomTypeID(ctx, req.HotelID, *name)
	if err != nil {
		// A name that resolves to nothing is a caller mistake, not a missing
		// resource.
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, errs.Mark(errs.Newf("no room type matches name %q", *name), ErrRoomTypeRequired)
		}
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (u *bookingUseCaseImpl) voidCapture(ctx context.Context, paymentID string) {
	if err := u.gateway.VoidPayment(ctx, paymentID); err != nil {
		slog.ErrorContext(ctx, "failed to void orphaned payment capture",
			slog.String("payment_id", paymentID),
			slog.Any("error", err),
		)
	}
}

func (u *bookingUseCaseImpl) publish(ctx context.Context, eventType string, rm *readmodel.BookingRM) {
	event := BookingEvent{
		Type:       eventType,
		BookingID:  rm.ID,
		UserID:     rm.UserID,
		RoomTypeID: rm.RoomTypeID,
		TotalPrice: rm.TotalPrice,
		OccurredAt: u.clock.Now(),
	}
	if err := u.publisher.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish booking event",
			slog.String("type", eventType),
			slog.Int64("booking_id", rm.ID),
			slog.Any("error", err),
		)
	}
}

func translateInventoryErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return ErrRoomTypeNotFound
	case infra.IsKind(err, infra.KindLockTimeout):
		return ErrLockNotAcquired
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
