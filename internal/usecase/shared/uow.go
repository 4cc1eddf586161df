package shared

import (
	"context"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/domain/hotel"
	"hotelhub/internal/domain/roomtype"
	infradb "hotelhub/internal/infra/db"
)

type UnitOfWork interface {
	// Within: full transaction with retry on serialization failures. The
	// callback may run more than once and must not carry external side
	// effects of its own.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinOnce: single-attempt transaction for flows that already performed
	// a non-repeatable external effect (payment capture).
	WithinOnce(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db infradb.DBTX) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Inventory() InventoryRepository
	RoomTypes() RoomTypeRepository
	Hotels() HotelRepository
	Reads() CommandReads
	DB() infradb.DBTX
}

// InventoryRepository is the sole authority over a room type's availability
// flag. AcquireForUpdate blocks concurrent acquirers for the same id until
// the enclosing unit of work commits or aborts; every availability read on a
// mutation path starts with it.
type InventoryRepository interface {
	AcquireForUpdate(ctx context.Context, roomTypeID int64) (*RoomTypeSnapshot, error)
	SetAvailability(ctx context.Context, roomTypeID int64, available bool) error
	CountActiveBookings(ctx context.Context, roomTypeID int64) (int64, error)
}

type BookingRepository interface {
	// Create persists the booking and, when attached, its payment snapshot
	// in the current transaction. Returns the assigned id.
	Create(ctx context.Context, b *booking.Booking) (int64, error)
	SetStatus(ctx context.Context, bookingID int64, status booking.Status) error
}

type RoomTypeRepository interface {
	Create(ctx context.Context, rt *roomtype.RoomType) (int64, error)
	Update(ctx context.Context, rt *roomtype.RoomType) error
	Delete(ctx context.Context, roomTypeID int64) error
}

type HotelRepository interface {
	Create(ctx context.Context, h *hotel.Hotel) (int64, error)
	Update(ctx context.Context, h *hotel.Hotel) error
	Delete(ctx context.Context, hotelID int64) error
}

// CommandReads are the minimal lookups command flows need for validation.
type CommandReads interface {
	UserExists(ctx context.Context, userID int64) (bool, error)
	RoomTypeByID(ctx context.Context, roomTypeID int64) (*RoomTypeSnapshot, error)
	// ResolveRoomTypeID finds a room type by (hotelID, name) first, then by
	// name alone, both case-insensitive. hotelID may be nil.
	ResolveRoomTypeID(ctx context.Context, hotelID *int64, name string) (int64, error)
	BookingByID(ctx context.Context, bookingID int64) (*BookingSnapshot, error)
	AnyBookingForRoomType(ctx context.Context, roomTypeID int64) (bool, error)
}
