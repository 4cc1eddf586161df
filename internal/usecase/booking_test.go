//go:build unit

package usecase_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/domain/roomtype"
	reqdto "hotelhub/internal/handler/dto/request"
	"hotelhub/internal/infra"
	infradb "hotelhub/internal/infra/db"
	"hotelhub/internal/pkg/clock"
	"hotelhub/internal/usecase"
	"hotelhub/internal/usecase/readmodel"
	"hotelhub/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory store backing the fake unit of work. AcquireForUpdate takes a
// per-room mutex held until the enclosing transaction ends, mirroring the
// row-lock semantics of SELECT FOR UPDATE.

type storedBooking struct {
	id         int64
	userID     int64
	roomTypeID int64
	checkIn    time.Time
	checkOut   time.Time
	guests     int
	totalPrice float64
	status     booking.Status
	payment    *booking.PaymentRecord
}

type fakeStore struct {
	mu        sync.Mutex
	roomLocks map[int64]*sync.Mutex
	rooms     map[int64]*shared.RoomTypeSnapshot
	users     map[int64]bool
	bookings  map[int64]*storedBooking
	nextID    int64

	failBookingCreate bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		roomLocks: make(map[int64]*sync.Mutex),
		rooms:     make(map[int64]*shared.RoomTypeSnapshot),
		users:     make(map[int64]bool),
		bookings:  make(map[int64]*storedBooking),
		nextID:    1,
	}
}

func (s *fakeStore) addRoom(id, hotelID int64, name string, basePrice float64, specialPrice *float64, available bool) {
	s.rooms[id] = &shared.RoomTypeSnapshot{
		ID: id, HotelID: hotelID, Name: name,
		BasePrice: basePrice, SpecialPrice: specialPrice, Available: available,
	}
	s.roomLocks[id] = &sync.Mutex{}
}

func (s *fakeStore) allocID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	return id
}

type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, fn)
}

func (u *fakeUoW) WithinOnce(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, fn)
}

func (u *fakeUoW) WithDB(context.Context, func(context.Context, infradb.DBTX) error) error {
	panic("not used")
}

func (u *fakeUoW) run(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &fakeTx{store: u.store}
	defer tx.releaseLocks()
	return fn(ctx, tx)
}

type fakeTx struct {
	store *fakeStore
	held  []*sync.Mutex
}

func (t *fakeTx) releaseLocks() {
	for _, m := range t.held {
		m.Unlock()
	}
	t.held = nil
}

func (t *fakeTx) Bookings() shared.BookingRepository    { return (*fakeBookingRepo)(t) }
func (t *fakeTx) Inventory() shared.InventoryRepository { return (*fakeInventoryRepo)(t) }
func (t *fakeTx) RoomTypes() shared.RoomTypeRepository  { return (*fakeRoomTypeRepo)(t) }
func (t *fakeTx) Hotels() shared.HotelRepository        { panic("not used") }
func (t *fakeTx) Reads() shared.CommandReads            { return (*fakeReads)(t) }
func (t *fakeTx) DB() infradb.DBTX                      { return nil }

type fakeInventoryRepo fakeTx

func (r *fakeInventoryRepo) AcquireForUpdate(_ context.Context, roomTypeID int64) (*shared.RoomTypeSnapshot, error) {
	r.store.mu.Lock()
	lock, ok := r.store.roomLocks[roomTypeID]
	r.store.mu.Unlock()
	if !ok {
		return nil, infra.WrapRepoErr("room type not found", nil, infra.KindNotFound)
	}

	lock.Lock()
	r.held = append(r.held, lock)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	snap := *r.store.rooms[roomTypeID]
	return &snap, nil
}

func (r *fakeInventoryRepo) SetAvailability(_ context.Context, roomTypeID int64, available bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.rooms[roomTypeID].Available = available
	return nil
}

func (r *fakeInventoryRepo) CountActiveBookings(_ context.Context, roomTypeID int64) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var n int64
	for _, b := range r.store.bookings {
		if b.roomTypeID == roomTypeID && b.status != booking.StatusCancelled {
			n++
		}
	}
	return n, nil
}

type fakeBookingRepo fakeTx

func (r *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) (int64, error) {
	if r.store.failBookingCreate {
		return 0, infra.WrapRepoErr("insert failed", nil, infra.KindDBFailure)
	}
	id := r.store.allocID()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.bookings[id] = &storedBooking{
		id:         id,
		userID:     b.UserID(),
		roomTypeID: b.RoomTypeID(),
		checkIn:    b.Stay().CheckIn(),
		checkOut:   b.Stay().CheckOut(),
		guests:     b.Guests(),
		totalPrice: b.TotalPrice(),
		status:     b.Status(),
		payment:    b.Payment(),
	}
	return id, nil
}

func (r *fakeBookingRepo) SetStatus(_ context.Context, bookingID int64, status booking.Status) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.bookings[bookingID].status = status
	return nil
}

type fakeRoomTypeRepo fakeTx

func (r *fakeRoomTypeRepo) Create(_ context.Context, rt *roomtype.RoomType) (int64, error) {
	id := r.store.allocID()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.rooms[id] = &shared.RoomTypeSnapshot{
		ID: id, HotelID: rt.HotelID(), Name: rt.Name(),
		BasePrice: rt.BasePrice(), SpecialPrice: rt.SpecialPrice(),
		Available: rt.Availability() == roomtype.Available,
	}
	r.store.roomLocks[id] = &sync.Mutex{}
	return id, nil
}

func (r *fakeRoomTypeRepo) Update(_ context.Context, rt *roomtype.RoomType) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	snap, ok := r.store.rooms[rt.ID()]
	if !ok {
		return infra.WrapRepoErr("room type not found", nil, infra.KindNotFound)
	}
	snap.Name = rt.Name()
	snap.BasePrice = rt.BasePrice()
	snap.SpecialPrice = rt.SpecialPrice()
	snap.Available = rt.Availability() == roomtype.Available
	return nil
}

func (r *fakeRoomTypeRepo) Delete(_ context.Context, roomTypeID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, b := range r.store.bookings {
		if b.roomTypeID == roomTypeID {
			return infra.WrapRepoErr("room type is referenced", nil, infra.KindForeignKeyViolated)
		}
	}
	delete(r.store.rooms, roomTypeID)
	delete(r.store.roomLocks, roomTypeID)
	return nil
}

type fakeReads fakeTx

func (r *fakeReads) UserExists(_ context.Context, userID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.users[userID], nil
}

func (r *fakeReads) RoomTypeByID(_ context.Context, roomTypeID int64) (*shared.RoomTypeSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	snap, ok := r.store.rooms[roomTypeID]
	if !ok {
		return nil, infra.WrapRepoErr("room type not found", nil, infra.KindNotFound)
	}
	cp := *snap
	return &cp, nil
}

func (r *fakeReads) ResolveRoomTypeID(_ context.Context, hotelID *int64, name string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	best := int64(0)
	if hotelID != nil {
		for _, snap := range r.store.rooms {
			if snap.HotelID == *hotelID && strings.EqualFold(snap.Name, name) {
				if best == 0 || snap.ID < best {
					best = snap.ID
				}
			}
		}
		if best != 0 {
			return best, nil
		}
	}
	for _, snap := range r.store.rooms {
		if strings.EqualFold(snap.Name, name) {
			if best == 0 || snap.ID < best {
				best = snap.ID
			}
		}
	}
	if best == 0 {
		return 0, infra.WrapRepoErr("room type not found by name", nil, infra.KindNotFound)
	}
	return best, nil
}

func (r *fakeReads) BookingByID(_ context.Context, bookingID int64) (*shared.BookingSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	b, ok := r.store.bookings[bookingID]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return &shared.BookingSnapshot{
		ID: b.id, UserID: b.userID, RoomTypeID: b.roomTypeID, Status: b.status.String(),
	}, nil
}

func (r *fakeReads) AnyBookingForRoomType(_ context.Context, roomTypeID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, b := range r.store.bookings {
		if b.roomTypeID == roomTypeID {
			return true, nil
		}
	}
	return false, nil
}

type fakeViews struct {
	store *fakeStore
}

func (v *fakeViews) GetByID(_ context.Context, bookingID int64) (*readmodel.BookingRM, error) {
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	b, ok := v.store.bookings[bookingID]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	rm := &readmodel.BookingRM{
		ID:         b.id,
		UserID:     b.userID,
		RoomTypeID: b.roomTypeID,
		RoomName:   v.store.rooms[b.roomTypeID].Name,
		CheckIn:    b.checkIn,
		CheckOut:   b.checkOut,
		Guests:     b.guests,
		TotalPrice: b.totalPrice,
		Status:     b.status.String(),
	}
	if b.payment != nil {
		rm.Payment = &readmodel.PaymentRM{
			ProviderPaymentID: b.payment.ProviderPaymentID,
			Provider:          b.payment.Provider,
			Method:            b.payment.Method,
			Status:            b.payment.Status,
			Amount:            b.payment.Amount,
			Currency:          b.payment.Currency,
		}
	}
	return rm, nil
}

func (v *fakeViews) ListByUser(_ context.Context, userID int64) ([]readmodel.BookingListRM, error) {
	return nil, nil
}

func (v *fakeViews) ListAll(context.Context) ([]readmodel.BookingListRM, error) {
	return nil, nil
}

type fakeGateway struct {
	mu       sync.Mutex
	status   string
	err      error
	captured []float64
	voided   []string
}

func (g *fakeGateway) ProcessPayment(_ context.Context, details usecase.PaymentDetails, amount float64) (*usecase.PaymentResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return nil, g.err
	}
	status := g.status
	if status == "" {
		status = usecase.PaymentStatusSuccess
	}
	g.captured = append(g.captured, amount)
	return &usecase.PaymentResult{
		PaymentID: "DEMO-test",
		Status:    status,
		Provider:  "demo",
		Method:    details.Method,
		CardLast4: "4242",
		CardBrand: "visa",
		Currency:  "USD",
	}, nil
}

func (g *fakeGateway) VoidPayment(_ context.Context, paymentID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.voided = append(g.voided, paymentID)
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []usecase.BookingEvent
}

func (p *fakePublisher) Publish(_ context.Context, event usecase.BookingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *fakePublisher) eventTypes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, len(p.events))
	for i, e := range p.events {
		types[i] = e.Type
	}
	return types
}

type bookingFixture struct {
	store     *fakeStore
	gateway   *fakeGateway
	publisher *fakePublisher
	uc        usecase.BookingUseCase
}

func newBookingFixture() *bookingFixture {
	store := newFakeStore()
	store.users[1] = true
	store.addRoom(10, 100, "Deluxe King", 100, nil, true)

	gateway := &fakeGateway{}
	publisher := &fakePublisher{}
	uc := usecase.NewBookingUseCase(
		&fakeUoW{store: store},
		&fakeViews{store: store},
		gateway,
		publisher,
		clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
	)
	return &bookingFixture{store: store, gateway: gateway, publisher: publisher, uc: uc}
}

func createReq() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		UserID:     1,
		RoomTypeID: 10,
		CheckIn:    "2026-03-10",
		CheckOut:   "2026-03-13",
		Guests:     2,
	}
}

func TestCreateBooking(t *testing.T) {
	t.Run("books and flips room unavailable", func(t *testing.T) {
		f := newBookingFixture()

		rm, err := f.uc.CreateBooking(context.Background(), createReq())
		require.NoError(t, err)

		assert.Equal(t, 300.0, rm.TotalPrice)
		assert.Equal(t, booking.StatusConfirmed.String(), rm.Status)
		assert.False(t, f.store.rooms[10].Available)
		assert.Equal(t, []string{usecase.EventBookingConfirmed}, f.publisher.eventTypes())
	})

	t.Run("special price overrides base", func(t *testing.T) {
		f := newBookingFixture()
		special := 80.0
		f.store.rooms[10].SpecialPrice = &special

		rm, err := f.uc.CreateBooking(context.Background(), createReq())
		require.NoError(t, err)
		assert.Equal(t, 240.0, rm.TotalPrice)
	})

	t.Run("unavailable room is rejected", func(t *testing.T) {
		f := newBookingFixture()
		f.store.rooms[10].Available = false

		_, err := f.uc.CreateBooking(context.Background(), createReq())
		assert.ErrorIs(t, err, usecase.ErrRoomNotAvailable)
		assert.Empty(t, f.publisher.eventTypes())
	})

	t.Run("unknown room type", func(t *testing.T) {
		f := newBookingFixture()
		req := createReq()
		req.RoomTypeID = 99

		_, err := f.uc.CreateBooking(context.Background(), req)
		assert.ErrorIs(t, err, usecase.ErrRoomTypeNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newBookingFixture()
		req := createReq()
		req.UserID = 99

		_, err := f.uc.CreateBooking(context.Background(), req)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("zero-night stay is rejected", func(t *testing.T) {
		f := newBookingFixture()
		req := createReq()
		req.CheckOut = req.CheckIn

		_, err := f.uc.CreateBooking(context.Background(), req)
		assert.ErrorIs(t, err, usecase.ErrInvalidDates)
	})

	t.Run("concurrent requests for one room admit exactly one", func(t *testing.T) {
		f := newBookingFixture()
		f.store.users[2] = true

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				req := createReq()
				req.UserID = int64(i + 1)
				_, errs[i] = f.uc.CreateBooking(context.Background(), req)
			}(i)
		}
		wg.Wait()

		var succeeded, rejected int
		for _, err := range errs {
			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, usecase.ErrRoomNotAvailable):
				rejected++
			}
		}
		assert.Equal(t, 1, succeeded)
		assert.Equal(t, 1, rejected)
		assert.Len(t, f.store.bookings, 1)
		assert.False(t, f.store.rooms[10].Available)
	})
}

func processReq() reqdto.ProcessBookingRequest {
	userID := int64(1)
	roomTypeID := int64(10)
	return reqdto.ProcessBookingRequest{
		UserID:     &userID,
		RoomTypeID: &roomTypeID,
		CheckIn:    "2026-03-10",
		CheckOut:   "2026-03-13",
		Payment: &reqdto.PaymentDetailsRequest{
			Method: "card",
			Token:  "tok_4242424242424242",
		},
	}
}

func TestCreateBookingWithPayment(t *testing.T) {
	t.Run("charges the computed price and attaches the payment", func(t *testing.T) {
		f := newBookingFixture()

		rm, err := f.uc.CreateBookingWithPayment(context.Background(), processReq())
		require.NoError(t, err)

		assert.Equal(t, 300.0, rm.TotalPrice)
		assert.Equal(t, 1, rm.Guests)
		require.NotNil(t, rm.Payment)
		assert.Equal(t, "DEMO-test", rm.Payment.ProviderPaymentID)
		assert.Equal(t, "USD", rm.Payment.Currency)
		assert.Equal(t, []float64{300}, f.gateway.captured)
		assert.False(t, f.store.rooms[10].Available)
	})

	t.Run("explicit total price overrides computation", func(t *testing.T) {
		f := newBookingFixture()
		req := processReq()
		override := 250.0
		req.TotalPrice = &override

		rm, err := f.uc.CreateBookingWithPayment(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 250.0, rm.TotalPrice)
		assert.Equal(t, []float64{250}, f.gateway.captured)
	})

	t.Run("resolves room by hotel and name case-insensitively", func(t *testing.T) {
		f := newBookingFixture()
		f.store.addRoom(11, 200, "Deluxe King", 500, nil, true)

		req := processReq()
		req.RoomTypeID = nil
		hotelID := int64(200)
		name := "deluxe king"
		req.HotelID = &hotelID
		req.RoomName = &name

		rm, err := f.uc.CreateBookingWithPayment(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, int64(11), rm.RoomTypeID)
	})

	t.Run("falls back to name-only resolution", func(t *testing.T) {
		f := newBookingFixture()
		req := processReq()
		req.RoomTypeID = nil
		hotelID := int64(999)
		name := "DELUXE KING"
		req.HotelID = &hotelID
		req.RoomName = &name

		rm, err := f.uc.CreateBookingWithPayment(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, int64(10), rm.RoomTypeID)
	})

	t.Run("unresolvable room name is a validation failure", func(t *testing.T) {
		f := newBookingFixture()
		req := processReq()
		req.RoomTypeID = nil
		name := "Presidential Suite"
		req.RoomName = &name

		_, err := f.uc.CreateBookingWithPayment(context.Background(), req)
		assert.ErrorIs(t, err, usecase.ErrRoomTypeRequired)
		assert.Empty(t, f.gateway.captured)
	})

	t.Run("neither id nor name", func(t *testing.T) {
		f := newBookingFixture()
		req := processReq()
		req.RoomTypeID = nil

		_, err := f.uc.CreateBookingWithPayment(context.Background(), req)
		assert.ErrorIs(t, err, usecase.ErrRoomTypeRequired)
	})

	t.Run("declined payment leaves no booking behind", func(t *testing.T) {
		f := newBookingFixture()
		f.gateway.status = usecase.PaymentStatusFailed

		_, err := f.uc.CreateBookingWithPayment(context.Background(), processReq())
		assert.ErrorIs(t, err, usecase.ErrPaymentFailed)
		assert.Empty(t, f.store.bookings)
		assert.True(t, f.store.rooms[10].Available)
		assert.Empty(t, f.gateway.voided)
	})

	t.Run("write failure after capture voids the charge", func(t *testing.T) {
		f := newBookingFixture()
		f.store.failBookingCreate = true

		_, err := f.uc.CreateBookingWithPayment(context.Background(), processReq())
		require.Error(t, err)
		assert.Equal(t, []string{"DEMO-test"}, f.gateway.voided)
		assert.Empty(t, f.store.bookings)
	})

	t.Run("missing payment details", func(t *testing.T) {
		f := newBookingFixture()
		req := processReq()
		req.Payment = nil

		_, err := f.uc.CreateBookingWithPayment(context.Background(), req)
		assert.ErrorIs(t, err, usecase.ErrPaymentRequired)
	})
}

func TestCancelBooking(t *testing.T) {
	book := func(t *testing.T, f *bookingFixture) int64 {
		t.Helper()
		rm, err := f.uc.CreateBooking(context.Background(), createReq())
		require.NoError(t, err)
		return rm.ID
	}

	t.Run("cancelling the last active booking restores availability", func(t *testing.T) {
		f := newBookingFixture()
		id := book(t, f)

		rm, err := f.uc.CancelBooking(context.Background(), id)
		require.NoError(t, err)

		assert.Equal(t, booking.StatusCancelled.String(), rm.Status)
		assert.Equal(t, booking.StatusCancelled, f.store.bookings[id].status)
		assert.True(t, f.store.rooms[10].Available)
		assert.Equal(t,
			[]string{usecase.EventBookingConfirmed, usecase.EventBookingCancelled},
			f.publisher.eventTypes())
	})

	t.Run("cancel is idempotent and keeps returning the view", func(t *testing.T) {
		f := newBookingFixture()
		id := book(t, f)

		_, err := f.uc.CancelBooking(context.Background(), id)
		require.NoError(t, err)
		rm, err := f.uc.CancelBooking(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled.String(), rm.Status)

		// The second cancel publishes nothing and recomputes nothing.
		assert.Equal(t,
			[]string{usecase.EventBookingConfirmed, usecase.EventBookingCancelled},
			f.publisher.eventTypes())
	})

	t.Run("availability stays off while another booking is active", func(t *testing.T) {
		f := newBookingFixture()
		id := book(t, f)

		// A second active booking for the same room, written directly: the
		// single-slot flow would refuse it, but cancel must still recount.
		otherID := f.store.allocID()
		f.store.bookings[otherID] = &storedBooking{
			id: otherID, userID: 1, roomTypeID: 10, status: booking.StatusConfirmed,
		}

		_, err := f.uc.CancelBooking(context.Background(), id)
		require.NoError(t, err)
		assert.False(t, f.store.rooms[10].Available)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newBookingFixture()
		_, err := f.uc.CancelBooking(context.Background(), 404)
		assert.ErrorIs(t, err, usecase.ErrBookingNotFound)
	})
}

// Compile-time checks that the fakes satisfy the ports.
var (
	_ shared.UnitOfWork      = (*fakeUoW)(nil)
	_ shared.Tx              = (*fakeTx)(nil)
	_ usecase.BookingViews   = (*fakeViews)(nil)
	_ usecase.PaymentGateway = (*fakeGateway)(nil)
	_ usecase.EventPublisher = (*fakePublisher)(nil)
)
