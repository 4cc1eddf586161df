//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotelhub/internal/handler/api"
	reqdto "hotelhub/internal/handler/dto/request"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase"
	"hotelhub/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// Scriptable stand-in for the booking use case. Each field overrides the
// corresponding method; nil fields return an empty success.
type stubBookingUseCase struct {
	createFn  func(ctx context.Context, req reqdto.CreateBookingRequest) (*readmodel.BookingRM, error)
	processFn func(ctx context.Context, req reqdto.ProcessBookingRequest) (*readmodel.BookingRM, error)
	cancelFn  func(ctx context.Context, bookingID int64) (*readmodel.BookingRM, error)
	getFn     func(ctx context.Context, bookingID int64) (*readmodel.BookingRM, error)
	listUser  func(ctx context.Context, userID int64) ([]readmodel.BookingListRM, error)

	gotUserID int64
}

func sampleBookingRM() *readmodel.BookingRM {
	return &readmodel.BookingRM{
		ID:         1,
		UserID:     1,
		RoomTypeID: 10,
		RoomName:   "Deluxe King",
		CheckIn:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
		Guests:     2,
		TotalPrice: 300,
		Status:     "CONFIRMED",
	}
}

func (s *stubBookingUseCase) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*readmodel.BookingRM, error) {
	if s.createFn != nil {
		return s.createFn(ctx, req)
	}
	return sampleBookingRM(), nil
}

func (s *stubBookingUseCase) CreateBookingWithPayment(ctx context.Context, req reqdto.ProcessBookingRequest) (*readmodel.BookingRM, error) {
	if s.processFn != nil {
		return s.processFn(ctx, req)
	}
	return sampleBookingRM(), nil
}

func (s *stubBookingUseCase) CancelBooking(ctx context.Context, bookingID int64) (*readmodel.BookingRM, error) {
	if s.cancelFn != nil {
		return s.cancelFn(ctx, bookingID)
	}
	rm := sampleBookingRM()
	rm.Status = "CANCELLED"
	return rm, nil
}

func (s *stubBookingUseCase) GetBooking(ctx context.Context, bookingID int64) (*readmodel.BookingRM, error) {
	if s.getFn != nil {
		return s.getFn(ctx, bookingID)
	}
	return sampleBookingRM(), nil
}

func (s *stubBookingUseCase) GetUserBookings(ctx context.Context, userID int64) ([]readmodel.BookingListRM, error) {
	s.gotUserID = userID
	if s.listUser != nil {
		return s.listUser(ctx, userID)
	}
	return []readmodel.BookingListRM{}, nil
}

func (s *stubBookingUseCase) ListBookings(ctx context.Context) ([]readmodel.BookingListRM, error) {
	return []readmodel.BookingListRM{}, nil
}

var _ usecase.BookingUseCase = (*stubBookingUseCase)(nil)

type BookingHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	stub   *stubBookingUseCase
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.stub = &stubBookingUseCase{}
	handler := api.NewBookingHandler(s.stub)

	// Stand-in for the auth middleware: every request runs as user 7.
	asUser := func(c *gin.Context) {
		c.Set("user_id", int64(7))
		c.Set("user_role", "customer")
		c.Next()
	}

	s.router.POST("/api/bookings", asUser, handler.CreateBooking)
	s.router.POST("/api/bookings/process", asUser, handler.ProcessBooking)
	s.router.GET("/api/bookings", asUser, handler.GetMyBookings)
	s.router.GET("/api/bookings/:id", asUser, handler.GetBooking)
	s.router.DELETE("/api/bookings/:id", asUser, handler.CancelBooking)
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) perform(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func validCreateBody() map[string]any {
	return map[string]any{
		"user_id":      1,
		"room_type_id": 10,
		"check_in":     "2026-03-10",
		"check_out":    "2026-03-13",
		"guests":       2,
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	s.Run("returns 201 with the booking view", func() {
		rec := s.perform(http.MethodPost, "/api/bookings", validCreateBody())
		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), `"total_price":300`)
	})

	s.Run("rejects malformed body", func() {
		rec := s.perform(http.MethodPost, "/api/bookings", map[string]any{"guests": 0})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("maps use case errors to status codes", func() {
		cases := []struct {
			name string
			err  error
			code int
		}{
			{"room type missing", usecase.ErrRoomTypeNotFound, http.StatusNotFound},
			{"user missing", usecase.ErrUserNotFound, http.StatusNotFound},
			{"room taken", usecase.ErrRoomNotAvailable, http.StatusConflict},
			{"row lock busy", usecase.ErrLockNotAcquired, http.StatusConflict},
			{"bad dates", usecase.ErrInvalidDates, http.StatusBadRequest},
			{"bad dates carried as a mark", errs.Mark(errs.New("zero-night stay"), usecase.ErrInvalidDates), http.StatusBadRequest},
			{"domain rejection", usecase.ErrDomainValidationFailed, http.StatusUnprocessableEntity},
			{"storage failure", usecase.ErrDatabaseOperationFailed, http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.stub.createFn = func(context.Context, reqdto.CreateBookingRequest) (*readmodel.BookingRM, error) {
					return nil, tc.err
				}
				rec := s.perform(http.MethodPost, "/api/bookings", validCreateBody())
				s.Equal(tc.code, rec.Code)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestProcessBooking() {
	body := map[string]any{
		"user_id":      1,
		"room_type_id": 10,
		"check_in":     "2026-03-10",
		"check_out":    "2026-03-13",
		"payment": map[string]any{
			"method": "card",
			"token":  "tok_4242",
		},
	}

	s.Run("returns 201 on capture", func() {
		rec := s.perform(http.MethodPost, "/api/bookings/process", body)
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("declined payment returns 402 with the gateway message", func() {
		s.stub.processFn = func(context.Context, reqdto.ProcessBookingRequest) (*readmodel.BookingRM, error) {
			return nil, errs.Mark(errs.New("card declined by issuer"), usecase.ErrPaymentFailed)
		}
		rec := s.perform(http.MethodPost, "/api/bookings/process", body)
		s.Equal(http.StatusPaymentRequired, rec.Code)
		s.Contains(rec.Body.String(), "Payment was declined")
		s.Contains(rec.Body.String(), "card declined by issuer")
	})

	s.Run("missing payment details returns 400", func() {
		s.stub.processFn = func(context.Context, reqdto.ProcessBookingRequest) (*readmodel.BookingRM, error) {
			return nil, usecase.ErrPaymentRequired
		}
		rec := s.perform(http.MethodPost, "/api/bookings/process", body)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	s.Run("returns 200 with the cancelled view", func() {
		rec := s.perform(http.MethodDelete, "/api/bookings/1", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"status":"CANCELLED"`)
	})

	s.Run("unknown booking returns 404", func() {
		s.stub.cancelFn = func(context.Context, int64) (*readmodel.BookingRM, error) {
			return nil, usecase.ErrBookingNotFound
		}
		rec := s.perform(http.MethodDelete, "/api/bookings/42", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("non-numeric id returns 400", func() {
		rec := s.perform(http.MethodDelete, "/api/bookings/abc", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestGetMyBookings() {
	rec := s.perform(http.MethodGet, "/api/bookings", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(int64(7), s.stub.gotUserID)
}
