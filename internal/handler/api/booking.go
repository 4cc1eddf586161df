package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "hotelhub/internal/handler/dto/request"
	resdto "hotelhub/internal/handler/dto/response"
	"hotelhub/internal/handler/httperr"
	"hotelhub/internal/handler/middleware"
	"hotelhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	bookingRM, err := h.bookingUseCase.CreateBooking(c.Request.Context(), req)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingRM(bookingRM))
}

func (h *BookingHandler) ProcessBooking(c *gin.Context) {
	var req reqdto.ProcessBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	bookingRM, err := h.bookingUseCase.CreateBookingWithPayment(c.Request.Context(), req)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingRM(bookingRM))
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	bookingRM, err := h.bookingUseCase.CancelBooking(c.Request.Context(), id)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRM(bookingRM))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	bookingRM, err := h.bookingUseCase.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRM(bookingRM))
}

func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	list, err := h.bookingUseCase.GetUserBookings(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListRM(list))
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	list, err := h.bookingUseCase.ListBookings(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListRM(list))
}

func (h *BookingHandler) writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, usecase.ErrRoomTypeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room type not found", nil)
	case errors.Is(err, usecase.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errors.Is(err, usecase.ErrRoomNotAvailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Room type is not available", nil)
	case errors.Is(err, usecase.ErrLockNotAcquired):
		httperr.AbortWithError(c, http.StatusConflict, err, "Room type is busy, try again", nil)
	case errors.Is(err, usecase.ErrInvalidDates):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid stay dates", nil)
	case errors.Is(err, usecase.ErrRoomTypeRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Room type id or room name required", err.Error())
	case errors.Is(err, usecase.ErrUserRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "User id required", nil)
	case errors.Is(err, usecase.ErrPaymentRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Payment details required", nil)
	case errors.Is(err, usecase.ErrPaymentFailed):
		// Detail carries the gateway's decline reason.
		httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Payment was declined", err.Error())
	case errors.Is(err, usecase.ErrDomainValidationFailed):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", err.Error())
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("invalid id parameter"), "Invalid id format", nil)
		return 0, false
	}
	return id, true
}
