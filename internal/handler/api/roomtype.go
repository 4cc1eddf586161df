package api

import (
	"errors"
	"net/http"

	reqdto "hotelhub/internal/handler/dto/request"
	resdto "hotelhub/internal/handler/dto/response"
	"hotelhub/internal/handler/httperr"
	"hotelhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RoomTypeHandler struct {
	roomTypeUseCase usecase.RoomTypeUseCase
}

func NewRoomTypeHandler(roomTypeUseCase usecase.RoomTypeUseCase) *RoomTypeHandler {
	return &RoomTypeHandler{
		roomTypeUseCase: roomTypeUseCase,
	}
}

func (h *RoomTypeHandler) CreateRoomType(c *gin.Context) {
	var req reqdto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.roomTypeUseCase.CreateRoomType(c.Request.Context(), req)
	if err != nil {
		h.writeRoomTypeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoomTypeRM(rm))
}

func (h *RoomTypeHandler) UpdateRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.roomTypeUseCase.UpdateRoomType(c.Request.Context(), id, req)
	if err != nil {
		h.writeRoomTypeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomTypeRM(rm))
}

func (h *RoomTypeHandler) DeleteRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.roomTypeUseCase.DeleteRoomType(c.Request.Context(), id); err != nil {
		h.writeRoomTypeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RoomTypeHandler) MarkAvailable(c *gin.Context) {
	h.setAvailability(c, true)
}

func (h *RoomTypeHandler) MarkUnavailable(c *gin.Context) {
	h.setAvailability(c, false)
}

func (h *RoomTypeHandler) setAvailability(c *gin.Context, available bool) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.roomTypeUseCase.SetRoomAvailability(c.Request.Context(), id, available); err != nil {
		h.writeRoomTypeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RoomTypeHandler) GetRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	rm, err := h.roomTypeUseCase.GetRoomType(c.Request.Context(), id)
	if err != nil {
		h.writeRoomTypeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomTypeRM(rm))
}

func (h *RoomTypeHandler) GetHotelRoomTypes(c *gin.Context) {
	hotelID, ok := parseIDParam(c)
	if !ok {
		return
	}

	list, err := h.roomTypeUseCase.GetHotelRoomTypes(c.Request.Context(), hotelID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomTypeRMs(list))
}

func (h *RoomTypeHandler) writeRoomTypeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrRoomTypeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room type not found", nil)
	case errors.Is(err, usecase.ErrHotelNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
	case errors.Is(err, usecase.ErrRoomTypeInUse):
		httperr.AbortWithError(c, http.StatusConflict, err, "Room type has booking history and cannot be deleted", nil)
	case errors.Is(err, usecase.ErrLockNotAcquired):
		httperr.AbortWithError(c, http.StatusConflict, err, "Room type is busy, try again", nil)
	case errors.Is(err, usecase.ErrDomainValidationFailed):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
