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

type HotelHandler struct {
	hotelUseCase usecase.HotelUseCase
}

func NewHotelHandler(hotelUseCase usecase.HotelUseCase) *HotelHandler {
	return &HotelHandler{
		hotelUseCase: hotelUseCase,
	}
}

func (h *HotelHandler) CreateHotel(c *gin.Context) {
	var req reqdto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.hotelUseCase.CreateHotel(c.Request.Context(), req)
	if err != nil {
		h.writeHotelError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromHotelRM(rm))
}

func (h *HotelHandler) UpdateHotel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.hotelUseCase.UpdateHotel(c.Request.Context(), id, req)
	if err != nil {
		h.writeHotelError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelRM(rm))
}

func (h *HotelHandler) DeleteHotel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.hotelUseCase.DeleteHotel(c.Request.Context(), id); err != nil {
		h.writeHotelError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *HotelHandler) GetHotel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	rm, err := h.hotelUseCase.GetHotel(c.Request.Context(), id)
	if err != nil {
		h.writeHotelError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelRM(rm))
}

func (h *HotelHandler) ListHotels(c *gin.Context) {
	list, err := h.hotelUseCase.ListHotels(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelRMs(list))
}

func (h *HotelHandler) writeHotelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrHotelNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
	case errors.Is(err, usecase.ErrHotelInUse):
		httperr.AbortWithError(c, http.StatusConflict, err, "Hotel still has room types", nil)
	case errors.Is(err, usecase.ErrDomainValidationFailed):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
