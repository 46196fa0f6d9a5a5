package booking

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/hotels/:name/bookings", h.CreateBooking)
	rg.GET("/bookings/:reference", h.GetBooking)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), c.Param("name"), req.toDomain())
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
		case ErrHotelNotFound:
			response.Error(c, http.StatusNotFound, "HOTEL_NOT_FOUND", "No hotel found with the given name")
		case ErrNoRoomAvailable, ErrRetryExhausted:
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "All suitable rooms are fully booked")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": newBookingResponse(b)})
}

func (h *Handler) GetBooking(c *gin.Context) {
	ref, err := strconv.ParseInt(c.Param("reference"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking reference")
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), ref)
	if err != nil {
		if err == ErrBookingNotFound {
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "No booking found with the given reference")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": newBookingResponse(b)})
}
