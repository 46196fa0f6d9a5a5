package hotel

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/response"
	"hotelbooking/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/hotels", h.CreateHotel)
	rg.GET("/hotels", h.ListHotels)
	rg.GET("/hotels/:name", h.GetHotel)
	rg.GET("/hotels/:name/available-rooms", h.AvailableRooms)
}

func (h *Handler) CreateHotel(c *gin.Context) {
	var req CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid hotel payload", details)
		return
	}

	hotel := req.toDomain()
	if err := h.service.CreateHotel(c.Request.Context(), hotel); err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid hotel payload")
		case ErrHotelExists:
			response.Error(c, http.StatusConflict, "HOTEL_EXISTS", "A hotel with this name already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create hotel")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"hotel": hotel})
}

func (h *Handler) ListHotels(c *gin.Context) {
	hotels, err := h.service.ListHotels(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list hotels")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hotels": hotels})
}

func (h *Handler) GetHotel(c *gin.Context) {
	hotel, err := h.service.GetHotel(c.Request.Context(), c.Param("name"))
	if err != nil {
		if err == ErrHotelNotFound {
			response.Error(c, http.StatusNotFound, "HOTEL_NOT_FOUND", "No hotel found with the given name")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load hotel")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hotel": hotel})
}

// AvailableRooms handles GET /hotels/:name/available-rooms?checkin=...&checkout=...&numberOfGuests=...
func (h *Handler) AvailableRooms(c *gin.Context) {
	checkin, err := domain.ParseDate(c.Query("checkin"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "checkin must be a YYYY-MM-DD date")
		return
	}
	checkout, err := domain.ParseDate(c.Query("checkout"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "checkout must be a YYYY-MM-DD date")
		return
	}

	var minGuests *int
	if raw := c.Query("numberOfGuests"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "numberOfGuests must be a positive integer")
			return
		}
		minGuests = &n
	}

	rooms, err := h.service.FindAvailableRooms(c.Request.Context(), c.Param("name"), checkin, checkout, minGuests)
	if err != nil {
		switch err {
		case ErrInvalidDateRange:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Check-in date must be before check-out date")
		case ErrHotelNotFound:
			response.Error(c, http.StatusNotFound, "HOTEL_NOT_FOUND", "No hotel found with the given name")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to resolve availability")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}
