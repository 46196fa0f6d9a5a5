// Package testdata exposes the seed/reset collaborator used by integration
// tests and local development. It is not part of the booking engine proper.
package testdata

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/response"
)

type Store interface {
	Create(ctx context.Context, h *domain.Hotel) error
	DeleteAll(ctx context.Context) error
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/testdata", h.Seed)
	rg.DELETE("/testdata", h.Clear)
}

func (h *Handler) Seed(c *gin.Context) {
	hotel := SeedHotel()
	if err := h.store.Create(c.Request.Context(), hotel); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to seed database")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"hotel": hotel})
}

func (h *Handler) Clear(c *gin.Context) {
	if err := h.store.DeleteAll(c.Request.Context()); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to clear database")
		return
	}
	c.Status(http.StatusNoContent)
}
