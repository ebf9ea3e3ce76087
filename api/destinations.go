package api

import (
	"net/http"

	"github.com/Domenick1991/spacebooking/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type DestinationHandler struct {
	service catalog.CatalogUseCase
}

func NewDestinationHandler(service catalog.CatalogUseCase) *DestinationHandler {
	return &DestinationHandler{service: service}
}

func (h *DestinationHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.GET("/:id/seat-classes", h.seatClasses)
	router.GET("/:id/accommodations", h.accommodations)
}

func (h *DestinationHandler) list(c *gin.Context) {
	destinations, err := h.service.ListDestinations(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(destinations, newDestinationResponse))
}

func (h *DestinationHandler) get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	destination, err := h.service.GetDestination(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDestinationResponse(*destination))
}

func (h *DestinationHandler) seatClasses(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	seatClasses, err := h.service.ListSeatClasses(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(seatClasses, newSeatClassResponse))
}

func (h *DestinationHandler) accommodations(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	accommodations, err := h.service.ListAccommodations(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(accommodations, newAccommodationResponse))
}
