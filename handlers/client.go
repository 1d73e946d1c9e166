package handlers

import (
	"net/http"

	"trimly/middleware"
	"trimly/models"
	"trimly/services/booking"
	"trimly/utils"

	"github.com/gin-gonic/gin"
)

// ClientHandler serves the shop's client directory.
type ClientHandler struct {
	Booking booking.BookingService
}

func NewClientHandler(svc booking.BookingService) *ClientHandler {
	return &ClientHandler{Booking: svc}
}

// List returns the shop's clients.
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.Booking.ListClients(c.Request.Context(), middleware.ShopID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list clients", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// Create adds a client directory entry.
func (h *ClientHandler) Create(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid client payload", err.Error())
		return
	}

	client.ShopID = middleware.ShopID(c)
	if err := h.Booking.CreateClient(c.Request.Context(), &client); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to create client", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client})
}
