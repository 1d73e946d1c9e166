package handlers

import (
	"errors"
	"net/http"

	"trimly/middleware"
	"trimly/models"
	"trimly/services/assistant"
	"trimly/services/booking"
	"trimly/utils"

	"github.com/gin-gonic/gin"
)

// ServiceHandler serves the shop's service catalogue.
type ServiceHandler struct {
	Booking   booking.BookingService
	Briefings *assistant.BriefingCache
}

func NewServiceHandler(svc booking.BookingService, briefings *assistant.BriefingCache) *ServiceHandler {
	return &ServiceHandler{Booking: svc, Briefings: briefings}
}

// List returns the shop's services. ?active=true narrows to bookable ones.
func (h *ServiceHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	services, err := h.Booking.ListServices(c.Request.Context(), middleware.ShopID(c), activeOnly)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// Create registers a new service.
func (h *ServiceHandler) Create(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid service payload", err.Error())
		return
	}

	shopID := middleware.ShopID(c)
	svc.ShopID = shopID
	if err := h.Booking.CreateService(c.Request.Context(), &svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to create service", err.Error())
		return
	}

	if h.Briefings != nil {
		h.Briefings.Invalidate(c.Request.Context(), shopID)
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// Update edits a service's catalogue fields.
func (h *ServiceHandler) Update(c *gin.Context) {
	var upd booking.ServiceUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid service payload", err.Error())
		return
	}

	shopID := middleware.ShopID(c)
	svc, err := h.Booking.UpdateService(c.Request.Context(), shopID, c.Param("id"), upd)
	if err != nil {
		if errors.Is(err, booking.ErrServiceNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Service not found", "")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Failed to update service", err.Error())
		return
	}

	if h.Briefings != nil {
		h.Briefings.Invalidate(c.Request.Context(), shopID)
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// Deactivate hides a service from booking without deleting it.
func (h *ServiceHandler) Deactivate(c *gin.Context) {
	shopID := middleware.ShopID(c)
	if err := h.Booking.DeactivateService(c.Request.Context(), shopID, c.Param("id")); err != nil {
		if errors.Is(err, booking.ErrServiceNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Service not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to deactivate service", err.Error())
		return
	}

	if h.Briefings != nil {
		h.Briefings.Invalidate(c.Request.Context(), shopID)
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}
