package handlers

import (
	"errors"
	"net/http"

	scheduleRepo "trimly/database/repository/schedule"
	"trimly/middleware"
	"trimly/models"
	"trimly/services/assistant"
	"trimly/services/booking"
	"trimly/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler serves staff appointment management.
type AppointmentHandler struct {
	Booking   booking.BookingService
	Briefings *assistant.BriefingCache
}

func NewAppointmentHandler(svc booking.BookingService, briefings *assistant.BriefingCache) *AppointmentHandler {
	return &AppointmentHandler{Booking: svc, Briefings: briefings}
}

// List returns the shop's appointments, optionally filtered by date and status.
func (h *AppointmentHandler) List(c *gin.Context) {
	filter := scheduleRepo.AppointmentFilter{
		Date:   c.Query("date"),
		Status: c.Query("status"),
	}
	appts, err := h.Booking.ListAppointments(c.Request.Context(), middleware.ShopID(c), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// Create books a slot manually on behalf of staff.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var input booking.NewAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid appointment payload", err.Error())
		return
	}

	shopID := middleware.ShopID(c)
	appt, err := h.Booking.CreateAppointment(c.Request.Context(), shopID, input)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	h.invalidateBriefing(c, shopID)
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// Update applies staff edits: status, payment, notes, or a reschedule.
func (h *AppointmentHandler) Update(c *gin.Context) {
	var upd models.AppointmentUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update payload", err.Error())
		return
	}

	shopID := middleware.ShopID(c)
	appt, err := h.Booking.UpdateAppointment(c.Request.Context(), shopID, c.Param("id"), &upd)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	h.invalidateBriefing(c, shopID)
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// Cancel transitions the appointment to cancelled, freeing its slot.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	shopID := middleware.ShopID(c)
	appt, err := h.Booking.CancelAppointment(c.Request.Context(), shopID, c.Param("id"))
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	h.invalidateBriefing(c, shopID)
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// Logs returns the appointment's audit trail.
func (h *AppointmentHandler) Logs(c *gin.Context) {
	entries, err := h.Booking.AppointmentLogs(c.Request.Context(), middleware.ShopID(c), c.Param("id"))
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": entries})
}

func (h *AppointmentHandler) invalidateBriefing(c *gin.Context, shopID string) {
	if h.Briefings != nil {
		h.Briefings.Invalidate(c.Request.Context(), shopID)
	}
}

func (h *AppointmentHandler) writeBookingError(c *gin.Context, err error) {
	var transition *booking.InvalidTransitionError
	var ambiguous *booking.AmbiguousServiceError
	switch {
	case errors.Is(err, booking.ErrAppointmentNotFound):
		utils.JSONError(c, http.StatusNotFound, "Appointment not found", "")
	case errors.Is(err, booking.ErrServiceNotFound):
		utils.JSONError(c, http.StatusBadRequest, "Service not found", "")
	case errors.Is(err, booking.ErrSlotConflict):
		utils.JSONError(c, http.StatusConflict, "Slot already booked", "")
	case errors.As(err, &transition):
		utils.JSONError(c, http.StatusBadRequest, "Invalid status transition", transition.Error())
	case errors.As(err, &ambiguous):
		utils.JSONError(c, http.StatusBadRequest, "Ambiguous service name", ambiguous.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}
