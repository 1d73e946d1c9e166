package handlers

import (
	"net/http"
	"strconv"

	"trimly/middleware"
	"trimly/services/booking"
	"trimly/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves shop statistics.
type ReportHandler struct {
	Booking booking.BookingService
}

func NewReportHandler(svc booking.BookingService) *ReportHandler {
	return &ReportHandler{Booking: svc}
}

// Get aggregates the trailing period, ?period=N days (default 30).
func (h *ReportHandler) Get(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("period", "30"))

	report, err := h.Booking.Report(c.Request.Context(), middleware.ShopID(c), days)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build report", err.Error())
		return
	}
	c.JSON(http.StatusOK, report)
}
