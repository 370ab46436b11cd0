package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shoplink/internal/repository"
)

func dateRange(c *gin.Context) repository.DateRange {
	return repository.DateRange{
		Start: c.Query("start_date"),
		End:   c.Query("end_date"),
	}
}

func (h *Handler) SalesReport(c *gin.Context) {
	report, err := h.analytics.SalesReport(c.Request.Context(), currentUserID(c), dateRange(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "sales report", report)
}

func (h *Handler) ActivityReport(c *gin.Context) {
	report, err := h.analytics.ActivityReport(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "activity report", report)
}

func (h *Handler) EventReport(c *gin.Context) {
	report, err := h.analytics.EventReport(c.Request.Context(), currentUserID(c), dateRange(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "event report", report)
}

func (h *Handler) Alerts(c *gin.Context) {
	alerts, err := h.analytics.Alerts(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "alerts", alerts)
}
