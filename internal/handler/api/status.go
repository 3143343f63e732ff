package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"travel-planner/internal/handler/httperr"
	"travel-planner/internal/pkg/errs"
	"travel-planner/internal/usecase/queries"
)

type StatusHandler struct {
	q queries.StatusQueries
}

func NewStatusHandler(q queries.StatusQueries) *StatusHandler {
	return &StatusHandler{q: q}
}

// @Summary Booking status
// @Description Get the current status of a booking with suggested next steps
// @Tags status
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingStatusView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /status/booking/{id} [get]
func (h *StatusHandler) BookingStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetBookingStatus(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking status", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Service metrics
// @Description Plan, booking and search counters for monitoring
// @Tags status
// @Produce json
// @Success 200 {object} queries.MetricsView
// @Failure 500 {object} map[string]string
// @Router /status/metrics [get]
func (h *StatusHandler) Metrics(c *gin.Context) {
	view, err := h.q.GetMetrics(c.Request.Context())
	if err != nil {
		slog.Error("metrics collection failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to collect metrics", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Health check
// @Description Report service and database health
// @Tags status
// @Produce json
// @Success 200 {object} queries.HealthView
// @Success 503 {object} queries.HealthView
// @Router /status/health [get]
func (h *StatusHandler) Health(c *gin.Context) {
	view := h.q.GetHealth(c.Request.Context())
	status := http.StatusOK
	if view.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, view)
}
