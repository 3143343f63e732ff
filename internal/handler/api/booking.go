package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"travel-planner/internal/domain/booking"
	reqdto "travel-planner/internal/handler/dto/request"
	resdto "travel-planner/internal/handler/dto/response"
	"travel-planner/internal/handler/httperr"
	"travel-planner/internal/pkg/errs"
	"travel-planner/internal/usecase/commands"
	"travel-planner/internal/usecase/queries"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book offers from an existing plan; both legs are confirmed before anything is persisted
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.CreateBooking(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrBookingPlanNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Plan not found", nil)
		case errs.Is(err, commands.ErrPlanExpired):
			httperr.AbortWithError(c, http.StatusConflict, err, "Plan has expired, refresh it before booking", nil)
		case errs.Is(err, commands.ErrOfferNotInPlan):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Offer not found in plan", nil)
		case errs.Is(err, commands.ErrConfirmationFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Booking confirmation failed", nil)
		default:
			slog.Error("create booking failed", "error", err)
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create booking failed", nil)
		}
		return
	}
	c.Header("Location", "/api/v1/bookings/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get a booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetBooking(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List bookings with offset pagination, newest first
// @Tags bookings
// @Produce json
// @Param skip query int false "Items to skip (default 0)"
// @Param limit query int false "Max items (default 10, max 100)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 500 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	skip, limit := pageParams(c)
	list, err := h.q.ListBookings(c.Request.Context(), skip, limit)
	if err != nil {
		slog.Error("list bookings failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(list))
}

// @Summary Modify booking
// @Description Update traveler details on a booking that has not reached a terminal status
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.ModifyBookingRequest true "Modify booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/modify [post]
func (h *BookingHandler) Modify(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.ModifyBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.ModifyBooking(c.Request.Context(), id, req.TravelerDetails); err != nil {
		switch {
		case errs.Is(err, commands.ErrBookingNotFoundWrite):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errs.Is(err, booking.ErrTerminalStatus):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking can no longer be modified", nil)
		case errs.Is(err, booking.ErrMissingTraveler):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Traveler details are required", nil)
		default:
			slog.Error("modify booking failed", "error", err)
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Modify failed", nil)
		}
		return
	}
	view, err := h.q.GetBooking(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel a booking unless it is already in a terminal status
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.applyTransition(c, h.cmds.CancelBooking, "Cancel failed")
}

// @Summary Pay booking
// @Description Mark a pending or confirmed booking as paid
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/pay [post]
func (h *BookingHandler) Pay(c *gin.Context) {
	h.applyTransition(c, h.cmds.PayBooking, "Payment failed")
}

func (h *BookingHandler) applyTransition(c *gin.Context, apply func(ctx context.Context, id uuid.UUID) error, failMsg string) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := apply(c.Request.Context(), id); err != nil {
		switch {
		case errs.Is(err, commands.ErrBookingNotFoundWrite):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errs.Is(err, booking.ErrInvalidTransition), errs.Is(err, booking.ErrTerminalStatus):
			httperr.AbortWithError(c, http.StatusConflict, err, "Invalid booking status transition", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, failMsg, nil)
		}
		return
	}
	view, err := h.q.GetBooking(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
