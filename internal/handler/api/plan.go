package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "travel-planner/internal/handler/dto/request"
	resdto "travel-planner/internal/handler/dto/response"
	"travel-planner/internal/handler/httperr"
	"travel-planner/internal/pkg/errs"
	"travel-planner/internal/usecase/commands"
	"travel-planner/internal/usecase/queries"
)

type PlanHandler struct {
	cmds commands.PlanCommands
	q    queries.PlanQueries
}

func NewPlanHandler(cmds commands.PlanCommands, q queries.PlanQueries) *PlanHandler {
	return &PlanHandler{cmds: cmds, q: q}
}

// @Summary Create travel plan
// @Description Search flights and hotels, pick the best pair within budget, and persist the plan
// @Tags plans
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePlanRequest true "Create plan request"
// @Success 201 {object} resdto.PlanResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /travel/plan [post]
func (h *PlanHandler) Create(c *gin.Context) {
	var req reqdto.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	search, err := req.ToSearchRequest()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.CreatePlan(c.Request.Context(), search)
	if err != nil {
		if errs.Is(err, commands.ErrInvalidSearchRequest) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid search request", nil)
			return
		}
		slog.Error("create plan failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create plan failed", nil)
		return
	}
	c.Header("Location", "/api/v1/travel/plan/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromPlanView(view))
}

// @Summary Get travel plan
// @Description Get a travel plan by ID
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} resdto.PlanResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /travel/plan/{id} [get]
func (h *PlanHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetPlan(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrPlanNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Plan not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load plan", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlanView(view))
}

// @Summary List travel plans
// @Description List travel plans with offset pagination, newest first
// @Tags plans
// @Produce json
// @Param skip query int false "Items to skip (default 0)"
// @Param limit query int false "Max items (default 10, max 100)"
// @Success 200 {object} resdto.PlanListResponse
// @Failure 500 {object} map[string]string
// @Router /travel/plans [get]
func (h *PlanHandler) List(c *gin.Context) {
	skip, limit := pageParams(c)
	list, err := h.q.ListPlans(c.Request.Context(), skip, limit)
	if err != nil {
		slog.Error("list plans failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlanList(list))
}

// @Summary Refresh travel plan
// @Description Re-run provider searches for an existing plan in the background
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 202 {object} resdto.RefreshAcceptedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /travel/plan/{id}/refresh [post]
func (h *PlanHandler) Refresh(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if _, err := h.cmds.RefreshPlan(c.Request.Context(), id); err != nil {
		if errs.Is(err, commands.ErrPlanNotFoundWrite) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Plan not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Refresh failed", nil)
		return
	}
	c.JSON(http.StatusAccepted, resdto.NewRefreshAccepted(id))
}

// @Summary Delete travel plan
// @Description Delete a travel plan and its bookings
// @Tags plans
// @Param id path string true "Plan ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /travel/plan/{id} [delete]
func (h *PlanHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.DeletePlan(c.Request.Context(), id); err != nil {
		if errs.Is(err, commands.ErrPlanNotFoundWrite) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Plan not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Download itinerary PDF
// @Description Render the plan as a printable PDF itinerary
// @Tags plans
// @Produce application/pdf
// @Param id path string true "Plan ID"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /travel/plan/{id}/itinerary [get]
func (h *PlanHandler) Itinerary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	pdfBytes, err := h.q.GetItinerary(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrPlanNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Plan not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render itinerary", nil)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="itinerary-`+id.String()+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func pageParams(c *gin.Context) (int, int) {
	skip := 0
	if v := c.Query("skip"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			skip = iv
		}
	}
	limit := queries.DefaultLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = iv
		}
	}
	return skip, limit
}
