//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"travel-planner/internal/handler/api"
	resdto "travel-planner/internal/handler/dto/response"
	"travel-planner/internal/pkg/errs"
	"travel-planner/internal/usecase/commands"
	"travel-planner/internal/usecase/queries"
	"travel-planner/tests/common/builder"
	"travel-planner/tests/common/httptest"
	"travel-planner/tests/common/testutil"
	commandsmock "travel-planner/tests/mock/commands"
	queriesmock "travel-planner/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PlanHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPlanCommands
	mockQueries  *queriesmock.MockPlanQueries
	handler      *api.PlanHandler
}

func (s *PlanHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPlanCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPlanQueries(s.mockCtrl)
	s.handler = api.NewPlanHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/travel/plan", s.handler.Create)
	s.router.GET("/travel/plans", s.handler.List)
	s.router.GET("/travel/plan/:id", s.handler.Get)
	s.router.DELETE("/travel/plan/:id", s.handler.Delete)
	s.router.POST("/travel/plan/:id/refresh", s.handler.Refresh)
	s.router.GET("/travel/plan/:id/itinerary", s.handler.Itinerary)
}

func (s *PlanHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPlanHandlerSuite(t *testing.T) {
	suite.Run(t, new(PlanHandlerTestSuite))
}

type testCasePlan struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *PlanHandlerTestSuite) TestCreate() {
	url := "/travel/plan"

	reqBody := builder.NewPlanBuilder().BuildCreateRequestDTO()
	returnView := builder.NewPlanBuilder().BuildViewQuery()

	s.Run("success: returns 201 Created with the selected pair", func() {
		s.mockCommands.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.PlanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.PlanID)
		s.Equal(returnView.Selection.TotalCost, response.TotalCost)
		s.Equal(returnView.Selection.OverBudget, response.OverBudget)
		s.Len(response.Recommendations, len(returnView.Recommendations))
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Location": "/api/v1/travel/plan/" + returnView.ID.String(),
		})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCasePlan{
			{name: "missing field: destination", mutate: testutil.Field("destination", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: start_date", mutate: testutil.Field("start_date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: end_date", mutate: testutil.Field("end_date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: budget", mutate: testutil.Field("budget", nil), expectCode: http.StatusBadRequest},
			{name: "negative budget", mutate: testutil.Field("budget", -100), expectCode: http.StatusBadRequest},
			{name: "too many travelers", mutate: testutil.Field("travelers", 11), expectCode: http.StatusBadRequest},
			{name: "unknown travel class", mutate: testutil.Field("travel_class", "orbit"), expectCode: http.StatusBadRequest},
			{name: "unparseable start_date", mutate: testutil.Field("start_date", "15-06-2026"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				// The usecase marks the validation cause rather than wrapping it,
				// so the handler must match through the mark.
				name:           "domain validation error",
				commandsError:  errs.Mark(errs.New("budget must be positive"), commands.ErrInvalidSearchRequest),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Invalid search request",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("provider pipeline blew up"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Create plan failed",
			},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *PlanHandlerTestSuite) TestGet() {
	planID := uuid.New()
	url := "/travel/plan/" + planID.String()

	returnView := builder.NewPlanBuilder().BuildViewQuery()
	returnView.ID = planID

	s.Run("success: returns 200 OK with PlanResponse", func() {
		s.mockQueries.EXPECT().GetPlan(gomock.Any(), planID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.PlanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(planID, response.PlanID)
		s.Equal(returnView.Request.Destination, response.Request.Destination)
		s.Len(response.FlightOptions, len(returnView.Flights))
		s.Len(response.HotelOptions, len(returnView.Hotels))
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/travel/plan/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing plan", func() {
		s.mockQueries.EXPECT().GetPlan(gomock.Any(), planID).
			Return(nil, queries.ErrPlanNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Plan not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *PlanHandlerTestSuite) TestList() {
	view := builder.NewPlanBuilder().BuildViewQuery()
	list := &queries.PlanList{
		Plans: []*queries.PlanListItem{{
			ID:          view.ID,
			Destination: view.Request.Destination,
			StartDate:   view.Request.StartDate,
			EndDate:     view.Request.EndDate,
			TotalCost:   view.Selection.TotalCost,
			OverBudget:  view.Selection.OverBudget,
			CreatedAt:   view.CreatedAt,
			ExpiresAt:   view.ExpiresAt,
		}},
		Total: 1,
		Skip:  0,
		Limit: 10,
	}

	s.Run("success: returns 200 OK with pagination echo", func() {
		s.mockQueries.EXPECT().ListPlans(gomock.Any(), 0, 10).
			Return(list, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/travel/plans", nil)

		var response resdto.PlanListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Plans, 1)
		s.Equal(int64(1), response.Total)
	})

	s.Run("success: forwards skip and limit query params", func() {
		s.mockQueries.EXPECT().ListPlans(gomock.Any(), 20, 5).
			Return(&queries.PlanList{Plans: []*queries.PlanListItem{}, Total: 1, Skip: 20, Limit: 5}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/travel/plans?skip=20&limit=5", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().ListPlans(gomock.Any(), 0, 10).
			Return(nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/travel/plans", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

// ================================================================================
// TestRefresh
// ================================================================================

func (s *PlanHandlerTestSuite) TestRefresh() {
	planID := uuid.New()
	url := "/travel/plan/" + planID.String() + "/refresh"

	s.Run("success: returns 202 Accepted immediately", func() {
		done := make(chan error, 1)
		done <- nil
		s.mockCommands.EXPECT().RefreshPlan(gomock.Any(), planID).
			Return((<-chan error)(done), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var response resdto.RefreshAcceptedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &response)
		s.Equal(planID, response.PlanID)
		s.Equal("refreshing", response.Status)
	})

	s.Run("error: 404 Not Found for missing plan", func() {
		s.mockCommands.EXPECT().RefreshPlan(gomock.Any(), planID).
			Return(nil, commands.ErrPlanNotFoundWrite).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Plan not found")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *PlanHandlerTestSuite) TestDelete() {
	planID := uuid.New()
	url := "/travel/plan/" + planID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeletePlan(gomock.Any(), planID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for missing plan", func() {
		s.mockCommands.EXPECT().DeletePlan(gomock.Any(), planID).
			Return(commands.ErrPlanNotFoundWrite).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Plan not found")
	})
}

// ================================================================================
// TestItinerary
// ================================================================================

func (s *PlanHandlerTestSuite) TestItinerary() {
	planID := uuid.New()
	url := "/travel/plan/" + planID.String() + "/itinerary"

	s.Run("success: returns PDF bytes with attachment headers", func() {
		payload := []byte("%PDF-1.4 fake body")
		s.mockQueries.EXPECT().GetItinerary(gomock.Any(), planID).
			Return(payload, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.Equal(payload, rec.Body.Bytes())
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": "application/pdf"})
		s.Contains(rec.Header().Get("Content-Disposition"), planID.String())
	})

	s.Run("error: 404 Not Found for missing plan", func() {
		s.mockQueries.EXPECT().GetItinerary(gomock.Any(), planID).
			Return(nil, queries.ErrPlanNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Plan not found")
	})
}
