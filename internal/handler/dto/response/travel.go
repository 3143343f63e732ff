package response

import (
	"time"

	"github.com/google/uuid"

	"travel-planner/internal/domain/travel"
	"travel-planner/internal/usecase/queries"
)

type PlanResponse struct {
	PlanID            uuid.UUID            `json:"plan_id"`
	Request           travel.SearchRequest `json:"request"`
	SelectedFlight    travel.FlightOffer   `json:"selected_flight"`
	SelectedHotel     travel.HotelOffer    `json:"selected_hotel"`
	Rooms             int                  `json:"rooms"`
	TotalCost         float64              `json:"total_cost"`
	BudgetUtilization float64              `json:"budget_utilization"`
	OverBudget        bool                 `json:"over_budget"`
	FlightOptions     travel.FlightSet     `json:"flight_options"`
	HotelOptions      travel.HotelSet      `json:"hotel_options"`
	Recommendations   []string             `json:"recommendations"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
	ExpiresAt         time.Time            `json:"expires_at"`
}

func FromPlanView(v *queries.PlanView) PlanResponse {
	return PlanResponse{
		PlanID:            v.ID,
		Request:           v.Request,
		SelectedFlight:    v.Selection.Flight,
		SelectedHotel:     v.Selection.Hotel,
		Rooms:             v.Selection.Rooms,
		TotalCost:         v.Selection.TotalCost,
		BudgetUtilization: v.Selection.BudgetUtilization,
		OverBudget:        v.Selection.OverBudget,
		FlightOptions:     v.Flights,
		HotelOptions:      v.Hotels,
		Recommendations:   v.Recommendations,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
		ExpiresAt:         v.ExpiresAt,
	}
}

type PlanListResponse struct {
	Plans []*queries.PlanListItem `json:"plans"`
	Total int64                   `json:"total"`
	Skip  int                     `json:"skip"`
	Limit int                     `json:"limit"`
}

func FromPlanList(l *queries.PlanList) PlanListResponse {
	return PlanListResponse{Plans: l.Plans, Total: l.Total, Skip: l.Skip, Limit: l.Limit}
}

type RefreshAcceptedResponse struct {
	PlanID  uuid.UUID `json:"plan_id"`
	Status  string    `json:"status"`
	Message string    `json:"message"`
}

func NewRefreshAccepted(id uuid.UUID) RefreshAcceptedResponse {
	return RefreshAcceptedResponse{
		PlanID:  id,
		Status:  "refreshing",
		Message: "Plan refresh started, poll the plan for updated offers",
	}
}
