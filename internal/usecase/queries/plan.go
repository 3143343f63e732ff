package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"travel-planner/internal/domain/plan"
	"travel-planner/internal/domain/travel"
	"travel-planner/internal/infra"
	"travel-planner/internal/pdf"
	"travel-planner/internal/pkg/errs"
)

var ErrPlanNotFound = errs.New("plan not found")

type PlanView struct {
	ID              uuid.UUID            `json:"id"`
	Request         travel.SearchRequest `json:"request"`
	Flights         travel.FlightSet     `json:"flight_options"`
	Hotels          travel.HotelSet      `json:"hotel_options"`
	Selection       plan.Selection       `json:"selection"`
	Recommendations []string             `json:"recommendations"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
	ExpiresAt       time.Time            `json:"expires_at"`
}

type PlanListItem struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	TotalCost   float64   `json:"total_cost"`
	OverBudget  bool      `json:"over_budget"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type PlanList struct {
	Plans []*PlanListItem `json:"plans"`
	Total int64           `json:"total"`
	Skip  int             `json:"skip"`
	Limit int             `json:"limit"`
}

func NewPlanView(p *plan.Plan) *PlanView {
	return &PlanView{
		ID:              p.ID(),
		Request:         p.Request(),
		Flights:         p.Flights(),
		Hotels:          p.Hotels(),
		Selection:       p.Selection(),
		Recommendations: p.Recommendations(),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
		ExpiresAt:       p.ExpiresAt(),
	}
}

type PlanReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*plan.Plan, error)
	List(ctx context.Context, skip, limit int) ([]*plan.Plan, int64, error)
}

type PlanQueries interface {
	GetPlan(ctx context.Context, id uuid.UUID) (*PlanView, error)
	ListPlans(ctx context.Context, skip, limit int) (*PlanList, error)
	GetItinerary(ctx context.Context, id uuid.UUID) ([]byte, error)
}

type planQueriesImpl struct {
	repo PlanReadStore
}

func NewPlanQueries(repo PlanReadStore) PlanQueries {
	return &planQueriesImpl{repo: repo}
}

func (q *planQueriesImpl) GetPlan(ctx context.Context, id uuid.UUID) (*PlanView, error) {
	p, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return NewPlanView(p), nil
}

func (q *planQueriesImpl) GetItinerary(ctx context.Context, id uuid.UUID) ([]byte, error) {
	p, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return pdf.RenderItinerary(p)
}

func (q *planQueriesImpl) ListPlans(ctx context.Context, skip, limit int) (*PlanList, error) {
	skip, limit = NormalizePage(skip, limit)

	plans, total, err := q.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	items := make([]*PlanListItem, 0, len(plans))
	for _, p := range plans {
		sel := p.Selection()
		items = append(items, &PlanListItem{
			ID:          p.ID(),
			Destination: p.Request().Destination,
			StartDate:   p.Request().StartDate,
			EndDate:     p.Request().EndDate,
			TotalCost:   sel.TotalCost,
			OverBudget:  sel.OverBudget,
			CreatedAt:   p.CreatedAt(),
			ExpiresAt:   p.ExpiresAt(),
		})
	}
	return &PlanList{Plans: items, Total: total, Skip: skip, Limit: limit}, nil
}
