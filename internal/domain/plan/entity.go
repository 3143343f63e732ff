package plan

import (
	"errors"
	"time"

	"travel-planner/internal/domain/travel"
	"travel-planner/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrNoSelection      = errors.New("plan requires a selected flight and hotel")
	ErrEmptyOfferSets   = errors.New("plan requires non-empty offer sets")
	ErrNoRecommendation = errors.New("plan requires at least one recommendation")
)

// DefaultTTL is how long offer prices are considered current before a refresh
// is warranted.
const DefaultTTL = 24 * time.Hour

// Selection is the optimizer's chosen pairing plus the derived cost figures.
type Selection struct {
	Flight            travel.FlightOffer `json:"flight"`
	Hotel             travel.HotelOffer  `json:"hotel"`
	Rooms             int                `json:"rooms"`
	TotalCost         float64            `json:"total_cost"`
	BudgetUtilization float64            `json:"budget_utilization"`
	OverBudget        bool               `json:"over_budget"`
}

type Services struct {
	Clock clock.Clock
}

// Plan is the persisted outcome of one search-and-select pipeline run. It is
// read-only after creation except for Refresh, which replaces the
// offer-derived fields under the same identifier.
type Plan struct {
	id              uuid.UUID
	request         travel.SearchRequest
	flights         travel.FlightSet
	hotels          travel.HotelSet
	selection       Selection
	recommendations []string
	createdAt       time.Time
	updatedAt       time.Time
	expiresAt       time.Time
}

func NewPlan(
	services *Services,
	request travel.SearchRequest,
	flights travel.FlightSet,
	hotels travel.HotelSet,
	selection Selection,
	recommendations []string,
) (*Plan, error) {
	if flights.Empty() || hotels.Empty() {
		return nil, ErrEmptyOfferSets
	}
	if selection.Flight.ID == "" || selection.Hotel.ID == "" {
		return nil, ErrNoSelection
	}
	if len(recommendations) == 0 {
		return nil, ErrNoRecommendation
	}

	now := services.Clock.Now()
	return &Plan{
		id:              uuid.New(),
		request:         request,
		flights:         flights,
		hotels:          hotels,
		selection:       selection,
		recommendations: recommendations,
		createdAt:       now,
		updatedAt:       now,
		expiresAt:       now.Add(DefaultTTL),
	}, nil
}

func ReconstructPlan(
	id uuid.UUID,
	request travel.SearchRequest,
	flights travel.FlightSet,
	hotels travel.HotelSet,
	selection Selection,
	recommendations []string,
	createdAt, updatedAt, expiresAt time.Time,
) *Plan {
	return &Plan{
		id:              id,
		request:         request,
		flights:         flights,
		hotels:          hotels,
		selection:       selection,
		recommendations: recommendations,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		expiresAt:       expiresAt,
	}
}

// Refresh replaces the offer-derived fields with a fresh pipeline result and
// extends the expiry. The identifier and creation time never change.
func (p *Plan) Refresh(
	services *Services,
	flights travel.FlightSet,
	hotels travel.HotelSet,
	selection Selection,
	recommendations []string,
) error {
	if flights.Empty() || hotels.Empty() {
		return ErrEmptyOfferSets
	}
	if selection.Flight.ID == "" || selection.Hotel.ID == "" {
		return ErrNoSelection
	}
	if len(recommendations) == 0 {
		return ErrNoRecommendation
	}

	now := services.Clock.Now()
	p.flights = flights
	p.hotels = hotels
	p.selection = selection
	p.recommendations = recommendations
	p.updatedAt = now
	p.expiresAt = now.Add(DefaultTTL)
	return nil
}

func (p *Plan) HasExpired(now time.Time) bool {
	return now.After(p.expiresAt)
}

func (p *Plan) ID() uuid.UUID                 { return p.id }
func (p *Plan) Request() travel.SearchRequest { return p.request }
func (p *Plan) Flights() travel.FlightSet     { return p.flights }
func (p *Plan) Hotels() travel.HotelSet       { return p.hotels }
func (p *Plan) Selection() Selection          { return p.selection }
func (p *Plan) Recommendations() []string     { return p.recommendations }
func (p *Plan) CreatedAt() time.Time          { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time          { return p.updatedAt }
func (p *Plan) ExpiresAt() time.Time          { return p.expiresAt }
