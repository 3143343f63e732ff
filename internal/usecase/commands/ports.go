package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"travel-planner/internal/domain/booking"
	"travel-planner/internal/domain/plan"
	"travel-planner/internal/domain/travel"
	"travel-planner/internal/search"
)

// Consumer-side ports. Implementations live in internal/infra and
// internal/search; commands depend only on these interfaces.

type PlanRepository interface {
	Create(ctx context.Context, p *plan.Plan) error
	Update(ctx context.Context, p *plan.Plan) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*plan.Plan, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	UpdateStatus(ctx context.Context, b *booking.Booking) error
	UpdateTravelerDetails(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

// OfferCollector is the aggregation stage of the planning pipeline.
type OfferCollector interface {
	Collect(ctx context.Context, req travel.SearchRequest) (travel.FlightSet, travel.HotelSet, search.PartialFailure)
}

// OfferSelector is the budget optimization stage.
type OfferSelector interface {
	Select(flights travel.FlightSet, hotels travel.HotelSet, req travel.SearchRequest) (plan.Selection, error)
}

// RecommendationAdvisor is the synthesis stage.
type RecommendationAdvisor interface {
	Advise(ctx context.Context, sel plan.Selection, req travel.SearchRequest) []string
}

// Confirmer books the two legs with the upstream systems and returns their
// confirmation numbers.
type Confirmer interface {
	ConfirmFlight(ctx context.Context, offer travel.FlightOffer, traveler map[string]string) (string, error)
	ConfirmHotel(ctx context.Context, offer travel.HotelOffer, traveler map[string]string, checkIn, checkOut time.Time) (string, error)
}
