package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"travel-planner/internal/domain/booking"
	"travel-planner/internal/infra"
	"travel-planner/internal/pkg/clock"
	"travel-planner/internal/search"
)

// nextSteps tells the caller what to do in each booking state.
var nextSteps = map[booking.Status][]string{
	booking.StatusPending: {
		"Complete payment",
		"Receive confirmation email",
		"Check booking details",
	},
	booking.StatusConfirmed: {
		"Check-in online 24 hours before departure",
		"Print boarding passes",
		"Arrive at airport 2 hours early",
	},
	booking.StatusPaid: {
		"Receive confirmation email",
		"Check booking details",
		"Set up travel notifications",
	},
	booking.StatusCancelled: {
		"Check refund status",
		"Contact customer service if needed",
		"Consider alternative bookings",
	},
	booking.StatusCompleted: {
		"Leave a review",
		"Share travel experience",
		"Plan next trip",
	},
}

var fallbackNextSteps = []string{"Contact customer service"}

type BookingStatusDetails struct {
	ConfirmationNumbers booking.Confirmation `json:"confirmation_numbers"`
	TotalCost           float64              `json:"total_cost"`
	CreatedAt           time.Time            `json:"created_at"`
}

type BookingStatusView struct {
	BookingID   uuid.UUID            `json:"booking_id"`
	Status      string               `json:"status"`
	LastUpdated time.Time            `json:"last_updated"`
	Details     BookingStatusDetails `json:"details"`
	NextSteps   []string             `json:"next_steps"`
}

type BookingMetrics struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}

type PlanMetrics struct {
	Total int64 `json:"total"`
}

type SearchMetrics struct {
	Searches           uint64 `json:"searches"`
	ProvidersQueried   uint64 `json:"providers_queried"`
	ProvidersSucceeded uint64 `json:"providers_succeeded"`
	ProvidersFailed    uint64 `json:"providers_failed"`
	FallbacksServed    uint64 `json:"fallbacks_served"`
}

type MetricsView struct {
	Timestamp   time.Time      `json:"timestamp"`
	Bookings    BookingMetrics `json:"bookings"`
	TravelPlans PlanMetrics    `json:"travel_plans"`
	Search      SearchMetrics  `json:"search"`
}

type HealthView struct {
	Status    string    `json:"status"`
	Database  bool      `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

type PlanCounter interface {
	Count(ctx context.Context) (int64, error)
}

type BookingCounter interface {
	CountByStatus(ctx context.Context) (map[booking.Status]int64, error)
}

type SearchStatsSource interface {
	Stats() search.Stats
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type StatusQueries interface {
	GetBookingStatus(ctx context.Context, id uuid.UUID) (*BookingStatusView, error)
	GetMetrics(ctx context.Context) (*MetricsView, error)
	GetHealth(ctx context.Context) *HealthView
}

type statusQueriesImpl struct {
	bookings     BookingReadStore
	planCounter  PlanCounter
	bookingStats BookingCounter
	searchStats  SearchStatsSource
	pinger       Pinger
	clock        clock.Clock
}

func NewStatusQueries(
	bookings BookingReadStore,
	planCounter PlanCounter,
	bookingStats BookingCounter,
	searchStats SearchStatsSource,
	pinger Pinger,
	clk clock.Clock,
) StatusQueries {
	return &statusQueriesImpl{
		bookings:     bookings,
		planCounter:  planCounter,
		bookingStats: bookingStats,
		searchStats:  searchStats,
		pinger:       pinger,
		clock:        clk,
	}
}

func (q *statusQueriesImpl) GetBookingStatus(ctx context.Context, id uuid.UUID) (*BookingStatusView, error) {
	b, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	steps, ok := nextSteps[b.Status()]
	if !ok {
		steps = fallbackNextSteps
	}
	return &BookingStatusView{
		BookingID:   b.ID(),
		Status:      string(b.Status()),
		LastUpdated: b.UpdatedAt(),
		Details: BookingStatusDetails{
			ConfirmationNumbers: b.Confirmation(),
			TotalCost:           b.TotalCost(),
			CreatedAt:           b.CreatedAt(),
		},
		NextSteps: steps,
	}, nil
}

func (q *statusQueriesImpl) GetMetrics(ctx context.Context) (*MetricsView, error) {
	planTotal, err := q.planCounter.Count(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := q.bookingStats.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	var bookingTotal int64
	statusCounts := make(map[string]int64, len(byStatus))
	for status, count := range byStatus {
		bookingTotal += count
		statusCounts[string(status)] = count
	}

	stats := q.searchStats.Stats()
	return &MetricsView{
		Timestamp:   q.clock.Now(),
		Bookings:    BookingMetrics{Total: bookingTotal, ByStatus: statusCounts},
		TravelPlans: PlanMetrics{Total: planTotal},
		Search: SearchMetrics{
			Searches:           stats.Searches,
			ProvidersQueried:   stats.ProvidersQueried,
			ProvidersSucceeded: stats.ProvidersSucceeded,
			ProvidersFailed:    stats.ProvidersFailed,
			FallbacksServed:    stats.FallbacksServed,
		},
	}, nil
}

func (q *statusQueriesImpl) GetHealth(ctx context.Context) *HealthView {
	dbUp := q.pinger.Ping(ctx) == nil
	status := "healthy"
	if !dbUp {
		status = "degraded"
	}
	return &HealthView{Status: status, Database: dbUp, Timestamp: q.clock.Now()}
}
