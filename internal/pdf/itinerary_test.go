//go:build unit

package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-planner/internal/domain/plan"
	"travel-planner/internal/domain/travel"
	"travel-planner/internal/pkg/clock"
)

func testPlan(t *testing.T) *plan.Plan {
	t.Helper()

	dep := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	flight := travel.FlightOffer{
		ID: "amadeus_1", Source: "amadeus", Airline: "AA", FlightNumber: "AA1234",
		DepartureTime: dep, ArrivalTime: dep.Add(5 * time.Hour),
		Duration: "5h", Price: 400, TravelClass: travel.ClassEconomy,
		Layovers: []string{"ORD"},
	}
	hotel := travel.HotelOffer{
		ID: "booking.com_1", Source: "booking.com", Name: "Grand Plaza Hotel",
		Address: "1 Plaza Way, Paris", PricePerNight: 262.50, TotalPrice: 1050,
		Rating: 4.5, Amenities: []string{"WiFi", "Pool"}, Category: travel.CategoryLuxury,
	}

	mock := clock.NewMockClock(time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC))
	p, err := plan.NewPlan(
		&plan.Services{Clock: mock},
		travel.SearchRequest{
			Destination: "Paris",
			StartDate:   dep, EndDate: dep.AddDate(0, 0, 4),
			Budget: 2000, Travelers: 2,
		},
		travel.FlightSet{flight},
		travel.HotelSet{hotel},
		plan.Selection{
			Flight: flight, Hotel: hotel, Rooms: 1,
			TotalCost: 1850, BudgetUtilization: 92.5,
		},
		[]string{
			"Book flights 2-3 weeks in advance for best prices",
			"Verify visa requirements for the destination",
		},
	)
	require.NoError(t, err)
	return p
}

func TestRenderItinerary(t *testing.T) {
	t.Parallel()

	data, err := RenderItinerary(testPlan(t))
	require.NoError(t, err)

	require.Greater(t, len(data), 500)
	assert.Equal(t, "%PDF", string(data[:4]))
}
