//go:build unit || integration

package builder

import (
	"time"

	domplan "travel-planner/internal/domain/plan"
	"travel-planner/internal/domain/travel"
	reqdto "travel-planner/internal/handler/dto/request"
	"travel-planner/internal/usecase/queries"

	"github.com/google/uuid"
)

type PlanBuilder struct {
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Budget      float64
	Travelers   int
	CreatedAt   time.Time
}

func NewPlanBuilder() *PlanBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &PlanBuilder{
		Destination: "Paris",
		StartDate:   now.AddDate(0, 1, 0),
		EndDate:     now.AddDate(0, 1, 4),
		Budget:      3000,
		Travelers:   2,
		CreatedAt:   now,
	}
}

func (b *PlanBuilder) With(mutate func(*PlanBuilder)) *PlanBuilder {
	mutate(b)
	return b
}

func (b *PlanBuilder) BuildSearchRequest() travel.SearchRequest {
	return travel.SearchRequest{
		Destination:   b.Destination,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		Budget:        b.Budget,
		Travelers:     b.Travelers,
		TravelClass:   travel.ClassEconomy,
		HotelCategory: travel.CategoryStandard,
	}
}

func (b *PlanBuilder) BuildCreateRequestDTO() reqdto.CreatePlanRequest {
	return reqdto.CreatePlanRequest{
		Destination: b.Destination,
		StartDate:   b.StartDate.Format("2006-01-02"),
		EndDate:     b.EndDate.Format("2006-01-02"),
		Budget:      b.Budget,
		Travelers:   b.Travelers,
	}
}

func (b *PlanBuilder) BuildFlightOffer(id string, price float64) travel.FlightOffer {
	return travel.FlightOffer{
		ID:            id,
		Source:        "amadeus",
		Airline:       "Air France",
		FlightNumber:  "AF 1234",
		DepartureTime: b.StartDate.Add(8 * time.Hour),
		ArrivalTime:   b.StartDate.Add(15 * time.Hour),
		Duration:      "7h 0m",
		Price:         price,
		TravelClass:   travel.ClassEconomy,
	}
}

func (b *PlanBuilder) BuildHotelOffer(id string, totalPrice float64) travel.HotelOffer {
	nights := b.EndDate.Sub(b.StartDate).Hours() / 24
	return travel.HotelOffer{
		ID:            id,
		Source:        "booking",
		Name:          "Hotel Lumiere",
		Address:       "10 Rue de Test, Paris",
		PricePerNight: totalPrice / nights,
		TotalPrice:    totalPrice,
		Rating:        4.3,
		Amenities:     []string{"WiFi", "Breakfast"},
		Category:      travel.CategoryStandard,
	}
}

func (b *PlanBuilder) BuildSelection() domplan.Selection {
	flight := b.BuildFlightOffer("fl_1", 450)
	hotel := b.BuildHotelOffer("ht_1", 800)
	cost := flight.Price*float64(b.Travelers) + hotel.TotalPrice
	return domplan.Selection{
		Flight:            flight,
		Hotel:             hotel,
		Rooms:             1,
		TotalCost:         cost,
		BudgetUtilization: cost / b.Budget * 100,
		OverBudget:        cost > b.Budget,
	}
}

// BuildEntity reconstructs a persisted-looking plan, bypassing the domain
// constructor so tests can pin every timestamp.
func (b *PlanBuilder) BuildEntity() *domplan.Plan {
	sel := b.BuildSelection()
	return domplan.ReconstructPlan(
		uuid.New(),
		b.BuildSearchRequest(),
		travel.FlightSet{sel.Flight},
		travel.HotelSet{sel.Hotel},
		sel,
		[]string{"Book flights 2-3 weeks in advance for best prices", "Verify visa requirements for the destination"},
		b.CreatedAt,
		b.CreatedAt,
		b.CreatedAt.Add(24*time.Hour),
	)
}

func (b *PlanBuilder) BuildViewQuery() *queries.PlanView {
	sel := b.BuildSelection()
	return &queries.PlanView{
		ID:              uuid.New(),
		Request:         b.BuildSearchRequest(),
		Flights:         travel.FlightSet{sel.Flight},
		Hotels:          travel.HotelSet{sel.Hotel},
		Selection:       sel,
		Recommendations: []string{"Book flights 2-3 weeks in advance for best prices", "Verify visa requirements for the destination"},
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
		ExpiresAt:       b.CreatedAt.Add(24 * time.Hour),
	}
}
