package search

import (
	"fmt"
	"math"

	"travel-planner/internal/domain/plan"
	"travel-planner/internal/domain/travel"
)

// NoOffersAvailableError reports an empty offer set reaching the optimizer.
// The aggregator's fallback guarantee makes this an internal contract
// violation, not a user-facing condition.
type NoOffersAvailableError struct {
	Category string
}

func (e *NoOffersAvailableError) Error() string {
	return fmt.Sprintf("no %s offers available for selection", e.Category)
}

// Optimizer picks the flight+hotel pair with the best quality score among
// the pairs that fit the budget. Hotel rating dominates flight duration in
// the score; shorter flights score higher.
type Optimizer struct {
	hotelRatingWeight    float64
	flightDurationWeight float64
	roomCapacity         int
}

func NewOptimizer(hotelRatingWeight, flightDurationWeight float64, roomCapacity int) *Optimizer {
	return &Optimizer{
		hotelRatingWeight:    hotelRatingWeight,
		flightDurationWeight: flightDurationWeight,
		roomCapacity:         roomCapacity,
	}
}

func (o *Optimizer) Select(flights travel.FlightSet, hotels travel.HotelSet, req travel.SearchRequest) (plan.Selection, error) {
	if flights.Empty() {
		return plan.Selection{}, &NoOffersAvailableError{Category: "flight"}
	}
	if hotels.Empty() {
		return plan.Selection{}, &NoOffersAvailableError{Category: "hotel"}
	}

	candidateFlights := filterFlights(flights, req.TravelClass)
	candidateHotels := filterHotels(hotels, req.HotelCategory)

	rooms := o.rooms(req.Travelers)

	var (
		best         *plan.Selection
		bestScore    float64
		cheapest     plan.Selection
		cheapestCost = math.Inf(1)
	)

	for _, f := range candidateFlights {
		for _, h := range candidateHotels {
			cost := pairCost(f, h, req.Travelers, rooms)

			if cost < cheapestCost {
				cheapestCost = cost
				cheapest = plan.Selection{Flight: f, Hotel: h, Rooms: rooms, TotalCost: cost}
			}

			if cost > req.Budget {
				continue
			}

			score := o.score(f, h)
			if best == nil || score > bestScore ||
				(score == bestScore && cost < best.TotalCost) {
				sel := plan.Selection{Flight: f, Hotel: h, Rooms: rooms, TotalCost: cost}
				best = &sel
				bestScore = score
			}
		}
	}

	if best == nil {
		cheapest.OverBudget = true
		cheapest.BudgetUtilization = utilization(cheapest.TotalCost, req.Budget)
		return cheapest, nil
	}

	best.BudgetUtilization = utilization(best.TotalCost, req.Budget)
	return *best, nil
}

func (o *Optimizer) score(f travel.FlightOffer, h travel.HotelOffer) float64 {
	return o.hotelRatingWeight*(h.Rating/5.0) +
		o.flightDurationWeight*(1.0/(1.0+f.FlightHours()))
}

func (o *Optimizer) rooms(travelers int) int {
	capacity := o.roomCapacity
	if capacity < 1 {
		capacity = 1
	}
	return (travelers + capacity - 1) / capacity
}

func pairCost(f travel.FlightOffer, h travel.HotelOffer, travelers, rooms int) float64 {
	return f.Price*float64(travelers) + h.TotalPrice*float64(rooms)
}

func utilization(cost, budget float64) float64 {
	if budget <= 0 {
		return 0
	}
	return cost / budget * 100
}

// filterFlights narrows to the requested class, falling back to the full set
// when the filter leaves nothing to choose from.
func filterFlights(flights travel.FlightSet, class travel.TravelClass) travel.FlightSet {
	if class == "" {
		return flights
	}
	filtered := make(travel.FlightSet, 0, len(flights))
	for _, f := range flights {
		if f.TravelClass == class {
			filtered = append(filtered, f)
		}
	}
	if filtered.Empty() {
		return flights
	}
	return filtered
}

func filterHotels(hotels travel.HotelSet, category travel.HotelCategory) travel.HotelSet {
	if category == "" {
		return hotels
	}
	filtered := make(travel.HotelSet, 0, len(hotels))
	for _, h := range hotels {
		if h.Category == category {
			filtered = append(filtered, h)
		}
	}
	if filtered.Empty() {
		return hotels
	}
	return filtered
}
