package providers

import (
	"fmt"
	"hash/fnv"
	"time"

	"travel-planner/internal/domain/travel"
)

// Fallback offer templates. Selection rotates deterministically on the
// destination so different trips see different carriers while the same
// request always synthesizes the same offers.
var fallbackAirlines = []struct {
	airline string
	code    string
	hours   int
	minutes int
	layover string
}{
	{"American Airlines", "AA", 5, 30, "ORD"},
	{"Delta Air Lines", "DL", 4, 45, ""},
	{"United Airlines", "UA", 6, 15, "DEN"},
	{"Lufthansa", "LH", 7, 50, "FRA"},
}

var fallbackHotels = []struct {
	name      string
	rating    float64
	factor    float64
	category  travel.HotelCategory
	amenities []string
}{
	{"Grand Plaza Hotel", 4.5, 1.2, travel.CategoryLuxury, []string{"WiFi", "Pool", "Gym", "Restaurant", "Spa"}},
	{"Comfort Inn Central", 4.0, 1.0, travel.CategoryStandard, []string{"WiFi", "Breakfast", "Parking"}},
	{"Budget Stay Lodge", 3.5, 0.6, travel.CategoryBudget, []string{"WiFi", "Shared Kitchen", "Laundry"}},
}

// Fallback synthesizes plausible offers when a category's adapters all fail
// or return nothing. Output is a pure function of the request so tests stay
// reproducible, and everything carries Source == travel.SourceMock.
type Fallback struct{}

func NewFallback() *Fallback { return &Fallback{} }

func (f *Fallback) SynthesizeFlights(req travel.SearchRequest) travel.FlightSet {
	// Keep a mock flight leg near 30% of budget so the synthesized pair
	// lands inside it.
	perTraveler := req.Budget * 0.30 / float64(req.Travelers)
	seed := destinationSeed(req.Destination)

	offers := make(travel.FlightSet, 0, 3)
	for i := 0; i < 3; i++ {
		tpl := fallbackAirlines[(seed+i)%len(fallbackAirlines)]

		departure := time.Date(
			req.StartDate.Year(), req.StartDate.Month(), req.StartDate.Day(),
			8+2*i, 0, 0, 0, time.UTC,
		)
		arrival := departure.Add(time.Duration(tpl.hours)*time.Hour + time.Duration(tpl.minutes)*time.Minute)

		var layovers []string
		if tpl.layover != "" {
			layovers = []string{tpl.layover}
		}

		class := req.TravelClass
		if class == "" {
			class = travel.ClassEconomy
		}

		offers = append(offers, travel.FlightOffer{
			ID:            fmt.Sprintf("mock_flight_%d", i+1),
			Source:        travel.SourceMock,
			Airline:       tpl.airline,
			FlightNumber:  fmt.Sprintf("%s%d", tpl.code, 1000+seed*100+i),
			DepartureTime: departure,
			ArrivalTime:   arrival,
			Duration:      formatMinutes(tpl.hours*60 + tpl.minutes),
			Price:         round2(perTraveler * (0.9 + 0.15*float64(i))),
			TravelClass:   class,
			Layovers:      layovers,
		})
	}
	return offers
}

func (f *Fallback) SynthesizeHotels(req travel.SearchRequest) travel.HotelSet {
	nights := req.Nights()
	// Nightly baseline from the lodging share of the budget.
	nightly := req.Budget * 0.45 / float64(nights)
	seed := destinationSeed(req.Destination)

	offers := make(travel.HotelSet, 0, len(fallbackHotels))
	for i, tpl := range fallbackHotels {
		perNight := round2(nightly * tpl.factor)
		if perNight < 1 {
			perNight = 1
		}
		offers = append(offers, travel.HotelOffer{
			ID:            fmt.Sprintf("mock_hotel_%d", i+1),
			Source:        travel.SourceMock,
			Name:          tpl.name,
			Address:       fmt.Sprintf("%d Central Ave, %s", 100+seed*10+i, req.Destination),
			PricePerNight: perNight,
			TotalPrice:    round2(perNight * float64(nights)),
			Rating:        tpl.rating,
			Amenities:     tpl.amenities,
			Category:      tpl.category,
		})
	}
	return offers
}

func destinationSeed(destination string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(destination))
	return int(h.Sum32() % 4)
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
