package providers

import (
	"context"
	"fmt"
	"time"

	"travel-planner/internal/domain/travel"
)

// FlightQuery is the request shape handed to flight adapters. Values are
// assumed pre-validated (see travel.SearchRequest).
type FlightQuery struct {
	Origin        string
	Destination   string
	DepartureDate time.Time
	ReturnDate    time.Time
	Travelers     int
	TravelClass   travel.TravelClass
}

// HotelQuery is the request shape handed to hotel adapters.
type HotelQuery struct {
	Destination string
	CheckIn     time.Time
	CheckOut    time.Time
	Travelers   int
	Category    travel.HotelCategory
}

// FlightProvider translates one upstream's API into normalized flight offers.
// One outbound call per Search; retries are the aggregator's policy, not the
// adapter's. An upstream with no availability returns an empty slice, not an
// error.
type FlightProvider interface {
	Name() string
	Search(ctx context.Context, q FlightQuery) ([]travel.FlightOffer, error)
}

// HotelProvider is the hotel-category counterpart of FlightProvider.
type HotelProvider interface {
	Name() string
	Search(ctx context.Context, q HotelQuery) ([]travel.HotelOffer, error)
}

// ProviderError wraps a single upstream failure (network, auth, malformed
// payload). The aggregator absorbs these; they never fail a planning request.
type ProviderError struct {
	Source string
	Err    error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Source, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func newProviderError(source string, err error) *ProviderError {
	return &ProviderError{Source: source, Err: err}
}
