package search

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"travel-planner/internal/domain/travel"
	"travel-planner/internal/providers"
)

const defaultOrigin = "NYC"

// PartialFailure records which upstream adapters failed during a collection
// round. It is advisory only; a plan is produced regardless.
type PartialFailure struct {
	FlightSources  []string
	HotelSources   []string
	FlightFallback bool
	HotelFallback  bool
}

func (p PartialFailure) Any() bool {
	return len(p.FlightSources) > 0 || len(p.HotelSources) > 0
}

// Stats is a snapshot of the aggregator's lifetime counters, exposed on the
// metrics endpoint.
type Stats struct {
	Searches           uint64
	ProvidersQueried   uint64
	ProvidersSucceeded uint64
	ProvidersFailed    uint64
	FallbacksServed    uint64
}

// Aggregator fans a search request out to every configured adapter, one
// goroutine per (category, provider), and merges whatever arrives inside the
// collection window. A category whose adapters all fail or return nothing is
// substituted with synthesized offers, so Collect never fails.
type Aggregator struct {
	flights  []providers.FlightProvider
	hotels   []providers.HotelProvider
	fallback *providers.Fallback

	timeout   time.Duration
	maxOffers int
	logger    *slog.Logger

	searches           atomic.Uint64
	providersQueried   atomic.Uint64
	providersSucceeded atomic.Uint64
	providersFailed    atomic.Uint64
	fallbacksServed    atomic.Uint64
}

func NewAggregator(
	flights []providers.FlightProvider,
	hotels []providers.HotelProvider,
	fallback *providers.Fallback,
	timeout time.Duration,
	maxOffers int,
	logger *slog.Logger,
) *Aggregator {
	return &Aggregator{
		flights:   flights,
		hotels:    hotels,
		fallback:  fallback,
		timeout:   timeout,
		maxOffers: maxOffers,
		logger:    logger,
	}
}

func (a *Aggregator) Collect(ctx context.Context, req travel.SearchRequest) (travel.FlightSet, travel.HotelSet, PartialFailure) {
	a.searches.Add(1)

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		partial PartialFailure
	)

	flightResults := make([]travel.FlightSet, len(a.flights))
	hotelResults := make([]travel.HotelSet, len(a.hotels))

	fq := flightQuery(req)
	for i, p := range a.flights {
		wg.Add(1)
		go func(i int, p providers.FlightProvider) {
			defer wg.Done()
			a.providersQueried.Add(1)

			offers, err := p.Search(ctx, fq)
			if err != nil {
				a.providersFailed.Add(1)
				a.logger.WarnContext(ctx, "flight provider failed",
					slog.String("provider", p.Name()), slog.String("error", err.Error()))
				mu.Lock()
				partial.FlightSources = append(partial.FlightSources, p.Name())
				mu.Unlock()
				return
			}
			a.providersSucceeded.Add(1)
			mu.Lock()
			flightResults[i] = offers
			mu.Unlock()
		}(i, p)
	}

	hq := hotelQuery(req)
	for i, p := range a.hotels {
		wg.Add(1)
		go func(i int, p providers.HotelProvider) {
			defer wg.Done()
			a.providersQueried.Add(1)

			offers, err := p.Search(ctx, hq)
			if err != nil {
				a.providersFailed.Add(1)
				a.logger.WarnContext(ctx, "hotel provider failed",
					slog.String("provider", p.Name()), slog.String("error", err.Error()))
				mu.Lock()
				partial.HotelSources = append(partial.HotelSources, p.Name())
				mu.Unlock()
				return
			}
			a.providersSucceeded.Add(1)
			mu.Lock()
			hotelResults[i] = offers
			mu.Unlock()
		}(i, p)
	}

	wg.Wait()

	// Merge preserves the configured adapter order regardless of arrival
	// order, keeping results reproducible across runs.
	flights := make(travel.FlightSet, 0, a.maxOffers)
	for _, set := range flightResults {
		flights = append(flights, set...)
	}
	hotels := make(travel.HotelSet, 0, a.maxOffers)
	for _, set := range hotelResults {
		hotels = append(hotels, set...)
	}

	if flights.Empty() {
		a.fallbacksServed.Add(1)
		a.logger.InfoContext(ctx, "no flight offers from providers, synthesizing",
			slog.String("destination", req.Destination))
		flights = a.fallback.SynthesizeFlights(req)
		partial.FlightFallback = true
	}
	if hotels.Empty() {
		a.fallbacksServed.Add(1)
		a.logger.InfoContext(ctx, "no hotel offers from providers, synthesizing",
			slog.String("destination", req.Destination))
		hotels = a.fallback.SynthesizeHotels(req)
		partial.HotelFallback = true
	}

	if len(flights) > a.maxOffers {
		flights = flights[:a.maxOffers]
	}
	if len(hotels) > a.maxOffers {
		hotels = hotels[:a.maxOffers]
	}
	return flights, hotels, partial
}

// Stats snapshots the lifetime counters.
func (a *Aggregator) Stats() Stats {
	return Stats{
		Searches:           a.searches.Load(),
		ProvidersQueried:   a.providersQueried.Load(),
		ProvidersSucceeded: a.providersSucceeded.Load(),
		ProvidersFailed:    a.providersFailed.Load(),
		FallbacksServed:    a.fallbacksServed.Load(),
	}
}

func flightQuery(req travel.SearchRequest) providers.FlightQuery {
	origin := req.Preferences["origin"]
	if origin == "" {
		origin = defaultOrigin
	}
	return providers.FlightQuery{
		Origin:        origin,
		Destination:   req.Destination,
		DepartureDate: req.StartDate,
		ReturnDate:    req.EndDate,
		Travelers:     req.Travelers,
		TravelClass:   req.TravelClass,
	}
}

func hotelQuery(req travel.SearchRequest) providers.HotelQuery {
	return providers.HotelQuery{
		Destination: req.Destination,
		CheckIn:     req.StartDate,
		CheckOut:    req.EndDate,
		Travelers:   req.Travelers,
		Category:    req.HotelCategory,
	}
}
