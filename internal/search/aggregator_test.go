//go:build unit

package search

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-planner/internal/domain/travel"
	"travel-planner/internal/providers"
)

type stubFlightProvider struct {
	name   string
	offers []travel.FlightOffer
	err    error
	delay  time.Duration
}

func (s *stubFlightProvider) Name() string { return s.name }

func (s *stubFlightProvider) Search(ctx context.Context, _ providers.FlightQuery) ([]travel.FlightOffer, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.offers, s.err
}

type stubHotelProvider struct {
	name   string
	offers []travel.HotelOffer
	err    error
}

func (s *stubHotelProvider) Name() string { return s.name }

func (s *stubHotelProvider) Search(_ context.Context, _ providers.HotelQuery) ([]travel.HotelOffer, error) {
	return s.offers, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func searchRequest() travel.SearchRequest {
	return travel.SearchRequest{
		Destination: "Paris",
		StartDate:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		Budget:      2000,
		Travelers:   2,
	}
}

func flightOffer(id string, price float64) travel.FlightOffer {
	dep := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	return travel.FlightOffer{
		ID: id, Source: "stub", Airline: "Stub Air", FlightNumber: "ST1",
		DepartureTime: dep, ArrivalTime: dep.Add(5 * time.Hour),
		Duration: "5h", Price: price, TravelClass: travel.ClassEconomy,
	}
}

func hotelOffer(id string, total, rating float64) travel.HotelOffer {
	return travel.HotelOffer{
		ID: id, Source: "stub", Name: "Stub Hotel", PricePerNight: total / 4,
		TotalPrice: total, Rating: rating, Category: travel.CategoryStandard,
	}
}

func TestAggregator_Collect_MergesInAdapterOrder(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(
		[]providers.FlightProvider{
			&stubFlightProvider{name: "a", offers: []travel.FlightOffer{flightOffer("a1", 400)}, delay: 20 * time.Millisecond},
			&stubFlightProvider{name: "b", offers: []travel.FlightOffer{flightOffer("b1", 500)}},
		},
		[]providers.HotelProvider{
			&stubHotelProvider{name: "h", offers: []travel.HotelOffer{hotelOffer("h1", 800, 4.0)}},
		},
		providers.NewFallback(), time.Second, 10, testLogger(),
	)

	flights, hotels, partial := agg.Collect(context.Background(), searchRequest())

	require.Len(t, flights, 2)
	assert.Equal(t, "a1", flights[0].ID, "configured order wins over arrival order")
	assert.Equal(t, "b1", flights[1].ID)
	require.Len(t, hotels, 1)
	assert.False(t, partial.Any())
	assert.False(t, partial.FlightFallback)
}

func TestAggregator_Collect_PartialFailure(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(
		[]providers.FlightProvider{
			&stubFlightProvider{name: "dead", err: errors.New("boom")},
			&stubFlightProvider{name: "live", offers: []travel.FlightOffer{flightOffer("f1", 400)}},
		},
		[]providers.HotelProvider{
			&stubHotelProvider{name: "h", offers: []travel.HotelOffer{hotelOffer("h1", 800, 4.0)}},
		},
		providers.NewFallback(), time.Second, 10, testLogger(),
	)

	flights, hotels, partial := agg.Collect(context.Background(), searchRequest())

	require.Len(t, flights, 1)
	assert.Equal(t, "f1", flights[0].ID)
	require.Len(t, hotels, 1)
	assert.Equal(t, []string{"dead"}, partial.FlightSources)
	assert.False(t, partial.FlightFallback, "one healthy adapter is enough")
}

func TestAggregator_Collect_FallbackWhenAllFail(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(
		[]providers.FlightProvider{
			&stubFlightProvider{name: "f1", err: errors.New("down")},
			&stubFlightProvider{name: "f2", err: errors.New("down")},
		},
		[]providers.HotelProvider{
			&stubHotelProvider{name: "h1", err: errors.New("down")},
		},
		providers.NewFallback(), time.Second, 10, testLogger(),
	)

	flights, hotels, partial := agg.Collect(context.Background(), searchRequest())

	require.NotEmpty(t, flights)
	require.NotEmpty(t, hotels)
	for _, f := range flights {
		assert.Equal(t, travel.SourceMock, f.Source)
	}
	for _, h := range hotels {
		assert.Equal(t, travel.SourceMock, h.Source)
	}
	assert.True(t, partial.FlightFallback)
	assert.True(t, partial.HotelFallback)
	assert.ElementsMatch(t, []string{"f1", "f2"}, partial.FlightSources)
}

func TestAggregator_Collect_FallbackWhenProvidersReturnNothing(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(
		[]providers.FlightProvider{&stubFlightProvider{name: "empty"}},
		[]providers.HotelProvider{&stubHotelProvider{name: "empty"}},
		providers.NewFallback(), time.Second, 10, testLogger(),
	)

	flights, hotels, partial := agg.Collect(context.Background(), searchRequest())

	require.NotEmpty(t, flights)
	require.NotEmpty(t, hotels)
	assert.True(t, partial.FlightFallback)
	assert.True(t, partial.HotelFallback)
	assert.False(t, partial.Any(), "empty results are not failures")
}

func TestAggregator_Collect_TimeoutDiscardsLateResults(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(
		[]providers.FlightProvider{
			&stubFlightProvider{name: "slow", offers: []travel.FlightOffer{flightOffer("late", 400)}, delay: time.Second},
			&stubFlightProvider{name: "fast", offers: []travel.FlightOffer{flightOffer("fast", 500)}},
		},
		[]providers.HotelProvider{
			&stubHotelProvider{name: "h", offers: []travel.HotelOffer{hotelOffer("h1", 800, 4.0)}},
		},
		providers.NewFallback(), 50*time.Millisecond, 10, testLogger(),
	)

	flights, _, partial := agg.Collect(context.Background(), searchRequest())

	require.Len(t, flights, 1)
	assert.Equal(t, "fast", flights[0].ID)
	assert.Equal(t, []string{"slow"}, partial.FlightSources)
}

func TestAggregator_Collect_CapsOffers(t *testing.T) {
	t.Parallel()

	manyFlights := make([]travel.FlightOffer, 8)
	for i := range manyFlights {
		manyFlights[i] = flightOffer("f", 400)
	}
	agg := NewAggregator(
		[]providers.FlightProvider{
			&stubFlightProvider{name: "a", offers: manyFlights},
			&stubFlightProvider{name: "b", offers: manyFlights},
		},
		[]providers.HotelProvider{
			&stubHotelProvider{name: "h", offers: []travel.HotelOffer{hotelOffer("h1", 800, 4.0)}},
		},
		providers.NewFallback(), time.Second, 10, testLogger(),
	)

	flights, _, _ := agg.Collect(context.Background(), searchRequest())
	assert.Len(t, flights, 10)
}

func TestAggregator_Stats(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(
		[]providers.FlightProvider{
			&stubFlightProvider{name: "ok", offers: []travel.FlightOffer{flightOffer("f1", 400)}},
			&stubFlightProvider{name: "bad", err: errors.New("down")},
		},
		[]providers.HotelProvider{
			&stubHotelProvider{name: "h", offers: []travel.HotelOffer{hotelOffer("h1", 800, 4.0)}},
		},
		providers.NewFallback(), time.Second, 10, testLogger(),
	)

	agg.Collect(context.Background(), searchRequest())
	agg.Collect(context.Background(), searchRequest())

	stats := agg.Stats()
	assert.Equal(t, uint64(2), stats.Searches)
	assert.Equal(t, uint64(6), stats.ProvidersQueried)
	assert.Equal(t, uint64(4), stats.ProvidersSucceeded)
	assert.Equal(t, uint64(2), stats.ProvidersFailed)
	assert.Equal(t, uint64(0), stats.FallbacksServed)
}
