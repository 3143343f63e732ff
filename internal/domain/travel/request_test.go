//go:build unit

package travel_test

import (
	"testing"
	"time"

	"travel-planner/internal/domain/travel"
	"travel-planner/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.PlanBuilder)
	adjust func(*travel.SearchRequest)
	errIs  error
}

func TestSearchRequestValidate(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	base := func() travel.SearchRequest {
		b := builder.NewPlanBuilder()
		b.StartDate = now.AddDate(0, 1, 0)
		b.EndDate = now.AddDate(0, 1, 4)
		return b.BuildSearchRequest()
	}

	t.Run("basic success case", func(t *testing.T) {
		req := base()
		require.NoError(t, req.Validate(now))
	})

	cases := []testCase{
		{
			name:   "empty destination",
			adjust: func(r *travel.SearchRequest) { r.Destination = "" },
			errIs:  travel.ErrEmptyDestination,
		},
		{
			name:   "end date before start date",
			adjust: func(r *travel.SearchRequest) { r.EndDate = r.StartDate.AddDate(0, 0, -1) },
			errIs:  travel.ErrInvalidDateRange,
		},
		{
			name:   "end date equal to start date",
			adjust: func(r *travel.SearchRequest) { r.EndDate = r.StartDate },
			errIs:  travel.ErrInvalidDateRange,
		},
		{
			name: "start date in the past",
			adjust: func(r *travel.SearchRequest) {
				r.StartDate = now.AddDate(0, 0, -1)
				r.EndDate = now.AddDate(0, 0, 3)
			},
			errIs: travel.ErrPastStartDate,
		},
		{
			name:   "zero budget",
			adjust: func(r *travel.SearchRequest) { r.Budget = 0 },
			errIs:  travel.ErrNonPositiveBudget,
		},
		{
			name:   "negative budget",
			adjust: func(r *travel.SearchRequest) { r.Budget = -500 },
			errIs:  travel.ErrNonPositiveBudget,
		},
		{
			name:   "zero travelers",
			adjust: func(r *travel.SearchRequest) { r.Travelers = 0 },
			errIs:  travel.ErrInvalidTravelers,
		},
		{
			name:   "too many travelers",
			adjust: func(r *travel.SearchRequest) { r.Travelers = 11 },
			errIs:  travel.ErrInvalidTravelers,
		},
		{
			name:   "unknown travel class",
			adjust: func(r *travel.SearchRequest) { r.TravelClass = "orbit" },
			errIs:  travel.ErrInvalidClass,
		},
		{
			name:   "unknown hotel category",
			adjust: func(r *travel.SearchRequest) { r.HotelCategory = "capsule" },
			errIs:  travel.ErrInvalidCategory,
		},
		{
			name:   "empty class and category are allowed",
			adjust: func(r *travel.SearchRequest) { r.TravelClass = ""; r.HotelCategory = "" },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := base()
			tc.adjust(&req)
			err := req.Validate(now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSearchRequestNights(t *testing.T) {
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		end    time.Time
		expect int
	}{
		{name: "four nights", end: start.AddDate(0, 0, 4), expect: 4},
		{name: "single night", end: start.AddDate(0, 0, 1), expect: 1},
		{name: "same day clamps to one night", end: start, expect: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := travel.SearchRequest{StartDate: start, EndDate: tc.end}
			assert.Equal(t, tc.expect, req.Nights())
		})
	}
}

func TestOfferSetFindByID(t *testing.T) {
	b := builder.NewPlanBuilder()
	flights := travel.FlightSet{b.BuildFlightOffer("fl_1", 400), b.BuildFlightOffer("fl_2", 600)}

	got, ok := flights.FindByID("fl_2")
	require.True(t, ok)
	assert.Equal(t, 600.0, got.Price)

	_, ok = flights.FindByID("fl_404")
	assert.False(t, ok)
}
