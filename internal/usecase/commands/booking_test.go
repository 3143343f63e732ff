//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	dombooking "travel-planner/internal/domain/booking"
	domplan "travel-planner/internal/domain/plan"
	"travel-planner/internal/domain/travel"
	"travel-planner/internal/pkg/clock"
	"travel-planner/internal/pkg/errs"
	"travel-planner/internal/usecase/commands"
	"travel-planner/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingRepo struct {
	created   *dombooking.Booking
	updated   *dombooking.Booking
	modified  *dombooking.Booking
	stored    *dombooking.Booking
	createErr error
	findErr   error
}

func (s *stubBookingRepo) Create(_ context.Context, b *dombooking.Booking) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = b
	return nil
}

func (s *stubBookingRepo) UpdateStatus(_ context.Context, b *dombooking.Booking) error {
	s.updated = b
	return nil
}

func (s *stubBookingRepo) UpdateTravelerDetails(_ context.Context, b *dombooking.Booking) error {
	s.modified = b
	return nil
}

func (s *stubBookingRepo) FindByID(_ context.Context, _ uuid.UUID) (*dombooking.Booking, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.stored, nil
}

type stubConfirmer struct {
	flightErr error
	hotelErr  error
}

func (s *stubConfirmer) ConfirmFlight(_ context.Context, offer travel.FlightOffer, _ map[string]string) (string, error) {
	if s.flightErr != nil {
		return "", s.flightErr
	}
	return "FL-" + offer.ID, nil
}

func (s *stubConfirmer) ConfirmHotel(_ context.Context, offer travel.HotelOffer, _ map[string]string, _, _ time.Time) (string, error) {
	if s.hotelErr != nil {
		return "", s.hotelErr
	}
	return "HT-" + offer.ID, nil
}

type bookingFixture struct {
	plan      *domplan.Plan
	plans     *stubPlanRepo
	bookings  *stubBookingRepo
	confirmer *stubConfirmer
	clock     *clock.MockClock
	req       commands.CreateBookingRequest
}

func newBookingFixture(t *testing.T, travelers int) *bookingFixture {
	t.Helper()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	mc := clock.NewMockClock(now)

	b := builder.NewPlanBuilder()
	b.StartDate = now.AddDate(0, 1, 0)
	b.EndDate = now.AddDate(0, 1, 4)
	b.Travelers = travelers
	sel := b.BuildSelection()

	p, err := domplan.NewPlan(&domplan.Services{Clock: mc}, b.BuildSearchRequest(),
		travel.FlightSet{sel.Flight}, travel.HotelSet{sel.Hotel}, sel,
		[]string{"Verify visa requirements for the destination"})
	require.NoError(t, err)

	return &bookingFixture{
		plan:      p,
		plans:     &stubPlanRepo{stored: p},
		bookings:  &stubBookingRepo{},
		confirmer: &stubConfirmer{},
		clock:     mc,
		req: commands.CreateBookingRequest{
			PlanID:          p.ID(),
			FlightOfferID:   sel.Flight.ID,
			HotelOfferID:    sel.Hotel.ID,
			TravelerDetails: map[string]string{"name": "Ada Wong"},
			PaymentDetails:  map[string]string{"method": "card"},
		},
	}
}

func (f *bookingFixture) usecase() commands.BookingCommands {
	return commands.NewBookingUseCase(f.bookings, f.plans, f.confirmer, 2, f.clock, discardLogger())
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("success: confirms both legs and persists", func(t *testing.T) {
		f := newBookingFixture(t, 2)
		view, err := f.usecase().CreateBooking(ctx, f.req)
		require.NoError(t, err)
		require.NotNil(t, view)

		require.NotNil(t, f.bookings.created)
		assert.Equal(t, "confirmed", view.Status)
		assert.Equal(t, "FL-"+f.req.FlightOfferID, view.Confirmation.FlightConfirmation)
		assert.Equal(t, "HT-"+f.req.HotelOfferID, view.Confirmation.HotelConfirmation)

		sel := f.plan.Selection()
		expected := sel.Flight.Price*2 + sel.Hotel.TotalPrice*1
		assert.Equal(t, expected, view.TotalCost)
	})

	t.Run("success: room count follows traveler count", func(t *testing.T) {
		f := newBookingFixture(t, 5)
		view, err := f.usecase().CreateBooking(ctx, f.req)
		require.NoError(t, err)

		// 5 travelers at 2 per room is 3 rooms
		sel := f.plan.Selection()
		expected := sel.Flight.Price*5 + sel.Hotel.TotalPrice*3
		assert.Equal(t, expected, view.TotalCost)
	})

	t.Run("error: plan not found", func(t *testing.T) {
		f := newBookingFixture(t, 2)
		f.plans.findErr = notFoundErr()

		_, err := f.usecase().CreateBooking(ctx, f.req)
		assert.ErrorIs(t, err, commands.ErrBookingPlanNotFound)
	})

	t.Run("error: expired plan is rejected", func(t *testing.T) {
		f := newBookingFixture(t, 2)
		f.clock.Add(domplan.DefaultTTL + time.Hour)

		_, err := f.usecase().CreateBooking(ctx, f.req)
		assert.ErrorIs(t, err, commands.ErrPlanExpired)
		assert.Nil(t, f.bookings.created)
	})

	t.Run("error: offer ids must come from the plan", func(t *testing.T) {
		f := newBookingFixture(t, 2)
		f.req.FlightOfferID = "fl_unknown"

		_, err := f.usecase().CreateBooking(ctx, f.req)
		assert.True(t, errs.Is(err, commands.ErrOfferNotInPlan))

		f = newBookingFixture(t, 2)
		f.req.HotelOfferID = "ht_unknown"

		_, err = f.usecase().CreateBooking(ctx, f.req)
		assert.True(t, errs.Is(err, commands.ErrOfferNotInPlan))
	})

	t.Run("error: either leg failing aborts the booking", func(t *testing.T) {
		f := newBookingFixture(t, 2)
		f.confirmer.flightErr = errors.New("airline systems down")

		_, err := f.usecase().CreateBooking(ctx, f.req)
		assert.True(t, errs.Is(err, commands.ErrConfirmationFailed))
		assert.Nil(t, f.bookings.created)

		f = newBookingFixture(t, 2)
		f.confirmer.hotelErr = errors.New("property unavailable")

		_, err = f.usecase().CreateBooking(ctx, f.req)
		assert.True(t, errs.Is(err, commands.ErrConfirmationFailed))
		assert.Nil(t, f.bookings.created)
	})
}

func TestBookingTransitionCommands(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	newStored := func(t *testing.T, mc *clock.MockClock) *dombooking.Booking {
		t.Helper()
		b, err := dombooking.NewBooking(&dombooking.Services{Clock: mc}, uuid.New(),
			"fl_1", "ht_1", map[string]string{"name": "Ada Wong"}, nil,
			dombooking.Confirmation{FlightConfirmation: "FL-1", HotelConfirmation: "HT-1"}, 1700)
		require.NoError(t, err)
		return b
	}

	t.Run("cancel persists the new status", func(t *testing.T) {
		f := newBookingFixture(t, 2)
		mc := clock.NewMockClock(now)
		f.bookings.stored = newStored(t, mc)

		require.NoError(t, f.usecase().CancelBooking(ctx, f.bookings.stored.ID()))
		require.NotNil(t, f.bookings.updated)
		assert.Equal(t, dombooking.StatusCancelled, f.bookings.updated.Status())
	})

	t.Run("pay persists the new status", func(t *testing.T) {
		f := newBookingFixture(t, 2)
		mc := clock.NewMockClock(now)
		f.bookings.stored = newStored(t, mc)

		require.NoError(t, f.usecase().PayBooking(ctx, f.bookings.stored.ID()))
		require.NotNil(t, f.bookings.updated)
		assert.Equal(t, dombooking.StatusPaid, f.bookings.updated.Status())
	})

	t.Run("terminal status surfaces the domain error", func(t *testing.T) {
		f := newBookingFixture(t, 2)
		mc := clock.NewMockClock(now)
		stored := newStored(t, mc)
		require.NoError(t, stored.Cancel(&dombooking.Services{Clock: mc}))
		f.bookings.stored = stored

		err := f.usecase().PayBooking(ctx, stored.ID())
		assert.ErrorIs(t, err, dombooking.ErrTerminalStatus)
		assert.Nil(t, f.bookings.updated)
	})

	t.Run("missing booking maps to command error", func(t *testing.T) {
		f := newBookingFixture(t, 2)
		f.bookings.findErr = notFoundErr()

		err := f.usecase().CancelBooking(ctx, uuid.New())
		assert.ErrorIs(t, err, commands.ErrBookingNotFoundWrite)
	})
}

func TestModifyBooking(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	newStored := func(t *testing.T, mc *clock.MockClock) *dombooking.Booking {
		t.Helper()
		b, err := dombooking.NewBooking(&dombooking.Services{Clock: mc}, uuid.New(),
			"fl_1", "ht_1", map[string]string{"name": "Ada Wong"}, nil,
			dombooking.Confirmation{FlightConfirmation: "FL-1", HotelConfirmation: "HT-1"}, 1700)
		require.NoError(t, err)
		return b
	}

	t.Run("replaces traveler details and persists them", func(t *testing.T) {
		f := newBookingFixture(t, 2)
		mc := clock.NewMockClock(now)
		f.bookings.stored = newStored(t, mc)

		details := map[string]string{"name": "Ada Wong", "passport": "X1234567"}
		require.NoError(t, f.usecase().ModifyBooking(ctx, f.bookings.stored.ID(), details))
		require.NotNil(t, f.bookings.modified)
		assert.Equal(t, details, f.bookings.modified.TravelerDetails())
		assert.Equal(t, dombooking.StatusConfirmed, f.bookings.modified.Status())
	})

	t.Run("error: terminal booking cannot be modified", func(t *testing.T) {
		f := newBookingFixture(t, 2)
		mc := clock.NewMockClock(now)
		stored := newStored(t, mc)
		require.NoError(t, stored.Cancel(&dombooking.Services{Clock: mc}))
		f.bookings.stored = stored

		err := f.usecase().ModifyBooking(ctx, stored.ID(), map[string]string{"name": "Ada Wong"})
		assert.ErrorIs(t, err, dombooking.ErrTerminalStatus)
		assert.Nil(t, f.bookings.modified)
	})

	t.Run("error: empty details are rejected", func(t *testing.T) {
		f := newBookingFixture(t, 2)
		mc := clock.NewMockClock(now)
		f.bookings.stored = newStored(t, mc)

		err := f.usecase().ModifyBooking(ctx, f.bookings.stored.ID(), map[string]string{})
		assert.ErrorIs(t, err, dombooking.ErrMissingTraveler)
		assert.Nil(t, f.bookings.modified)
	})

	t.Run("error: missing booking maps to command error", func(t *testing.T) {
		f := newBookingFixture(t, 2)
		f.bookings.findErr = notFoundErr()

		err := f.usecase().ModifyBooking(ctx, uuid.New(), map[string]string{"name": "Ada Wong"})
		assert.ErrorIs(t, err, commands.ErrBookingNotFoundWrite)
	})
}
