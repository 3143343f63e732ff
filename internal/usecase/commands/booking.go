package commands

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	dombooking "travel-planner/internal/domain/booking"
	"travel-planner/internal/infra"
	"travel-planner/internal/pkg/clock"
	"travel-planner/internal/pkg/errs"
	"travel-planner/internal/usecase/queries"
)

var (
	ErrBookingPlanNotFound  = errs.New("plan not found for booking")
	ErrPlanExpired          = errs.New("plan has expired, refresh it before booking")
	ErrOfferNotInPlan       = errs.New("offer not found in plan")
	ErrBookingNotFoundWrite = errs.New("booking not found")
	ErrConfirmationFailed   = errs.New("booking confirmation failed")
)

type CreateBookingRequest struct {
	PlanID          uuid.UUID
	FlightOfferID   string
	HotelOfferID    string
	TravelerDetails map[string]string
	PaymentDetails  map[string]string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*queries.BookingView, error)
	ModifyBooking(ctx context.Context, id uuid.UUID, travelerDetails map[string]string) error
	CancelBooking(ctx context.Context, id uuid.UUID) error
	PayBooking(ctx context.Context, id uuid.UUID) error
}

type bookingUseCaseImpl struct {
	bookings     BookingRepository
	plans        PlanRepository
	confirmer    Confirmer
	roomCapacity int
	clock        clock.Clock
	logger       *slog.Logger
}

func NewBookingUseCase(
	bookings BookingRepository,
	plans PlanRepository,
	confirmer Confirmer,
	roomCapacity int,
	clk clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingUseCaseImpl{
		bookings:     bookings,
		plans:        plans,
		confirmer:    confirmer,
		roomCapacity: roomCapacity,
		clock:        clk,
		logger:       logger,
	}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest) (*queries.BookingView, error) {
	p, err := uc.plans.FindByID(ctx, req.PlanID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingPlanNotFound
		}
		return nil, err
	}
	if p.HasExpired(uc.clock.Now()) {
		return nil, ErrPlanExpired
	}

	flight, ok := p.Flights().FindByID(req.FlightOfferID)
	if !ok {
		return nil, errs.Mark(errs.New("flight offer "+req.FlightOfferID), ErrOfferNotInPlan)
	}
	hotel, ok := p.Hotels().FindByID(req.HotelOfferID)
	if !ok {
		return nil, errs.Mark(errs.New("hotel offer "+req.HotelOfferID), ErrOfferNotInPlan)
	}

	// Both legs are confirmed concurrently; either failure aborts the
	// booking before anything is persisted.
	planReq := p.Request()
	var (
		wg                    sync.WaitGroup
		flightConf, hotelConf string
		flightErr, hotelErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		flightConf, flightErr = uc.confirmer.ConfirmFlight(ctx, flight, req.TravelerDetails)
	}()
	go func() {
		defer wg.Done()
		hotelConf, hotelErr = uc.confirmer.ConfirmHotel(ctx, hotel, req.TravelerDetails, planReq.StartDate, planReq.EndDate)
	}()
	wg.Wait()

	if flightErr != nil {
		return nil, errs.Mark(flightErr, ErrConfirmationFailed)
	}
	if hotelErr != nil {
		return nil, errs.Mark(hotelErr, ErrConfirmationFailed)
	}

	rooms := (planReq.Travelers + uc.roomCapacity - 1) / uc.roomCapacity
	totalCost := flight.Price*float64(planReq.Travelers) + hotel.TotalPrice*float64(rooms)

	services := &dombooking.Services{Clock: uc.clock}
	b, err := dombooking.NewBooking(services, req.PlanID, req.FlightOfferID, req.HotelOfferID,
		req.TravelerDetails, req.PaymentDetails,
		dombooking.Confirmation{FlightConfirmation: flightConf, HotelConfirmation: hotelConf},
		totalCost)
	if err != nil {
		return nil, err
	}

	if err := uc.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "booking created",
		slog.String("booking_id", b.ID().String()),
		slog.String("plan_id", req.PlanID.String()),
		slog.Float64("total_cost", totalCost))
	return queries.NewBookingView(b), nil
}

// ModifyBooking replaces the traveler details of a booking that has not
// reached a terminal status. Offer ids and cost are fixed at creation.
func (uc *bookingUseCaseImpl) ModifyBooking(ctx context.Context, id uuid.UUID, travelerDetails map[string]string) error {
	b, err := uc.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFoundWrite
		}
		return err
	}

	if err := b.UpdateTravelerDetails(&dombooking.Services{Clock: uc.clock}, travelerDetails); err != nil {
		return err
	}
	if err := uc.bookings.UpdateTravelerDetails(ctx, b); err != nil {
		return err
	}

	uc.logger.InfoContext(ctx, "booking modified",
		slog.String("booking_id", id.String()))
	return nil
}

func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, id uuid.UUID) error {
	return uc.transition(ctx, id, func(b *dombooking.Booking, services *dombooking.Services) error {
		return b.Cancel(services)
	})
}

func (uc *bookingUseCaseImpl) PayBooking(ctx context.Context, id uuid.UUID) error {
	return uc.transition(ctx, id, func(b *dombooking.Booking, services *dombooking.Services) error {
		return b.Pay(services)
	})
}

func (uc *bookingUseCaseImpl) transition(
	ctx context.Context,
	id uuid.UUID,
	apply func(*dombooking.Booking, *dombooking.Services) error,
) error {
	b, err := uc.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFoundWrite
		}
		return err
	}

	if err := apply(b, &dombooking.Services{Clock: uc.clock}); err != nil {
		return err
	}
	if err := uc.bookings.UpdateStatus(ctx, b); err != nil {
		return err
	}

	uc.logger.InfoContext(ctx, "booking status changed",
		slog.String("booking_id", id.String()),
		slog.String("status", string(b.Status())))
	return nil
}
