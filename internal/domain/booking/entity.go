package booking

import (
	"errors"
	"time"

	"travel-planner/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrTerminalStatus    = errors.New("booking is in a terminal status")
	ErrMissingTraveler   = errors.New("traveler details are required")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPaid, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// CanTransition encodes the monotonic status machine. Cancellation is the one
// exception: it is reachable from any non-terminal status.
func (s Status) CanTransition(to Status) bool {
	if s.Terminal() {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	switch s {
	case StatusPending:
		return to == StatusConfirmed
	case StatusConfirmed:
		return to == StatusPaid
	case StatusPaid:
		return to == StatusCompleted
	}
	return false
}

type Services struct {
	Clock clock.Clock
}

// Confirmation holds the upstream confirmation numbers for both legs.
type Confirmation struct {
	FlightConfirmation string `json:"flight"`
	HotelConfirmation  string `json:"hotel"`
}

// Booking derives from a stored plan plus traveler details. Confirmation of
// the individual legs is a call-through to external providers; the entity only
// tracks the outcome.
type Booking struct {
	id              uuid.UUID
	planID          uuid.UUID
	flightOfferID   string
	hotelOfferID    string
	travelerDetails map[string]string
	paymentDetails  map[string]string
	confirmation    Confirmation
	totalCost       float64
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

func NewBooking(
	services *Services,
	planID uuid.UUID,
	flightOfferID, hotelOfferID string,
	travelerDetails, paymentDetails map[string]string,
	confirmation Confirmation,
	totalCost float64,
) (*Booking, error) {
	if len(travelerDetails) == 0 {
		return nil, ErrMissingTraveler
	}

	now := services.Clock.Now()
	return &Booking{
		id:              uuid.New(),
		planID:          planID,
		flightOfferID:   flightOfferID,
		hotelOfferID:    hotelOfferID,
		travelerDetails: travelerDetails,
		paymentDetails:  paymentDetails,
		confirmation:    confirmation,
		totalCost:       totalCost,
		status:          StatusConfirmed,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructBooking(
	id, planID uuid.UUID,
	flightOfferID, hotelOfferID string,
	travelerDetails, paymentDetails map[string]string,
	confirmation Confirmation,
	totalCost float64,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		planID:          planID,
		flightOfferID:   flightOfferID,
		hotelOfferID:    hotelOfferID,
		travelerDetails: travelerDetails,
		paymentDetails:  paymentDetails,
		confirmation:    confirmation,
		totalCost:       totalCost,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (b *Booking) transition(services *Services, to Status) error {
	if b.status.Terminal() {
		return ErrTerminalStatus
	}
	if !b.status.CanTransition(to) {
		return ErrInvalidTransition
	}
	b.status = to
	b.updatedAt = services.Clock.Now()
	return nil
}

// UpdateTravelerDetails replaces the traveler details on a live booking.
// Terminal bookings cannot be modified.
func (b *Booking) UpdateTravelerDetails(services *Services, details map[string]string) error {
	if b.status.Terminal() {
		return ErrTerminalStatus
	}
	if len(details) == 0 {
		return ErrMissingTraveler
	}
	b.travelerDetails = details
	b.updatedAt = services.Clock.Now()
	return nil
}

func (b *Booking) Cancel(services *Services) error {
	return b.transition(services, StatusCancelled)
}

func (b *Booking) Pay(services *Services) error {
	return b.transition(services, StatusPaid)
}

func (b *Booking) Complete(services *Services) error {
	return b.transition(services, StatusCompleted)
}

func (b *Booking) ID() uuid.UUID                      { return b.id }
func (b *Booking) PlanID() uuid.UUID                  { return b.planID }
func (b *Booking) FlightOfferID() string              { return b.flightOfferID }
func (b *Booking) HotelOfferID() string               { return b.hotelOfferID }
func (b *Booking) TravelerDetails() map[string]string { return b.travelerDetails }
func (b *Booking) PaymentDetails() map[string]string  { return b.paymentDetails }
func (b *Booking) Confirmation() Confirmation         { return b.confirmation }
func (b *Booking) TotalCost() float64                 { return b.totalCost }
func (b *Booking) Status() Status                     { return b.status }
func (b *Booking) CreatedAt() time.Time               { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time               { return b.updatedAt }
