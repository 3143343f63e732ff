package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"travel-planner/internal/domain/booking"
	"travel-planner/internal/infra"
	"travel-planner/internal/pkg/errs"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingView struct {
	ID              uuid.UUID            `json:"id"`
	PlanID          uuid.UUID            `json:"plan_id"`
	FlightOfferID   string               `json:"flight_offer_id"`
	HotelOfferID    string               `json:"hotel_offer_id"`
	TravelerDetails map[string]string    `json:"traveler_details"`
	Confirmation    booking.Confirmation `json:"confirmation_numbers"`
	TotalCost       float64              `json:"total_cost"`
	Status          string               `json:"status"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

type BookingList struct {
	Bookings []*BookingView `json:"bookings"`
	Total    int64          `json:"total"`
	Skip     int            `json:"skip"`
	Limit    int            `json:"limit"`
}

func NewBookingView(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:              b.ID(),
		PlanID:          b.PlanID(),
		FlightOfferID:   b.FlightOfferID(),
		HotelOfferID:    b.HotelOfferID(),
		TravelerDetails: b.TravelerDetails(),
		Confirmation:    b.Confirmation(),
		TotalCost:       b.TotalCost(),
		Status:          string(b.Status()),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	List(ctx context.Context, skip, limit int) ([]*booking.Booking, int64, error)
}

type BookingQueries interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListBookings(ctx context.Context, skip, limit int) (*BookingList, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	b, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return NewBookingView(b), nil
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context, skip, limit int) (*BookingList, error) {
	skip, limit = NormalizePage(skip, limit)

	bookings, total, err := q.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	views := make([]*BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, NewBookingView(b))
	}
	return &BookingList{Bookings: views, Total: total, Skip: skip, Limit: limit}, nil
}
