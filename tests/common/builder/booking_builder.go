//go:build unit || integration

package builder

import (
	"time"

	dombooking "travel-planner/internal/domain/booking"
	reqdto "travel-planner/internal/handler/dto/request"
	"travel-planner/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	PlanID          uuid.UUID
	FlightOfferID   string
	HotelOfferID    string
	TravelerDetails map[string]string
	PaymentDetails  map[string]string
	TotalCost       float64
	Status          dombooking.Status
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &BookingBuilder{
		PlanID:          uuid.New(),
		FlightOfferID:   "fl_1",
		HotelOfferID:    "ht_1",
		TravelerDetails: map[string]string{"name": "Ada Wong", "email": "ada@example.com"},
		PaymentDetails:  map[string]string{"method": "card"},
		TotalCost:       1700,
		Status:          dombooking.StatusConfirmed,
		CreatedAt:       now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		PlanID:          b.PlanID,
		FlightOfferID:   b.FlightOfferID,
		HotelOfferID:    b.HotelOfferID,
		TravelerDetails: b.TravelerDetails,
		PaymentDetails:  b.PaymentDetails,
	}
}

func (b *BookingBuilder) BuildEntity() *dombooking.Booking {
	return dombooking.ReconstructBooking(
		uuid.New(),
		b.PlanID,
		b.FlightOfferID,
		b.HotelOfferID,
		b.TravelerDetails,
		b.PaymentDetails,
		dombooking.Confirmation{
			FlightConfirmation: "FL-0A1B2C3D",
			HotelConfirmation:  "HT-4E5F6A7B",
		},
		b.TotalCost,
		b.Status,
		b.CreatedAt,
		b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	return &queries.BookingView{
		ID:              uuid.New(),
		PlanID:          b.PlanID,
		FlightOfferID:   b.FlightOfferID,
		HotelOfferID:    b.HotelOfferID,
		TravelerDetails: b.TravelerDetails,
		Confirmation: dombooking.Confirmation{
			FlightConfirmation: "FL-0A1B2C3D",
			HotelConfirmation:  "HT-4E5F6A7B",
		},
		TotalCost: b.TotalCost,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildStatusView() *queries.BookingStatusView {
	view := b.BuildViewQuery()
	return &queries.BookingStatusView{
		BookingID:   view.ID,
		Status:      view.Status,
		LastUpdated: view.UpdatedAt,
		Details: queries.BookingStatusDetails{
			ConfirmationNumbers: view.Confirmation,
			TotalCost:           view.TotalCost,
			CreatedAt:           view.CreatedAt,
		},
		NextSteps: []string{
			"Check-in online 24 hours before departure",
			"Print boarding passes",
			"Arrive at airport 2 hours early",
		},
	}
}
