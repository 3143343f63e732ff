package response

import (
	"time"

	"github.com/google/uuid"

	"travel-planner/internal/domain/booking"
	"travel-planner/internal/usecase/queries"
)

type BookingResponse struct {
	BookingID           uuid.UUID            `json:"booking_id"`
	PlanID              uuid.UUID            `json:"plan_id"`
	SelectedFlightID    string               `json:"selected_flight_id"`
	SelectedHotelID     string               `json:"selected_hotel_id"`
	TravelerDetails     map[string]string    `json:"traveler_details"`
	ConfirmationNumbers booking.Confirmation `json:"confirmation_numbers"`
	TotalCost           float64              `json:"total_cost"`
	Status              string               `json:"status"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) BookingResponse {
	return BookingResponse{
		BookingID:           v.ID,
		PlanID:              v.PlanID,
		SelectedFlightID:    v.FlightOfferID,
		SelectedHotelID:     v.HotelOfferID,
		TravelerDetails:     v.TravelerDetails,
		ConfirmationNumbers: v.Confirmation,
		TotalCost:           v.TotalCost,
		Status:              v.Status,
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           v.UpdatedAt,
	}
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int64             `json:"total"`
	Skip     int               `json:"skip"`
	Limit    int               `json:"limit"`
}

func FromBookingList(l *queries.BookingList) BookingListResponse {
	out := make([]BookingResponse, 0, len(l.Bookings))
	for _, v := range l.Bookings {
		out = append(out, FromBookingView(v))
	}
	return BookingListResponse{Bookings: out, Total: l.Total, Skip: l.Skip, Limit: l.Limit}
}
