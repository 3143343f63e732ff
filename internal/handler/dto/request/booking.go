package request

import (
	"github.com/google/uuid"

	"travel-planner/internal/usecase/commands"
)

type CreateBookingRequest struct {
	PlanID          uuid.UUID         `json:"plan_id" binding:"required"`
	FlightOfferID   string            `json:"selected_flight_id" binding:"required"`
	HotelOfferID    string            `json:"selected_hotel_id" binding:"required"`
	TravelerDetails map[string]string `json:"traveler_details" binding:"required"`
	PaymentDetails  map[string]string `json:"payment_details"`
}

type ModifyBookingRequest struct {
	TravelerDetails map[string]string `json:"traveler_details" binding:"required"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		PlanID:          r.PlanID,
		FlightOfferID:   r.FlightOfferID,
		HotelOfferID:    r.HotelOfferID,
		TravelerDetails: r.TravelerDetails,
		PaymentDetails:  r.PaymentDetails,
	}
}
