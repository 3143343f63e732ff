package providers

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"travel-planner/internal/domain/travel"
)

// ConfirmationService issues booking confirmation numbers. Upstreams offer no
// sandbox booking API, so codes are derived deterministically from the offer
// and traveler so retries of the same booking produce the same numbers.
type ConfirmationService struct{}

func NewConfirmationService() *ConfirmationService { return &ConfirmationService{} }

func (s *ConfirmationService) ConfirmFlight(_ context.Context, offer travel.FlightOffer, traveler map[string]string) (string, error) {
	return confirmationCode("FL", offer.ID, traveler["name"]), nil
}

func (s *ConfirmationService) ConfirmHotel(_ context.Context, offer travel.HotelOffer, traveler map[string]string, checkIn, _ time.Time) (string, error) {
	return confirmationCode("HT", offer.ID+checkIn.Format("20060102"), traveler["name"]), nil
}

func confirmationCode(prefix, offerKey, travelerName string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(offerKey))
	_, _ = h.Write([]byte(travelerName))
	return fmt.Sprintf("%s-%08X", prefix, h.Sum32())
}
