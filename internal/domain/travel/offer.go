package travel

import "time"

// SourceMock tags offers produced by the fallback generator instead of a real
// upstream.
const SourceMock = "mock"

// FlightOffer is a normalized flight option. Prices are USD per traveler;
// times are UTC. Offers are value objects identified by (Source, ID).
type FlightOffer struct {
	ID            string      `json:"id"`
	Source        string      `json:"source"`
	Airline       string      `json:"airline"`
	FlightNumber  string      `json:"flight_number"`
	DepartureTime time.Time   `json:"departure_time"`
	ArrivalTime   time.Time   `json:"arrival_time"`
	Duration      string      `json:"duration"`
	Price         float64     `json:"price"`
	TravelClass   TravelClass `json:"travel_class"`
	Layovers      []string    `json:"layovers"`
	BookingURL    string      `json:"booking_url,omitempty"`
}

// FlightHours returns the airborne time in fractional hours for scoring.
func (o FlightOffer) FlightHours() float64 {
	h := o.ArrivalTime.Sub(o.DepartureTime).Hours()
	if h < 0 {
		return 0
	}
	return h
}

// HotelOffer is a normalized hotel option. TotalPrice is nightly rate times
// nights for one room; the optimizer multiplies rooms when the party exceeds
// room capacity.
type HotelOffer struct {
	ID            string        `json:"id"`
	Source        string        `json:"source"`
	Name          string        `json:"name"`
	Address       string        `json:"address"`
	PricePerNight float64       `json:"price_per_night"`
	TotalPrice    float64       `json:"total_price"`
	Rating        float64       `json:"rating"`
	Amenities     []string      `json:"amenities"`
	Category      HotelCategory `json:"category"`
	BookingURL    string        `json:"booking_url,omitempty"`
}

// OfferKey identifies an offer across providers.
type OfferKey struct {
	Source string
	ID     string
}

func (o FlightOffer) Key() OfferKey { return OfferKey{Source: o.Source, ID: o.ID} }
func (o HotelOffer) Key() OfferKey  { return OfferKey{Source: o.Source, ID: o.ID} }

// FlightSet and HotelSet preserve provider response order; merge order is the
// configured adapter priority order.
type FlightSet []FlightOffer

type HotelSet []HotelOffer

func (s FlightSet) Empty() bool { return len(s) == 0 }
func (s HotelSet) Empty() bool  { return len(s) == 0 }

// FindByID returns the first offer with the given id, which is how bookings
// reference a plan's stored options.
func (s FlightSet) FindByID(id string) (FlightOffer, bool) {
	for _, o := range s {
		if o.ID == id {
			return o, true
		}
	}
	return FlightOffer{}, false
}

func (s HotelSet) FindByID(id string) (HotelOffer, bool) {
	for _, o := range s {
		if o.ID == id {
			return o, true
		}
	}
	return HotelOffer{}, false
}
