package travel

import (
	"errors"
	"time"
)

var (
	ErrEmptyDestination  = errors.New("destination is required")
	ErrInvalidDateRange  = errors.New("end date must be after start date")
	ErrPastStartDate     = errors.New("start date must be in the future")
	ErrNonPositiveBudget = errors.New("budget must be positive")
	ErrInvalidTravelers  = errors.New("travelers must be between 1 and 10")
	ErrInvalidClass      = errors.New("invalid travel class")
	ErrInvalidCategory   = errors.New("invalid hotel category")
)

type TravelClass string

const (
	ClassEconomy        TravelClass = "economy"
	ClassPremiumEconomy TravelClass = "premium_economy"
	ClassBusiness       TravelClass = "business"
	ClassFirst          TravelClass = "first"
)

func (c TravelClass) Valid() bool {
	switch c {
	case ClassEconomy, ClassPremiumEconomy, ClassBusiness, ClassFirst:
		return true
	}
	return false
}

type HotelCategory string

const (
	CategoryBudget   HotelCategory = "budget"
	CategoryStandard HotelCategory = "standard"
	CategoryLuxury   HotelCategory = "luxury"
	CategoryResort   HotelCategory = "resort"
)

func (c HotelCategory) Valid() bool {
	switch c {
	case CategoryBudget, CategoryStandard, CategoryLuxury, CategoryResort:
		return true
	}
	return false
}

const (
	MinTravelers = 1
	MaxTravelers = 10
)

// SearchRequest is the immutable input to the planning pipeline. The handler
// validates it before the core ever sees it; the core assumes the invariants
// below hold.
type SearchRequest struct {
	Destination   string            `json:"destination"`
	StartDate     time.Time         `json:"start_date"`
	EndDate       time.Time         `json:"end_date"`
	Budget        float64           `json:"budget"`
	Travelers     int               `json:"travelers"`
	TravelClass   TravelClass       `json:"travel_class"`
	HotelCategory HotelCategory     `json:"hotel_category"`
	Preferences   map[string]string `json:"preferences,omitempty"`
}

func (r SearchRequest) Validate(now time.Time) error {
	if r.Destination == "" {
		return ErrEmptyDestination
	}
	if !r.EndDate.After(r.StartDate) {
		return ErrInvalidDateRange
	}
	if !r.StartDate.After(now) {
		return ErrPastStartDate
	}
	if r.Budget <= 0 {
		return ErrNonPositiveBudget
	}
	if r.Travelers < MinTravelers || r.Travelers > MaxTravelers {
		return ErrInvalidTravelers
	}
	if r.TravelClass != "" && !r.TravelClass.Valid() {
		return ErrInvalidClass
	}
	if r.HotelCategory != "" && !r.HotelCategory.Valid() {
		return ErrInvalidCategory
	}
	return nil
}

// Nights returns the number of hotel nights covered by the request.
func (r SearchRequest) Nights() int {
	nights := int(r.EndDate.Sub(r.StartDate).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return nights
}
