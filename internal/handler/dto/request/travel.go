package request

import (
	"time"

	"travel-planner/internal/domain/travel"
	"travel-planner/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

type CreatePlanRequest struct {
	Destination   string            `json:"destination" binding:"required"`
	StartDate     string            `json:"start_date" binding:"required"`
	EndDate       string            `json:"end_date" binding:"required"`
	Budget        float64           `json:"budget" binding:"required,gt=0"`
	Travelers     int               `json:"travelers" binding:"omitempty,min=1,max=10"`
	TravelClass   string            `json:"travel_class" binding:"omitempty,oneof=economy premium_economy business first"`
	HotelCategory string            `json:"hotel_category" binding:"omitempty,oneof=budget standard luxury resort"`
	Preferences   map[string]string `json:"preferences"`
}

// ToSearchRequest parses dates and applies the documented defaults. Domain
// validation happens in the usecase; this only handles shape.
func (r CreatePlanRequest) ToSearchRequest() (travel.SearchRequest, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return travel.SearchRequest{}, errs.Wrap(err, "invalid start_date")
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return travel.SearchRequest{}, errs.Wrap(err, "invalid end_date")
	}

	travelers := r.Travelers
	if travelers == 0 {
		travelers = 1
	}
	class := travel.TravelClass(r.TravelClass)
	if class == "" {
		class = travel.ClassEconomy
	}
	category := travel.HotelCategory(r.HotelCategory)
	if category == "" {
		category = travel.CategoryStandard
	}

	return travel.SearchRequest{
		Destination:   r.Destination,
		StartDate:     start,
		EndDate:       end,
		Budget:        r.Budget,
		Travelers:     travelers,
		TravelClass:   class,
		HotelCategory: category,
		Preferences:   r.Preferences,
	}, nil
}
