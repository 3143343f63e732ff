package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"travel-planner/internal/domain/travel"
)

const (
	bookingSource = "booking.com"
	expediaSource = "expedia"
)

// BookingClient searches the booking.com distribution API.
type BookingClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewBookingClient(baseURL, apiKey string, timeout time.Duration) *BookingClient {
	return &BookingClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *BookingClient) Name() string { return bookingSource }

func (c *BookingClient) Search(ctx context.Context, q HotelQuery) ([]travel.HotelOffer, error) {
	if c.apiKey == "" {
		return nil, newProviderError(bookingSource, fmt.Errorf("api key not configured"))
	}

	params := url.Values{}
	params.Set("city", q.Destination)
	params.Set("checkin", q.CheckIn.Format("2006-01-02"))
	params.Set("checkout", q.CheckOut.Format("2006-01-02"))
	params.Set("guests", strconv.Itoa(q.Travelers))
	params.Set("currency", "USD")

	body, err := getJSON(ctx, c.httpClient, c.baseURL+"/json/bookings.getHotels?"+params.Encode(),
		map[string]string{"X-Api-Key": c.apiKey})
	if err != nil {
		return nil, newProviderError(bookingSource, err)
	}

	offers, err := parseBookingHotels(body, nights(q))
	if err != nil {
		return nil, newProviderError(bookingSource, err)
	}
	return offers, nil
}

type bookingHotelsResponse struct {
	Result []struct {
		HotelID     string   `json:"hotel_id"`
		Name        string   `json:"hotel_name"`
		Address     string   `json:"address"`
		MinRate     float64  `json:"min_rate"`
		ReviewScore float64  `json:"review_score"`
		Facilities  []string `json:"hotel_facilities"`
		Class       float64  `json:"class"`
	} `json:"result"`
}

// parseBookingHotels normalizes the booking.com payload: review scores come
// on a 0-10 scale and are halved, star class maps onto the category enum.
func parseBookingHotels(data []byte, nights int) ([]travel.HotelOffer, error) {
	var resp bookingHotelsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("malformed hotels payload: %w", err)
	}

	offers := make([]travel.HotelOffer, 0, len(resp.Result))
	for _, h := range resp.Result {
		if strings.TrimSpace(h.Name) == "" || h.MinRate <= 0 {
			continue
		}
		offers = append(offers, travel.HotelOffer{
			ID:            bookingSource + "_" + h.HotelID,
			Source:        bookingSource,
			Name:          h.Name,
			Address:       h.Address,
			PricePerNight: h.MinRate,
			TotalPrice:    h.MinRate * float64(nights),
			Rating:        clampRating(h.ReviewScore / 2),
			Amenities:     h.Facilities,
			Category:      categoryFromStars(h.Class),
		})
	}
	return offers, nil
}

// ExpediaClient searches the Expedia partner API.
type ExpediaClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewExpediaClient(baseURL, apiKey string, timeout time.Duration) *ExpediaClient {
	return &ExpediaClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *ExpediaClient) Name() string { return expediaSource }

func (c *ExpediaClient) Search(ctx context.Context, q HotelQuery) ([]travel.HotelOffer, error) {
	if c.apiKey == "" {
		return nil, newProviderError(expediaSource, fmt.Errorf("api key not configured"))
	}

	params := url.Values{}
	params.Set("destination", q.Destination)
	params.Set("checkIn", q.CheckIn.Format("2006-01-02"))
	params.Set("checkOut", q.CheckOut.Format("2006-01-02"))
	params.Set("adults", strconv.Itoa(q.Travelers))

	body, err := getJSON(ctx, c.httpClient, c.baseURL+"/v3/properties/search?"+params.Encode(),
		map[string]string{"Authorization": "Bearer " + c.apiKey})
	if err != nil {
		return nil, newProviderError(expediaSource, err)
	}

	offers, err := parseExpediaHotels(body, nights(q))
	if err != nil {
		return nil, newProviderError(expediaSource, err)
	}
	return offers, nil
}

type expediaPropertiesResponse struct {
	Properties []struct {
		PropertyID string `json:"propertyId"`
		Name       string `json:"name"`
		Address    struct {
			Line string `json:"line"`
			City string `json:"city"`
		} `json:"address"`
		NightlyRate float64  `json:"nightlyRate"`
		StarRating  float64  `json:"starRating"`
		GuestRating float64  `json:"guestRating"`
		Amenities   []string `json:"amenities"`
	} `json:"properties"`
}

func parseExpediaHotels(data []byte, nights int) ([]travel.HotelOffer, error) {
	var resp expediaPropertiesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("malformed properties payload: %w", err)
	}

	offers := make([]travel.HotelOffer, 0, len(resp.Properties))
	for _, p := range resp.Properties {
		if strings.TrimSpace(p.Name) == "" || p.NightlyRate <= 0 {
			continue
		}
		address := p.Address.Line
		if p.Address.City != "" {
			address += ", " + p.Address.City
		}
		offers = append(offers, travel.HotelOffer{
			ID:            expediaSource + "_" + p.PropertyID,
			Source:        expediaSource,
			Name:          p.Name,
			Address:       address,
			PricePerNight: p.NightlyRate,
			TotalPrice:    p.NightlyRate * float64(nights),
			Rating:        clampRating(p.GuestRating),
			Amenities:     p.Amenities,
			Category:      categoryFromStars(p.StarRating),
		})
	}
	return offers, nil
}

func getJSON(ctx context.Context, client *http.Client, url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream returned %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

func nights(q HotelQuery) int {
	n := int(q.CheckOut.Sub(q.CheckIn).Hours() / 24)
	if n < 1 {
		n = 1
	}
	return n
}

func clampRating(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}

func categoryFromStars(stars float64) travel.HotelCategory {
	switch {
	case stars >= 5:
		return travel.CategoryResort
	case stars >= 4:
		return travel.CategoryLuxury
	case stars >= 3:
		return travel.CategoryStandard
	default:
		return travel.CategoryBudget
	}
}
