package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"travel-planner/internal/domain/travel"
)

const skyAirSource = "skyair"

// SkyAirClient queries a Skyscanner-style partner API keyed by a single
// request header.
type SkyAirClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewSkyAirClient(baseURL, apiKey string, timeout time.Duration) *SkyAirClient {
	return &SkyAirClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *SkyAirClient) Name() string { return skyAirSource }

func (c *SkyAirClient) Search(ctx context.Context, q FlightQuery) ([]travel.FlightOffer, error) {
	if c.apiKey == "" {
		return nil, newProviderError(skyAirSource, fmt.Errorf("api key not configured"))
	}

	params := url.Values{}
	params.Set("origin", q.Origin)
	params.Set("destination", q.Destination)
	params.Set("departureDate", q.DepartureDate.Format("2006-01-02"))
	params.Set("adults", strconv.Itoa(q.Travelers))
	params.Set("cabinClass", string(q.TravelClass))
	params.Set("currency", "USD")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/apiservices/v3/flights/live/search?"+params.Encode(), nil)
	if err != nil {
		return nil, newProviderError(skyAirSource, err)
	}
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newProviderError(skyAirSource, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, newProviderError(skyAirSource,
			fmt.Errorf("upstream returned %d: %s", resp.StatusCode, string(body)))
	}

	offers, err := parseSkyAirFlights(body, q.TravelClass)
	if err != nil {
		return nil, newProviderError(skyAirSource, err)
	}
	return offers, nil
}

type skyAirResponse struct {
	Itineraries []struct {
		ID   string `json:"id"`
		Legs []struct {
			Carrier       string   `json:"carrier"`
			FlightNumber  string   `json:"flightNumber"`
			Departure     string   `json:"departure"`
			Arrival       string   `json:"arrival"`
			DurationMins  int      `json:"durationMinutes"`
			StopoverCodes []string `json:"stopoverCodes"`
		} `json:"legs"`
		Price struct {
			Amount float64 `json:"amount"`
		} `json:"price"`
	} `json:"itineraries"`
}

func parseSkyAirFlights(data []byte, class travel.TravelClass) ([]travel.FlightOffer, error) {
	var resp skyAirResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("malformed itineraries payload: %w", err)
	}

	if class == "" {
		class = travel.ClassEconomy
	}

	offers := make([]travel.FlightOffer, 0, len(resp.Itineraries))
	for _, it := range resp.Itineraries {
		if len(it.Legs) == 0 || it.Price.Amount <= 0 {
			continue
		}
		leg := it.Legs[0]

		departure, err := time.Parse(time.RFC3339, leg.Departure)
		if err != nil {
			continue
		}
		arrival, err := time.Parse(time.RFC3339, leg.Arrival)
		if err != nil {
			continue
		}

		offers = append(offers, travel.FlightOffer{
			ID:            skyAirSource + "_" + it.ID,
			Source:        skyAirSource,
			Airline:       leg.Carrier,
			FlightNumber:  leg.FlightNumber,
			DepartureTime: departure.UTC(),
			ArrivalTime:   arrival.UTC(),
			Duration:      formatMinutes(leg.DurationMins),
			Price:         it.Price.Amount,
			TravelClass:   class,
			Layovers:      leg.StopoverCodes,
		})
	}
	return offers, nil
}

func formatMinutes(mins int) string {
	if mins <= 0 {
		return ""
	}
	h, m := mins/60, mins%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
