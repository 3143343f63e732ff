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
	"sync"
	"time"

	"travel-planner/internal/domain/travel"
)

const amadeusSource = "amadeus"

// AmadeusClient searches flights via the Amadeus Flight Offers Search API.
// The OAuth2 client-credentials token is cached until shortly before expiry.
type AmadeusClient struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewAmadeusClient(baseURL, clientID, clientSecret string, timeout time.Duration) *AmadeusClient {
	return &AmadeusClient{
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

func (c *AmadeusClient) Name() string { return amadeusSource }

func (c *AmadeusClient) Search(ctx context.Context, q FlightQuery) ([]travel.FlightOffer, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return nil, newProviderError(amadeusSource, fmt.Errorf("credentials not configured"))
	}

	token, err := c.token(ctx)
	if err != nil {
		return nil, newProviderError(amadeusSource, err)
	}

	params := url.Values{}
	params.Set("originLocationCode", q.Origin)
	params.Set("destinationLocationCode", q.Destination)
	params.Set("departureDate", q.DepartureDate.Format("2006-01-02"))
	if !q.ReturnDate.IsZero() {
		params.Set("returnDate", q.ReturnDate.Format("2006-01-02"))
	}
	params.Set("adults", strconv.Itoa(q.Travelers))
	if q.TravelClass != "" {
		params.Set("travelClass", strings.ToUpper(string(q.TravelClass)))
	}
	params.Set("currencyCode", "USD")
	params.Set("max", "10")

	body, err := c.get(ctx, "/v2/shopping/flight-offers?"+params.Encode(), token)
	if err != nil {
		return nil, newProviderError(amadeusSource, err)
	}

	offers, err := parseAmadeusFlights(body, q.TravelClass)
	if err != nil {
		return nil, newProviderError(amadeusSource, err)
	}
	return offers, nil
}

func (c *AmadeusClient) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		token := c.accessToken
		c.mu.Unlock()
		return token, nil
	}
	c.mu.Unlock()

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request failed (%d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}

	c.mu.Lock()
	c.accessToken = result.AccessToken
	// Refresh 30s early so in-flight requests never race an expiring token.
	c.tokenExpiry = time.Now().Add(time.Duration(result.ExpiresIn-30) * time.Second)
	c.mu.Unlock()

	return result.AccessToken, nil
}

func (c *AmadeusClient) get(ctx context.Context, path, token string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("upstream returned %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

type amadeusSegment struct {
	Departure struct {
		IataCode string `json:"iataCode"`
		At       string `json:"at"`
	} `json:"departure"`
	Arrival struct {
		IataCode string `json:"iataCode"`
		At       string `json:"at"`
	} `json:"arrival"`
	CarrierCode string `json:"carrierCode"`
	Number      string `json:"number"`
}

type amadeusFlightResponse struct {
	Data []struct {
		ID    string `json:"id"`
		Price struct {
			GrandTotal string `json:"grandTotal"`
			Currency   string `json:"currency"`
		} `json:"price"`
		Itineraries []struct {
			Duration string           `json:"duration"`
			Segments []amadeusSegment `json:"segments"`
		} `json:"itineraries"`
	} `json:"data"`
}

// parseAmadeusFlights maps the Amadeus payload onto the canonical offer
// shape. Offers with missing itineraries or non-positive prices are dropped
// rather than failing the whole response.
func parseAmadeusFlights(data []byte, class travel.TravelClass) ([]travel.FlightOffer, error) {
	var resp amadeusFlightResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("malformed flight offers payload: %w", err)
	}

	if class == "" {
		class = travel.ClassEconomy
	}

	offers := make([]travel.FlightOffer, 0, len(resp.Data))
	for _, d := range resp.Data {
		if len(d.Itineraries) == 0 || len(d.Itineraries[0].Segments) == 0 {
			continue
		}
		price, err := strconv.ParseFloat(d.Price.GrandTotal, 64)
		if err != nil || price <= 0 {
			continue
		}

		outbound := d.Itineraries[0]
		first := outbound.Segments[0]
		last := outbound.Segments[len(outbound.Segments)-1]

		departure, err := parseAmadeusTime(first.Departure.At)
		if err != nil {
			continue
		}
		arrival, err := parseAmadeusTime(last.Arrival.At)
		if err != nil {
			continue
		}

		layovers := make([]string, 0, len(outbound.Segments)-1)
		for _, seg := range outbound.Segments[:len(outbound.Segments)-1] {
			layovers = append(layovers, seg.Arrival.IataCode)
		}

		offers = append(offers, travel.FlightOffer{
			ID:            amadeusSource + "_" + d.ID,
			Source:        amadeusSource,
			Airline:       first.CarrierCode,
			FlightNumber:  first.CarrierCode + first.Number,
			DepartureTime: departure,
			ArrivalTime:   arrival,
			Duration:      formatISODuration(outbound.Duration),
			Price:         price,
			TravelClass:   class,
			Layovers:      layovers,
		})
	}
	return offers, nil
}

// Amadeus emits local times without an offset; treat them as UTC so every
// adapter reports the same timezone semantics.
func parseAmadeusTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}

// formatISODuration rewrites "PT5H30M" into the "5h 30m" shape shared by all
// adapters. Unrecognized input passes through unchanged.
func formatISODuration(iso string) string {
	s := strings.TrimPrefix(iso, "PT")
	if s == iso {
		return iso
	}
	s = strings.ToLower(s)
	s = strings.Replace(s, "h", "h ", 1)
	return strings.TrimSpace(s)
}
