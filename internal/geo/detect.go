// Package geo detects the user's approximate location from their public IP
// so prayer and fasting commands work without any configured coordinates.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultAPIURL = "http://ip-api.com/json/?fields=status,message,lat,lon,city,country,timezone"

// Location holds geographic coordinates detected from the user's IP.
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Timezone  string  `json:"timezone"`
}

// ipAPIResponse maps the response from ip-api.com.
type ipAPIResponse struct {
	Status   string  `json:"status"`
	Message  string  `json:"message"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	City     string  `json:"city"`
	Country  string  `json:"country"`
	Timezone string  `json:"timezone"`
}

// Detector resolves the user's location via ip-api.com, a free service that
// requires no API key.
type Detector struct {
	httpClient *http.Client
	// APIURL is the geolocation endpoint. Exported for testing with httptest.
	APIURL string
}

// NewDetector creates a Detector with a short timeout; IP geolocation is a
// convenience and must not stall the CLI.
func NewDetector() *Detector {
	return &Detector{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		APIURL:     defaultAPIURL,
	}
}

// Detect determines the user's location from their public IP address.
func (d *Detector) Detect(ctx context.Context) (*Location, error) {
	log.Debug().Msg("detecting location from public IP")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.APIURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building geolocation request: %w", err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation API returned status %d", resp.StatusCode)
	}

	var result ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode geolocation response: %w", err)
	}

	if result.Status != "success" {
		return nil, fmt.Errorf("geolocation failed: %s", result.Message)
	}

	return &Location{
		Latitude:  result.Lat,
		Longitude: result.Lon,
		City:      result.City,
		Country:   result.Country,
		Timezone:  result.Timezone,
	}, nil
}
