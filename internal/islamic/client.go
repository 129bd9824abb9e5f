// Package islamic is the client for the Islamic API: prayer timings,
// fasting and Ramadan schedules, zakat nisab thresholds, and the 99 names.
// The service requires an API key on every request.
package islamic

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

	"github.com/rs/zerolog/log"
)

const apiRootSuffix = "/api/v1"

// Client communicates with the Islamic API.
type Client struct {
	httpClient *http.Client
	// BaseURL is the normalized API root, always ending in /api/v1.
	// Exported for testing with httptest.
	BaseURL string
	apiKey  string
}

// NewClient creates a client for the given base URL and API key. The base
// URL may be the bare host or already carry the /api/v1 suffix; both are
// normalized to the same root. Both values are required.
func NewClient(baseURL, apiKey string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("islamic API base URL is not configured")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("islamic API key is not configured")
	}

	root := strings.TrimRight(baseURL, "/")
	if !strings.HasSuffix(root, apiRootSuffix) {
		root += apiRootSuffix
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		BaseURL: root,
		apiKey:  apiKey,
	}, nil
}

// TimingsQuery selects the location and calculation settings for a prayer
// timings request.
type TimingsQuery struct {
	Latitude  float64
	Longitude float64
	Method    int
	School    int
	Shifting  int
	Calendar  string
}

// FetchTimings fetches today's prayer schedule for the queried location.
func (c *Client) FetchTimings(ctx context.Context, q TimingsQuery) (*TimingsResponse, error) {
	params := c.locationParams(q.Latitude, q.Longitude, q.Method, q.Shifting, q.Calendar)
	params.Set("school", strconv.Itoa(q.School))

	var resp TimingsResponse
	if err := c.get(ctx, "prayer-time", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FastingQuery selects the location, calculation settings, and optional date
// for a fasting request. Date accepts YYYY-MM-DD for a single day or YYYY-MM
// for a whole month; empty means today.
type FastingQuery struct {
	Latitude  float64
	Longitude float64
	Method    int
	// School only matters for the ramadan endpoint; sahur and iftar do not
	// depend on the Asr school.
	School   int
	Shifting int
	Calendar string
	Date     string
}

// FetchFasting fetches sahur and iftar times for the queried span.
func (c *Client) FetchFasting(ctx context.Context, q FastingQuery) (*FastingResponse, error) {
	params := c.locationParams(q.Latitude, q.Longitude, q.Method, q.Shifting, q.Calendar)
	if q.Date != "" {
		params.Set("date", q.Date)
	}

	var resp FastingResponse
	if err := c.get(ctx, "fasting", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FetchRamadan fetches the full Ramadan month schedule for the queried
// location, covering the current or upcoming Ramadan.
func (c *Client) FetchRamadan(ctx context.Context, q FastingQuery) (*RamadanResponse, error) {
	params := c.locationParams(q.Latitude, q.Longitude, q.Method, q.Shifting, q.Calendar)
	params.Set("school", strconv.Itoa(q.School))

	var resp RamadanResponse
	if err := c.get(ctx, "ramadan", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// NisabQuery selects the calculation standard, display currency, and weight
// unit for a nisab request.
type NisabQuery struct {
	// Standard is "classical" (87.48g gold / 612.36g silver) or "common"
	// (85g / 595g).
	Standard string
	// Currency is a lowercase 3-letter ISO code.
	Currency string
	// Unit is "g" or "oz".
	Unit string
}

// FetchNisab fetches the current gold and silver nisab thresholds.
func (c *Client) FetchNisab(ctx context.Context, q NisabQuery) (*NisabResponse, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("standard", q.Standard)
	params.Set("currency", strings.ToLower(q.Currency))
	params.Set("unit", q.Unit)

	var resp NisabResponse
	if err := c.get(ctx, "zakat-nisab", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FetchNames fetches the 99 names of Allah with translations in the given
// language (2-letter code).
func (c *Client) FetchNames(ctx context.Context, language string) (*NamesResponse, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("language", language)

	var resp NamesResponse
	if err := c.get(ctx, "asma-ul-husna", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) locationParams(lat, lon float64, method, shifting int, calendar string) url.Values {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("method", strconv.Itoa(method))
	params.Set("shifting", strconv.Itoa(shifting))
	params.Set("calendar", calendar)
	return params
}

// get performs a request against one endpoint and decodes the response into
// out, which must embed the common envelope.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out interface {
	code() int
	status() string
}) error {
	reqURL := fmt.Sprintf("%s/%s/?%s", c.BaseURL, endpoint, params.Encode())
	log.Debug().Str("endpoint", endpoint).Msg("islamic API request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode API response: %w", err)
	}

	if out.code() != http.StatusOK {
		return fmt.Errorf("API error: code=%d status=%s", out.code(), out.status())
	}

	return nil
}

func (e *envelope) code() int      { return e.Code }
func (e *envelope) status() string { return e.Status }
