// Package exchange looks up currency conversion rates from the public
// fawazahmed0 currency CDN. Lookups are best-effort by contract: when both
// the primary endpoint and the mirror fail, the rate degrades to 1.0 and the
// caller is told via the ok flag rather than an error. Zakat calculation must
// complete even with no network.
package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	// Both endpoints serve the same JSON shape, keyed by lowercase 3-letter
	// currency codes. The %s slots are (date, source currency).
	defaultPrimaryURL  = "https://cdn.jsdelivr.net/npm/@fawazahmed0/currency-api@%s/v1/currencies/%s.json"
	defaultFallbackURL = "https://%s.currency-api.pages.dev/v1/currencies/%s.json"
)

// Client fetches exchange rates. The URL patterns are exported for testing
// with httptest.
type Client struct {
	httpClient  *http.Client
	PrimaryURL  string
	FallbackURL string
}

// NewClient creates an exchange-rate client with sensible defaults.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		PrimaryURL:  defaultPrimaryURL,
		FallbackURL: defaultFallbackURL,
	}
}

// NormalizeDate maps an optional ISO date to the CDN's path segment:
// an empty date or one equal to today's date means "latest".
func NormalizeDate(date string, now time.Time) string {
	if date == "" || date == now.Format("2006-01-02") {
		return "latest"
	}
	return date
}

// Rate returns the multiplicative rate converting from -> to as of the given
// ISO date ("" for latest). The ok flag reports whether a real rate was
// found; false means both sources failed and the identity rate 1.0 was
// substituted. Rate never returns an error.
func (c *Client) Rate(ctx context.Context, from, to, date string) (decimal.Decimal, bool) {
	from = strings.ToLower(from)
	to = strings.ToLower(to)
	apiDate := NormalizeDate(date, time.Now())

	primary := fmt.Sprintf(c.PrimaryURL, apiDate, from)
	if rate, err := c.lookup(ctx, primary, from, to); err == nil {
		return rate, true
	} else {
		log.Debug().Err(err).Str("pair", from+"/"+to).Msg("primary rate source failed, trying mirror")
	}

	fallback := fmt.Sprintf(c.FallbackURL, apiDate, from)
	if rate, err := c.lookup(ctx, fallback, from, to); err == nil {
		return rate, true
	} else {
		log.Debug().Err(err).Str("pair", from+"/"+to).Msg("mirror rate source failed, degrading to 1.0")
	}

	return decimal.NewFromInt(1), false
}

// lookup fetches one endpoint and extracts the from->to rate.
func (c *Client) lookup(ctx context.Context, url, from, to string) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("building rate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("rate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return decimal.Zero, fmt.Errorf("rate source returned status %d", resp.StatusCode)
	}

	// The payload carries a "date" string next to the currency table, so
	// decode loosely and pick out the table for the source currency.
	var payload map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode rate response: %w", err)
	}

	raw, ok := payload[from]
	if !ok {
		return decimal.Zero, fmt.Errorf("rate response missing currency %q", from)
	}

	var table map[string]decimal.Decimal
	if err := json.Unmarshal(raw, &table); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode rate table for %q: %w", from, err)
	}

	rate, ok := table[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("no rate for pair %s/%s", from, to)
	}

	return rate, nil
}
