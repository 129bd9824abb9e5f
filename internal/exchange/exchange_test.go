package exchange

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// rateServer serves the CDN payload shape: {"date": "...", "<from>": {"<to>": rate}}.
func rateServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestRate_Primary(t *testing.T) {
	primary := rateServer(t, `{"date":"2026-02-28","usd":{"eur":0.92,"bdt":119.5}}`, http.StatusOK)
	defer primary.Close()

	c := NewClient()
	c.PrimaryURL = primary.URL + "/%s/%s.json"
	c.FallbackURL = "http://127.0.0.1:1/%s/%s.json" // must not be reached

	rate, ok := c.Rate(context.Background(), "USD", "EUR", "2026-02-27")
	if !ok {
		t.Fatal("expected a real rate, got fallback")
	}
	if !rate.Equal(decimal.NewFromFloat(0.92)) {
		t.Errorf("rate = %s, want 0.92", rate)
	}
}

func TestRate_FallsBackToMirror(t *testing.T) {
	primary := rateServer(t, `oops`, http.StatusInternalServerError)
	defer primary.Close()
	mirror := rateServer(t, `{"date":"2026-02-28","usd":{"eur":0.91}}`, http.StatusOK)
	defer mirror.Close()

	c := NewClient()
	c.PrimaryURL = primary.URL + "/%s/%s.json"
	c.FallbackURL = mirror.URL + "/%s/%s.json"

	rate, ok := c.Rate(context.Background(), "usd", "eur", "2026-02-27")
	if !ok {
		t.Fatal("expected the mirror rate, got fallback")
	}
	if !rate.Equal(decimal.NewFromFloat(0.91)) {
		t.Errorf("rate = %s, want 0.91", rate)
	}
}

func TestRate_MissingPairTriggersMirror(t *testing.T) {
	// Primary responds 200 but has no usd->jpy entry; mirror has it.
	primary := rateServer(t, `{"date":"2026-02-28","usd":{"eur":0.92}}`, http.StatusOK)
	defer primary.Close()
	mirror := rateServer(t, `{"date":"2026-02-28","usd":{"jpy":151.2}}`, http.StatusOK)
	defer mirror.Close()

	c := NewClient()
	c.PrimaryURL = primary.URL + "/%s/%s.json"
	c.FallbackURL = mirror.URL + "/%s/%s.json"

	rate, ok := c.Rate(context.Background(), "usd", "jpy", "")
	if !ok {
		t.Fatal("expected the mirror rate, got fallback")
	}
	if !rate.Equal(decimal.NewFromFloat(151.2)) {
		t.Errorf("rate = %s, want 151.2", rate)
	}
}

func TestRate_BothFailDegradesToIdentity(t *testing.T) {
	c := NewClient()
	c.PrimaryURL = "http://127.0.0.1:1/%s/%s.json"
	c.FallbackURL = "http://127.0.0.1:1/%s/%s.json"

	rate, ok := c.Rate(context.Background(), "usd", "eur", "")
	if ok {
		t.Fatal("expected degraded rate, got ok=true")
	}
	if !rate.Equal(decimal.NewFromInt(1)) {
		t.Errorf("degraded rate = %s, want 1", rate)
	}
}

func TestRate_InvalidJSONDegrades(t *testing.T) {
	primary := rateServer(t, `not json`, http.StatusOK)
	defer primary.Close()
	mirror := rateServer(t, `{"usd":"not a table"}`, http.StatusOK)
	defer mirror.Close()

	c := NewClient()
	c.PrimaryURL = primary.URL + "/%s/%s.json"
	c.FallbackURL = mirror.URL + "/%s/%s.json"

	rate, ok := c.Rate(context.Background(), "usd", "eur", "")
	if ok {
		t.Fatal("expected degraded rate, got ok=true")
	}
	if !rate.Equal(decimal.NewFromInt(1)) {
		t.Errorf("degraded rate = %s, want 1", rate)
	}
}

func TestNormalizeDate(t *testing.T) {
	now := time.Date(2026, 2, 28, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		date string
		want string
	}{
		{"", "latest"},
		{"2026-02-28", "latest"}, // today
		{"2026-02-27", "2026-02-27"},
		{"2024-12-01", "2024-12-01"},
	}
	for _, tt := range tests {
		if got := NormalizeDate(tt.date, now); got != tt.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}
}
