package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/deencli/deen/internal/cache"
	"github.com/deencli/deen/internal/config"
	"github.com/deencli/deen/internal/geo"
	"github.com/deencli/deen/internal/islamic"
)

// resolvedLocation holds the coordinates used for API calls plus an optional
// place name for display.
type resolvedLocation struct {
	Lat, Lon float64
	City     string
	Country  string
	Timezone string // hint from geo-detection, may be empty
}

// Label returns a human-readable place name, or empty when unknown.
func (l resolvedLocation) Label() string {
	switch {
	case l.City != "" && l.Country != "":
		return l.City + ", " + l.Country
	case l.City != "":
		return l.City
	case l.Country != "":
		return l.Country
	default:
		return ""
	}
}

// resolveLocation determines the effective coordinates.
// Priority: explicit coordinates > cached geolocation > IP auto-detect.
// City and country never drive the lookup; they only label the output.
func resolveLocation(ctx context.Context, cfg *config.Config, c *cache.Cache) (resolvedLocation, error) {
	if cfg.Latitude != 0 || cfg.Longitude != 0 {
		return resolvedLocation{
			Lat:     cfg.Latitude,
			Lon:     cfg.Longitude,
			City:    cfg.City,
			Country: cfg.Country,
		}, nil
	}

	// Try cached geolocation first.
	if c != nil {
		if cached := c.LoadGeo(); cached != nil {
			return locationFrom(cached, cfg), nil
		}
	}

	// Fall back to IP-based geolocation.
	detected, err := geo.NewDetector().Detect(ctx)
	if err != nil {
		return resolvedLocation{}, fmt.Errorf("no location configured and auto-detection failed: %w", err)
	}

	// Cache the detected location (best-effort).
	if c != nil {
		_ = c.SaveGeo(detected)
	}

	return locationFrom(detected, cfg), nil
}

// locationFrom builds a resolvedLocation from a geo result, letting explicit
// city/country settings override the detected labels.
func locationFrom(loc *geo.Location, cfg *config.Config) resolvedLocation {
	r := resolvedLocation{
		Lat:      loc.Latitude,
		Lon:      loc.Longitude,
		City:     loc.City,
		Country:  loc.Country,
		Timezone: loc.Timezone,
	}
	if cfg.City != "" {
		r.City = cfg.City
	}
	if cfg.Country != "" {
		r.Country = cfg.Country
	}
	return r
}

// timingsQuery builds the API query from the merged config and resolved
// coordinates.
func timingsQuery(cfg *config.Config, loc resolvedLocation) islamic.TimingsQuery {
	return islamic.TimingsQuery{
		Latitude:  loc.Lat,
		Longitude: loc.Lon,
		Method:    cfg.MethodOrDefault(islamic.DefaultMethod),
		School:    cfg.SchoolOrDefault(islamic.DefaultSchool),
		Shifting:  cfg.ShiftingOrDefault(islamic.DefaultShifting),
		Calendar:  cfg.Calendar,
	}
}

// fetchTimings returns today's timings, using the cache when available.
func fetchTimings(ctx context.Context, date time.Time, q islamic.TimingsQuery, c *cache.Cache) (*islamic.TimingsData, error) {
	if c != nil {
		if entry := c.LoadTimings(date, q); entry != nil {
			return &entry.Data, nil
		}
	}

	client, err := newIslamicClient()
	if err != nil {
		return nil, err
	}

	resp, err := client.FetchTimings(ctx, q)
	if err != nil {
		return nil, err
	}

	// Write to cache (best-effort).
	if c != nil {
		_ = c.SaveTimings(date, q, resp.Data)
	}

	return &resp.Data, nil
}

// openCache initializes the cache, degrading to no caching on failure.
func openCache(cfg *config.Config) *cache.Cache {
	c, err := cache.New(cfg.CacheDir)
	if err != nil {
		fmt.Fprintf(errWriter, "warning: cache disabled: %v\n", err)
		return nil
	}
	return c
}
