// deen-status is a minimal single-line binary for status bars (tmux, waybar,
// polybar). It prints the next prayer and exits; the bar re-runs it on its
// own refresh interval. Unlike the full CLI it reads no config file, only
// flags and the service environment.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/deencli/deen/internal/cache"
	"github.com/deencli/deen/internal/config"
	"github.com/deencli/deen/internal/geo"
	"github.com/deencli/deen/internal/islamic"
	"github.com/deencli/deen/internal/prayer"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=v1.0.0"
var version = "dev"

func main() {
	// Location flags
	latitude := flag.Float64("latitude", 0, "Latitude for prayer time calculation")
	longitude := flag.Float64("longitude", 0, "Longitude for prayer time calculation")

	// Calculation flags
	method := flag.Int("method", islamic.DefaultMethod, "Calculation method ID")
	school := flag.Int("school", islamic.DefaultSchool, "Asr school: 1=Shafi, 2=Hanafi")
	shifting := flag.Int("shifting", islamic.DefaultShifting, "Hijri date adjustment (-2..2)")
	calendar := flag.String("calendar", islamic.DefaultCalendar, "Hijri calendar calculation method")

	// Display flags
	format := flag.String("format", prayer.FormatShortNameCountdown, "Display format: countdown, next-prayer-time, name-and-time, name-and-countdown, short-name-and-time, short-name-and-countdown, full, or a custom Go template (e.g. '{{.Name}} in {{.Countdown}}'). Template fields: .Name, .ShortName, .Time, .Countdown, .Hours, .Minutes")
	timeFormat := flag.String("time-format", "24h", "Time format: 12h or 24h")

	// Cache flags
	cacheDir := flag.String("cache-dir", "", "Cache directory (default: ~/.cache/deen/)")

	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Parse()

	if *showVersion {
		fmt.Printf("deen-status %s\n", version)
		return
	}

	if err := run(*latitude, *longitude, *method, *school, *shifting, *calendar, *format, *timeFormat, *cacheDir); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(lat, lon float64, method, school, shifting int, calendar, format, timeFmt, cacheDir string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	goTimeFmt := "15:04" // 24h
	if timeFmt == "12h" {
		goTimeFmt = "3:04 PM"
	}

	// Cache init failure is non-fatal; we just skip caching.
	c, err := cache.New(cacheDir)
	if err != nil {
		c = nil
		fmt.Fprintf(os.Stderr, "warning: cache disabled: %v\n", err)
	}

	// Resolve coordinates: flags > cached geolocation > IP auto-detect.
	if lat == 0 && lon == 0 {
		var cached *geo.Location
		if c != nil {
			cached = c.LoadGeo()
		}
		if cached == nil {
			cached, err = geo.NewDetector().Detect(ctx)
			if err != nil {
				return fmt.Errorf("no location specified and auto-detection failed: %w", err)
			}
			if c != nil {
				_ = c.SaveGeo(cached)
			}
		}
		lat, lon = cached.Latitude, cached.Longitude
	}

	query := islamic.TimingsQuery{
		Latitude:  lat,
		Longitude: lon,
		Method:    method,
		School:    school,
		Shifting:  shifting,
		Calendar:  calendar,
	}

	now := time.Now()
	times, err := fetchTimes(ctx, now, query, c)
	if err != nil {
		return err
	}

	next := prayer.Next(times, now)
	if next == nil {
		return fmt.Errorf("no prayer times in the schedule")
	}

	// Status bars want a bare line with no trailing newline.
	fmt.Print(prayer.FormatOutput(next, now, format, goTimeFmt))
	return nil
}

// fetchTimes returns today's schedule, preferring the shared cache so a
// status bar polling every few seconds hits the API once per day.
func fetchTimes(ctx context.Context, now time.Time, query islamic.TimingsQuery, c *cache.Cache) (map[string]string, error) {
	if c != nil {
		if entry := c.LoadTimings(now, query); entry != nil {
			return entry.Data.Times, nil
		}
	}

	env := config.LoadEnv()
	client, err := islamic.NewClient(env.IslamicAPIURL, env.IslamicAPIKey)
	if err != nil {
		return nil, fmt.Errorf("%w (set %s and %s)", err, config.EnvIslamicAPIURL, config.EnvIslamicAPIKey)
	}

	resp, err := client.FetchTimings(ctx, query)
	if err != nil {
		return nil, err
	}

	if c != nil {
		_ = c.SaveTimings(now, query, resp.Data)
	}

	return resp.Data.Times, nil
}
