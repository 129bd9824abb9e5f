package prayer

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// TimeEntry describes one named slot in the daily prayer schedule.
// Icon is a symbolic tag used by renderers; it carries no behavior.
type TimeEntry struct {
	Key   string
	Label string
	Icon  string
}

// AllTimeEntries lists every slot the API can return, in display order.
var AllTimeEntries = []TimeEntry{
	{Key: "Fajr", Label: "Fajr", Icon: "moon"},
	{Key: "Imsak", Label: "Imsak", Icon: "moon-outline"},
	{Key: "Sunrise", Label: "Sunrise", Icon: "sunny"},
	{Key: "Dhuhr", Label: "Dhuhr", Icon: "sunny-outline"},
	{Key: "Asr", Label: "Asr", Icon: "partly-sunny"},
	{Key: "Maghrib", Label: "Maghrib", Icon: "partly-sunny"},
	{Key: "Isha", Label: "Isha", Icon: "moon"},
	{Key: "Midnight", Label: "Midnight", Icon: "moon"},
	{Key: "Firstthird", Label: "1st Third", Icon: "moon-outline"},
	{Key: "Lastthird", Label: "Last Third", Icon: "moon-outline"},
}

// CanonicalKeys are the six prayers considered for next-prayer resolution.
var CanonicalKeys = []string{"Fajr", "Sunrise", "Dhuhr", "Asr", "Maghrib", "Isha"}

// ShortNames maps prayer keys to abbreviations for compact status-bar output.
var ShortNames = map[string]string{
	"Fajr":       "F",
	"Imsak":      "Im",
	"Sunrise":    "S",
	"Dhuhr":      "D",
	"Asr":        "A",
	"Maghrib":    "M",
	"Isha":       "I",
	"Midnight":   "Mi",
	"Firstthird": "F3",
	"Lastthird":  "L3",
}

// Entry returns the display entry for a prayer key, if it is known.
func Entry(key string) (TimeEntry, bool) {
	for _, e := range AllTimeEntries {
		if e.Key == key {
			return e, true
		}
	}
	return TimeEntry{}, false
}

// clockPattern accepts "H:MM" or "HH:MM" with an optional AM/PM marker,
// in any case.
var clockPattern = regexp.MustCompile(`(\d{1,2}):(\d{2})(?:\s*([AaPp][Mm]))?`)

// ParseClock converts a time-of-day string like "05:12 AM" or "17:45" into
// minutes since midnight. It reports false for empty or malformed input
// rather than returning an error. A missing meridiem marker means the hour
// is already in 24-hour form. Hours outside 0-23 pass through unclamped;
// upstream payloads never produce them.
func ParseClock(raw string) (int, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}

	m := clockPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return 0, false
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}

	switch strings.ToUpper(m[3]) {
	case "AM":
		if hours == 12 {
			hours = 0
		}
	case "PM":
		if hours < 12 {
			hours += 12
		}
	}

	return hours*60 + minutes, true
}

// NextPrayer is the resolved upcoming prayer for a given instant.
type NextPrayer struct {
	Key     string
	Label   string
	Icon    string
	Minutes int    // minutes since midnight
	Raw     string // original time string from the schedule
}

// Next resolves the upcoming prayer from the canonical entries of times,
// a map of prayer key to time-of-day string. Entries that are missing or
// fail to parse are skipped. When every prayer of the day has passed, the
// earliest entry wins, semantically tomorrow's occurrence. Sub-minute
// precision of now matters: a prayer whose minute equals the current minute
// counts as already past.
//
// Next is a pure function of (times, now); callers re-run it on every clock
// tick and whenever the schedule changes.
func Next(times map[string]string, now time.Time) *NextPrayer {
	nowMinutes := float64(now.Hour()*60+now.Minute()) + float64(now.Second())/60

	ordered := resolve(times)
	if len(ordered) == 0 {
		return nil
	}

	for i := range ordered {
		if float64(ordered[i].Minutes) > nowMinutes {
			return &ordered[i]
		}
	}

	// All passed today; wrap to the earliest prayer of tomorrow.
	return &ordered[0]
}

// Current returns the prayer whose window contains now: the latest canonical
// entry at or before the current minute. It returns nil before the first
// prayer of the day.
func Current(times map[string]string, now time.Time) *NextPrayer {
	nowMinutes := float64(now.Hour()*60+now.Minute()) + float64(now.Second())/60

	ordered := resolve(times)

	var current *NextPrayer
	for i := range ordered {
		if float64(ordered[i].Minutes) <= nowMinutes {
			current = &ordered[i]
		}
	}
	return current
}

// resolve parses the canonical entries of times and returns them sorted
// ascending by minutes since midnight.
func resolve(times map[string]string) []NextPrayer {
	var ordered []NextPrayer
	for _, key := range CanonicalKeys {
		raw, ok := times[key]
		if !ok {
			continue
		}
		minutes, ok := ParseClock(raw)
		if !ok {
			continue
		}
		entry, _ := Entry(key)
		ordered = append(ordered, NextPrayer{
			Key:     key,
			Label:   entry.Label,
			Icon:    entry.Icon,
			Minutes: minutes,
			Raw:     raw,
		})
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Minutes < ordered[j].Minutes
	})

	return ordered
}

// Target returns the wall-clock instant of the next occurrence of p:
// today's midnight plus p.Minutes, advanced by one day when that instant
// is not strictly after now (the wraparound case).
func Target(p *NextPrayer, now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	target := midnight.Add(time.Duration(p.Minutes) * time.Minute)
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target
}

// Countdown formats the time remaining until the next occurrence of p
// as HH:MM:SS.
func Countdown(p *NextPrayer, now time.Time) string {
	return FormatCountdown(Target(p, now).Sub(now))
}

// FormatCountdown renders a duration as zero-padded HH:MM:SS, clamped to
// non-negative.
func FormatCountdown(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return pad2(h) + ":" + pad2(m) + ":" + pad2(s)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// Clock renders minutes since midnight back into a time-of-day string using
// goFormat ("15:04" or "3:04 PM").
func Clock(minutes int, goFormat string) string {
	t := time.Date(2000, 1, 1, 0, minutes, 0, 0, time.UTC)
	return t.Format(goFormat)
}
