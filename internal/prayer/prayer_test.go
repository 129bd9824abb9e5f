package prayer

import (
	"testing"
	"time"
)

// sampleTimes returns a schedule with all six canonical prayers plus the
// extended entries, as the API returns them.
func sampleTimes() map[string]string {
	return map[string]string{
		"Fajr":       "05:12 AM",
		"Sunrise":    "06:31 AM",
		"Dhuhr":      "12:09 PM",
		"Asr":        "03:24 PM",
		"Maghrib":    "05:47 PM",
		"Isha":       "07:06 PM",
		"Imsak":      "05:02 AM",
		"Midnight":   "12:09 AM",
		"Firstthird": "09:55 PM",
		"Lastthird":  "02:23 AM",
	}
}

func at(t *testing.T, hour, min, sec int) time.Time {
	t.Helper()
	return time.Date(2026, 2, 28, hour, min, sec, 0, time.UTC)
}

// ---------------------------------------------------------------------------
// ParseClock
// ---------------------------------------------------------------------------

func TestParseClock(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
		ok   bool
	}{
		{"midnight 12-hour", "12:00 AM", 0, true},
		{"noon 12-hour", "12:00 PM", 720, true},
		{"afternoon 12-hour", "1:05 PM", 785, true},
		{"morning 12-hour", "05:12 AM", 312, true},
		{"24-hour no meridiem", "05:12", 312, true},
		{"24-hour evening", "17:45", 1065, true},
		{"lowercase meridiem", "1:05 pm", 785, true},
		{"no space before meridiem", "1:05PM", 785, true},
		{"surrounding whitespace", "  09:30 AM  ", 570, true},
		{"empty string", "", 0, false},
		{"whitespace only", "   ", 0, false},
		{"words", "noon", 0, false},
		{"missing minutes", "12:", 0, false},
		{"single-digit minutes", "12:5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseClock(tt.raw)
			if ok != tt.ok {
				t.Fatalf("ParseClock(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseClock_RoundTrip(t *testing.T) {
	// For valid 12-hour strings, the minute value must equal hour24*60+minute.
	cases := map[string]int{
		"12:00 AM": 0 * 60,
		"1:00 AM":  1 * 60,
		"11:59 AM": 11*60 + 59,
		"12:01 PM": 12*60 + 1,
		"6:30 PM":  18*60 + 30,
		"11:59 PM": 23*60 + 59,
	}
	for raw, want := range cases {
		got, ok := ParseClock(raw)
		if !ok {
			t.Fatalf("ParseClock(%q) unexpectedly failed", raw)
		}
		if got != want {
			t.Errorf("ParseClock(%q) = %d, want %d", raw, got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// Next
// ---------------------------------------------------------------------------

func TestNext_BeforeFirstPrayer(t *testing.T) {
	// 03:00, before Fajr (05:12). The earliest canonical prayer wins.
	next := Next(sampleTimes(), at(t, 3, 0, 0))
	if next == nil {
		t.Fatal("expected a next prayer, got nil")
	}
	if next.Key != "Fajr" {
		t.Errorf("expected Fajr, got %s", next.Key)
	}
	if next.Minutes != 5*60+12 {
		t.Errorf("Fajr minutes = %d, want %d", next.Minutes, 5*60+12)
	}
}

func TestNext_MiddleOfDay(t *testing.T) {
	// 13:00: Dhuhr (12:09) has passed, next is Asr (15:24).
	next := Next(sampleTimes(), at(t, 13, 0, 0))
	if next == nil {
		t.Fatal("expected a next prayer, got nil")
	}
	if next.Key != "Asr" {
		t.Errorf("expected Asr, got %s", next.Key)
	}
}

func TestNext_Wraparound(t *testing.T) {
	// 22:30, after Isha (19:06). Wraps to tomorrow's Fajr.
	next := Next(sampleTimes(), at(t, 22, 30, 0))
	if next == nil {
		t.Fatal("expected a next prayer, got nil")
	}
	if next.Key != "Fajr" {
		t.Errorf("expected wraparound to Fajr, got %s", next.Key)
	}
}

func TestNext_ExactMinuteIsPast(t *testing.T) {
	// Exactly at Dhuhr (12:09:00): the strictly-greater comparison means Dhuhr
	// is already past, so Asr is next.
	next := Next(sampleTimes(), at(t, 12, 9, 0))
	if next == nil {
		t.Fatal("expected a next prayer, got nil")
	}
	if next.Key != "Asr" {
		t.Errorf("expected Asr at the Dhuhr boundary, got %s", next.Key)
	}
}

func TestNext_SecondsPushPastBoundary(t *testing.T) {
	// One second after Dhuhr still resolves to Asr; one second before
	// resolves to Dhuhr.
	if next := Next(sampleTimes(), at(t, 12, 9, 1)); next == nil || next.Key != "Asr" {
		t.Errorf("at 12:09:01 expected Asr, got %v", next)
	}
	if next := Next(sampleTimes(), at(t, 12, 8, 59)); next == nil || next.Key != "Dhuhr" {
		t.Errorf("at 12:08:59 expected Dhuhr, got %v", next)
	}
}

func TestNext_EmptySchedule(t *testing.T) {
	if next := Next(map[string]string{}, at(t, 12, 0, 0)); next != nil {
		t.Errorf("expected nil for empty schedule, got %+v", next)
	}
}

func TestNext_IgnoresNonCanonicalAndMalformed(t *testing.T) {
	times := map[string]string{
		"Imsak":    "04:55 AM", // extended entry, never resolved
		"Tahajjud": "03:00 AM", // unknown key
		"Fajr":     "garbage",  // unparseable, skipped
		"Dhuhr":    "12:09 PM",
	}
	next := Next(times, at(t, 3, 0, 0))
	if next == nil {
		t.Fatal("expected a next prayer, got nil")
	}
	if next.Key != "Dhuhr" {
		t.Errorf("expected Dhuhr, got %s", next.Key)
	}
}

func TestNext_CarriesLabelAndRaw(t *testing.T) {
	next := Next(sampleTimes(), at(t, 3, 0, 0))
	if next == nil {
		t.Fatal("expected a next prayer, got nil")
	}
	if next.Label != "Fajr" || next.Icon != "moon" {
		t.Errorf("unexpected display fields: label=%q icon=%q", next.Label, next.Icon)
	}
	if next.Raw != "05:12 AM" {
		t.Errorf("Raw = %q, want original string", next.Raw)
	}
}

// ---------------------------------------------------------------------------
// Current
// ---------------------------------------------------------------------------

func TestCurrent(t *testing.T) {
	if cur := Current(sampleTimes(), at(t, 3, 0, 0)); cur != nil {
		t.Errorf("before Fajr expected nil current, got %s", cur.Key)
	}
	if cur := Current(sampleTimes(), at(t, 13, 0, 0)); cur == nil || cur.Key != "Dhuhr" {
		t.Errorf("at 13:00 expected Dhuhr current, got %v", cur)
	}
	if cur := Current(sampleTimes(), at(t, 23, 0, 0)); cur == nil || cur.Key != "Isha" {
		t.Errorf("at 23:00 expected Isha current, got %v", cur)
	}
}

// ---------------------------------------------------------------------------
// Target / Countdown
// ---------------------------------------------------------------------------

func TestTarget_SameDay(t *testing.T) {
	p := &NextPrayer{Key: "Asr", Minutes: 15*60 + 24}
	now := at(t, 13, 0, 0)
	target := Target(p, now)
	if target.Day() != now.Day() || target.Hour() != 15 || target.Minute() != 24 {
		t.Errorf("target = %v, want same-day 15:24", target)
	}
}

func TestTarget_WrapsToTomorrow(t *testing.T) {
	p := &NextPrayer{Key: "Fajr", Minutes: 5*60 + 12}
	now := at(t, 22, 30, 0)
	target := Target(p, now)
	if !target.After(now) {
		t.Fatalf("target %v not after now %v", target, now)
	}
	if target.Day() != now.Day()+1 {
		t.Errorf("target day = %d, want tomorrow (%d)", target.Day(), now.Day()+1)
	}
}

func TestCountdown(t *testing.T) {
	p := &NextPrayer{Key: "Asr", Minutes: 15 * 60}
	// 13:00:00 -> exactly two hours.
	if got := Countdown(p, at(t, 13, 0, 0)); got != "02:00:00" {
		t.Errorf("Countdown = %q, want 02:00:00", got)
	}
	// 14:59:30 -> thirty seconds.
	if got := Countdown(p, at(t, 14, 59, 30)); got != "00:00:30" {
		t.Errorf("Countdown = %q, want 00:00:30", got)
	}
}

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{2*time.Hour + 15*time.Minute + 9*time.Second, "02:15:09"},
		{59 * time.Second, "00:00:59"},
		{0, "00:00:00"},
		{-5 * time.Second, "00:00:00"},
		{25 * time.Hour, "25:00:00"},
	}
	for _, tt := range tests {
		if got := FormatCountdown(tt.d); got != tt.want {
			t.Errorf("FormatCountdown(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// Display metadata
// ---------------------------------------------------------------------------

func TestShortNames_CoverAllEntries(t *testing.T) {
	for _, e := range AllTimeEntries {
		if _, ok := ShortNames[e.Key]; !ok {
			t.Errorf("ShortNames missing entry for %q", e.Key)
		}
	}
}

func TestCanonicalKeys_AreKnownEntries(t *testing.T) {
	for _, key := range CanonicalKeys {
		if _, ok := Entry(key); !ok {
			t.Errorf("canonical key %q missing from AllTimeEntries", key)
		}
	}
}
