package prayer

import (
	"strings"
	"testing"
	"time"
)

func TestFormatOutput_Modes(t *testing.T) {
	p := &NextPrayer{Key: "Asr", Label: "Asr", Minutes: 15 * 60, Raw: "03:00 PM"}
	now := time.Date(2026, 2, 28, 13, 0, 0, 0, time.UTC)

	tests := []struct {
		mode string
		want string
	}{
		{FormatCountdownOnly, "02:00:00"},
		{FormatNextPrayerTime, "15:00"},
		{FormatNameAndTime, "Asr 15:00"},
		{FormatNameAndCountdown, "Asr 02:00:00"},
		{FormatShortNameAndTime, "A 15:00"},
		{FormatShortNameCountdown, "A 02:00:00"},
		{FormatFull, "Asr 15:00 (in 02:00:00)"},
		{"unknown-mode", "Asr 15:00"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			got := FormatOutput(p, now, tt.mode, "15:04")
			if got != tt.want {
				t.Errorf("FormatOutput(mode=%q) = %q, want %q", tt.mode, got, tt.want)
			}
		})
	}
}

func TestFormatOutput_TwelveHourClock(t *testing.T) {
	p := &NextPrayer{Key: "Asr", Label: "Asr", Minutes: 15*60 + 24}
	now := time.Date(2026, 2, 28, 13, 0, 0, 0, time.UTC)

	got := FormatOutput(p, now, FormatNameAndTime, "3:04 PM")
	if got != "Asr 3:24 PM" {
		t.Errorf("FormatOutput = %q, want %q", got, "Asr 3:24 PM")
	}
}

func TestFormatOutput_CustomTemplate(t *testing.T) {
	p := &NextPrayer{Key: "Maghrib", Label: "Maghrib", Minutes: 17*60 + 47}
	now := time.Date(2026, 2, 28, 17, 0, 0, 0, time.UTC)

	got := FormatOutput(p, now, "{{.Name}} in {{.Countdown}}", "15:04")
	if got != "Maghrib in 00:47:00" {
		t.Errorf("FormatOutput = %q, want %q", got, "Maghrib in 00:47:00")
	}
}

func TestFormatOutput_TemplateHoursMinutes(t *testing.T) {
	p := &NextPrayer{Key: "Isha", Label: "Isha", Minutes: 19 * 60}
	now := time.Date(2026, 2, 28, 16, 30, 0, 0, time.UTC)

	got := FormatOutput(p, now, "{{.Hours}}h{{.Minutes}}m", "15:04")
	if got != "2h30m" {
		t.Errorf("FormatOutput = %q, want %q", got, "2h30m")
	}
}

func TestFormatOutput_BadTemplate(t *testing.T) {
	p := &NextPrayer{Key: "Fajr", Label: "Fajr", Minutes: 5 * 60}
	now := time.Date(2026, 2, 28, 3, 0, 0, 0, time.UTC)

	got := FormatOutput(p, now, "{{.Name", "15:04")
	if !strings.HasPrefix(got, "template-err:") {
		t.Errorf("expected template error output, got %q", got)
	}
}
