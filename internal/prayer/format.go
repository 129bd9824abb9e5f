package prayer

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"
)

// Format constants for display modes.
const (
	FormatCountdownOnly      = "countdown"
	FormatNextPrayerTime     = "next-prayer-time"
	FormatNameAndTime        = "name-and-time"
	FormatNameAndCountdown   = "name-and-countdown"
	FormatShortNameAndTime   = "short-name-and-time"
	FormatShortNameCountdown = "short-name-and-countdown"
	FormatFull               = "full"
)

// FormatData is the data passed to custom Go templates.
type FormatData struct {
	Name      string // Prayer label, e.g. "Asr"
	ShortName string // Abbreviated name, e.g. "A"
	Time      string // Formatted prayer time, e.g. "15:02" or "3:02 PM"
	Countdown string // Time remaining, e.g. "02:15:09"
	Hours     int    // Whole hours remaining
	Minutes   int    // Remaining minutes after hours
}

// FormatOutput renders the next prayer for display according to the chosen
// format mode. timeFormat should be "15:04" for 24h or "3:04 PM" for 12h.
//
// If mode contains "{{", it is treated as a custom Go template string with
// fields .Name, .ShortName, .Time, .Countdown, .Hours, .Minutes.
//
// Example: "{{.Name}} in {{.Countdown}}" -> "Asr in 02:15:09"
func FormatOutput(p *NextPrayer, now time.Time, mode string, timeFormat string) string {
	d := Target(p, now).Sub(now)
	countdown := FormatCountdown(d)
	timeStr := Clock(p.Minutes, timeFormat)
	short := ShortNames[p.Key]

	if strings.Contains(mode, "{{") {
		return formatCustom(mode, FormatData{
			Name:      p.Label,
			ShortName: short,
			Time:      timeStr,
			Countdown: countdown,
			Hours:     int(d.Hours()),
			Minutes:   int(d.Minutes()) % 60,
		})
	}

	switch mode {
	case FormatCountdownOnly:
		return countdown
	case FormatNextPrayerTime:
		return timeStr
	case FormatNameAndTime:
		return fmt.Sprintf("%s %s", p.Label, timeStr)
	case FormatNameAndCountdown:
		return fmt.Sprintf("%s %s", p.Label, countdown)
	case FormatShortNameAndTime:
		return fmt.Sprintf("%s %s", short, timeStr)
	case FormatShortNameCountdown:
		return fmt.Sprintf("%s %s", short, countdown)
	case FormatFull:
		return fmt.Sprintf("%s %s (in %s)", p.Label, timeStr, countdown)
	default:
		return fmt.Sprintf("%s %s", p.Label, timeStr)
	}
}

// formatCustom executes a user-provided Go template string against the FormatData.
func formatCustom(tmpl string, data FormatData) string {
	t, err := template.New("custom").Parse(tmpl)
	if err != nil {
		return fmt.Sprintf("template-err: %v", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Sprintf("template-err: %v", err)
	}

	return buf.String()
}
