// Package display renders the CLI's tables, cards, and ANSI-styled text.
//
// Styling honors the NO_COLOR environment variable (https://no-color.org/)
// and switches itself off when stdout is piped or redirected. FORCE_COLOR
// overrides both.
package display

import (
	"fmt"
	"os"
)

// style is a chain of ANSI SGR codes applied around a string.
type style string

const (
	reset = "\033[0m"

	styleBold   style = "\033[1m"
	styleDim    style = "\033[2m"
	styleRed    style = "\033[31m"
	styleGreen  style = "\033[32m"
	styleYellow style = "\033[33m"
	styleCyan   style = "\033[36m"
	styleGray   style = "\033[90m" // bright black
	// styleAccent marks the next prayer row and verse numbers.
	styleAccent style = "\033[1m\033[36m"
)

// enabled is detected once at startup.
var enabled = detectColor()

func detectColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if _, ok := os.LookupEnv("FORCE_COLOR"); ok {
		return true
	}
	// Character device check; no cgo or external deps.
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// SetEnabled overrides the detected color state. Tests use it, and --json
// output forces plain text through it.
func SetEnabled(b bool) { enabled = b }

// Enabled reports whether styled output is currently active.
func Enabled() bool { return enabled }

// apply wraps text in the style's codes when styling is active.
func (s style) apply(text string) string {
	if !enabled {
		return text
	}
	return string(s) + text + reset
}

// Bold returns text rendered in bold.
func Bold(text string) string { return styleBold.apply(text) }

// Dim returns text rendered dim/faint.
func Dim(text string) string { return styleDim.apply(text) }

// Red returns text rendered in red.
func Red(text string) string { return styleRed.apply(text) }

// Green returns text rendered in green.
func Green(text string) string { return styleGreen.apply(text) }

// Yellow returns text rendered in yellow.
func Yellow(text string) string { return styleYellow.apply(text) }

// Cyan returns text rendered in cyan.
func Cyan(text string) string { return styleCyan.apply(text) }

// Gray returns text rendered in gray (bright black).
func Gray(text string) string { return styleGray.apply(text) }

// Accent returns text in the accent style (bold cyan), used for the
// next-prayer highlight.
func Accent(text string) string { return styleAccent.apply(text) }

// Boldf formats and bolds a string.
func Boldf(format string, a ...any) string {
	return Bold(fmt.Sprintf(format, a...))
}
