package cli

import (
	"fmt"
	"time"

	"github.com/deencli/deen/internal/display"
	"github.com/deencli/deen/internal/islamic"
	"github.com/deencli/deen/internal/prayer"
	"github.com/spf13/cobra"
)

var flagQibla bool

func newTodayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's full prayer schedule",
		Long:  "Display today's prayer schedule with Hijri date, highlighting the next prayer.",
		RunE:  runToday,
	}

	cmd.Flags().BoolVar(&flagQibla, "qibla", false, "Also show qibla direction and prohibited times")

	return cmd
}

func runToday(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)
	ctx := cmd.Context()

	c := openCache(cfg)
	loc, err := resolveLocation(ctx, cfg, c)
	if err != nil {
		return err
	}

	now := time.Now()
	data, err := fetchTimings(ctx, now, timingsQuery(cfg, loc), c)
	if err != nil {
		return err
	}

	if FlagJSON {
		return printJSON(data)
	}

	printTodayHeader(data, loc)

	next := prayer.Next(data.Times, now)

	tbl := display.NewTable([]string{"", "Prayer", "Time"})
	row := 0
	for _, entry := range prayer.AllTimeEntries {
		raw, ok := data.Times[entry.Key]
		if !ok {
			continue
		}
		rendered := raw
		if minutes, ok := prayer.ParseClock(raw); ok {
			rendered = prayer.Clock(minutes, cfg.TimeLayout())
		}
		tbl.AddRow([]string{entry.Icon, entry.Label, rendered})
		if next != nil && entry.Key == next.Key {
			tbl.SetHighlightRow(row)
		}
		row++
	}
	fmt.Fprint(outWriter, tbl.Render())

	if next != nil {
		fmt.Fprintf(outWriter, "\n  %s %s in %s\n",
			next.Icon, display.Accent(next.Label), prayer.Countdown(next, now))
	}

	if flagQibla {
		printQibla(data)
	}

	return nil
}

func printTodayHeader(data *islamic.TimingsData, loc resolvedLocation) {
	hijri := data.Date.Hijri
	if hijri.Date != "" {
		fmt.Fprintf(outWriter, "  %s\n", display.Bold(fmt.Sprintf("%s %s %s AH",
			hijri.Day, hijri.Month.En, hijri.Year)))
	}
	if data.Date.Readable != "" {
		fmt.Fprintf(outWriter, "  %s\n", display.Dim(data.Date.Readable))
	}
	if label := loc.Label(); label != "" {
		fmt.Fprintf(outWriter, "  %s\n", display.Gray(label))
	}
	fmt.Fprintln(outWriter)
}

func printQibla(data *islamic.TimingsData) {
	card := display.NewCard("Qibla")
	card.AddLine("Direction", fmt.Sprintf("%.1f° from %s", data.Qibla.Direction.Degrees, data.Qibla.Direction.From))
	card.AddLine("Distance", fmt.Sprintf("%.0f %s", data.Qibla.Distance.Value, data.Qibla.Distance.Unit))

	pt := data.ProhibitedTimes
	if pt.Sunrise.Start != "" || pt.Noon.Start != "" || pt.Sunset.Start != "" {
		card.AddSection("Prohibited times")
		card.AddLine("Sunrise", pt.Sunrise.Start+" - "+pt.Sunrise.End)
		card.AddLine("Noon", pt.Noon.Start+" - "+pt.Noon.End)
		card.AddLine("Sunset", pt.Sunset.Start+" - "+pt.Sunset.End)
	}

	fmt.Fprint(outWriter, "\n"+card.Render())
}
