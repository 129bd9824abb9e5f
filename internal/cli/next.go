package cli

import (
	"fmt"
	"time"

	"github.com/deencli/deen/internal/prayer"
	"github.com/spf13/cobra"
)

var (
	flagFormat string
	flagWatch  bool
)

func newNextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the next prayer with countdown",
		Long:  "Display the next upcoming prayer with a countdown.\nWith --watch the countdown refreshes every second until interrupted.",
		RunE:  runNext,
	}

	cmd.Flags().StringVar(&flagFormat, "format", prayer.FormatFull, "Display format: countdown, next-prayer-time, name-and-time, name-and-countdown, short-name-and-time, short-name-and-countdown, full, or a custom Go template")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Refresh the countdown every second")

	return cmd
}

func runNext(cmd *cobra.Command, args []string) error {
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

	next := prayer.Next(data.Times, now)
	if next == nil {
		return fmt.Errorf("no prayer times in the schedule")
	}

	if FlagJSON {
		return printJSON(map[string]any{
			"name":      next.Label,
			"time":      next.Raw,
			"countdown": prayer.Countdown(next, now),
		})
	}

	if !flagWatch {
		fmt.Fprint(outWriter, prayer.FormatOutput(next, now, flagFormat, cfg.TimeLayout()))
		fmt.Fprintln(outWriter)
		return nil
	}

	// Watch mode: redraw in place once per second. The target can roll over
	// to the next prayer at a day boundary, so re-resolve each tick.
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		now = time.Now()
		next = prayer.Next(data.Times, now)
		if next == nil {
			return fmt.Errorf("no prayer times in the schedule")
		}
		fmt.Fprintf(outWriter, "\r\033[K%s", prayer.FormatOutput(next, now, flagFormat, cfg.TimeLayout()))

		select {
		case <-ctx.Done():
			fmt.Fprintln(outWriter)
			return nil
		case <-ticker.C:
		}
	}
}
