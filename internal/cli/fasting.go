package cli

import (
	"fmt"
	"sort"

	"github.com/deencli/deen/internal/config"
	"github.com/deencli/deen/internal/display"
	"github.com/deencli/deen/internal/islamic"
	"github.com/spf13/cobra"
)

var flagFastingDate string

func newFastingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fasting",
		Short: "Show sahur and iftar times",
		Long:  "Display fasting times (sahur, iftar, duration) for today or a chosen span.\nUse --date YYYY-MM-DD for a single day or YYYY-MM for a whole month.",
		RunE:  runFasting,
	}

	cmd.Flags().StringVar(&flagFastingDate, "date", "", "Date (YYYY-MM-DD) or month (YYYY-MM); default today")

	return cmd
}

func newIslamicClient() (*islamic.Client, error) {
	client, err := islamic.NewClient(loadedEnv.IslamicAPIURL, loadedEnv.IslamicAPIKey)
	if err != nil {
		return nil, fmt.Errorf("%w (set %s and %s)", err, config.EnvIslamicAPIURL, config.EnvIslamicAPIKey)
	}
	return client, nil
}

func runFasting(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)
	ctx := cmd.Context()

	c := openCache(cfg)
	loc, err := resolveLocation(ctx, cfg, c)
	if err != nil {
		return err
	}

	client, err := newIslamicClient()
	if err != nil {
		return err
	}

	resp, err := client.FetchFasting(ctx, islamic.FastingQuery{
		Latitude:  loc.Lat,
		Longitude: loc.Lon,
		Method:    cfg.MethodOrDefault(islamic.DefaultMethod),
		Shifting:  cfg.ShiftingOrDefault(islamic.DefaultShifting),
		Calendar:  cfg.Calendar,
		Date:      flagFastingDate,
	})
	if err != nil {
		return err
	}

	if FlagJSON {
		return printJSON(resp)
	}

	if label := loc.Label(); label != "" {
		fmt.Fprintf(outWriter, "  %s\n\n", display.Gray(label))
	}

	printFastingDays(resp.Data.Fasting)
	printWhiteDays(resp.Data.WhiteDays)

	return nil
}

func printFastingDays(days []islamic.FastingDay) {
	if len(days) == 0 {
		fmt.Fprintln(outWriter, "  No fasting times returned.")
		return
	}

	tbl := display.NewTable([]string{"Date", "Hijri", "Sahur", "Iftar", "Duration"})
	for _, d := range days {
		tbl.AddRow([]string{d.Date, d.HijriReadable, d.Time.Sahur, d.Time.Iftar, d.Time.Duration})
	}
	fmt.Fprint(outWriter, tbl.Render())
}

func printWhiteDays(wd *islamic.WhiteDays) {
	if wd == nil || len(wd.Days) == 0 {
		return
	}

	// Map order is random; show 13th, 14th, 15th in order.
	keys := make([]string, 0, len(wd.Days))
	for k := range wd.Days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintf(outWriter, "\n  %s\n", display.Bold("White days"))
	for _, k := range keys {
		fmt.Fprintf(outWriter, "  %s  %s\n", display.Dim(k), wd.Days[k])
	}
}
