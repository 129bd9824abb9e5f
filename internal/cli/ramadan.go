package cli

import (
	"fmt"

	"github.com/deencli/deen/internal/display"
	"github.com/deencli/deen/internal/islamic"
	"github.com/spf13/cobra"
)

func newRamadanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ramadan",
		Short: "Show the Ramadan fasting calendar",
		Long:  "Display the full Ramadan month schedule with sahur and iftar times.",
		RunE:  runRamadan,
	}
}

func runRamadan(cmd *cobra.Command, args []string) error {
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

	resp, err := client.FetchRamadan(ctx, islamic.FastingQuery{
		Latitude:  loc.Lat,
		Longitude: loc.Lon,
		Method:    cfg.MethodOrDefault(islamic.DefaultMethod),
		School:    cfg.SchoolOrDefault(islamic.DefaultSchool),
		Shifting:  cfg.ShiftingOrDefault(islamic.DefaultShifting),
		Calendar:  cfg.Calendar,
	})
	if err != nil {
		return err
	}

	if FlagJSON {
		return printJSON(resp)
	}

	header := fmt.Sprintf("Ramadan %d", resp.RamadanYear)
	if resp.Range != "" {
		header += "  " + resp.Range
	}
	fmt.Fprintf(outWriter, "  %s\n", display.Bold(header))
	if label := loc.Label(); label != "" {
		fmt.Fprintf(outWriter, "  %s\n", display.Gray(label))
	}
	fmt.Fprintln(outWriter)

	if len(resp.Data.Fasting) == 0 {
		fmt.Fprintln(outWriter, "  No Ramadan schedule returned.")
		return nil
	}

	tbl := display.NewTable([]string{"Day", "Date", "Sahur", "Iftar", "Duration"})
	for _, d := range resp.Data.Fasting {
		tbl.AddRow([]string{d.Day, d.Date, d.Time.Sahur, d.Time.Iftar, d.Time.Duration})
	}
	fmt.Fprint(outWriter, tbl.Render())

	printWhiteDays(resp.Data.WhiteDays)
	printRamadanResource(resp.Resource)

	return nil
}

func printRamadanResource(res *islamic.RamadanResource) {
	if res == nil {
		return
	}

	if res.Dua != nil {
		fmt.Fprintf(outWriter, "\n  %s\n", display.Bold(res.Dua.Title))
		fmt.Fprintf(outWriter, "  %s\n", res.Dua.Arabic)
		if res.Dua.Transliteration != "" {
			fmt.Fprintf(outWriter, "  %s\n", display.Dim(res.Dua.Transliteration))
		}
		fmt.Fprintf(outWriter, "  %s\n", res.Dua.Translation)
		if res.Dua.Reference != "" {
			fmt.Fprintf(outWriter, "  %s\n", display.Gray(res.Dua.Reference))
		}
	}

	if res.Hadith != nil {
		fmt.Fprintf(outWriter, "\n  %s\n", res.Hadith.English)
		source := res.Hadith.Source
		if res.Hadith.Grade != "" {
			source += " (" + res.Hadith.Grade + ")"
		}
		if source != "" {
			fmt.Fprintf(outWriter, "  %s\n", display.Gray(source))
		}
	}
}
