package cli

import (
	"fmt"
	"strconv"

	"github.com/deencli/deen/internal/display"
	"github.com/spf13/cobra"
)

func newNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "Show the 99 names of Allah",
		Long:  "Display Asma ul Husna with transliteration and translation.\nThe translation language follows --language or the configured language.",
		RunE:  runNames,
	}
}

func runNames(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)

	client, err := newIslamicClient()
	if err != nil {
		return err
	}

	resp, err := client.FetchNames(cmd.Context(), cfg.Language)
	if err != nil {
		return err
	}

	if FlagJSON {
		return printJSON(resp.Data)
	}

	title := resp.Data.Title
	if title == "" {
		title = "Asma ul Husna"
	}
	fmt.Fprintf(outWriter, "  %s", display.Bold(title))
	if resp.Data.ArabicTitle != "" {
		fmt.Fprintf(outWriter, "  %s", resp.Data.ArabicTitle)
	}
	fmt.Fprint(outWriter, "\n\n")

	tbl := display.NewTable([]string{"#", "Name", "Transliteration", "Translation"})
	for _, n := range resp.Data.Names {
		tbl.AddRow([]string{strconv.Itoa(n.Number), n.Name, n.Transliteration, n.Translation})
	}
	fmt.Fprint(outWriter, tbl.Render())

	return nil
}
