package cli

import (
	"fmt"
	"strconv"

	"github.com/deencli/deen/internal/display"
	"github.com/deencli/deen/internal/quran"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var flagNoTranslation bool

func newQuranCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quran [surah]",
		Short: "Browse the Quran",
		Long:  "With no argument, list all 114 surahs.\nWith a surah number, print its Arabic text with the English translation.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runQuran,
	}

	cmd.Flags().BoolVar(&flagNoTranslation, "no-translation", false, "Show Arabic text only")

	return cmd
}

func runQuran(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, err := quran.NewClient(loadedEnv.QuranAPIURL)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return listSurahs(cmd, client)
	}

	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("surah must be a number 1..%d, got %q", quran.TotalSurahs, args[0])
	}

	// The Arabic text and the translation are independent files; fetch them
	// together.
	var (
		surah *quran.Surah
		tr    *quran.Translation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		surah, err = client.Surah(gctx, number)
		return err
	})
	if !flagNoTranslation {
		g.Go(func() error {
			var err error
			tr, err = client.Translation(gctx, number)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if FlagJSON {
		return printJSON(map[string]any{"surah": surah, "translation": tr})
	}

	fmt.Fprintf(outWriter, "  %s  %s\n\n", display.Bold(surah.Name), display.Dim(fmt.Sprintf("%d verses", surah.Count)))

	for i := 1; i <= surah.Count; i++ {
		key := quran.VerseKey(i)
		fmt.Fprintf(outWriter, "  %s  %s\n", display.Accent(strconv.Itoa(i)), surah.Verse[key])
		if tr != nil {
			if text, ok := tr.Verse[key]; ok {
				fmt.Fprintf(outWriter, "     %s\n", display.Dim(text))
			}
		}
		fmt.Fprintln(outWriter)
	}

	return nil
}

func listSurahs(cmd *cobra.Command, client *quran.Client) error {
	cfg := effectiveConfig(cmd)
	ctx := cmd.Context()

	c := openCache(cfg)

	index := []quran.SurahSummary(nil)
	if c != nil {
		index = c.LoadSurahIndex()
	}
	if index == nil {
		var err error
		index, err = client.Surahs(ctx)
		if err != nil {
			return err
		}
		if c != nil {
			_ = c.SaveSurahIndex(index)
		}
	}

	if FlagJSON {
		return printJSON(index)
	}

	tbl := display.NewTable([]string{"#", "Surah", "Arabic", "Verses", "Place"})
	for _, s := range index {
		tbl.AddRow([]string{s.Index, s.Title, s.TitleAr, strconv.Itoa(s.Count), s.Place})
	}
	fmt.Fprint(outWriter, tbl.Render())

	return nil
}
