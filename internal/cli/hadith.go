package cli

import (
	"fmt"
	"strings"

	"github.com/deencli/deen/internal/config"
	"github.com/deencli/deen/internal/display"
	"github.com/deencli/deen/internal/hadith"
	"github.com/spf13/cobra"
)

var (
	flagHadithPage     int
	flagHadithPageSize int
	flagHadithBook     string
	flagHadithChapter  string
	flagHadithStatus   string
	flagHadithArabic   bool
)

func newHadithCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hadith",
		Short: "Browse and search hadith collections",
	}

	books := &cobra.Command{
		Use:   "books",
		Short: "List the available hadith collections",
		RunE:  runHadithBooks,
	}

	chapters := &cobra.Command{
		Use:   "chapters <book-slug>",
		Short: "List a collection's chapters",
		Args:  cobra.ExactArgs(1),
		RunE:  runHadithChapters,
	}
	chapters.Flags().IntVar(&flagHadithPage, "page", 1, "Page number")
	chapters.Flags().IntVar(&flagHadithPageSize, "page-size", hadith.DefaultPageSize, "Results per page")

	search := &cobra.Command{
		Use:   "search [text]",
		Short: "Search hadiths by text and filters",
		Long:  "Search hadiths by English text, optionally filtered by collection, chapter, and authenticity grade.",
		Args:  cobra.ArbitraryArgs,
		RunE:  runHadithSearch,
	}
	search.Flags().StringVar(&flagHadithBook, "book", "", "Restrict to a collection slug (e.g. sahih-bukhari)")
	search.Flags().StringVar(&flagHadithChapter, "chapter", "", "Restrict to a chapter number")
	search.Flags().StringVar(&flagHadithStatus, "status", "", "Filter by grade: Sahih, Hasan, or Da`eef")
	search.Flags().IntVar(&flagHadithPage, "page", 1, "Page number")
	search.Flags().IntVar(&flagHadithPageSize, "page-size", hadith.DefaultPageSize, "Results per page")
	search.Flags().BoolVar(&flagHadithArabic, "arabic", false, "Include the Arabic text")

	cmd.AddCommand(books, chapters, search)
	return cmd
}

func newHadithClient() (*hadith.Client, error) {
	client, err := hadith.NewClient(loadedEnv.HadithAPIURL, loadedEnv.HadithAPIKey)
	if err != nil {
		return nil, fmt.Errorf("%w (set %s and %s)", err, config.EnvHadithAPIURL, config.EnvHadithAPIKey)
	}
	return client, nil
}

func runHadithBooks(cmd *cobra.Command, args []string) error {
	client, err := newHadithClient()
	if err != nil {
		return err
	}

	books, err := client.Books(cmd.Context())
	if err != nil {
		return err
	}

	if FlagJSON {
		return printJSON(books)
	}

	if len(books) == 0 {
		fmt.Fprintln(outWriter, "  No collections available.")
		return nil
	}

	tbl := display.NewTable([]string{"Slug", "Collection", "Writer", "Hadiths", "Chapters"})
	for _, b := range books {
		tbl.AddRow([]string{b.BookSlug, b.BookName, b.WriterName, b.HadithsCount, b.ChaptersCount})
	}
	fmt.Fprint(outWriter, tbl.Render())

	return nil
}

func runHadithChapters(cmd *cobra.Command, args []string) error {
	client, err := newHadithClient()
	if err != nil {
		return err
	}

	page, err := client.Chapters(cmd.Context(), args[0], flagHadithPage, flagHadithPageSize)
	if err != nil {
		return err
	}

	if FlagJSON {
		return printJSON(page)
	}

	tbl := display.NewTable([]string{"#", "Chapter", "Arabic"})
	for _, ch := range page.Data {
		tbl.AddRow([]string{ch.ChapterNumber, ch.ChapterEnglish, ch.ChapterArabic})
	}
	fmt.Fprint(outWriter, tbl.Render())
	printPageFooter(page.CurrentPage, page.LastPage, page.Total)

	return nil
}

func runHadithSearch(cmd *cobra.Command, args []string) error {
	client, err := newHadithClient()
	if err != nil {
		return err
	}

	page, err := client.Search(cmd.Context(), hadith.SearchQuery{
		BookSlug: flagHadithBook,
		Chapter:  flagHadithChapter,
		Status:   flagHadithStatus,
		Text:     strings.Join(args, " "),
		Page:     flagHadithPage,
		PageSize: flagHadithPageSize,
	})
	if err != nil {
		return err
	}

	if FlagJSON {
		return printJSON(page)
	}

	if len(page.Data) == 0 {
		fmt.Fprintln(outWriter, "  No hadiths found.")
		return nil
	}

	for _, h := range page.Data {
		header := fmt.Sprintf("%s #%s", h.BookSlug, h.HadithNumber)
		if h.Status != "" {
			header += "  " + gradeColor(h.Status)
		}
		fmt.Fprintf(outWriter, "  %s\n", display.Bold(header))
		if h.EnglishNarrator != "" {
			fmt.Fprintf(outWriter, "  %s\n", display.Dim(h.EnglishNarrator))
		}
		fmt.Fprintf(outWriter, "  %s\n", h.HadithEnglish)
		if flagHadithArabic && h.HadithArabic != "" {
			fmt.Fprintf(outWriter, "  %s\n", h.HadithArabic)
		}
		fmt.Fprintln(outWriter)
	}
	printPageFooter(page.CurrentPage, page.LastPage, page.Total)

	return nil
}

// gradeColor colors an authenticity grade: green for Sahih, yellow for
// Hasan, red otherwise.
func gradeColor(status string) string {
	switch status {
	case "Sahih":
		return display.Green(status)
	case "Hasan":
		return display.Yellow(status)
	default:
		return display.Red(status)
	}
}

func printPageFooter(current, last, total int) {
	if last <= 1 {
		return
	}
	fmt.Fprintf(outWriter, "  %s\n", display.Gray(fmt.Sprintf("page %d of %d (%d total)", current, last, total)))
}
