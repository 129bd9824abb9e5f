package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/deencli/deen/internal/display"
	"github.com/deencli/deen/internal/exchange"
	"github.com/deencli/deen/internal/islamic"
	"github.com/deencli/deen/internal/zakat"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagZakatAssets      []string
	flagZakatLiabilities []string
	flagZakatGold        []string
	flagZakatSilver      []string
	flagZakatDate        string

	flagNisabStandard string
	flagNisabUnit     string
)

func newZakatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zakat",
		Short: "Calculate zakat on cash, gold, and silver",
		Long: `Calculate the 2.5% zakat obligation over assets, liabilities, gold, and silver.

Entries in other currencies are converted into the target currency
(--currency or the configured one) using daily exchange rates.

Examples:
  deen zakat --asset cash=5000 --asset savings=2000:EUR --liability loan=1200
  deen zakat --gold 22=30.5 --silver 250 --currency BDT
  deen zakat --asset cash=5000 --date 2026-01-01`,
		RunE: runZakat,
	}

	f := cmd.Flags()
	f.StringArrayVar(&flagZakatAssets, "asset", nil, "Asset as label=amount[:currency]; repeatable")
	f.StringArrayVar(&flagZakatLiabilities, "liability", nil, "Liability as label=amount[:currency]; repeatable")
	f.StringArrayVar(&flagZakatGold, "gold", nil, "Gold holding as carat=grams; repeatable")
	f.StringArrayVar(&flagZakatSilver, "silver", nil, "Silver weight in grams; repeatable")
	f.StringVar(&flagZakatDate, "date", "", "Pin exchange rates to a past day (YYYY-MM-DD)")

	nisab := &cobra.Command{
		Use:   "nisab",
		Short: "Show the current gold and silver nisab thresholds",
		RunE:  runZakatNisab,
	}
	nisab.Flags().StringVar(&flagNisabStandard, "standard", islamic.DefaultNisabStandard, "Calculation standard: classical or common")
	nisab.Flags().StringVar(&flagNisabUnit, "unit", islamic.DefaultNisabUnit, "Weight unit: g or oz")
	cmd.AddCommand(nisab)

	return cmd
}

// parseMoneySpec parses "label=amount" or "label=amount:currency".
func parseMoneySpec(spec string) (label string, amount decimal.Decimal, currency string, err error) {
	label, rest, ok := strings.Cut(spec, "=")
	if !ok {
		return "", decimal.Zero, "", fmt.Errorf("invalid entry %q: expected label=amount[:currency]", spec)
	}
	amountStr, currency, _ := strings.Cut(rest, ":")
	amount, err = decimal.NewFromString(strings.TrimSpace(amountStr))
	if err != nil {
		return "", decimal.Zero, "", fmt.Errorf("invalid amount in %q: %w", spec, err)
	}
	return strings.TrimSpace(label), amount, strings.TrimSpace(currency), nil
}

// parseGoldSpec parses "carat=grams".
func parseGoldSpec(spec string) (carat int64, weight decimal.Decimal, err error) {
	caratStr, weightStr, ok := strings.Cut(spec, "=")
	if !ok {
		return 0, decimal.Zero, fmt.Errorf("invalid gold entry %q: expected carat=grams", spec)
	}
	carat, err = strconv.ParseInt(strings.TrimSpace(caratStr), 10, 64)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("invalid carat in %q: %w", spec, err)
	}
	weight, err = decimal.NewFromString(strings.TrimSpace(weightStr))
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("invalid weight in %q: %w", spec, err)
	}
	return carat, weight, nil
}

// buildCalculator fills a Calculator from the repeated entry flags.
func buildCalculator(currency string) (*zakat.Calculator, error) {
	calc := zakat.New(currency)

	for _, spec := range flagZakatAssets {
		label, amount, cur, err := parseMoneySpec(spec)
		if err != nil {
			return nil, err
		}
		if err := calc.AddAsset(label, amount, cur); err != nil {
			return nil, err
		}
	}
	for _, spec := range flagZakatLiabilities {
		label, amount, cur, err := parseMoneySpec(spec)
		if err != nil {
			return nil, err
		}
		if err := calc.AddLiability(label, amount, cur); err != nil {
			return nil, err
		}
	}
	for _, spec := range flagZakatGold {
		carat, weight, err := parseGoldSpec(spec)
		if err != nil {
			return nil, err
		}
		if err := calc.AddGold(carat, weight); err != nil {
			return nil, err
		}
	}
	for _, spec := range flagZakatSilver {
		weight, err := decimal.NewFromString(strings.TrimSpace(spec))
		if err != nil {
			return nil, fmt.Errorf("invalid silver weight %q: %w", spec, err)
		}
		if err := calc.AddSilver(weight); err != nil {
			return nil, err
		}
	}

	return calc, nil
}

func runZakat(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)

	calc, err := buildCalculator(cfg.Currency)
	if err != nil {
		return err
	}

	result, err := calc.Calculate(cmd.Context(), exchange.NewClient(), flagZakatDate)
	if err != nil {
		return err
	}

	if FlagJSON {
		return printJSON(result)
	}

	cur := result.Currency
	card := display.NewCard("Zakat Summary  " + display.Dim(result.DateLabel))
	if len(calc.Assets()) > 0 || len(calc.Liabilities()) > 0 {
		card.AddLine("Total assets", money(result.TotalCash, cur))
		card.AddLine("Liabilities", money(result.TotalLiabilities, cur))
		card.AddLine("Net zakatable", money(result.NetZakatableAssets, cur))
		card.AddLine("Zakat due", display.Green(money(result.TotalZakatCash, cur)))
	}
	if len(calc.GoldEntries()) > 0 {
		card.AddSection("Gold")
		card.AddLine("Pure weight", grams(result.TotalPureGoldWeight))
		card.AddLine("Zakat due", display.Green(grams(result.TotalZakatableGoldWeight)))
	}
	if len(calc.SilverEntries()) > 0 {
		card.AddSection("Silver")
		card.AddLine("Total weight", grams(result.TotalSilverWeight))
		card.AddLine("Zakat due", display.Green(grams(result.TotalZakatableSilverWeight)))
	}
	fmt.Fprint(outWriter, card.Render())

	if result.Approximate {
		fmt.Fprintf(outWriter, "\n  %s\n",
			display.Yellow("(approximate: some exchange rates were unavailable, amounts used as-is)"))
	}

	return nil
}

func runZakatNisab(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)

	client, err := newIslamicClient()
	if err != nil {
		return err
	}

	resp, err := client.FetchNisab(cmd.Context(), islamic.NisabQuery{
		Standard: flagNisabStandard,
		Currency: cfg.Currency,
		Unit:     flagNisabUnit,
	})
	if err != nil {
		return err
	}

	if FlagJSON {
		return printJSON(resp)
	}

	cur := strings.ToUpper(resp.Currency)
	unit := resp.WeightUnit

	card := display.NewCard(fmt.Sprintf("Nisab Thresholds  %s", display.Dim(resp.CalculationStandard)))
	card.AddSection("Gold")
	card.AddLine("Weight", fmt.Sprintf("%.2f %s", resp.Data.NisabThresholds.Gold.Weight, unit))
	card.AddLine("Unit price", fmt.Sprintf("%.2f %s", resp.Data.NisabThresholds.Gold.UnitPrice, cur))
	card.AddLine("Nisab", display.Bold(fmt.Sprintf("%.2f %s", resp.Data.NisabThresholds.Gold.NisabAmount, cur)))
	card.AddSection("Silver")
	card.AddLine("Weight", fmt.Sprintf("%.2f %s", resp.Data.NisabThresholds.Silver.Weight, unit))
	card.AddLine("Unit price", fmt.Sprintf("%.2f %s", resp.Data.NisabThresholds.Silver.UnitPrice, cur))
	card.AddLine("Nisab", display.Bold(fmt.Sprintf("%.2f %s", resp.Data.NisabThresholds.Silver.NisabAmount, cur)))
	fmt.Fprint(outWriter, card.Render())

	if resp.Data.Notes != "" {
		fmt.Fprintf(outWriter, "\n  %s\n", display.Gray(resp.Data.Notes))
	}

	return nil
}

func money(v decimal.Decimal, currency string) string {
	return v.StringFixed(2) + " " + currency
}

func grams(v decimal.Decimal) string {
	return v.StringFixed(2) + " g"
}
