// Package zakat aggregates user-entered assets, liabilities, gold, and
// silver, converts multi-currency entries into a target currency, and
// computes the 2.5% zakat obligation.
//
// All money and weight values are shopspring decimals; float arithmetic is
// never used for amounts.
package zakat

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// LevyRate is the fixed zakat levy: 2.5% of net zakatable wealth. It is not
// configurable per calculation.
var LevyRate = decimal.RequireFromString("0.025")

// pureCarats is the carat count of pure gold.
var pureCarats = decimal.NewFromInt(24)

// maxConcurrentLookups bounds in-flight rate requests during Calculate.
const maxConcurrentLookups = 4

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// RateSource provides currency conversion rates. The ok flag reports whether
// a real rate was found; false means the identity rate 1.0 was substituted.
// Implementations never fail outright.
type RateSource interface {
	Rate(ctx context.Context, from, to, date string) (decimal.Decimal, bool)
}

// Asset is a user-entered zakatable holding.
type Asset struct {
	ID       string
	Type     string
	Amount   decimal.Decimal
	Currency string
}

// Liability is a user-entered debt deducted from zakatable wealth.
type Liability struct {
	ID       string
	Type     string
	Amount   decimal.Decimal
	Currency string
}

// Gold is a gold holding. The derived weights are computed at add time:
// PureWeight = Weight × Carat / 24, ZakatableWeight = PureWeight × 2.5%.
type Gold struct {
	ID              string
	Carat           int64
	Weight          decimal.Decimal
	PureWeight      decimal.Decimal
	ZakatableWeight decimal.Decimal
}

// Silver is a silver holding. ZakatableWeight = Weight × 2.5%, computed at
// add time.
type Silver struct {
	ID              string
	Weight          decimal.Decimal
	ZakatableWeight decimal.Decimal
}

// Result is the snapshot produced by Calculate. Approximate reports that at
// least one currency conversion degraded to the identity rate, so monetary
// totals may be off; weight totals are always exact.
type Result struct {
	TotalCash                  decimal.Decimal
	TotalLiabilities           decimal.Decimal
	NetZakatableAssets         decimal.Decimal
	TotalZakatCash             decimal.Decimal
	TotalPureGoldWeight        decimal.Decimal
	TotalZakatableGoldWeight   decimal.Decimal
	TotalSilverWeight          decimal.Decimal
	TotalZakatableSilverWeight decimal.Decimal
	Currency                   string
	DateLabel                  string
	Approximate                bool
}

// Calculator accumulates entries and produces Results. It is owned by a
// single caller; methods are not safe for concurrent use.
type Calculator struct {
	currency    string
	assets      []Asset
	liabilities []Liability
	gold        []Gold
	silver      []Silver
	seq         int

	now func() time.Time // injectable clock for deterministic IDs and labels
}

// New creates a Calculator targeting the given display currency.
func New(currency string) *Calculator {
	return &Calculator{
		currency: strings.ToUpper(currency),
		now:      time.Now,
	}
}

// Currency returns the target display currency.
func (c *Calculator) Currency() string { return c.currency }

// nextID builds a locally unique entry ID from the clock and a counter.
func (c *Calculator) nextID() string {
	id := fmt.Sprintf("%d-%d", c.now().UnixMilli(), c.seq)
	c.seq++
	return id
}

// AddAsset validates and appends an asset entry. An empty currency means the
// target currency. A validation failure mutates nothing.
func (c *Calculator) AddAsset(typ string, amount decimal.Decimal, currency string) error {
	typ = strings.TrimSpace(typ)
	if typ == "" || !amount.IsPositive() {
		return fmt.Errorf("asset requires a type label and a positive amount")
	}
	if currency == "" {
		currency = c.currency
	}
	c.assets = append(c.assets, Asset{
		ID:       c.nextID(),
		Type:     typ,
		Amount:   amount,
		Currency: strings.ToUpper(currency),
	})
	return nil
}

// AddLiability validates and appends a liability entry.
func (c *Calculator) AddLiability(typ string, amount decimal.Decimal, currency string) error {
	typ = strings.TrimSpace(typ)
	if typ == "" || !amount.IsPositive() {
		return fmt.Errorf("liability requires a type label and a positive amount")
	}
	if currency == "" {
		currency = c.currency
	}
	c.liabilities = append(c.liabilities, Liability{
		ID:       c.nextID(),
		Type:     typ,
		Amount:   amount,
		Currency: strings.ToUpper(currency),
	})
	return nil
}

// AddGold validates and appends a gold entry, computing the derived pure and
// zakatable weights immediately. Carat values above 24 are accepted; the
// purity formula simply extrapolates.
func (c *Calculator) AddGold(carat int64, weight decimal.Decimal) error {
	if carat <= 0 || !weight.IsPositive() {
		return fmt.Errorf("gold requires a positive carat and weight in grams")
	}
	pure := weight.Mul(decimal.NewFromInt(carat)).Div(pureCarats)
	c.gold = append(c.gold, Gold{
		ID:              c.nextID(),
		Carat:           carat,
		Weight:          weight,
		PureWeight:      pure,
		ZakatableWeight: pure.Mul(LevyRate),
	})
	return nil
}

// AddSilver validates and appends a silver entry.
func (c *Calculator) AddSilver(weight decimal.Decimal) error {
	if !weight.IsPositive() {
		return fmt.Errorf("silver requires a positive weight in grams")
	}
	c.silver = append(c.silver, Silver{
		ID:              c.nextID(),
		Weight:          weight,
		ZakatableWeight: weight.Mul(LevyRate),
	})
	return nil
}

// Remove deletes the entry with the given ID from whichever list holds it.
func (c *Calculator) Remove(id string) bool {
	for i, a := range c.assets {
		if a.ID == id {
			c.assets = append(c.assets[:i], c.assets[i+1:]...)
			return true
		}
	}
	for i, l := range c.liabilities {
		if l.ID == id {
			c.liabilities = append(c.liabilities[:i], c.liabilities[i+1:]...)
			return true
		}
	}
	for i, g := range c.gold {
		if g.ID == id {
			c.gold = append(c.gold[:i], c.gold[i+1:]...)
			return true
		}
	}
	for i, s := range c.silver {
		if s.ID == id {
			c.silver = append(c.silver[:i], c.silver[i+1:]...)
			return true
		}
	}
	return false
}

// Reset clears all entry lists, returning the calculator to its initial state.
func (c *Calculator) Reset() {
	c.assets = nil
	c.liabilities = nil
	c.gold = nil
	c.silver = nil
	c.seq = 0
}

// Assets returns a copy of the current asset entries.
func (c *Calculator) Assets() []Asset { return append([]Asset(nil), c.assets...) }

// Liabilities returns a copy of the current liability entries.
func (c *Calculator) Liabilities() []Liability { return append([]Liability(nil), c.liabilities...) }

// GoldEntries returns a copy of the current gold entries.
func (c *Calculator) GoldEntries() []Gold { return append([]Gold(nil), c.gold...) }

// SilverEntries returns a copy of the current silver entries.
func (c *Calculator) SilverEntries() []Silver { return append([]Silver(nil), c.silver...) }

// Calculate converts every entry into the target currency and produces the
// zakat snapshot. date optionally pins the exchange rate to a past day and
// must be YYYY-MM-DD. All needed rate lookups run concurrently and all settle
// before totals are computed; lookups degrade to the identity rate rather
// than failing the calculation, which sets Result.Approximate.
func (c *Calculator) Calculate(ctx context.Context, rates RateSource, date string) (*Result, error) {
	if len(c.assets) == 0 && len(c.gold) == 0 && len(c.silver) == 0 {
		return nil, fmt.Errorf("add assets, gold, or silver before calculating")
	}
	if date != "" && !datePattern.MatchString(date) {
		return nil, fmt.Errorf("exchange rate date must be YYYY-MM-DD, got %q", date)
	}

	// Weight totals never involve currency conversion.
	var pureGold, zakatableGold, silverWeight, zakatableSilver decimal.Decimal
	for _, g := range c.gold {
		pureGold = pureGold.Add(g.PureWeight)
		zakatableGold = zakatableGold.Add(g.ZakatableWeight)
	}
	for _, s := range c.silver {
		silverWeight = silverWeight.Add(s.Weight)
		zakatableSilver = zakatableSilver.Add(s.ZakatableWeight)
	}

	convertedAssets := make([]decimal.Decimal, len(c.assets))
	convertedLiabilities := make([]decimal.Decimal, len(c.liabilities))
	degraded := make([]bool, len(c.assets)+len(c.liabilities))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for i, a := range c.assets {
		i, a := i, a
		g.Go(func() error {
			convertedAssets[i], degraded[i] = c.convert(gctx, rates, a.Amount, a.Currency, date)
			return nil
		})
	}
	for i, l := range c.liabilities {
		i, l := i, l
		g.Go(func() error {
			convertedLiabilities[i], degraded[len(c.assets)+i] = c.convert(gctx, rates, l.Amount, l.Currency, date)
			return nil
		})
	}
	// Lookups never fail; Wait is a barrier so every conversion settles
	// before totals.
	_ = g.Wait()

	var totalCash, totalLiabilities decimal.Decimal
	for _, v := range convertedAssets {
		totalCash = totalCash.Add(v)
	}
	for _, v := range convertedLiabilities {
		totalLiabilities = totalLiabilities.Add(v)
	}

	net := totalCash.Sub(totalLiabilities)
	if net.IsNegative() {
		net = decimal.Zero
	}

	approximate := false
	for _, d := range degraded {
		if d {
			approximate = true
			break
		}
	}

	return &Result{
		TotalCash:                  totalCash,
		TotalLiabilities:           totalLiabilities,
		NetZakatableAssets:         net,
		TotalZakatCash:             net.Mul(LevyRate),
		TotalPureGoldWeight:        pureGold,
		TotalZakatableGoldWeight:   zakatableGold,
		TotalSilverWeight:          silverWeight,
		TotalZakatableSilverWeight: zakatableSilver,
		Currency:                   c.currency,
		DateLabel:                  c.dateLabel(date),
		Approximate:                approximate,
	}, nil
}

// convert returns amount expressed in the target currency and whether the
// conversion degraded. Same-currency entries short-circuit the lookup.
func (c *Calculator) convert(ctx context.Context, rates RateSource, amount decimal.Decimal, currency, date string) (decimal.Decimal, bool) {
	if strings.ToUpper(currency) == c.currency {
		return amount, false
	}
	rate, ok := rates.Rate(ctx, currency, c.currency, date)
	return amount.Mul(rate), !ok
}

// dateLabel formats the calculation date for display: today's date when no
// override was given or the override equals today, otherwise the override.
func (c *Calculator) dateLabel(date string) string {
	today := c.now()
	if date == "" || date == today.Format("2006-01-02") {
		return today.Format("02 Jan 2006")
	}
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return parsed.Format("02 Jan 2006")
}
