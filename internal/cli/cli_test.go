package cli

import (
	"testing"

	"github.com/deencli/deen/internal/config"
	"github.com/shopspring/decimal"
)

func TestParseMoneySpec(t *testing.T) {
	tests := []struct {
		spec     string
		label    string
		amount   string
		currency string
		wantErr  bool
	}{
		{spec: "cash=1000", label: "cash", amount: "1000", currency: ""},
		{spec: "savings=2500.50:EUR", label: "savings", amount: "2500.5", currency: "EUR"},
		{spec: "stocks = 10 : gbp", label: "stocks", amount: "10", currency: "gbp"},
		{spec: "cash", wantErr: true},
		{spec: "cash=abc", wantErr: true},
		{spec: "cash=", wantErr: true},
	}

	for _, tt := range tests {
		label, amount, currency, err := parseMoneySpec(tt.spec)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseMoneySpec(%q): expected error", tt.spec)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseMoneySpec(%q): %v", tt.spec, err)
			continue
		}
		if label != tt.label || amount.String() != tt.amount || currency != tt.currency {
			t.Errorf("parseMoneySpec(%q) = %q %s %q, want %q %s %q",
				tt.spec, label, amount, currency, tt.label, tt.amount, tt.currency)
		}
	}
}

func TestParseGoldSpec(t *testing.T) {
	carat, weight, err := parseGoldSpec("22=30.5")
	if err != nil {
		t.Fatalf("parseGoldSpec: %v", err)
	}
	if carat != 22 || !weight.Equal(decimal.RequireFromString("30.5")) {
		t.Errorf("parseGoldSpec = %d, %s", carat, weight)
	}

	for _, spec := range []string{"30.5", "k=30", "22=grams", "22="} {
		if _, _, err := parseGoldSpec(spec); err == nil {
			t.Errorf("parseGoldSpec(%q): expected error", spec)
		}
	}
}

func TestBuildCalculator(t *testing.T) {
	flagZakatAssets = []string{"cash=1000", "savings=200:EUR"}
	flagZakatLiabilities = []string{"loan=50"}
	flagZakatGold = []string{"22=30"}
	flagZakatSilver = []string{"100"}
	t.Cleanup(func() {
		flagZakatAssets, flagZakatLiabilities, flagZakatGold, flagZakatSilver = nil, nil, nil, nil
	})

	calc, err := buildCalculator("usd")
	if err != nil {
		t.Fatalf("buildCalculator: %v", err)
	}

	if got := len(calc.Assets()); got != 2 {
		t.Errorf("assets = %d, want 2", got)
	}
	if got := calc.Assets()[0].Currency; got != "USD" {
		t.Errorf("default currency = %q, want USD", got)
	}
	if got := calc.Assets()[1].Currency; got != "EUR" {
		t.Errorf("explicit currency = %q, want EUR", got)
	}
	if got := len(calc.Liabilities()); got != 1 {
		t.Errorf("liabilities = %d, want 1", got)
	}
	if got := len(calc.GoldEntries()); got != 1 {
		t.Errorf("gold = %d, want 1", got)
	}
	if got := len(calc.SilverEntries()); got != 1 {
		t.Errorf("silver = %d, want 1", got)
	}
}

func TestBuildCalculator_BadSpecFails(t *testing.T) {
	flagZakatAssets = []string{"cash=-5"}
	t.Cleanup(func() { flagZakatAssets = nil })

	if _, err := buildCalculator("usd"); err == nil {
		t.Error("expected error for negative amount")
	}
}

func TestEffectiveConfig_FlagsOverrideConfig(t *testing.T) {
	method := 4
	loadedConfig = &config.Config{
		City:     "Dhaka",
		Country:  "Bangladesh",
		Method:   &method,
		Currency: "BDT",
	}
	t.Cleanup(func() { loadedConfig = nil })

	root := NewRootCmd("test")
	root.SetArgs([]string{"--method", "3", "--currency", "EUR"})
	if err := root.ParseFlags([]string{"--method", "3", "--currency", "EUR"}); err != nil {
		t.Fatal(err)
	}

	cfg := effectiveConfig(root)

	if cfg.Method == nil || *cfg.Method != 3 {
		t.Errorf("method = %v, want flag value 3", cfg.Method)
	}
	if cfg.Currency != "EUR" {
		t.Errorf("currency = %q, want flag value EUR", cfg.Currency)
	}
	// Untouched values come from the config file.
	if cfg.City != "Dhaka" {
		t.Errorf("city = %q, want config value Dhaka", cfg.City)
	}
}

func TestEffectiveConfig_DefaultsFillGaps(t *testing.T) {
	loadedConfig = &config.Config{}
	t.Cleanup(func() { loadedConfig = nil })

	root := NewRootCmd("test")
	if err := root.ParseFlags(nil); err != nil {
		t.Fatal(err)
	}

	cfg := effectiveConfig(root)

	if cfg.Method == nil || *cfg.Method != 1 {
		t.Errorf("method = %v, want default 1", cfg.Method)
	}
	if cfg.School == nil || *cfg.School != 2 {
		t.Errorf("school = %v, want default 2", cfg.School)
	}
	if cfg.Calendar != "UAQ" {
		t.Errorf("calendar = %q, want default UAQ", cfg.Calendar)
	}
	if cfg.Currency != "USD" {
		t.Errorf("currency = %q, want default USD", cfg.Currency)
	}
	if cfg.TimeFmt != "12h" {
		t.Errorf("time format = %q, want default 12h", cfg.TimeFmt)
	}
}

func TestResolvedLocation_Label(t *testing.T) {
	tests := []struct {
		loc  resolvedLocation
		want string
	}{
		{resolvedLocation{City: "Dhaka", Country: "Bangladesh"}, "Dhaka, Bangladesh"},
		{resolvedLocation{City: "Dhaka"}, "Dhaka"},
		{resolvedLocation{Country: "Bangladesh"}, "Bangladesh"},
		{resolvedLocation{}, ""},
	}
	for _, tt := range tests {
		if got := tt.loc.Label(); got != tt.want {
			t.Errorf("Label(%+v) = %q, want %q", tt.loc, got, tt.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	if got := PrintVersion("1.2.3"); got != "deen 1.2.3\n" {
		t.Errorf("PrintVersion = %q", got)
	}
}

func TestNewRootCmd_RegistersSubcommands(t *testing.T) {
	root := NewRootCmd("test")

	for _, name := range []string{"today", "next", "fasting", "ramadan", "quran", "hadith", "names", "zakat", "config", "methods"} {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
