// Package cli implements the deen command tree: prayer times, fasting and
// Ramadan schedules, Quran and hadith reading, the zakat calculator, and the
// 99 names.
package cli

import (
	"fmt"
	"os"

	"github.com/deencli/deen/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Global flags shared across all subcommands.
var (
	FlagCity       string
	FlagCountry    string
	FlagLatitude   float64
	FlagLongitude  float64
	FlagMethod     int
	FlagSchool     int
	FlagShifting   int
	FlagCalendar   string
	FlagCurrency   string
	FlagLanguage   string
	FlagTimeFormat string
	FlagJSON       bool
	FlagCacheDir   string
	FlagVerbose    bool
)

// loadedConfig holds the config loaded during PersistentPreRunE.
// Available to all subcommand handlers.
var loadedConfig *config.Config

// loadedEnv holds the service endpoints and keys from the environment.
var loadedEnv config.Env

// NewRootCmd creates the root command for the deen CLI.
// The version parameter is set by the calling binary via ldflags.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "deen",
		Short:   "Islamic daily-life CLI",
		Long:    "Prayer times, fasting schedules, Quran, hadith, and zakat from the terminal.",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.ErrorLevel
			if FlagVerbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			loadedConfig = cfg
			loadedEnv = config.LoadEnv()
			return nil
		},
		// Default action: show today's prayer schedule.
		RunE:          runToday,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Register global persistent flags.
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&FlagCity, "city", "", "Override the displayed city name")
	pf.StringVar(&FlagCountry, "country", "", "Override the displayed country name")
	pf.Float64Var(&FlagLatitude, "latitude", 0, "Override latitude")
	pf.Float64Var(&FlagLongitude, "longitude", 0, "Override longitude")
	pf.IntVar(&FlagMethod, "method", -1, "Override calculation method (see `deen methods`)")
	pf.IntVar(&FlagSchool, "school", -1, "Override Asr school (1=Shafi, 2=Hanafi)")
	pf.IntVar(&FlagShifting, "shifting", 0, "Override Hijri date adjustment (-2..2)")
	pf.StringVar(&FlagCalendar, "calendar", "", "Override Hijri calendar (HJCoSA, UAQ, DIYANET, MATHEMATICAL)")
	pf.StringVar(&FlagCurrency, "currency", "", "Override zakat currency (3-letter ISO code)")
	pf.StringVar(&FlagLanguage, "language", "", "Override translation language (2-letter code)")
	pf.StringVar(&FlagTimeFormat, "time-format", "", "Time format: 12h or 24h (overrides config)")
	pf.BoolVar(&FlagJSON, "json", false, "Output as JSON (where supported)")
	pf.StringVar(&FlagCacheDir, "cache-dir", "", "Cache directory (default: ~/.cache/deen/)")
	pf.BoolVarP(&FlagVerbose, "verbose", "v", false, "Enable debug logging")

	// Register subcommands.
	rootCmd.AddCommand(newTodayCmd())
	rootCmd.AddCommand(newNextCmd())
	rootCmd.AddCommand(newFastingCmd())
	rootCmd.AddCommand(newRamadanCmd())
	rootCmd.AddCommand(newQuranCmd())
	rootCmd.AddCommand(newHadithCmd())
	rootCmd.AddCommand(newNamesCmd())
	rootCmd.AddCommand(newZakatCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newMethodsCmd())

	return rootCmd
}

// PrintVersion prints the version string in the expected format.
func PrintVersion(version string) string {
	return fmt.Sprintf("deen %s\n", version)
}

// effectiveConfig returns the merged configuration values,
// applying the priority: CLI flags > config file > defaults.
// It uses cobra's Changed() to detect whether a flag was explicitly set.
func effectiveConfig(cmd *cobra.Command) *config.Config {
	cfg := loadedConfig
	if cfg == nil {
		empty := config.Config{}
		cfg = &empty
	}

	defaults := config.Defaults()

	flags := cmd.Flags()
	root := cmd.Root().PersistentFlags()

	if flagWasSet(flags, root, "city") {
		cfg.City = FlagCity
	}
	if flagWasSet(flags, root, "country") {
		cfg.Country = FlagCountry
	}
	if flagWasSet(flags, root, "latitude") {
		cfg.Latitude = FlagLatitude
	}
	if flagWasSet(flags, root, "longitude") {
		cfg.Longitude = FlagLongitude
	}
	if flagWasSet(flags, root, "method") {
		cfg.Method = &FlagMethod
	} else if cfg.Method == nil {
		cfg.Method = defaults.Method
	}
	if flagWasSet(flags, root, "school") {
		cfg.School = &FlagSchool
	} else if cfg.School == nil {
		cfg.School = defaults.School
	}
	if flagWasSet(flags, root, "shifting") {
		cfg.Shifting = &FlagShifting
	} else if cfg.Shifting == nil {
		cfg.Shifting = defaults.Shifting
	}
	if flagWasSet(flags, root, "calendar") {
		cfg.Calendar = FlagCalendar
	}
	if cfg.Calendar == "" {
		cfg.Calendar = defaults.Calendar
	}
	if flagWasSet(flags, root, "currency") {
		cfg.Currency = FlagCurrency
	}
	if cfg.Currency == "" {
		cfg.Currency = defaults.Currency
	}
	if flagWasSet(flags, root, "language") {
		cfg.Language = FlagLanguage
	}
	if cfg.Language == "" {
		cfg.Language = defaults.Language
	}
	if flagWasSet(flags, root, "cache-dir") {
		cfg.CacheDir = FlagCacheDir
	}

	if flagWasSet(flags, root, "time-format") {
		cfg.TimeFmt = FlagTimeFormat
	}
	if cfg.TimeFmt == "" {
		cfg.TimeFmt = defaults.TimeFmt
	}

	return cfg
}

// flagWasSet checks if a flag was explicitly set on either the local or persistent flag set.
func flagWasSet(local, persistent *pflag.FlagSet, name string) bool {
	if f := local.Lookup(name); f != nil && f.Changed {
		return true
	}
	if f := persistent.Lookup(name); f != nil && f.Changed {
		return true
	}
	return false
}
