package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Environment variable names for service endpoints and keys. These are
// secrets or deploy-specific URLs, so they never live in the config file.
const (
	EnvIslamicAPIURL = "DEEN_ISLAMIC_API_URL"
	EnvIslamicAPIKey = "DEEN_ISLAMIC_API_KEY"
	EnvHadithAPIURL  = "DEEN_HADITH_API_URL"
	EnvHadithAPIKey  = "DEEN_HADITH_API_KEY"
	EnvQuranAPIURL   = "DEEN_QURAN_API_URL"
)

// defaultQuranURL is the keyless static host serving surah.json and the
// per-surah files. Overridable via DEEN_QURAN_API_URL.
const defaultQuranURL = "https://raw.githubusercontent.com/semarketir/quranjson/master/source"

// Env holds the service endpoints and API keys sourced from the process
// environment. Empty fields mean the service is not configured; the clients
// that need them report it at construction.
type Env struct {
	IslamicAPIURL string
	IslamicAPIKey string
	HadithAPIURL  string
	HadithAPIKey  string
	QuranAPIURL   string
}

// LoadEnv reads the service environment, first merging a .env file from the
// working directory when one exists.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Debug().Err(err).Msg("skipping .env file")
	}

	env := Env{
		IslamicAPIURL: os.Getenv(EnvIslamicAPIURL),
		IslamicAPIKey: os.Getenv(EnvIslamicAPIKey),
		HadithAPIURL:  os.Getenv(EnvHadithAPIURL),
		HadithAPIKey:  os.Getenv(EnvHadithAPIKey),
		QuranAPIURL:   os.Getenv(EnvQuranAPIURL),
	}
	if env.QuranAPIURL == "" {
		env.QuranAPIURL = defaultQuranURL
	}
	return env
}
