// Package cache provides file-based caching so repeated invocations within
// a day, a status-bar refresh loop in particular, do not hammer the APIs.
package cache

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/deencli/deen/internal/geo"
	"github.com/deencli/deen/internal/islamic"
	"github.com/deencli/deen/internal/quran"
)

const (
	timingsCacheFile = "timings_%s.json" // keyed by hash
	geoCacheFile     = "geolocation.json"
	surahIndexFile   = "surah_index.json"

	geoTTL = 24 * time.Hour
	// The surah index never changes; the TTL only guards against a
	// corrected upload on the static host.
	surahIndexTTL = 7 * 24 * time.Hour
)

// Cache provides file-based caching for prayer timings, geolocation, and
// the surah index.
type Cache struct {
	dir string
}

// TimingsEntry stores a day's timings along with the parameters that
// produced it, for validation.
type TimingsEntry struct {
	Date     string              `json:"date"` // YYYY-MM-DD
	Method   int                 `json:"method"`
	School   int                 `json:"school"`
	Shifting int                 `json:"shifting"`
	Calendar string              `json:"calendar"`
	Data     islamic.TimingsData `json:"data"`
}

// geoEntry stores a cached geolocation result with a timestamp.
type geoEntry struct {
	Location geo.Location `json:"location"`
	CachedAt time.Time    `json:"cached_at"`
}

// surahIndexEntry stores the cached surah index with a timestamp.
type surahIndexEntry struct {
	Surahs   []quran.SurahSummary `json:"surahs"`
	CachedAt time.Time            `json:"cached_at"`
}

// New creates a Cache rooted at the given directory.
// If dir is empty, it defaults to ~/.cache/deen/.
func New(dir string) (*Cache, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".cache", "deen")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create cache directory %s: %w", dir, err)
	}

	return &Cache{dir: dir}, nil
}

// timingsKey builds a deterministic hash from every parameter that affects
// the schedule, so different locations or calculation settings get separate
// cache files.
func timingsKey(date string, q islamic.TimingsQuery) string {
	raw := fmt.Sprintf("%s|%.6f|%.6f|%d|%d|%d|%s",
		date, q.Latitude, q.Longitude, q.Method, q.School, q.Shifting, q.Calendar)
	h := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("%x", h[:8]) // 16 hex chars is plenty for uniqueness
}

// LoadTimings attempts to read cached timings for the given parameters.
// Returns nil if the cache is missing or stale (wrong date).
func (c *Cache) LoadTimings(date time.Time, q islamic.TimingsQuery) *TimingsEntry {
	dateStr := date.Format("2006-01-02")
	path := filepath.Join(c.dir, fmt.Sprintf(timingsCacheFile, timingsKey(dateStr, q)))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var entry TimingsEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil
	}

	// Stale cache for a previous day is useless.
	if entry.Date != dateStr {
		return nil
	}

	return &entry
}

// SaveTimings writes a day's timings to the cache.
func (c *Cache) SaveTimings(date time.Time, q islamic.TimingsQuery, data islamic.TimingsData) error {
	dateStr := date.Format("2006-01-02")
	path := filepath.Join(c.dir, fmt.Sprintf(timingsCacheFile, timingsKey(dateStr, q)))

	entry := TimingsEntry{
		Date:     dateStr,
		Method:   q.Method,
		School:   q.School,
		Shifting: q.Shifting,
		Calendar: q.Calendar,
		Data:     data,
	}

	return c.write(path, entry)
}

// LoadGeo attempts to read a cached geolocation result.
// Returns nil if the cache is missing or older than the TTL (24 hours).
func (c *Cache) LoadGeo() *geo.Location {
	data, err := os.ReadFile(filepath.Join(c.dir, geoCacheFile))
	if err != nil {
		return nil
	}

	var entry geoEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil
	}

	if time.Since(entry.CachedAt) > geoTTL {
		return nil
	}

	return &entry.Location
}

// SaveGeo writes a geolocation result to the cache.
func (c *Cache) SaveGeo(loc *geo.Location) error {
	entry := geoEntry{
		Location: *loc,
		CachedAt: time.Now(),
	}
	return c.write(filepath.Join(c.dir, geoCacheFile), entry)
}

// LoadSurahIndex attempts to read the cached surah index.
// Returns nil if the cache is missing or older than a week.
func (c *Cache) LoadSurahIndex() []quran.SurahSummary {
	data, err := os.ReadFile(filepath.Join(c.dir, surahIndexFile))
	if err != nil {
		return nil
	}

	var entry surahIndexEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil
	}

	if time.Since(entry.CachedAt) > surahIndexTTL {
		return nil
	}

	return entry.Surahs
}

// SaveSurahIndex writes the surah index to the cache.
func (c *Cache) SaveSurahIndex(surahs []quran.SurahSummary) error {
	entry := surahIndexEntry{
		Surahs:   surahs,
		CachedAt: time.Now(),
	}
	return c.write(filepath.Join(c.dir, surahIndexFile), entry)
}

func (c *Cache) write(path string, entry any) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	return nil
}
