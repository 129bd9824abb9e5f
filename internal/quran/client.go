// Package quran is the client for the static Quran host: the surah index,
// per-surah Arabic text, and English translations. The host serves plain
// JSON files and needs no API key.
package quran

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// TotalSurahs is the number of surahs in the Quran.
const TotalSurahs = 114

// Client fetches Quran data from the static host.
type Client struct {
	httpClient *http.Client
	// BaseURL is the static host root. Exported for testing with httptest.
	BaseURL string
}

// NewClient creates a client for the given static host.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("quran API base URL is not configured")
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Juz locates a surah's span within one juz of the Quran.
type Juz struct {
	Index string   `json:"index"`
	Verse JuzVerse `json:"verse"`
}

type JuzVerse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SurahSummary is one row of the surah index. Index is zero-padded,
// e.g. "001".
type SurahSummary struct {
	Place   string `json:"place"`
	Type    string `json:"type"`
	Count   int    `json:"count"`
	Title   string `json:"title"`
	TitleAr string `json:"titleAr"`
	Index   string `json:"index"`
	Pages   string `json:"pages"`
	Juz     []Juz  `json:"juz"`
}

// Surah is one surah's full Arabic text. Verse maps keys like "verse_1" to
// the verse text; verse_0 is the bismillah where present.
type Surah struct {
	Index string            `json:"index"`
	Name  string            `json:"name"`
	Verse map[string]string `json:"verse"`
	Count int               `json:"count"`
	Juz   []Juz             `json:"juz"`
}

// Translation is one surah's English translation, keyed like Surah.Verse.
type Translation struct {
	Name  string            `json:"name"`
	Index string            `json:"index"`
	Verse map[string]string `json:"verse"`
	Count int               `json:"count"`
}

// Surahs fetches the index of all 114 surahs.
func (c *Client) Surahs(ctx context.Context) ([]SurahSummary, error) {
	var index []SurahSummary
	if err := c.get(ctx, "/surah.json", &index); err != nil {
		return nil, err
	}
	return index, nil
}

// Surah fetches one surah's Arabic text by its 1-based number.
func (c *Client) Surah(ctx context.Context, number int) (*Surah, error) {
	if number < 1 || number > TotalSurahs {
		return nil, fmt.Errorf("surah number must be 1..%d, got %d", TotalSurahs, number)
	}
	var surah Surah
	if err := c.get(ctx, fmt.Sprintf("/surah/surah_%d.json", number), &surah); err != nil {
		return nil, err
	}
	return &surah, nil
}

// Translation fetches one surah's English translation by its 1-based number.
func (c *Client) Translation(ctx context.Context, number int) (*Translation, error) {
	if number < 1 || number > TotalSurahs {
		return nil, fmt.Errorf("surah number must be 1..%d, got %d", TotalSurahs, number)
	}
	var tr Translation
	if err := c.get(ctx, fmt.Sprintf("/translation/en/en_translation_%d.json", number), &tr); err != nil {
		return nil, err
	}
	return &tr, nil
}

// VerseKey builds the map key for a 1-based verse number.
func VerseKey(n int) string { return fmt.Sprintf("verse_%d", n) }

func (c *Client) get(ctx context.Context, path string, out any) error {
	reqURL := c.BaseURL + path
	log.Debug().Str("path", path).Msg("quran host request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("quran host returned status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
