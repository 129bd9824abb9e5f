// Package hadith is the client for hadithapi.com: book and chapter catalogs
// and paginated hadith search. It is a separate service from the Islamic API
// with its own base URL and key.
package hadith

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	apiRootSuffix = "/api"

	// DefaultPageSize is the per-page count sent when the caller does not
	// choose one.
	DefaultPageSize = 25
)

// Client communicates with the hadith API.
type Client struct {
	httpClient *http.Client
	// BaseURL is the normalized API root, always ending in /api.
	// Exported for testing with httptest.
	BaseURL string
	apiKey  string
}

// NewClient creates a client for the given base URL and API key. Both are
// required; the /api suffix is appended when missing.
func NewClient(baseURL, apiKey string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("hadith API base URL is not configured")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("hadith API key is not configured")
	}

	root := strings.TrimRight(baseURL, "/")
	if !strings.HasSuffix(root, apiRootSuffix) {
		root += apiRootSuffix
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		BaseURL: root,
		apiKey:  apiKey,
	}, nil
}

// Book is one hadith collection in the catalog.
type Book struct {
	ID            int    `json:"id"`
	BookName      string `json:"bookName"`
	WriterName    string `json:"writerName"`
	AboutWriter   string `json:"aboutWriter"`
	WriterDeath   string `json:"writerDeath"`
	BookSlug      string `json:"bookSlug"`
	HadithsCount  string `json:"hadiths_count"`
	ChaptersCount string `json:"chapters_count"`
}

type booksResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Books   []Book `json:"books"`
}

// Chapter is one chapter of a collection.
type Chapter struct {
	ID             int    `json:"id"`
	ChapterNumber  string `json:"chapterNumber"`
	ChapterEnglish string `json:"chapterEnglish"`
	ChapterUrdu    string `json:"chapterUrdu"`
	ChapterArabic  string `json:"chapterArabic"`
	BookSlug       string `json:"bookSlug"`
}

// Entry is one hadith with its text in up to three languages.
type Entry struct {
	ID              int    `json:"id"`
	HadithNumber    string `json:"hadithNumber"`
	EnglishNarrator string `json:"englishNarrator"`
	HadithEnglish   string `json:"hadithEnglish"`
	HadithUrdu      string `json:"hadithUrdu"`
	UrduNarrator    string `json:"urduNarrator"`
	HadithArabic    string `json:"hadithArabic"`
	HeadingArabic   string `json:"headingArabic"`
	HeadingUrdu     string `json:"headingUrdu"`
	HeadingEnglish  string `json:"headingEnglish"`
	ChapterID       string `json:"chapterId"`
	BookSlug        string `json:"bookSlug"`
	Volume          string `json:"volume"`
	Status          string `json:"status"`
}

// Page is one page of a paginated listing. The upstream paginator sometimes
// serializes per_page as a string and sometimes as a number, so it is decoded
// loosely.
type Page[T any] struct {
	CurrentPage int             `json:"current_page"`
	Data        []T             `json:"data"`
	LastPage    int             `json:"last_page"`
	NextPageURL string          `json:"next_page_url"`
	PerPage     json.RawMessage `json:"per_page"`
	PrevPageURL string          `json:"prev_page_url"`
	Total       int             `json:"total"`
}

// HasNext reports whether another page follows.
func (p *Page[T]) HasNext() bool { return p.NextPageURL != "" }

type chaptersResponse struct {
	Status   int            `json:"status"`
	Message  string         `json:"message"`
	Chapters *Page[Chapter] `json:"chapters"`
}

type hadithsResponse struct {
	Status  int          `json:"status"`
	Message string       `json:"message"`
	Hadiths *Page[Entry] `json:"hadiths"`
}

// Books fetches the book catalog. A response without a books array is
// treated as empty.
func (c *Client) Books(ctx context.Context) ([]Book, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)

	var resp booksResponse
	if err := c.get(ctx, "books", params, &resp); err != nil {
		return nil, err
	}
	return resp.Books, nil
}

// Chapters fetches one page of a book's chapter listing. bookSlug is the
// catalog slug, e.g. "sahih-bukhari".
func (c *Client) Chapters(ctx context.Context, bookSlug string, page, pageSize int) (*Page[Chapter], error) {
	if bookSlug == "" {
		return nil, fmt.Errorf("book slug is required")
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("paginate", strconv.Itoa(pageSize))
	params.Set("page", strconv.Itoa(page))

	var resp chaptersResponse
	if err := c.get(ctx, bookSlug+"/chapters", params, &resp); err != nil {
		return nil, err
	}
	if resp.Chapters == nil {
		if resp.Message != "" {
			return nil, fmt.Errorf("chapters not found: %s", resp.Message)
		}
		return nil, fmt.Errorf("chapters not found")
	}
	return resp.Chapters, nil
}

// SearchQuery filters a hadith listing. All fields are optional.
type SearchQuery struct {
	// BookSlug restricts results to one collection.
	BookSlug string
	// Chapter restricts results to one chapter number within the book.
	Chapter string
	// Status filters by authenticity grade: Sahih, Hasan, or Da`eef.
	Status string
	// Text matches against the English hadith text.
	Text string
	Page int
	// PageSize defaults to DefaultPageSize.
	PageSize int
}

// Search fetches one page of hadiths matching the query. A 404 from the
// upstream means no matches and yields an empty page rather than an error.
func (c *Client) Search(ctx context.Context, q SearchQuery) (*Page[Entry], error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("paginate", strconv.Itoa(q.PageSize))
	params.Set("page", strconv.Itoa(q.Page))
	if q.BookSlug != "" {
		params.Set("book", q.BookSlug)
	}
	if q.Chapter != "" {
		params.Set("chapter", q.Chapter)
	}
	if q.Status != "" {
		params.Set("status", q.Status)
	}
	if q.Text != "" {
		params.Set("hadithEnglish", q.Text)
	}

	var resp hadithsResponse
	err := c.get(ctx, "hadiths", params, &resp)
	if err != nil {
		var apiErr *statusError
		if errors.As(err, &apiErr) && apiErr.status == http.StatusNotFound {
			return &Page[Entry]{
				CurrentPage: q.Page,
				Data:        []Entry{},
				LastPage:    q.Page,
			}, nil
		}
		return nil, err
	}
	if resp.Hadiths == nil {
		if resp.Message != "" {
			return nil, fmt.Errorf("hadiths not found: %s", resp.Message)
		}
		return nil, fmt.Errorf("hadiths not found")
	}
	return resp.Hadiths, nil
}

// statusError carries the HTTP status of a failed request so callers can
// distinguish not-found from real failures.
type statusError struct {
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("API returned status %d: %s", e.status, e.body)
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	reqURL := fmt.Sprintf("%s/%s?%s", c.BaseURL, endpoint, params.Encode())
	log.Debug().Str("endpoint", endpoint).Msg("hadith API request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &statusError{status: resp.StatusCode, body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode API response: %w", err)
	}

	return nil
}
