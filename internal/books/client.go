// Package books provides a rate-limited client for the Google Books volumes
// API and a cached lookup service on top of it.
package books

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/gbazo/bibproc/internal/biblio"
	"github.com/gbazo/bibproc/internal/httputil"
	"github.com/gbazo/bibproc/internal/normalize"
)

const (
	// BaseURL is the Google Books volumes endpoint.
	BaseURL = "https://www.googleapis.com/books/v1/volumes"

	// DefaultTimeout is the per-request timeout.
	DefaultTimeout = 10 * time.Second

	// DefaultRateLimit paces outbound requests to one per 1.2 seconds.
	// Only real network calls pay this delay; cache hits are free.
	DefaultRateLimit = 1.0 / 1.2

	// MaxResults caps the candidate list per query.
	MaxResults = 5
)

// Client is a rate-limited HTTP client for the Google Books volumes API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	apiKey     string
	baseURL    string
	maxRetries int
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithAPIKey sets the API key sent with each request.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithRateLimit overrides the outbound requests-per-second limit.
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a new Google Books client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), 1),
		baseURL:    BaseURL,
	}

	if key := os.Getenv("GOOGLE_BOOKS_API_KEY"); key != "" {
		c.apiKey = key
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Search queries the provider for a title and optional author and returns
// the first candidate as normalized metadata. The query is built from the
// cleaned title and the first author token. Returns ErrNotFound when the
// provider has no usable result.
func (c *Client) Search(ctx context.Context, title, author string) (*biblio.Metadata, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	terms := []string{"intitle:" + normalize.Clean(title)}
	if first := normalize.FirstAuthor(author); first != "" {
		terms = append(terms, "inauthor:"+first)
	}

	params := url.Values{}
	params.Set("q", strings.Join(terms, " "))
	params.Set("maxResults", fmt.Sprintf("%d", MaxResults))
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := httputil.DoWithRetry(c.httpClient, req, c.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("HTTP %d", resp.StatusCode)}
	}

	var payload volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if len(payload.Items) == 0 {
		return nil, ErrNotFound
	}

	meta := mapVolume(payload.Items[0])
	return &meta, nil
}

// mapVolume converts the chosen candidate into a Metadata record.
func mapVolume(v volume) biblio.Metadata {
	info := v.VolumeInfo

	year := ""
	if len(info.PublishedDate) >= 4 {
		year = info.PublishedDate[:4]
	}

	return biblio.Metadata{
		ISBN:        extractISBN(info.IndustryIdentifiers),
		Title:       info.Title,
		Subtitle:    info.Subtitle,
		Description: info.Description,
		Authors:     strings.Join(info.Authors, ", "),
		Publisher:   info.Publisher,
		Year:        year,
		PageCount:   info.PageCount,
		Categories:  strings.Join(info.Categories, ", "),
		Language:    info.Language,
		PrintType:   info.PrintType,
		Ebook:       v.SaleInfo.IsEbook,
	}
}

// extractISBN picks an ISBN from the identifier list, preferring ISBN-13
// over ISBN-10 when both are present.
func extractISBN(ids []industryIdentifier) string {
	isbn := ""
	for _, id := range ids {
		switch id.Type {
		case "ISBN_13":
			return id.Identifier
		case "ISBN_10":
			isbn = id.Identifier
		}
	}
	return isbn
}
