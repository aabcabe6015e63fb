package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Fetcher defines the two reads the loader performs.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchBooks(ctx context.Context) (*BooksResponse, error)
	FetchSettings(ctx context.Context) (*SettingsResponse, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the BookShelf Hub HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	DefaultBaseURL   = "https://bookshelfhub.pythonanywhere.com"
	defaultUserAgent = "shelf/0.1"
	defaultTimeout   = 10 * time.Second

	// PlaceholderCover is shown when a book has no image filename.
	PlaceholderCover = "https://placehold.co/300x400/cccccc/333333?text=No+Image"
	// BrokenCover replaces a cover that fails to load.
	BrokenCover = "https://placehold.co/300x400/cccccc/333333?text=Image+Error"
)

// NewClient builds a Client for the API rooted at baseURL. A zero timeout
// uses the default.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// FetchBooks retrieves the catalog.
func (c *Client) FetchBooks(ctx context.Context) (*BooksResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload BooksResponse
	if err := c.get(ctx, "books", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchSettings retrieves the wrapped site settings.
func (c *Client) FetchSettings(ctx context.Context) (*SettingsResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload SettingsResponse
	if err := c.get(ctx, "settings", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// CoverURL resolves the cover image for b under /static/uploads, or the
// placeholder when the book has none.
func (c *Client) CoverURL(b Book) string {
	name := strings.TrimSpace(b.ImageFilename)
	if c == nil || name == "" {
		return PlaceholderCover
	}
	return c.baseURL.JoinPath("static", "uploads", name).String()
}

func (c *Client) get(ctx context.Context, endpoint string, dest any) error {
	reqURL := c.baseURL.JoinPath(endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api /%s returned status %d", endpoint, resp.StatusCode)
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api url %q: missing host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
