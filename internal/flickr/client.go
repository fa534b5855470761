// Package flickr provides a client for the Flickr photo search REST API.
package flickr

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

	"golang.org/x/time/rate"
)

// ErrUnknownResponse is returned when the API answers with a payload that
// is neither a success nor a documented failure.
var ErrUnknownResponse = errors.New("unknown API response")

// ErrNoAPIKey is returned when searching without an API key.
var ErrNoAPIKey = errors.New("no flickr API key configured")

const (
	defaultBaseURL = "https://api.flickr.com/services/rest/"
	userAgent      = "photogrid/1.0 (https://github.com/llehouerou/photogrid)"

	// DefaultPerPage matches the page size of the Flickr web search.
	DefaultPerPage = 20

	maxThumbnailBytes = 10 << 20
)

// APIError is a failure reported by the API itself (stat "fail").
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("flickr error %d: %s", e.Code, e.Message)
}

// Photo is one entry from a flickr.photos.search response.
type Photo struct {
	ID     string `json:"id"`
	Owner  string `json:"owner"`
	Secret string `json:"secret"`
	Server string `json:"server"`
	Farm   int    `json:"farm"`
	Title  string `json:"title"`
}

type searchResponse struct {
	Stat    string `json:"stat"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Photos  *struct {
		Page    int     `json:"page"`
		Pages   int     `json:"pages"`
		PerPage int     `json:"perpage"`
		Photo   []Photo `json:"photo"`
	} `json:"photos"`
}

// Client is a Flickr API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the REST endpoint (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithRateLimiter overrides the default request rate limiter.
func WithRateLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		if l != nil {
			c.limiter = l
		}
	}
}

// New creates a new Flickr client.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		limiter: rate.NewLimiter(rate.Limit(10), 10),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search runs flickr.photos.search for text and returns the first page of
// results in API order.
func (c *Client) Search(ctx context.Context, text string, perPage int) ([]Photo, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	params := url.Values{}
	params.Set("method", "flickr.photos.search")
	params.Set("api_key", c.apiKey)
	params.Set("text", text)
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("format", "json")
	params.Set("nojsoncallback", "1")

	reqURL := c.baseURL + "?" + params.Encode()
	if strings.Contains(c.baseURL, "?") {
		reqURL = c.baseURL + "&" + params.Encode()
	}

	resp, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	switch result.Stat {
	case "ok":
		if result.Photos == nil {
			return nil, ErrUnknownResponse
		}
		return result.Photos.Photo, nil
	case "fail":
		return nil, &APIError{Code: result.Code, Message: result.Message}
	default:
		return nil, ErrUnknownResponse
	}
}

// Fetch downloads raw image bytes from a static photo URL.
func (c *Client) Fetch(ctx context.Context, imageURL string) ([]byte, error) {
	resp, err := c.get(ctx, imageURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxThumbnailBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}

func (c *Client) get(ctx context.Context, reqURL string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	return resp, nil
}
