package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/figliolo/bar-client/config"
)

// ErrNotFound is returned when the remote API answers 404. The ordering
// API uses 404 for "nothing here yet", so callers map it to an empty
// result instead of surfacing an error.
var ErrNotFound = errors.New("no data found")

// Client handles all interactions with the remote ordering API. It owns
// the session cookie jar, so every request carries the auth cookie.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client instance
func NewClient(cfg *config.Config) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}
}

// BaseURL returns the configured API base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL joins a path onto the API base URL.
func (c *Client) URL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// Do performs a single request against the remote API. When body is
// non-nil it is sent as JSON; when out is non-nil a JSON response is
// decoded into it. A 404 maps to ErrNotFound and a non-JSON success
// body leaves out untouched.
func (c *Client) Do(method, path string, query url.Values, body, out any) error {
	endpoint := c.URL(path)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body for %s: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s %s returned status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(text)))
	}

	if out == nil {
		return nil
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(path string, query url.Values, out any) error {
	return c.Do(http.MethodGet, path, query, nil, out)
}

// Exists probes a resource and reports whether it answers with a
// success status. Used for product image lookups before rendering.
func (c *Client) Exists(path string) bool {
	resp, err := c.httpClient.Get(c.URL(path))
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
}

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// DecodeList normalizes the three response shapes the ordering API is
// known to produce for list endpoints: a JSON array, a bare object
// (wrapped as a single-element list), or an error-shaped object
// (treated as empty). Anything that fails to decode yields an empty
// list rather than an error.
func DecodeList[T any](raw json.RawMessage) []T {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []T{}
	}

	switch trimmed[0] {
	case '[':
		var list []T
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return []T{}
		}
		if list == nil {
			return []T{}
		}
		return list
	case '{':
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &probe); err != nil {
			return []T{}
		}
		if _, hasError := probe["error"]; hasError {
			return []T{}
		}
		var single T
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return []T{}
		}
		return []T{single}
	default:
		return []T{}
	}
}
