// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package openlibrary queries the Open Library search API and maps its
// JSON responses to display-ready results.
package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pdiddy/bookscout/internal/logger"
	"github.com/pdiddy/bookscout/pkg/types"
)

// searchBase is the Open Library search endpoint. Declared as a var so
// tests can substitute an httptest server.
var searchBase = "https://openlibrary.org/search.json"

// Client performs searches against Open Library. The underlying
// http.Client is reused across calls for connection pooling; the Client
// is safe for sequential reuse.
type Client struct {
	HTTP   *http.Client
	Config types.SearchConfig
}

// New returns a Client with a reusable transport configured from cfg.
func New(cfg types.SearchConfig) *Client {
	return &Client{
		HTTP:   &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
	}
}

// Query holds the search parameters. Zero-valued Fields and Limit fall
// back to the client configuration, then to the package defaults
// (title,author_name and limit 1).
type Query struct {
	Title  string
	Fields []string
	Limit  int
}

// TransportError reports a failed HTTP round trip or a non-2xx status.
type TransportError struct {
	// StatusCode is set when the server responded with a non-2xx status;
	// zero when the request never completed.
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("open library returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("open library request: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a response body that could not be parsed as JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("parsing open library response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// BuildQueryURL constructs the request URL for q. Spaces in the title are
// replaced with "+"; no other characters are escaped. That matches the
// API's lenient query parsing but means reserved characters like "&" pass
// through untouched.
func (c *Client) BuildQueryURL(q Query) string {
	title := strings.ReplaceAll(q.Title, " ", "+")

	fields := q.Fields
	if len(fields) == 0 {
		fields = c.Config.Fields
	}
	if len(fields) == 0 {
		fields = types.DefaultFields
	}

	limit := q.Limit
	if limit <= 0 {
		limit = c.Config.Limit
	}
	if limit <= 0 {
		limit = types.DefaultLimit
	}

	return fmt.Sprintf("%s?title=%s&fields=%s&limit=%d",
		searchBase, title, strings.Join(fields, ","), limit)
}

// Search queries the API and decodes the response. Failures are typed:
// *TransportError for connection failures and non-2xx statuses,
// *DecodeError for malformed JSON.
func (c *Client) Search(ctx context.Context, q Query) (*SearchResponse, error) {
	body, err := c.get(ctx, c.BuildQueryURL(q))
	if err != nil {
		return nil, err
	}

	var sr SearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &sr, nil
}

// FetchRaw performs a search with default fields and limit and returns
// the raw response body.
func (c *Client) FetchRaw(ctx context.Context, title string) ([]byte, error) {
	return c.get(ctx, c.BuildQueryURL(Query{Title: title}))
}

// SearchLenient is the swallow-and-log variant of Search: any failure is
// logged and degrades to an empty response. The returned response is
// never nil, so callers cannot distinguish "no results" from "request
// failed" — use Search when that distinction matters.
func (c *Client) SearchLenient(ctx context.Context, q Query) *SearchResponse {
	resp, err := c.Search(ctx, q)
	if err != nil {
		logger.WithQuery(q.Title).Warnf("search failed: %v", err)
		return &SearchResponse{}
	}
	return resp
}

// FetchRawLenient is the swallow-and-log variant of FetchRaw: any failure
// is logged and degrades to an empty byte slice.
func (c *Client) FetchRawLenient(ctx context.Context, title string) []byte {
	body, err := c.FetchRaw(ctx, title)
	if err != nil {
		logger.WithQuery(title).Warnf("request failed: %v", err)
		return nil
	}
	return body
}

// FormatFirstResult searches with defaults and renders the first document
// for display. It never fails: transport and decode errors degrade
// through SearchLenient to the no-results sentinel.
func (c *Client) FormatFirstResult(ctx context.Context, title string) string {
	return FirstResult(c.SearchLenient(ctx, Query{Title: title}))
}

func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if c.Config.UserAgent != "" {
		req.Header.Set("User-Agent", c.Config.UserAgent)
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &TransportError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return body, nil
}
