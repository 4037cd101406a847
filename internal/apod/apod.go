// Package apod is a client for NASA's Astronomy Picture of the Day API.
package apod

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"apod_bot/internal/metrics"
)

// DefaultBaseURL is the production APOD endpoint.
const DefaultBaseURL = "https://api.nasa.gov/planetary/apod"

const dateFormat = "2006-01-02"

// HTTPClient is the interface for performing HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Record is a single raw APOD entry as returned by the API.
type Record struct {
	Title          string `json:"title"`
	Explanation    string `json:"explanation"`
	Date           string `json:"date"`
	MediaType      string `json:"media_type"`
	URL            string `json:"url"`
	HDURL          string `json:"hdurl,omitempty"`
	ThumbnailURL   string `json:"thumbnail_url,omitempty"`
	Copyright      string `json:"copyright,omitempty"`
	ServiceVersion string `json:"service_version,omitempty"`
}

// Client fetches entries from the APOD API.
type Client struct {
	client  HTTPClient
	apiKey  string
	baseURL string
}

// New creates a Client with the given HTTP client and API key.
// An empty baseURL selects the production endpoint.
func New(client HTTPClient, apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		client:  client,
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}

// FetchOne returns the entry for the given date, or today's entry when
// date is the zero time. A non-zero date is validated against the archive
// bounds before any network call.
func (c *Client) FetchOne(ctx context.Context, date time.Time, thumbs bool) (Record, error) {
	params := url.Values{}
	if !date.IsZero() {
		if !IsValidDate(date) {
			return Record{}, fmt.Errorf("%w: %s", ErrDateOutOfRange, date.Format(dateFormat))
		}
		params.Set("date", date.Format(dateFormat))
	}
	if thumbs {
		params.Set("thumbs", "true")
	}

	var rec Record
	if err := c.get(ctx, params, &rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// FetchRange returns every entry between start and end inclusive. A zero
// end means today. Fails with ErrInvalidOrdering before any network call
// when start is after the effective end. Individual records are not
// re-validated; the archive bounds are the API's to enforce here.
func (c *Client) FetchRange(ctx context.Context, start, end time.Time, thumbs bool) ([]Record, error) {
	effectiveEnd := Today()
	if !end.IsZero() {
		effectiveEnd = calendarDay(end)
	}
	if calendarDay(start).After(effectiveEnd) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidOrdering,
			start.Format(dateFormat), effectiveEnd.Format(dateFormat))
	}

	params := url.Values{}
	params.Set("start_date", start.Format(dateFormat))
	if !end.IsZero() {
		params.Set("end_date", end.Format(dateFormat))
	}
	if thumbs {
		params.Set("thumbs", "true")
	}

	var recs []Record
	if err := c.get(ctx, params, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// FetchRandom returns count randomly chosen entries.
func (c *Client) FetchRandom(ctx context.Context, count int, thumbs bool) ([]Record, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: count must be at least 1, got %d", ErrInvalidArgument, count)
	}

	params := url.Values{}
	params.Set("count", strconv.Itoa(count))
	if thumbs {
		params.Set("thumbs", "true")
	}

	var raw json.RawMessage
	if err := c.get(ctx, params, &raw); err != nil {
		return nil, err
	}
	recs, err := decodeRecords(raw)
	if err != nil {
		return nil, upstreamErr("decode", err)
	}
	return recs, nil
}

// decodeRecords handles both response shapes of the count parameter: the
// API answers count=1 with a bare object instead of a one-element array.
func decodeRecords(raw json.RawMessage) ([]Record, error) {
	data := bytes.TrimLeft(raw, " \t\r\n")
	if len(data) > 0 && data[0] == '[' {
		var recs []Record
		if err := json.Unmarshal(data, &recs); err != nil {
			return nil, err
		}
		return recs, nil
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return []Record{rec}, nil
}

func (c *Client) get(ctx context.Context, params url.Values, out any) (err error) {
	defer func() { metrics.ObserveFetch(err) }()

	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return upstreamErr("create request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return upstreamErr("http get", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2*1024*1024))
	if err != nil {
		return upstreamErr("read body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return upstreamErr("response", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return upstreamErr("decode", err)
	}
	return nil
}
