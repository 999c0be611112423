package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPageSize    = 250
	defaultMaxAttempts = 5
	defaultBackoff     = time.Second
)

// Fetcher builds http requests and fetches paginated resources from the shop's REST API.
type Fetcher struct {
	client      *http.Client
	baseURL     string
	token       string
	pageSize    int
	maxAttempts int
	backoff     time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
}

// Option configures Fetcher.
type Option func(f *Fetcher)

// WithPageSize sets number of records requested per page.
func WithPageSize(pageSize int) Option {
	return func(f *Fetcher) {
		f.pageSize = pageSize
	}
}

// WithMaxAttempts sets number of attempts of a single page request.
func WithMaxAttempts(maxAttempts int) Option {
	return func(f *Fetcher) {
		f.maxAttempts = maxAttempts
	}
}

// WithBackoff sets initial retry backoff. The backoff doubles after every retry.
func WithBackoff(backoff time.Duration) Option {
	return func(f *Fetcher) {
		f.backoff = backoff
	}
}

// NewFetcher returns new Fetcher.
func NewFetcher(client *http.Client, baseURL, token string, ops ...Option) *Fetcher {
	fetcher := &Fetcher{
		client:      client,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		token:       token,
		pageSize:    defaultPageSize,
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultBackoff,
		sleep:       sleepContext,
	}

	for _, op := range ops {
		op(fetcher)
	}

	return fetcher
}

// FetchAll returns all records of a paginated collection endpoint, following
// "next" page links until the last page. itemsKey is the name of the array
// inside the response envelope, e.g. "products" for /products.json.
func (f *Fetcher) FetchAll(
	ctx context.Context,
	endpoint string,
	params url.Values,
	itemsKey string,
) ([]json.RawMessage, error) {
	pageURL, err := f.firstPageURL(endpoint, params)
	if err != nil {
		return nil, err
	}

	records := []json.RawMessage{}

	for pageURL != "" {
		body, nextURL, err := f.getWithRetries(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("can't fetch page %q: %w", pageURL, err)
		}

		page, err := unmarshalPage(body, itemsKey)
		if err != nil {
			return nil, fmt.Errorf("can't parse page %q: %w", pageURL, err)
		}

		records = append(records, page...)
		pageURL = nextURL
	}

	return records, nil
}

// firstPageURL builds URL of collection's first page. Pages after the first
// come from "next" links and keep their own query parameters.
func (f *Fetcher) firstPageURL(endpoint string, params url.Values) (string, error) {
	pageURL, err := url.Parse(f.baseURL + endpoint)
	if err != nil {
		return "", fmt.Errorf("can't build page url: %w", err)
	}

	query := pageURL.Query()
	for key, values := range params {
		for _, value := range values {
			query.Set(key, value)
		}
	}
	query.Set("limit", strconv.Itoa(f.pageSize))
	pageURL.RawQuery = query.Encode()

	return pageURL.String(), nil
}

// getWithRetries fetches a single page, retrying every failed attempt with
// doubling backoff until the attempts budget runs out. 429 responses wait for
// the server's Retry-After instead of the backoff for that one retry; the
// backoff keeps doubling on its own, so a rate-limit wait never inflates
// later waits.
func (f *Fetcher) getWithRetries(ctx context.Context, pageURL string) ([]byte, string, error) {
	backoff := f.backoff
	var lastErr error

	for attempt := 0; attempt < f.maxAttempts; attempt++ {
		body, nextURL, retryAfter, retry, err := f.get(ctx, pageURL)
		if err == nil {
			return body, nextURL, nil
		}
		if !retry {
			return nil, "", err
		}
		lastErr = err

		if attempt == f.maxAttempts-1 {
			break
		}

		wait := backoff
		if retryAfter > 0 {
			wait = retryAfter
		}
		backoff *= 2

		if err := f.sleep(ctx, wait); err != nil {
			return nil, "", err
		}
	}

	return nil, "", fmt.Errorf("%w: %w", ErrAttemptsExhausted, lastErr)
}

// get performs a single page request. Any response other than 200 consumes a
// retry attempt; only context cancellation and unbuildable requests fail
// without retrying. For 429 responses it returns the server's Retry-After
// wait when one is present.
func (f *Fetcher) get(ctx context.Context, pageURL string) ([]byte, string, time.Duration, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, "", 0, false, fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("Accept", "application/json")
	req.Header.Add("X-Shopify-Access-Token", f.token)

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, "", 0, false, ctx.Err()
		}
		return nil, "", 0, true, fmt.Errorf("can't get http response: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, "", 0, true, fmt.Errorf("can't read http response: %w", err)
		}
		return body, nextPageURL(resp.Header.Get("Link")), 0, false, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, "", retryAfterDuration(resp.Header.Get("Retry-After")), true, ErrRateLimited
	default:
		return nil, "", 0, true, fmt.Errorf("%w: %s", ErrStatusNotOK, resp.Status)
	}
}

// nextPageURL returns URL of the next page from a Link header,
// or empty string when the header carries no rel="next" link.
func nextPageURL(linkHeader string) string {
	for _, link := range strings.Split(linkHeader, ",") {
		urlPart, relPart, found := strings.Cut(link, ";")
		if !found || !strings.Contains(relPart, `rel="next"`) {
			continue
		}

		urlPart = strings.TrimSpace(urlPart)
		urlPart = strings.TrimPrefix(urlPart, "<")
		urlPart = strings.TrimSuffix(urlPart, ">")

		return urlPart
	}

	return ""
}

// unmarshalPage extracts records array from a response envelope.
func unmarshalPage(body []byte, itemsKey string) ([]json.RawMessage, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("can't unmarshal envelope: %w", err)
	}

	items, ok := envelope[itemsKey]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingItemsKey, itemsKey)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(items, &records); err != nil {
		return nil, fmt.Errorf("can't unmarshal records: %w", err)
	}

	return records, nil
}

func retryAfterDuration(header string) time.Duration {
	if header == "" {
		return 0
	}

	seconds, err := strconv.ParseFloat(header, 64)
	if err != nil || seconds <= 0 {
		return 0
	}

	return time.Duration(seconds * float64(time.Second))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
