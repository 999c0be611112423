package fetcher_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/quantumspectra/shopify-sync/internal/fetcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	token       = "shpat_test_token"
	productsKey = "products"
)

func TestUniFetchAll(t *testing.T) {
	wantHeaders := map[string]string{
		"Accept":                 "application/json",
		"X-Shopify-Access-Token": token,
	}

	tests := map[string]struct {
		handler      func(srv *atomic.Value) http.Handler
		params       url.Values
		wantRecords  []string
		wantRequests int32
		wantErr      error
		wantCause    error
	}{
		"single page": {
			handler: func(_ *atomic.Value) http.Handler {
				return http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
					validateHeaders(t, req.Header, wantHeaders)
					assert.Equal(t, "2", req.URL.Query().Get("limit"), "request should contain page size")
					writePage(t, wrt, productsKey, "", `{"id":1}`, `{"id":2}`)
				})
			},
			wantRecords:  []string{`{"id":1}`, `{"id":2}`},
			wantRequests: 1,
		},
		"follows next page links": {
			handler: func(srv *atomic.Value) http.Handler {
				return http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
					validateHeaders(t, req.Header, wantHeaders)
					switch req.URL.Query().Get("page_info") {
					case "":
						next := srv.Load().(string) + "/admin/api/2024-10/products.json?limit=2&page_info=abc"
						writePage(t, wrt, productsKey, next, `{"id":1}`, `{"id":2}`)
					case "abc":
						writePage(t, wrt, productsKey, "", `{"id":3}`)
					default:
						t.Errorf("unexpected page_info %q", req.URL.Query().Get("page_info"))
					}
				})
			},
			wantRecords:  []string{`{"id":1}`, `{"id":2}`, `{"id":3}`},
			wantRequests: 2,
		},
		"keeps query parameters": {
			handler: func(_ *atomic.Value) http.Handler {
				return http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
					assert.Equal(
						t,
						"2024-05-10T12:30:00Z",
						req.URL.Query().Get("updated_at_min"),
						"request should keep provided parameters",
					)
					writePage(t, wrt, productsKey, "", `{"id":1}`)
				})
			},
			params:       url.Values{"updated_at_min": []string{"2024-05-10T12:30:00Z"}},
			wantRecords:  []string{`{"id":1}`},
			wantRequests: 1,
		},
		"retries server error": {
			handler: func(_ *atomic.Value) http.Handler {
				requests := atomic.Int32{}
				return http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
					if requests.Add(1) == 1 {
						wrt.WriteHeader(http.StatusInternalServerError)
						return
					}
					writePage(t, wrt, productsKey, "", `{"id":1}`)
				})
			},
			wantRecords:  []string{`{"id":1}`},
			wantRequests: 2,
		},
		"retries rate limited request": {
			handler: func(_ *atomic.Value) http.Handler {
				requests := atomic.Int32{}
				return http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
					if requests.Add(1) == 1 {
						wrt.Header().Set("Retry-After", "0.001")
						wrt.WriteHeader(http.StatusTooManyRequests)
						return
					}
					writePage(t, wrt, productsKey, "", `{"id":1}`)
				})
			},
			wantRecords:  []string{`{"id":1}`},
			wantRequests: 2,
		},
		"retries client error": {
			handler: func(_ *atomic.Value) http.Handler {
				requests := atomic.Int32{}
				return http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
					if requests.Add(1) == 1 {
						wrt.WriteHeader(http.StatusConflict)
						return
					}
					writePage(t, wrt, productsKey, "", `{"id":1}`)
				})
			},
			wantRecords:  []string{`{"id":1}`},
			wantRequests: 2,
		},
		"attempts exhausted error": {
			handler: func(_ *atomic.Value) http.Handler {
				return http.HandlerFunc(func(wrt http.ResponseWriter, _ *http.Request) {
					wrt.WriteHeader(http.StatusInternalServerError)
				})
			},
			wantRequests: 3,
			wantErr:      fetcher.ErrAttemptsExhausted,
			wantCause:    fetcher.ErrStatusNotOK,
		},
		"rate limit exhausted error": {
			handler: func(_ *atomic.Value) http.Handler {
				return http.HandlerFunc(func(wrt http.ResponseWriter, _ *http.Request) {
					wrt.Header().Set("Retry-After", "0.001")
					wrt.WriteHeader(http.StatusTooManyRequests)
				})
			},
			wantRequests: 3,
			wantErr:      fetcher.ErrAttemptsExhausted,
			wantCause:    fetcher.ErrRateLimited,
		},
		"missing records array error": {
			handler: func(_ *atomic.Value) http.Handler {
				return http.HandlerFunc(func(wrt http.ResponseWriter, _ *http.Request) {
					fmt.Fprint(wrt, `{"errors":"unknown resource"}`)
				})
			},
			wantRequests: 1,
			wantErr:      fetcher.ErrMissingItemsKey,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			requests := atomic.Int32{}
			srvURL := atomic.Value{}
			handler := tt.handler(&srvURL)

			srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				requests.Add(1)
				handler.ServeHTTP(wrt, req)
			}))
			t.Cleanup(srv.Close)
			srvURL.Store(srv.URL)

			fet := fetcher.NewFetcher(
				srv.Client(),
				srv.URL,
				token,
				fetcher.WithPageSize(2),
				fetcher.WithMaxAttempts(3),
				fetcher.WithBackoff(time.Millisecond),
			)

			records, err := fet.FetchAll(context.TODO(), "/admin/api/2024-10/products.json", tt.params, productsKey)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			if tt.wantCause != nil {
				assert.ErrorIs(t, err, tt.wantCause, "should wrap the last attempt's failure")
			}
			assert.Equal(t, tt.wantRequests, requests.Load(), "should send correct number of requests")

			if tt.wantErr == nil {
				require.Len(t, records, len(tt.wantRecords), "should return correct number of records")
				for ix := range records {
					assert.JSONEq(t, tt.wantRecords[ix], string(records[ix]), "record at index %d has incorrect value", ix)
				}
			}
		})
	}
}

func TestUniFetchAllCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, _ *http.Request) {
		wrt.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fet := fetcher.NewFetcher(srv.Client(), srv.URL, token, fetcher.WithBackoff(time.Minute))

	_, err := fet.FetchAll(ctx, "/admin/api/2024-10/products.json", nil, productsKey)

	require.ErrorIs(t, err, context.Canceled, "should return context error instead of waiting")
}

// writePage writes a single page response with optional next page link.
func writePage(t *testing.T, wrt http.ResponseWriter, itemsKey, nextURL string, records ...string) {
	t.Helper()

	if nextURL != "" {
		wrt.Header().Set("Link", fmt.Sprintf(`<%s>; rel="next"`, nextURL))
	}
	wrt.Header().Set("Content-Type", "application/json")

	items := make([]json.RawMessage, 0, len(records))
	for _, record := range records {
		items = append(items, json.RawMessage(record))
	}

	if err := json.NewEncoder(wrt).Encode(map[string][]json.RawMessage{itemsKey: items}); err != nil {
		t.Errorf("can't write page: %s", err)
	}
}

// validateHeaders checks request contains expected headers.
func validateHeaders(t *testing.T, headers http.Header, expected map[string]string) {
	t.Helper()

	for header, expectedValue := range expected {
		assert.Equalf(t, expectedValue, headers.Get(header), "request should contain correct value for header %s", header)
	}
}
