package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniRetryWaits(t *testing.T) {
	tests := map[string]struct {
		statuses   []int
		retryAfter string
		wantWaits  []time.Duration
	}{
		"backoff doubles after every retry": {
			statuses:  []int{http.StatusInternalServerError, http.StatusInternalServerError, http.StatusOK},
			wantWaits: []time.Duration{time.Second, 2 * time.Second},
		},
		"rate limited request waits for retry after": {
			statuses:   []int{http.StatusTooManyRequests, http.StatusOK},
			retryAfter: "3",
			wantWaits:  []time.Duration{3 * time.Second},
		},
		"rate limited request without retry after waits for backoff": {
			statuses:  []int{http.StatusTooManyRequests, http.StatusOK},
			wantWaits: []time.Duration{time.Second},
		},
		"retry after doesn't inflate later backoffs": {
			statuses:   []int{http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusOK},
			retryAfter: "30",
			wantWaits:  []time.Duration{30 * time.Second, 2 * time.Second},
		},
		"client error waits for backoff": {
			statuses:  []int{http.StatusConflict, http.StatusOK},
			wantWaits: []time.Duration{time.Second},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			requests := atomic.Int32{}
			srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, _ *http.Request) {
				status := tt.statuses[requests.Add(1)-1]
				if status == http.StatusTooManyRequests && tt.retryAfter != "" {
					wrt.Header().Set("Retry-After", tt.retryAfter)
				}
				if status == http.StatusOK {
					wrt.Write([]byte(`{"products":[]}`))
					return
				}
				wrt.WriteHeader(status)
			}))
			t.Cleanup(srv.Close)

			waits := []time.Duration{}
			fet := NewFetcher(srv.Client(), srv.URL, "token", WithBackoff(time.Second))
			fet.sleep = func(_ context.Context, d time.Duration) error {
				waits = append(waits, d)
				return nil
			}

			_, err := fet.FetchAll(context.TODO(), "/products.json", nil, "products")

			require.NoError(t, err, "shouldn't return any error")
			assert.Equal(t, tt.wantWaits, waits, "should wait correct durations between attempts")
		})
	}
}
