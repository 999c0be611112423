package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestToken is the access token the shop stub expects on every request.
const TestToken = "shpat-e2e-test-token"

// ShopStub is a fake shop REST API serving paginated collection endpoints the
// way the real API does: limit query parameter, page_info cursor and a
// rel="next" Link header on every page except the last.
type ShopStub struct {
	Server *httptest.Server

	mu         sync.Mutex
	records    map[string][]json.RawMessage
	lastParams map[string]url.Values
	pages      map[string]int
}

// NewShopStub returns new ShopStub, closed when the test ends.
func NewShopStub(t *testing.T) *ShopStub {
	t.Helper()

	stub := &ShopStub{
		records:    map[string][]json.RawMessage{},
		lastParams: map[string]url.Values{},
		pages:      map[string]int{},
	}

	stub.Server = httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		stub.handle(t, wrt, req)
	}))
	t.Cleanup(stub.Server.Close)

	return stub
}

// SetRecords replaces records served for entity.
func (s *ShopStub) SetRecords(entity string, records []json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[entity] = records
}

// FirstPageParams returns query parameters of the latest first-page request for entity.
func (s *ShopStub) FirstPageParams(entity string) url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastParams[entity]
}

// Pages returns number of page requests served for entity.
func (s *ShopStub) Pages(entity string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pages[entity]
}

func (s *ShopStub) handle(t *testing.T, wrt http.ResponseWriter, req *http.Request) {
	t.Helper()

	assert.Equal(t, TestToken, req.Header.Get("X-Shopify-Access-Token"), "request should carry access token")

	entity := strings.TrimSuffix(path.Base(req.URL.Path), ".json")
	query := req.URL.Query()

	limit, err := strconv.Atoi(query.Get("limit"))
	if err != nil || limit < 1 {
		limit = 50
	}

	offset := 0
	if pageInfo := query.Get("page_info"); pageInfo != "" {
		if offset, err = strconv.Atoi(pageInfo); err != nil {
			t.Errorf("unexpected page_info %q", pageInfo)
			return
		}
	}

	s.mu.Lock()
	records := s.records[entity]
	s.pages[entity]++
	if offset == 0 {
		s.lastParams[entity] = query
	}
	s.mu.Unlock()

	end := offset + limit
	if end > len(records) {
		end = len(records)
	}

	if end < len(records) {
		next := fmt.Sprintf("%s%s?limit=%d&page_info=%d", s.Server.URL, req.URL.Path, limit, end)
		wrt.Header().Set("Link", fmt.Sprintf(`<%s>; rel="next"`, next))
	}
	wrt.Header().Set("Content-Type", "application/json")

	page := records[offset:end]
	if page == nil {
		page = []json.RawMessage{}
	}
	if err := json.NewEncoder(wrt).Encode(map[string][]json.RawMessage{entity: page}); err != nil {
		t.Errorf("can't write page: %s", err)
	}
}

// GenerateProducts generates n product records with IDs in [1;n], one variant
// each and update timestamps one minute apart starting at base.
func GenerateProducts(t *testing.T, n int, base time.Time) []json.RawMessage {
	t.Helper()

	records := make([]json.RawMessage, 0, n)
	for ix := 0; ix < n; ix++ {
		id := int64(ix + 1)
		records = append(records, MakeProduct(t, id, fmt.Sprintf("Product %d", id), base.Add(time.Duration(ix)*time.Minute)))
	}

	return records
}

// MakeProduct builds a product record with one variant.
func MakeProduct(t *testing.T, id int64, title string, updatedAt time.Time) json.RawMessage {
	t.Helper()

	record := fmt.Sprintf(
		`{"id":%d,"title":%q,"vendor":"Acme","product_type":"tools","created_at":%q,"updated_at":%q,`+
			`"variants":[{"id":%d,"product_id":%d,"title":"Default","sku":"SKU-%d","price":"%d.99","position":1,"updated_at":%q}]}`,
		id, title,
		updatedAt.Add(-24*time.Hour).Format(time.RFC3339), updatedAt.Format(time.RFC3339),
		id*1000, id, id, id%100, updatedAt.Format(time.RFC3339),
	)

	require.True(t, json.Valid([]byte(record)), "generated product should be valid json")

	return json.RawMessage(record)
}

// GenerateCustomers generates n customer records with IDs in [1;n] and update
// timestamps one minute apart starting at base.
func GenerateCustomers(t *testing.T, n int, base time.Time) []json.RawMessage {
	t.Helper()

	records := make([]json.RawMessage, 0, n)
	for ix := 0; ix < n; ix++ {
		id := int64(ix + 1)
		record := fmt.Sprintf(
			`{"id":%d,"first_name":"First%d","last_name":"Last%d","email":"customer%d@example.com","phone":"+1555%07d","updated_at":%q}`,
			id, id, id, id, id, base.Add(time.Duration(ix)*time.Minute).Format(time.RFC3339),
		)
		require.True(t, json.Valid([]byte(record)), "generated customer should be valid json")
		records = append(records, json.RawMessage(record))
	}

	return records
}

// MakeOrder builds an order record with one line item. customerID 0 builds a
// guest checkout order without an attributed customer. totalPrice is the raw
// json value of the total_price field.
func MakeOrder(t *testing.T, id, customerID int64, totalPrice string, updatedAt time.Time) json.RawMessage {
	t.Helper()

	customer := ""
	if customerID != 0 {
		customer = fmt.Sprintf(`"customer":{"id":%d},`, customerID)
	}

	record := fmt.Sprintf(
		`{"id":%d,"order_number":%d,%s"email":"order%d@example.com","total_price":%s,"currency":"USD",`+
			`"financial_status":"paid","fulfillment_status":null,"updated_at":%q,`+
			`"line_items":[{"id":%d,"product_id":1,"variant_id":1000,"title":"Product 1","quantity":1,"price":"1.99","sku":"SKU-1"}]}`,
		id, 1000+id, customer, id, totalPrice, updatedAt.Format(time.RFC3339), id*100,
	)

	require.True(t, json.Valid([]byte(record)), "generated order should be valid json")

	return json.RawMessage(record)
}
