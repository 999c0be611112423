package e2e

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/quantumspectra/shopify-sync/e2e/helpers"
	"github.com/quantumspectra/shopify-sync/internal/decoder"
	"github.com/quantumspectra/shopify-sync/internal/fetcher"
	"github.com/quantumspectra/shopify-sync/internal/platform/models"
	"github.com/quantumspectra/shopify-sync/internal/platform/storage"
	"github.com/quantumspectra/shopify-sync/internal/platform/storage/storagetesting"
	"github.com/quantumspectra/shopify-sync/internal/syncer"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

const lookback = time.Minute

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	os.Exit(m.Run())
}

func TestE2E(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}

type E2ETestSuite struct {
	suite.Suite
	db   *sql.DB
	stub *helpers.ShopStub
	logs bytes.Buffer
	syn  *syncer.Syncer
}

func (s *E2ETestSuite) SetupTest() {
	s.db = storagetesting.Open(s.T())
	s.stub = helpers.NewShopStub(s.T())
	s.logs = bytes.Buffer{}

	logger := zerolog.New(&s.logs).Level(zerolog.DebugLevel)

	s.syn = syncer.NewSyncer(
		fetcher.NewFetcher(
			&http.Client{Timeout: 5 * time.Second},
			s.stub.Server.URL,
			helpers.TestToken,
			fetcher.WithPageSize(250),
		),
		decoder.Decoder{},
		storage.NewSQLite(s.db, &logger),
		&logger,
		syncer.WithLookback(lookback),
	)
}

func (s *E2ETestSuite) TestShopSync() {
	base := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	productsWatermark := base.Add(259 * time.Minute)
	customersWatermark := base.Add(4 * time.Minute)
	ordersWatermark := base.Add(30 * time.Minute)

	s.stub.SetRecords("products", helpers.GenerateProducts(s.T(), 260, base))
	s.stub.SetRecords("customers", helpers.GenerateCustomers(s.T(), 5, base))
	s.stub.SetRecords("orders", []json.RawMessage{
		helpers.MakeOrder(s.T(), 1, 1, `"20.00"`, base.Add(10*time.Minute)),
		helpers.MakeOrder(s.T(), 2, 0, `"5.50"`, base.Add(20*time.Minute)),
		helpers.MakeOrder(s.T(), 3, 2, `"abc"`, ordersWatermark),
	})

	// First sync: empty store, no watermarks, everything is fetched.
	summary, err := s.syn.RunSync(context.Background(), false)

	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(
		&models.SyncSummary{Products: 260, Customers: 5, Orders: 3},
		summary,
		"should return correct summary",
	)

	s.Equal(2, s.stub.Pages("products"), "should fetch products in two pages")
	s.Empty(
		s.stub.FirstPageParams("products").Get("updated_at_min"),
		"first sync should fetch complete collection",
	)

	s.Len(storagetesting.GetProducts(s.T(), s.db), 260, "should store all products")
	s.Len(storagetesting.GetVariants(s.T(), s.db), 260, "should store all variants")
	s.Len(storagetesting.GetCustomers(s.T(), s.db), 5, "should store all customers")

	orders := storagetesting.GetOrders(s.T(), s.db)
	s.Require().Len(orders, 3, "should store all orders")
	s.Len(storagetesting.GetLineItems(s.T(), s.db), 3, "should store all line items")
	for _, order := range orders {
		switch order.ID {
		case 1:
			s.Equal(lo.ToPtr(20.0), order.TotalPrice, "order 1 should have correct total price")
			s.Equal(lo.ToPtr(int64(1)), order.CustomerID, "order 1 should have attributed customer")
		case 2:
			s.Nil(order.CustomerID, "guest checkout order should have no customer")
		case 3:
			s.Nil(order.TotalPrice, "malformed total price should be stored as null")
		}
	}

	s.assertWatermark("products", productsWatermark)
	s.assertWatermark("customers", customersWatermark)
	s.assertWatermark("orders", ordersWatermark)

	runs := storagetesting.GetRuns(s.T(), s.db)
	s.Require().Len(runs, 1, "should record one run")
	s.Equal(lo.ToPtr(true), runs[0].Success, "run should be successful")
	s.Equal(lo.ToPtr(int32(260)), runs[0].Products, "run should have correct products count")
	s.Equal(lo.ToPtr(int32(0)), runs[0].FailedRecords, "run should have no failed records")

	// Second sync: only a renamed product comes back, replaced by ID.
	renamedAt := base.Add(300 * time.Minute)
	s.stub.SetRecords("products", []json.RawMessage{
		helpers.MakeProduct(s.T(), 1, "Renamed product", renamedAt),
	})
	s.stub.SetRecords("customers", nil)
	s.stub.SetRecords("orders", nil)

	summary, err = s.syn.RunSync(context.Background(), false)

	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(
		&models.SyncSummary{Products: 1},
		summary,
		"should return correct summary",
	)

	s.Equal(
		productsWatermark.Add(-lookback).Format(time.RFC3339),
		s.stub.FirstPageParams("products").Get("updated_at_min"),
		"incremental sync should fetch from watermark minus lookback",
	)
	s.Equal(
		customersWatermark.Add(-lookback).Format(time.RFC3339),
		s.stub.FirstPageParams("customers").Get("updated_at_min"),
		"incremental sync should fetch from watermark minus lookback",
	)
	s.Equal("any", s.stub.FirstPageParams("orders").Get("status"), "orders should be fetched with any status")

	products := storagetesting.GetProducts(s.T(), s.db)
	s.Len(products, 260, "resynced product should replace its row")
	for _, product := range products {
		if product.ID == 1 {
			s.Equal(lo.ToPtr("Renamed product"), product.Title, "product 1 should be renamed")
		}
	}

	s.assertWatermark("products", renamedAt)
	s.assertWatermark("customers", customersWatermark)

	runs = storagetesting.GetRuns(s.T(), s.db)
	s.Len(runs, 2, "should record second run")

	s.Equal(
		6,
		strings.Count(s.logs.String(), "entity pass finished"),
		"should log every finished entity pass",
	)
}

func (s *E2ETestSuite) TestSyncResumesAfterFailedPass() {
	base := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	s.stub.SetRecords("products", helpers.GenerateProducts(s.T(), 3, base))
	s.stub.SetRecords("customers", []json.RawMessage{json.RawMessage(`{"email":"broken"}`)})
	s.stub.SetRecords("orders", []json.RawMessage{
		helpers.MakeOrder(s.T(), 1, 0, `"9.99"`, base),
	})

	// The customer record without an id fails, but its pass and the sync continue.
	summary, err := s.syn.RunSync(context.Background(), false)

	s.Require().NoError(err, "record failures shouldn't fail the sync")
	s.Equal(
		&models.SyncSummary{Products: 3, Orders: 1, FailedRecords: 1},
		summary,
		"should return correct summary",
	)

	s.assertWatermark("products", base.Add(2*time.Minute))
	s.Nil(
		storagetesting.GetWatermark(s.T(), s.db, "customers"),
		"failed-only pass shouldn't set watermark",
	)

	runs := storagetesting.GetRuns(s.T(), s.db)
	s.Require().Len(runs, 1, "should record one run")
	s.Equal(lo.ToPtr(int32(1)), runs[0].FailedRecords, "run should count failed records")
}

func (s *E2ETestSuite) assertWatermark(entity string, want time.Time) {
	s.T().Helper()

	watermark := storagetesting.GetWatermark(s.T(), s.db, entity)
	s.Require().NotNil(watermark, "watermark for %s should be set", entity)
	s.True(
		want.Equal(watermark.LastSyncedAt),
		"watermark for %s should be %s, got %s", entity, want, watermark.LastSyncedAt,
	)
}
