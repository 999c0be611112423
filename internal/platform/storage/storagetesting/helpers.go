package storagetesting

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	smodel "github.com/quantumspectra/shopify-sync/internal/platform/storage/gen/sqlite/model"
	"github.com/quantumspectra/shopify-sync/internal/platform/storage/gen/sqlite/table"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens a connection to a fresh store file in a test temp directory.
// The file is removed with the rest of the temp directory when the test ends.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sync.db")

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("can't open store %q: %s", path, err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("can't close store: %s", err)
		}
	})

	return db
}

// InsertProducts is a helper test function to insert products.
func InsertProducts(t *testing.T, exc qrm.Executable, products ...smodel.Products) {
	t.Helper()

	if len(products) == 0 {
		return
	}

	_, err := table.Products.INSERT(table.Products.AllColumns).MODELS(products).Exec(exc)
	if err != nil {
		t.Fatal("can't insert products", err)
	}
}

// InsertRuns is a helper test function to insert runs.
func InsertRuns(t *testing.T, exc qrm.Executable, runs ...smodel.SyncRuns) {
	t.Helper()

	if len(runs) == 0 {
		return
	}

	_, err := table.SyncRuns.INSERT(table.SyncRuns.AllColumns).MODELS(runs).Exec(exc)
	if err != nil {
		t.Fatal("can't insert runs", err)
	}
}

// InsertWatermarks is a helper test function to insert watermarks.
func InsertWatermarks(t *testing.T, exc qrm.Executable, watermarks ...smodel.SyncWatermarks) {
	t.Helper()

	if len(watermarks) == 0 {
		return
	}

	_, err := table.SyncWatermarks.INSERT(table.SyncWatermarks.AllColumns).MODELS(watermarks).Exec(exc)
	if err != nil {
		t.Fatal("can't insert watermarks", err)
	}
}

// GetProducts is a helper test function to get all products.
func GetProducts(t *testing.T, queryable qrm.Queryable) []smodel.Products {
	t.Helper()

	products := []smodel.Products{}
	err := table.Products.SELECT(table.Products.AllColumns).
		WHERE(table.Products.ID.IS_NOT_NULL()).
		Query(queryable, &products)
	if err != nil {
		t.Fatal("can't get products", err)
	}

	return products
}

// GetVariants is a helper test function to get all product variants.
func GetVariants(t *testing.T, queryable qrm.Queryable) []smodel.ProductVariants {
	t.Helper()

	variants := []smodel.ProductVariants{}
	err := table.ProductVariants.SELECT(table.ProductVariants.AllColumns).
		WHERE(table.ProductVariants.ID.IS_NOT_NULL()).
		Query(queryable, &variants)
	if err != nil {
		t.Fatal("can't get variants", err)
	}

	return variants
}

// GetCustomers is a helper test function to get all customers.
func GetCustomers(t *testing.T, queryable qrm.Queryable) []smodel.Customers {
	t.Helper()

	customers := []smodel.Customers{}
	err := table.Customers.SELECT(table.Customers.AllColumns).
		WHERE(table.Customers.ID.IS_NOT_NULL()).
		Query(queryable, &customers)
	if err != nil {
		t.Fatal("can't get customers", err)
	}

	return customers
}

// GetOrders is a helper test function to get all orders.
func GetOrders(t *testing.T, queryable qrm.Queryable) []smodel.Orders {
	t.Helper()

	orders := []smodel.Orders{}
	err := table.Orders.SELECT(table.Orders.AllColumns).
		WHERE(table.Orders.ID.IS_NOT_NULL()).
		Query(queryable, &orders)
	if err != nil {
		t.Fatal("can't get orders", err)
	}

	return orders
}

// GetLineItems is a helper test function to get all line items.
func GetLineItems(t *testing.T, queryable qrm.Queryable) []smodel.LineItems {
	t.Helper()

	lineItems := []smodel.LineItems{}
	err := table.LineItems.SELECT(table.LineItems.AllColumns).
		WHERE(table.LineItems.ID.IS_NOT_NULL()).
		Query(queryable, &lineItems)
	if err != nil {
		t.Fatal("can't get line items", err)
	}

	return lineItems
}

// GetRuns is a helper test function to get all runs.
func GetRuns(t *testing.T, queryable qrm.Queryable) []smodel.SyncRuns {
	t.Helper()

	runs := []smodel.SyncRuns{}
	err := table.SyncRuns.SELECT(table.SyncRuns.AllColumns).
		WHERE(table.SyncRuns.ID.IS_NOT_NULL()).
		Query(queryable, &runs)
	if err != nil {
		t.Fatal("can't get runs", err)
	}

	return runs
}

// GetWatermark is a helper test function to get watermark by entity type.
// Returns nil if there is no watermark for the entity type.
func GetWatermark(t *testing.T, queryable qrm.Queryable, entityType string) *smodel.SyncWatermarks {
	t.Helper()

	var watermark smodel.SyncWatermarks
	err := table.SyncWatermarks.SELECT(table.SyncWatermarks.AllColumns).
		WHERE(table.SyncWatermarks.EntityType.EQ(sqlite.String(entityType))).
		Query(queryable, &watermark)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil
	}
	if err != nil {
		t.Fatal("can't get watermark", err)
	}

	return &watermark
}
