package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/quantumspectra/shopify-sync/internal/platform"
	"github.com/quantumspectra/shopify-sync/internal/platform/models"
	"github.com/quantumspectra/shopify-sync/internal/platform/storage/gen/sqlite/table"
	"github.com/rs/zerolog"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	smodel "github.com/quantumspectra/shopify-sync/internal/platform/storage/gen/sqlite/model"
)

// SQLite is storage for synced entities, watermarks and sync runs.
// It assumes a single writer; the run ledger rejects overlapping runs.
type SQLite struct {
	db     *sql.DB
	logger *zerolog.Logger
}

// NewSQLite returns new SQLite.
func NewSQLite(db *sql.DB, logger *zerolog.Logger) SQLite {
	return SQLite{
		db:     db,
		logger: logger,
	}
}

// StartRun creates new unfinished run in database and returns it.
// It returns platform.ErrAlreadyRunning if previous run is not finished yet.
func (s SQLite) StartRun(ctx context.Context, full bool) (*models.Run, error) {
	run := &models.Run{
		StartedAt: time.Now().UTC(),
		FullSync:  full,
	}

	err := runInTransaction(ctx, s.db, func(tx *sql.Tx) error {
		lastRun, err := getLastRun(ctx, tx)
		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get last run from database: %w", err)
		}

		if lastRun != nil && lastRun.FinishedAt == nil && lastRun.Success == nil {
			return platform.ErrAlreadyRunning
		}

		newRun := toDBRun(run)
		err = table.SyncRuns.INSERT(
			table.SyncRuns.StartedAt,
			table.SyncRuns.FullSync,
		).
			MODEL(newRun).
			RETURNING(table.SyncRuns.ID).
			QueryContext(ctx, tx, newRun)
		if err != nil {
			return fmt.Errorf("can't insert run into database: %w", err)
		}

		run.ID = newRun.ID

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't add run: %w", err)
	}

	return run, nil
}

// FinishRun sets run as finished and updates run's statistics.
func (s SQLite) FinishRun(ctx context.Context, run *models.Run) error {
	columnList := table.SyncRuns.AllColumns.Except(table.SyncRuns.ID, table.SyncRuns.StartedAt)

	result, err := table.SyncRuns.UPDATE(columnList).
		MODEL(toDBRun(run)).
		WHERE(table.SyncRuns.ID.EQ(sqlite.Int(int64(run.ID)))).
		ExecContext(ctx, s.db)
	if err != nil {
		return fmt.Errorf("can't update run: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return fmt.Errorf("can't update run: %w", err)
	}

	return nil
}

// Watermark returns the last committed update timestamp for entity type,
// or nil if the entity type was never synced.
func (s SQLite) Watermark(ctx context.Context, entity models.EntityType) (*time.Time, error) {
	var watermark smodel.SyncWatermarks

	err := table.SyncWatermarks.SELECT(table.SyncWatermarks.AllColumns).
		WHERE(table.SyncWatermarks.EntityType.EQ(sqlite.String(string(entity)))).
		QueryContext(ctx, s.db, &watermark)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can't get watermark: %w", err)
	}

	ts := watermark.LastSyncedAt.UTC()

	return &ts, nil
}

// SetWatermark upserts the watermark for entity type. Watermarks never move
// backwards: a timestamp not after the stored one is a no-op.
func (s SQLite) SetWatermark(ctx context.Context, entity models.EntityType, ts time.Time) error {
	err := runInTransaction(ctx, s.db, func(tx *sql.Tx) error {
		var current smodel.SyncWatermarks
		err := table.SyncWatermarks.SELECT(table.SyncWatermarks.AllColumns).
			WHERE(table.SyncWatermarks.EntityType.EQ(sqlite.String(string(entity)))).
			QueryContext(ctx, tx, &current)

		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get current watermark: %w", err)
		}

		if err == nil && !ts.After(current.LastSyncedAt) {
			return nil
		}

		_, err = table.SyncWatermarks.INSERT(table.SyncWatermarks.AllColumns).
			MODEL(smodel.SyncWatermarks{
				EntityType:   string(entity),
				LastSyncedAt: ts.UTC(),
			}).
			ON_CONFLICT(table.SyncWatermarks.EntityType).
			DO_UPDATE(sqlite.SET(
				table.SyncWatermarks.LastSyncedAt.SET(table.SyncWatermarks.EXCLUDED.LastSyncedAt),
			)).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't upsert watermark: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("can't set watermark: %w", err)
	}

	return nil
}

// UpsertProducts upserts products and their variants, replacing rows by ID.
// Each product with its variants is one transaction; a failed product is
// logged and skipped, the rest of the batch is still written.
// It returns number of stored and number of skipped products.
func (s SQLite) UpsertProducts(ctx context.Context, products []models.Product) (int32, int32, error) {
	stored := int32(0)
	failed := int32(0)

	for ix := range products {
		if err := ctx.Err(); err != nil {
			return stored, failed, err
		}

		err := runInTransaction(ctx, s.db, func(tx *sql.Tx) error {
			if err := upsertProduct(ctx, tx, ToDBProduct(&products[ix])); err != nil {
				return fmt.Errorf("can't upsert product: %w", err)
			}
			for vx := range products[ix].Variants {
				if err := upsertVariant(ctx, tx, ToDBVariant(&products[ix].Variants[vx])); err != nil {
					return fmt.Errorf("can't upsert variant: %w", err)
				}
			}
			return nil
		})
		if err != nil {
			failed++
			s.logger.Warn().
				Err(err).
				Int64("productId", products[ix].ID).
				Msg("product skipped")
			continue
		}

		stored++
	}

	return stored, failed, nil
}

// UpsertCustomers upserts customers, replacing rows by ID. A failed customer
// is logged and skipped, the rest of the batch is still written.
// It returns number of stored and number of skipped customers.
func (s SQLite) UpsertCustomers(ctx context.Context, customers []models.Customer) (int32, int32, error) {
	stored := int32(0)
	failed := int32(0)

	for ix := range customers {
		if err := ctx.Err(); err != nil {
			return stored, failed, err
		}

		err := runInTransaction(ctx, s.db, func(tx *sql.Tx) error {
			if err := upsertCustomer(ctx, tx, ToDBCustomer(&customers[ix])); err != nil {
				return fmt.Errorf("can't upsert customer: %w", err)
			}
			return nil
		})
		if err != nil {
			failed++
			s.logger.Warn().
				Err(err).
				Int64("customerId", customers[ix].ID).
				Msg("customer skipped")
			continue
		}

		stored++
	}

	return stored, failed, nil
}

// UpsertOrders upserts orders and their line items, replacing rows by ID.
// Each order with its line items is one transaction; a failed order is
// logged and skipped, the rest of the batch is still written.
// It returns number of stored and number of skipped orders.
func (s SQLite) UpsertOrders(ctx context.Context, orders []models.Order) (int32, int32, error) {
	stored := int32(0)
	failed := int32(0)

	for ix := range orders {
		if err := ctx.Err(); err != nil {
			return stored, failed, err
		}

		err := runInTransaction(ctx, s.db, func(tx *sql.Tx) error {
			if err := upsertOrder(ctx, tx, ToDBOrder(&orders[ix])); err != nil {
				return fmt.Errorf("can't upsert order: %w", err)
			}
			for lx := range orders[ix].LineItems {
				if err := upsertLineItem(ctx, tx, ToDBLineItem(&orders[ix].LineItems[lx])); err != nil {
					return fmt.Errorf("can't upsert line item: %w", err)
				}
			}
			return nil
		})
		if err != nil {
			failed++
			s.logger.Warn().
				Err(err).
				Int64("orderId", orders[ix].ID).
				Msg("order skipped")
			continue
		}

		stored++
	}

	return stored, failed, nil
}

func upsertProduct(ctx context.Context, db qrm.DB, product *smodel.Products) error {
	t := table.Products

	_, err := t.INSERT(t.AllColumns).
		MODEL(product).
		ON_CONFLICT(t.ID).
		DO_UPDATE(sqlite.SET(
			t.Title.SET(t.EXCLUDED.Title),
			t.Vendor.SET(t.EXCLUDED.Vendor),
			t.ProductType.SET(t.EXCLUDED.ProductType),
			t.CreatedAt.SET(t.EXCLUDED.CreatedAt),
			t.UpdatedAt.SET(t.EXCLUDED.UpdatedAt),
			t.RawJSON.SET(t.EXCLUDED.RawJSON),
		)).
		ExecContext(ctx, db)

	return err
}

func upsertVariant(ctx context.Context, db qrm.DB, variant *smodel.ProductVariants) error {
	t := table.ProductVariants

	_, err := t.INSERT(t.AllColumns).
		MODEL(variant).
		ON_CONFLICT(t.ID).
		DO_UPDATE(sqlite.SET(
			t.ProductID.SET(t.EXCLUDED.ProductID),
			t.Title.SET(t.EXCLUDED.Title),
			t.Sku.SET(t.EXCLUDED.Sku),
			t.Price.SET(t.EXCLUDED.Price),
			t.CompareAtPrice.SET(t.EXCLUDED.CompareAtPrice),
			t.Position.SET(t.EXCLUDED.Position),
			t.Option1.SET(t.EXCLUDED.Option1),
			t.Option2.SET(t.EXCLUDED.Option2),
			t.Option3.SET(t.EXCLUDED.Option3),
			t.CreatedAt.SET(t.EXCLUDED.CreatedAt),
			t.UpdatedAt.SET(t.EXCLUDED.UpdatedAt),
			t.RawJSON.SET(t.EXCLUDED.RawJSON),
		)).
		ExecContext(ctx, db)

	return err
}

func upsertCustomer(ctx context.Context, db qrm.DB, customer *smodel.Customers) error {
	t := table.Customers

	_, err := t.INSERT(t.AllColumns).
		MODEL(customer).
		ON_CONFLICT(t.ID).
		DO_UPDATE(sqlite.SET(
			t.FirstName.SET(t.EXCLUDED.FirstName),
			t.LastName.SET(t.EXCLUDED.LastName),
			t.Email.SET(t.EXCLUDED.Email),
			t.Phone.SET(t.EXCLUDED.Phone),
			t.CreatedAt.SET(t.EXCLUDED.CreatedAt),
			t.UpdatedAt.SET(t.EXCLUDED.UpdatedAt),
			t.RawJSON.SET(t.EXCLUDED.RawJSON),
		)).
		ExecContext(ctx, db)

	return err
}

func upsertOrder(ctx context.Context, db qrm.DB, order *smodel.Orders) error {
	t := table.Orders

	_, err := t.INSERT(t.AllColumns).
		MODEL(order).
		ON_CONFLICT(t.ID).
		DO_UPDATE(sqlite.SET(
			t.OrderNumber.SET(t.EXCLUDED.OrderNumber),
			t.CustomerID.SET(t.EXCLUDED.CustomerID),
			t.Email.SET(t.EXCLUDED.Email),
			t.TotalPrice.SET(t.EXCLUDED.TotalPrice),
			t.Currency.SET(t.EXCLUDED.Currency),
			t.CreatedAt.SET(t.EXCLUDED.CreatedAt),
			t.UpdatedAt.SET(t.EXCLUDED.UpdatedAt),
			t.FinancialStatus.SET(t.EXCLUDED.FinancialStatus),
			t.FulfillmentStatus.SET(t.EXCLUDED.FulfillmentStatus),
			t.RawJSON.SET(t.EXCLUDED.RawJSON),
		)).
		ExecContext(ctx, db)

	return err
}

func upsertLineItem(ctx context.Context, db qrm.DB, lineItem *smodel.LineItems) error {
	t := table.LineItems

	_, err := t.INSERT(t.AllColumns).
		MODEL(lineItem).
		ON_CONFLICT(t.ID).
		DO_UPDATE(sqlite.SET(
			t.OrderID.SET(t.EXCLUDED.OrderID),
			t.ProductID.SET(t.EXCLUDED.ProductID),
			t.VariantID.SET(t.EXCLUDED.VariantID),
			t.Title.SET(t.EXCLUDED.Title),
			t.Quantity.SET(t.EXCLUDED.Quantity),
			t.Price.SET(t.EXCLUDED.Price),
			t.Sku.SET(t.EXCLUDED.Sku),
			t.RawJSON.SET(t.EXCLUDED.RawJSON),
		)).
		ExecContext(ctx, db)

	return err
}

func getLastRun(ctx context.Context, db qrm.DB) (*smodel.SyncRuns, error) {
	var run smodel.SyncRuns

	err := table.SyncRuns.SELECT(
		table.SyncRuns.StartedAt,
		table.SyncRuns.FinishedAt,
		table.SyncRuns.Success,
		table.SyncRuns.StatusMessage,
	).
		ORDER_BY(table.SyncRuns.ID.DESC()).
		LIMIT(1).
		QueryContext(ctx, db, &run)
	if err != nil {
		return nil, err
	}

	return &run, nil
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
