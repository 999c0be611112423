package syncer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/quantumspectra/shopify-sync/internal/platform/models"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:generate mockery --name Fetcher --filename fetcher.go
//go:generate mockery --name Decoder --filename decoder.go
//go:generate mockery --name Storage --filename storage.go

const defaultLookback = time.Minute

// Fetcher fetches all records of a paginated collection endpoint.
type Fetcher interface {
	FetchAll(ctx context.Context, endpoint string, params url.Values, itemsKey string) ([]json.RawMessage, error)
}

// Decoder decodes raw API records into app models.
// Each method returns decoded records and number of failed records.
type Decoder interface {
	DecodeProducts(records []json.RawMessage) ([]models.Product, int32)
	DecodeCustomers(records []json.RawMessage) ([]models.Customer, int32)
	DecodeOrders(records []json.RawMessage) ([]models.Order, int32)
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() *time.Time
}

// Storage is entities, watermarks and runs storage.
type Storage interface {
	// EnsureSchema creates missing tables and additively migrates existing ones.
	EnsureSchema(ctx context.Context) error
	// StartRun creates new run if there is no other run running.
	StartRun(ctx context.Context, full bool) (run *models.Run, err error)
	// FinishRun finishes provided run and updates its statistics.
	FinishRun(ctx context.Context, run *models.Run) error
	// Watermark returns last committed update timestamp for entity type, nil if never synced.
	Watermark(ctx context.Context, entity models.EntityType) (*time.Time, error)
	// SetWatermark upserts watermark for entity type. Watermarks never move backwards.
	SetWatermark(ctx context.Context, entity models.EntityType, ts time.Time) error
	// UpsertProducts upserts products with their variants, replacing rows by ID.
	// Returns number of stored and number of skipped products.
	UpsertProducts(ctx context.Context, products []models.Product) (stored int32, failed int32, err error)
	// UpsertCustomers upserts customers, replacing rows by ID.
	// Returns number of stored and number of skipped customers.
	UpsertCustomers(ctx context.Context, customers []models.Customer) (stored int32, failed int32, err error)
	// UpsertOrders upserts orders with their line items, replacing rows by ID.
	// Returns number of stored and number of skipped orders.
	UpsertOrders(ctx context.Context, orders []models.Order) (stored int32, failed int32, err error)
}

// Option is custom configuration of Syncer.
type Option func(s *Syncer)

// Syncer fetches, decodes and stores shop entities, one entity type after
// another: products, then customers, then orders. Every pass commits its own
// watermark, so an aborted sync resumes where the finished passes left off.
type Syncer struct {
	fetcher  Fetcher
	decoder  Decoder
	storage  Storage
	lookback time.Duration
	clock    Clock
	logger   *zerolog.Logger
}

// NewSyncer returns new Syncer.
func NewSyncer(fetcher Fetcher, decoder Decoder, storage Storage, logger *zerolog.Logger, ops ...Option) *Syncer {
	syn := &Syncer{
		fetcher:  fetcher,
		decoder:  decoder,
		storage:  storage,
		lookback: defaultLookback,
		clock:    systemClock{},
		logger:   logger,
	}

	for _, op := range ops {
		op(syn)
	}

	return syn
}

// RunSync syncs all entity types. With full set it ignores stored watermarks
// and fetches complete collections.
func (s *Syncer) RunSync(ctx context.Context, full bool) (*models.SyncSummary, error) {
	if err := s.storage.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("can't ensure schema: %w", err)
	}

	run, err := s.storage.StartRun(ctx, full)
	if err != nil {
		return nil, fmt.Errorf("can't start sync: %w", err)
	}

	failed := int32(0)

	passes := []struct {
		entity models.EntityType
		sync   func(ctx context.Context, run *models.Run) (int32, error)
	}{
		{models.EntityProducts, s.syncProducts},
		{models.EntityCustomers, s.syncCustomers},
		{models.EntityOrders, s.syncOrders},
	}

	for _, pass := range passes {
		passFailed, err := pass.sync(ctx, run)
		failed += passFailed
		run.FailedRecords = &failed

		if err != nil {
			return nil, s.finishSync(ctx, run, fmt.Errorf("can't sync %s: %w", pass.entity, err))
		}

		s.logger.Info().
			Str("entity", string(pass.entity)).
			Int32("failedRecords", passFailed).
			Msg("entity pass finished")
	}

	if err := s.finishSync(ctx, run, nil); err != nil {
		return nil, err
	}

	return &models.SyncSummary{
		Products:      lo.FromPtr(run.Products),
		Customers:     lo.FromPtr(run.Customers),
		Orders:        lo.FromPtr(run.Orders),
		FailedRecords: failed,
	}, nil
}

func (s *Syncer) syncProducts(ctx context.Context, run *models.Run) (int32, error) {
	params, err := s.passParams(ctx, models.EntityProducts, run.FullSync)
	if err != nil {
		return 0, err
	}

	records, err := s.fetcher.FetchAll(ctx, "/products.json", params, "products")
	if err != nil {
		return 0, fmt.Errorf("can't fetch products: %w", err)
	}

	products, failed := s.decoder.DecodeProducts(records)

	stored, storeFailed, err := s.storage.UpsertProducts(ctx, products)
	run.Products = &stored
	failed += storeFailed
	if err != nil {
		return failed, fmt.Errorf("can't store products: %w", err)
	}

	watermark := maxUpdatedAt(products, func(p *models.Product) *time.Time { return p.UpdatedAt })
	if err := s.commitWatermark(ctx, models.EntityProducts, watermark); err != nil {
		return failed, err
	}

	return failed, nil
}

func (s *Syncer) syncCustomers(ctx context.Context, run *models.Run) (int32, error) {
	params, err := s.passParams(ctx, models.EntityCustomers, run.FullSync)
	if err != nil {
		return 0, err
	}

	records, err := s.fetcher.FetchAll(ctx, "/customers.json", params, "customers")
	if err != nil {
		return 0, fmt.Errorf("can't fetch customers: %w", err)
	}

	customers, failed := s.decoder.DecodeCustomers(records)

	stored, storeFailed, err := s.storage.UpsertCustomers(ctx, customers)
	run.Customers = &stored
	failed += storeFailed
	if err != nil {
		return failed, fmt.Errorf("can't store customers: %w", err)
	}

	watermark := maxUpdatedAt(customers, func(c *models.Customer) *time.Time { return c.UpdatedAt })
	if err := s.commitWatermark(ctx, models.EntityCustomers, watermark); err != nil {
		return failed, err
	}

	return failed, nil
}

func (s *Syncer) syncOrders(ctx context.Context, run *models.Run) (int32, error) {
	params, err := s.passParams(ctx, models.EntityOrders, run.FullSync)
	if err != nil {
		return 0, err
	}
	params.Set("status", "any")

	records, err := s.fetcher.FetchAll(ctx, "/orders.json", params, "orders")
	if err != nil {
		return 0, fmt.Errorf("can't fetch orders: %w", err)
	}

	orders, failed := s.decoder.DecodeOrders(records)

	stored, storeFailed, err := s.storage.UpsertOrders(ctx, orders)
	run.Orders = &stored
	failed += storeFailed
	if err != nil {
		return failed, fmt.Errorf("can't store orders: %w", err)
	}

	watermark := maxUpdatedAt(orders, func(o *models.Order) *time.Time { return o.UpdatedAt })
	if err := s.commitWatermark(ctx, models.EntityOrders, watermark); err != nil {
		return failed, err
	}

	return failed, nil
}

// passParams builds query parameters of one entity pass. Incremental passes
// start from the watermark minus lookback, so records updated while the
// previous sync was paginating are fetched again instead of being missed.
func (s *Syncer) passParams(ctx context.Context, entity models.EntityType, full bool) (url.Values, error) {
	params := url.Values{}
	if full {
		return params, nil
	}

	watermark, err := s.storage.Watermark(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("can't get %s watermark: %w", entity, err)
	}
	if watermark == nil {
		return params, nil
	}

	params.Set("updated_at_min", watermark.Add(-s.lookback).UTC().Format(time.RFC3339))

	return params, nil
}

func (s *Syncer) commitWatermark(ctx context.Context, entity models.EntityType, watermark *time.Time) error {
	if watermark == nil {
		return nil
	}

	if err := s.storage.SetWatermark(ctx, entity, *watermark); err != nil {
		return fmt.Errorf("can't set %s watermark: %w", entity, err)
	}

	return nil
}

func (s *Syncer) finishSync(ctx context.Context, run *models.Run, status error) error {
	if status != nil {
		run.StatusMessage = lo.ToPtr(status.Error())
	}
	run.IsSuccess = lo.ToPtr(status == nil)
	run.FinishedAt = s.clock.Now()

	err := s.storage.FinishRun(ctx, run)
	if err != nil && status == nil {
		return fmt.Errorf("can't finish sync: %w", err)
	}

	if err != nil && status != nil {
		return fmt.Errorf("can't finish failed sync: %w (fail reason: %w)", err, status)
	}

	return status
}

// maxUpdatedAt returns the latest update timestamp across items, nil when no
// item carries one.
func maxUpdatedAt[T any](items []T, updatedAt func(item *T) *time.Time) *time.Time {
	var latest *time.Time

	for ix := range items {
		ts := updatedAt(&items[ix])
		if ts == nil {
			continue
		}
		if latest == nil || ts.After(*latest) {
			latest = ts
		}
	}

	return latest
}

// WithClock sets Syncer's custom Clock.
func WithClock(c Clock) Option {
	return func(s *Syncer) {
		s.clock = c
	}
}

// WithLookback sets watermark lookback of incremental passes.
func WithLookback(lookback time.Duration) Option {
	return func(s *Syncer) {
		s.lookback = lookback
	}
}
