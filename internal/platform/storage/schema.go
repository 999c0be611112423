package storage

import (
	"context"
	"fmt"
)

// createStatements is the normalized store schema. All statements are
// idempotent, so they run on every startup.
var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY,
		title TEXT,
		vendor TEXT,
		product_type TEXT,
		created_at TIMESTAMP,
		updated_at TIMESTAMP,
		raw_json TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS product_variants (
		id INTEGER PRIMARY KEY,
		product_id INTEGER NOT NULL,
		title TEXT,
		sku TEXT,
		price REAL,
		compare_at_price REAL,
		position INTEGER,
		option1 TEXT,
		option2 TEXT,
		option3 TEXT,
		created_at TIMESTAMP,
		updated_at TIMESTAMP,
		raw_json TEXT,
		FOREIGN KEY (product_id) REFERENCES products(id)
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id INTEGER PRIMARY KEY,
		first_name TEXT,
		last_name TEXT,
		email TEXT,
		phone TEXT,
		created_at TIMESTAMP,
		updated_at TIMESTAMP,
		raw_json TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id INTEGER PRIMARY KEY,
		order_number INTEGER,
		customer_id INTEGER,
		email TEXT,
		total_price REAL,
		currency TEXT,
		created_at TIMESTAMP,
		updated_at TIMESTAMP,
		financial_status TEXT,
		fulfillment_status TEXT,
		raw_json TEXT,
		FOREIGN KEY (customer_id) REFERENCES customers(id)
	)`,
	`CREATE TABLE IF NOT EXISTS line_items (
		id INTEGER PRIMARY KEY,
		order_id INTEGER NOT NULL,
		product_id INTEGER,
		variant_id INTEGER,
		title TEXT,
		quantity INTEGER,
		price REAL,
		sku TEXT,
		raw_json TEXT,
		FOREIGN KEY (order_id) REFERENCES orders(id),
		FOREIGN KEY (product_id) REFERENCES products(id),
		FOREIGN KEY (variant_id) REFERENCES product_variants(id)
	)`,
	`CREATE TABLE IF NOT EXISTS sync_watermarks (
		entity_type TEXT PRIMARY KEY,
		last_synced_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sync_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at TIMESTAMP NOT NULL,
		finished_at TIMESTAMP,
		success BOOLEAN,
		status_message TEXT,
		full_sync BOOLEAN NOT NULL DEFAULT 0,
		products INTEGER,
		customers INTEGER,
		orders INTEGER,
		failed_records INTEGER
	)`,
}

type columnSpec struct {
	table      string
	column     string
	definition string
}

// columnMigrations lists columns added after the initial schema. Stores
// created under an older column set get them via ALTER TABLE; SQLite can't
// add constrained columns to existing tables, so definitions stay plain.
var columnMigrations = []columnSpec{
	{"products", "vendor", "TEXT"},
	{"products", "product_type", "TEXT"},
	{"products", "raw_json", "TEXT"},
	{"product_variants", "compare_at_price", "REAL"},
	{"product_variants", "position", "INTEGER"},
	{"product_variants", "option1", "TEXT"},
	{"product_variants", "option2", "TEXT"},
	{"product_variants", "option3", "TEXT"},
	{"product_variants", "raw_json", "TEXT"},
	{"customers", "phone", "TEXT"},
	{"customers", "raw_json", "TEXT"},
	{"orders", "financial_status", "TEXT"},
	{"orders", "fulfillment_status", "TEXT"},
	{"orders", "currency", "TEXT"},
	{"orders", "raw_json", "TEXT"},
	{"line_items", "variant_id", "INTEGER"},
	{"line_items", "sku", "TEXT"},
	{"line_items", "raw_json", "TEXT"},
	{"sync_runs", "failed_records", "INTEGER"},
}

// EnsureSchema creates missing tables and additively migrates existing ones.
// Table creation failures are fatal; a failed column addition is only logged,
// because the column may already exist under a compatible definition.
func (s SQLite) EnsureSchema(ctx context.Context) error {
	for _, ddl := range createStatements {
		if _, err := s.db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("can't create table: %w", err)
		}
	}

	for _, spec := range columnMigrations {
		s.addColumnIfMissing(ctx, spec)
	}

	return nil
}

func (s SQLite) addColumnIfMissing(ctx context.Context, spec columnSpec) {
	exists, err := s.columnExists(ctx, spec.table, spec.column)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("table", spec.table).
			Str("column", spec.column).
			Msg("can't check column")
		return
	}
	if exists {
		return
	}

	query := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", spec.table, spec.column, spec.definition)
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		s.logger.Warn().
			Err(err).
			Str("table", spec.table).
			Str("column", spec.column).
			Msg("can't add column")
		return
	}

	s.logger.Info().
		Str("table", spec.table).
		Str("column", spec.column).
		Msg("added missing column")
}

func (s SQLite) columnExists(ctx context.Context, tableName, columnName string) (bool, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", tableName))
	if err != nil {
		return false, fmt.Errorf("can't read table info: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name       string
			columnType string
			notNull    int
			dflt       any
			primaryKey int
		)
		if err := rows.Scan(&cid, &name, &columnType, &notNull, &dflt, &primaryKey); err != nil {
			return false, fmt.Errorf("can't scan table info: %w", err)
		}
		if name == columnName {
			return true, nil
		}
	}

	return false, rows.Err()
}
