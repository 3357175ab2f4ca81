package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/axrail/quotation-processor/internal/core/domain"
)

// tableNamePattern restricts the configured table name to a plain SQL
// identifier since it is interpolated into DDL and DML text.
var tableNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

type QuotationRepository struct {
	db    *sql.DB
	table string
}

func NewQuotationRepository(db *sql.DB, table string) (*QuotationRepository, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid quotations table name: %q", table)
	}
	return &QuotationRepository{db: db, table: table}, nil
}

func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

func (r *QuotationRepository) EnsureSchema(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Serialize bootstrap DDL across concurrent api startups.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026083101)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	query := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
	quotation_id TEXT PRIMARY KEY,
	company_name TEXT NOT NULL,
	email TEXT,
	phone TEXT,
	address TEXT,
	buyer_name TEXT,
	buyer_address TEXT,
	quote_number TEXT,
	quote_date TEXT,
	items JSONB NOT NULL DEFAULT '[]'::jsonb,
	subtotal NUMERIC(14,2) NOT NULL DEFAULT 0,
	tax NUMERIC(14,2) NOT NULL DEFAULT 0,
	total NUMERIC(14,2) NOT NULL DEFAULT 0,
	original_file TEXT NOT NULL,
	processed_at TIMESTAMPTZ NOT NULL,
	status TEXT NOT NULL,
	raw_text TEXT NOT NULL DEFAULT '',
	extraction_metadata JSONB NOT NULL DEFAULT '{}'::jsonb
);

CREATE INDEX IF NOT EXISTS idx_%s_processed_at ON %s(processed_at DESC);
`, r.table, r.table, r.table)
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

// PutItem persists one normalized quotation. Records are insert only: a
// quotation id is minted per request and never rewritten.
func (r *QuotationRepository) PutItem(ctx context.Context, q domain.NormalizedQuotation) error {
	itemsJSON, err := json.Marshal(q.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	metaJSON, err := json.Marshal(q.ExtractionMetadata)
	if err != nil {
		return fmt.Errorf("marshal extraction metadata: %w", err)
	}

	query := fmt.Sprintf(`
INSERT INTO %s (
	quotation_id, company_name, email, phone, address, buyer_name, buyer_address,
	quote_number, quote_date, items, subtotal, tax, total,
	original_file, processed_at, status, raw_text, extraction_metadata
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
`, r.table)

	_, err = r.db.ExecContext(ctx, query,
		q.QuotationID, q.CompanyName, q.Email, q.Phone, q.Address, q.BuyerName, q.BuyerAddress,
		q.QuoteNumber, q.Date, itemsJSON, q.Subtotal.String(), q.Tax.String(), q.Total.String(),
		q.OriginalFile, q.ProcessedAt, q.Status, q.RawText, metaJSON,
	)
	if err != nil {
		return fmt.Errorf("insert quotation: %w", err)
	}
	return nil
}
