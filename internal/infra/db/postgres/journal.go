package postgres

import (
	"context"
	"fmt"
)

// ExportRecord is one issued quote document.
type ExportRecord struct {
	QuoteNumber string
	ClientName  string
	Currency    string
	NetBase     float64
	TotalBase   float64
	FileName    string
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS quote_exports (
	id          bigserial PRIMARY KEY,
	quote_number text NOT NULL,
	client_name  text NOT NULL DEFAULT '',
	currency     text NOT NULL,
	net_base     numeric(18,2) NOT NULL,
	total_base   numeric(18,2) NOT NULL,
	file_name    text NOT NULL,
	exported_at  timestamptz NOT NULL DEFAULT now()
)`

// EnsureSchema creates the export journal table if needed.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (db *DB) RecordExport(ctx context.Context, rec ExportRecord) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO quote_exports (quote_number, client_name, currency, net_base, total_base, file_name)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, rec.QuoteNumber, rec.ClientName, rec.Currency, rec.NetBase, rec.TotalBase, rec.FileName)
	if err != nil {
		return fmt.Errorf("record export %s: %w", rec.QuoteNumber, err)
	}
	return nil
}
