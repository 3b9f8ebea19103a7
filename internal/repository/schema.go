package repository

import (
	"context"

	"go.uber.org/zap"
)

// Matches migrations/0001_create_prices.sql. Kept here so a fresh deployment
// can bootstrap itself on startup without a migration step.
const createPricesTable = `
CREATE TABLE IF NOT EXISTS prices (
	id BIGSERIAL PRIMARY KEY,
	ticker VARCHAR(20) NOT NULL,
	price DOUBLE PRECISION NOT NULL,
	timestamp BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS ix_prices_ticker_timestamp
	ON prices (ticker, timestamp DESC);
`

// InitSchema creates the prices table and its query index if they do not
// exist yet.
func (r *PriceRepository) InitSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createPricesTable); err != nil {
		r.logger.Error("Failed to initialize schema", zap.Error(err))
		return err
	}
	return nil
}
