package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/yourorg/crypto-price-service/internal/model"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// PriceRepository handles database operations for the prices time series
type PriceRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewPriceRepository creates a new price repository
func NewPriceRepository(db *sqlx.DB, logger *zap.Logger) *PriceRepository {
	return &PriceRepository{
		db:     db,
		logger: logger,
	}
}

// Save persists a single price. A price with an ID upserts by ID: the
// existing row's price and timestamp are overwritten in place. A price
// without an ID inserts a new row and gets a fresh ID. The upsert is a
// single statement so concurrent writers to the same row are serialized by
// the database, not by any in-process lock.
func (r *PriceRepository) Save(ctx context.Context, price model.Price) (model.Price, error) {
	if price.ID != 0 {
		query := `
			INSERT INTO prices (id, ticker, price, timestamp)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id)
			DO UPDATE SET price = EXCLUDED.price, timestamp = EXCLUDED.timestamp
			RETURNING id
		`
		err := r.db.GetContext(ctx, &price.ID, query, price.ID, price.Ticker, price.Price, price.Timestamp)
		if err != nil {
			r.logger.Error("Failed to upsert price",
				zap.Error(err),
				zap.Int64("id", price.ID),
				zap.String("ticker", price.Ticker))
			return model.Price{}, err
		}
		return price, nil
	}

	query := `
		INSERT INTO prices (ticker, price, timestamp)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.GetContext(ctx, &price.ID, query, price.Ticker, price.Price, price.Timestamp)
	if err != nil {
		r.logger.Error("Failed to insert price",
			zap.Error(err),
			zap.String("ticker", price.Ticker))
		return model.Price{}, err
	}
	return price, nil
}

// BatchSave inserts all given prices in one transaction and returns them
// annotated with their assigned IDs. Either every row is committed or none
// is; a half-written batch is never visible to concurrent readers.
func (r *PriceRepository) BatchSave(ctx context.Context, prices []model.Price) ([]model.Price, error) {
	if len(prices) == 0 {
		return []model.Price{}, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO prices (ticker, price, timestamp)
		VALUES ($1, $2, $3)
		RETURNING id
	`)
	if err != nil {
		r.logger.Error("Failed to prepare statement", zap.Error(err))
		return nil, err
	}
	defer stmt.Close()

	saved := make([]model.Price, 0, len(prices))
	for _, price := range prices {
		if err := stmt.GetContext(ctx, &price.ID, price.Ticker, price.Price, price.Timestamp); err != nil {
			r.logger.Error("Failed to insert price in batch",
				zap.Error(err),
				zap.String("ticker", price.Ticker),
				zap.Int64("timestamp", price.Timestamp))
			return nil, err
		}
		saved = append(saved, price)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit transaction", zap.Error(err))
		return nil, err
	}

	return saved, nil
}

// GetAll retrieves all prices for a ticker, most recent first.
func (r *PriceRepository) GetAll(ctx context.Context, ticker string) ([]model.Price, error) {
	query := `
		SELECT id, ticker, price, timestamp
		FROM prices
		WHERE ticker = $1
		ORDER BY timestamp DESC
	`

	var prices []model.Price
	err := r.db.SelectContext(ctx, &prices, query, ticker)
	if err != nil {
		r.logger.Error("Failed to get prices",
			zap.Error(err),
			zap.String("ticker", ticker))
		return nil, err
	}

	return prices, nil
}

// GetLast retrieves the most recent price for a ticker. A ticker with no
// rows yields (nil, nil): an empty result, not an error.
func (r *PriceRepository) GetLast(ctx context.Context, ticker string) (*model.Price, error) {
	query := `
		SELECT id, ticker, price, timestamp
		FROM prices
		WHERE ticker = $1
		ORDER BY timestamp DESC
		LIMIT 1
	`

	var price model.Price
	err := r.db.GetContext(ctx, &price, query, ticker)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get last price",
			zap.Error(err),
			zap.String("ticker", ticker))
		return nil, err
	}

	return &price, nil
}

// GetByDateRange retrieves prices for a ticker with timestamps inside
// [start, end], both bounds inclusive, most recent first. The store does not
// check start <= end; that is the query service's contract.
func (r *PriceRepository) GetByDateRange(ctx context.Context, ticker string, start, end time.Time) ([]model.Price, error) {
	query := `
		SELECT id, ticker, price, timestamp
		FROM prices
		WHERE ticker = $1 AND timestamp >= $2 AND timestamp <= $3
		ORDER BY timestamp DESC
	`

	var prices []model.Price
	err := r.db.SelectContext(ctx, &prices, query, ticker, start.Unix(), end.Unix())
	if err != nil {
		r.logger.Error("Failed to get prices by date range",
			zap.Error(err),
			zap.String("ticker", ticker),
			zap.Time("start", start),
			zap.Time("end", end))
		return nil, err
	}

	return prices, nil
}
