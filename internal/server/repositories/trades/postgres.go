// Package trades provides the PostgreSQL-backed trade ledger. The ledger is
// append-only: rows are inserted once and never updated or deleted here.
package trades

import (
	"context"
	"fmt"

	"github.com/energichain/server/internal/dbx"
	"github.com/energichain/server/internal/server/models"
)

// PostgresRepository implements ledger storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create appends a trade and fills in the storage-assigned ID and timestamp.
func (r *PostgresRepository) Create(ctx context.Context, trade *models.Trade) (*models.Trade, error) {

	query :=
		`INSERT INTO trades (owner_id, energy_units, price_per_unit, trade_type)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		trade.OwnerID, trade.EnergyUnits, trade.PricePerUnit, trade.TradeType).
		Scan(&trade.ID, &trade.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return trade, nil
}

// ListByOwner returns every trade recorded by ownerID in insertion order
// (serial ID ascending).
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Trade, error) {
	query :=
		`SELECT id, owner_id, energy_units, price_per_unit, trade_type, created_at FROM trades
		 WHERE owner_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Trade
	for rows.Next() {
		var item models.Trade
		if err := rows.Scan(
			&item.ID, &item.OwnerID, &item.EnergyUnits, &item.PricePerUnit,
			&item.TradeType, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
