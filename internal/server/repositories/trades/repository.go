package trades

import (
	"context"

	"github.com/energichain/server/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, trade *models.Trade) (*models.Trade, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Trade, error)
}
