package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/energichain/server/internal/common"
	"github.com/energichain/server/internal/server/config"
	"github.com/energichain/server/internal/server/models"
	"github.com/energichain/server/internal/server/repositories/repomanager"
)

// TradeService records and lists ledger entries. Every operation is scoped to
// the owner identity resolved from a verified token; the service never trusts
// an owner supplied in request content.
type TradeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTradeService constructs a TradeService using repositories and server config.
func NewTradeService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *TradeService {
	return &TradeService{
		db:          db,
		repomanager: m,
	}
}

// Create validates and appends a trade owned by ownerID.
func (s *TradeService) Create(ctx context.Context, ownerID string, energyUnits, pricePerUnit float64, tradeType string) (*models.Trade, error) {
	if !models.ValidTradeType(tradeType) {
		return nil, fmt.Errorf("%w: trade type must be %q or %q", common.ErrorValidation, models.TradeTypeBuy, models.TradeTypeSell)
	}
	if energyUnits <= 0 {
		return nil, fmt.Errorf("%w: energy units must be positive", common.ErrorValidation)
	}
	if pricePerUnit <= 0 {
		return nil, fmt.Errorf("%w: price per unit must be positive", common.ErrorValidation)
	}

	trade := &models.Trade{
		OwnerID:      ownerID,
		EnergyUnits:  energyUnits,
		PricePerUnit: pricePerUnit,
		TradeType:    tradeType,
	}

	repo := s.repomanager.Trades(s.db)
	t, err := repo.Create(ctx, trade)
	if err != nil {
		return nil, fmt.Errorf("error creating trade: %w", err)
	}
	return t, nil
}

// ListByOwner returns every trade owned by ownerID in insertion order.
func (s *TradeService) ListByOwner(ctx context.Context, ownerID string) ([]*models.Trade, error) {
	repo := s.repomanager.Trades(s.db)
	list, err := repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing trades: %w", err)
	}
	return list, nil
}
