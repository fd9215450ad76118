package models

import "time"

// Trade types accepted by the ledger.
const (
	TradeTypeBuy  = "buy"
	TradeTypeSell = "sell"
)

// Trade is a single append-only ledger entry. OwnerID always references the
// authenticated user that recorded the trade; rows are never updated or
// deleted. The serial ID doubles as the insertion-order cursor.
type Trade struct {
	ID           int64     `json:"id"`
	OwnerID      string    `json:"ownerId"`
	EnergyUnits  float64   `json:"energyUnits"`
	PricePerUnit float64   `json:"pricePerUnit"`
	TradeType    string    `json:"tradeType"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ValidTradeType reports whether t is one of the enumerated trade types.
func ValidTradeType(t string) bool {
	return t == TradeTypeBuy || t == TradeTypeSell
}
