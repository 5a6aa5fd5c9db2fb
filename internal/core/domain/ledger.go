package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ledger holds the accumulated sales revenue of one tenant. A zero-balance
// row is created alongside the tenant account at registration and only the
// sell operation moves it afterwards.
type Ledger struct {
	OwnerID       string          `json:"ownerID"`
	TotalMoney    decimal.Decimal `json:"totalMoney"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}
