package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ledger is the persistence model for the ledgers table, one row per tenant.
type Ledger struct {
	OwnerID       string          `db:"owner_id"`
	TotalMoney    decimal.Decimal `db:"total_money"`
	LastUpdatedAt time.Time       `db:"last_updated_at"`
}
