package models

import "github.com/shopspring/decimal"

// Product is the persistence model for the products table.
// Code is VARCHAR(8); it must never be handled as a number or leading zeros
// would be lost.
type Product struct {
	ProductID int64           `db:"product_id"`
	OwnerID   string          `db:"owner_id"`
	Name      string          `db:"name"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
	Code      string          `db:"code"`
	AuditFields
}
