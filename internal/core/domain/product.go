package domain

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// codePattern matches an 8-digit product code. Codes are always handled as
// strings so leading zeros survive.
var codePattern = regexp.MustCompile(`^[0-9]{8}$`)

// IsValidCode reports whether code is exactly 8 ASCII digits.
func IsValidCode(code string) bool {
	return codePattern.MatchString(code)
}

// Product represents one catalog row belonging to a single tenant. The
// (Code, OwnerID) pair is unique per tenant; the same code may recur across
// different tenants.
type Product struct {
	ProductID int64           `json:"id"`
	OwnerID   string          `json:"-"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Code      string          `json:"code"`
	AuditFields
}
