// Package domain holds the entities shared across every pipeline service:
// the product catalog, the pricing/order-book types, the algo/execution
// types, trades, positions, PV01, and inquiries.
package domain

import "time"

// IdentifierKind describes the namespace an instrument identifier lives in.
type IdentifierKind int

const (
	IdentifierUnknown IdentifierKind = iota
	IdentifierCUSIP
)

// Product is an immutable bond descriptor. Equality is by Identifier.
type Product struct {
	Identifier     string
	IdentifierKind IdentifierKind
	Ticker         string
	Coupon         float64
	Maturity       time.Time
}

// Equal compares products by identifier, per the spec's equality rule.
func (p Product) Equal(other Product) bool {
	return p.Identifier == other.Identifier
}
