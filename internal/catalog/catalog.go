// Package catalog holds the static CUSIP -> Product and CUSIP -> PV01
// tables. Both are immutable after package initialization, mirroring the
// teacher's schema.Registry: a fixed, id-indexed lookup built once at
// startup and never mutated afterward.
package catalog

import (
	"time"

	"treasury-pipeline/internal/domain"
)

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

var products = map[string]domain.Product{
	"9128283H1": {Identifier: "9128283H1", IdentifierKind: domain.IdentifierCUSIP, Ticker: "T 2Y", Coupon: 0.0425, Maturity: mustDate("2027-08-15")},
	"9128283L2": {Identifier: "9128283L2", IdentifierKind: domain.IdentifierCUSIP, Ticker: "T 3Y", Coupon: 0.0400, Maturity: mustDate("2028-08-15")},
	"912828M80": {Identifier: "912828M80", IdentifierKind: domain.IdentifierCUSIP, Ticker: "T 5Y", Coupon: 0.0375, Maturity: mustDate("2030-08-15")},
	"9128283J7": {Identifier: "9128283J7", IdentifierKind: domain.IdentifierCUSIP, Ticker: "T 7Y", Coupon: 0.0350, Maturity: mustDate("2032-08-15")},
	"9128283F5": {Identifier: "9128283F5", IdentifierKind: domain.IdentifierCUSIP, Ticker: "T 10Y", Coupon: 0.0325, Maturity: mustDate("2035-08-15")},
	"912810RZ3": {Identifier: "912810RZ3", IdentifierKind: domain.IdentifierCUSIP, Ticker: "T 20Y", Coupon: 0.0400, Maturity: mustDate("2045-08-15")},
	// 30Y carries no PV01 entry in the spec's static table; it resolves to 0.
	"912810TW7": {Identifier: "912810TW7", IdentifierKind: domain.IdentifierCUSIP, Ticker: "T 30Y", Coupon: 0.0425, Maturity: mustDate("2055-08-15")},
}

var pv01Factors = map[string]float64{
	"9128283H1": 0.01948992,
	"9128283L2": 0.02865304,
	"912828M80": 0.04581119,
	"9128283J7": 0.06127718,
	"9128283F5": 0.08161449,
	"912810RZ3": 0.15013155,
}

// Lookup returns the static Product for an identifier.
func Lookup(identifier string) (domain.Product, bool) {
	p, ok := products[identifier]
	return p, ok
}

// PV01Factor returns the static PV01 factor for an identifier, or 0 if the
// product is unknown or carries no factor (spec §4.10, §7).
func PV01Factor(identifier string) float64 {
	return pv01Factors[identifier]
}

// All returns every catalog product, for fixture/test use.
func All() []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		out = append(out, p)
	}
	return out
}
