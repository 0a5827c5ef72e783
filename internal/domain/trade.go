package domain

import "github.com/yanun0323/decimal"

// Trade is a single executed trade booked against a book.
type Trade struct {
	Product  Product
	TradeID  string
	Price    decimal.Decimal
	Book     string
	Quantity int64
	Side     TradeSide
}

// Position aggregates a product's signed quantity per book. Aggregate is
// the sum of every book's signed quantity.
type Position struct {
	Product Product
	PerBook map[string]int64
}

// NewPosition creates an empty position for a product.
func NewPosition(p Product) Position {
	return Position{Product: p, PerBook: make(map[string]int64)}
}

// Aggregate sums the signed per-book quantities.
func (p Position) Aggregate() int64 {
	var total int64
	for _, qty := range p.PerBook {
		total += qty
	}
	return total
}

// PV01 is the present-value-per-basis-point risk for a product or sector.
type PV01 struct {
	ProductID string
	Factor    float64
	Quantity  int64
}

// InquiryState is the inquiry workflow's state.
type InquiryState int

const (
	InquiryStateUnknown InquiryState = iota
	Received
	Quoted
	Done
	Rejected
	CustomerRejected
)

// Inquiry is a stateful customer inquiry.
type Inquiry struct {
	InquiryID string
	Product   Product
	Side      TradeSide
	Quantity  int64
	Price     decimal.Decimal
	State     InquiryState
}
