package domain

import (
	"time"

	"github.com/yanun0323/decimal"
)

// Price is a mid/spread quote for a product. Invariant: Spread >= 0,
// Mid > 0.
type Price struct {
	Product Product
	Mid     decimal.Decimal
	Spread  decimal.Decimal
}

// Quote is a raw bid/ask tick from the prices feed, ahead of mid/spread
// derivation.
type Quote struct {
	Timestamp time.Time
	Product   Product
	Bid       decimal.Decimal
	Ask       decimal.Decimal
}

// Side is the direction of an order, stream leg, or trade.
type Side int

const (
	SideUnknown Side = iota
	Bid
	Offer
)

// TradeSide is the direction of a booked trade.
type TradeSide int

const (
	TradeSideUnknown TradeSide = iota
	Buy
	Sell
)

// Order is a single resting order in an order book.
type Order struct {
	Price    decimal.Decimal
	Quantity int64
	Side     Side
}

// BidOffer is a best-bid/best-offer pair.
type BidOffer struct {
	Bid   Order
	Offer Order
}
