package domain

import "github.com/yanun0323/decimal"

// PriceStreamOrder is one side of an executable two-sided stream.
// Invariants: Visible >= 0, Hidden >= 0.
type PriceStreamOrder struct {
	Price   decimal.Decimal
	Visible int64
	Hidden  int64
	Side    Side
}

// PriceStream is a two-sided executable stream for a product.
type PriceStream struct {
	Product Product
	Bid     PriceStreamOrder
	Offer   PriceStreamOrder
}

// Market identifies the venue an algo execution targets.
type Market int

const (
	MarketUnknown Market = iota
	Brokertec
	Espeed
	CME
)

// OrderType is the execution style of an ExecutionOrder.
type OrderType int

const (
	OrderTypeUnknown OrderType = iota
	FOK
	IOC
	MarketOrder
	Limit
	Stop
)

// ExecutionOrder is a (possibly child) order synthesized by the algo
// execution service and carried forward by the execution service.
type ExecutionOrder struct {
	Product        Product
	Side           Side
	OrderID        string
	OrderType      OrderType
	Price          decimal.Decimal
	VisibleQty     int64
	HiddenQty      int64
	ParentOrderID  string
	IsChildOrder   bool
}

// AlgoExecution wraps an ExecutionOrder with the market it targets.
type AlgoExecution struct {
	Order  ExecutionOrder
	Market Market
}

// AlgoStream wraps the PriceStream derived from a Price.
type AlgoStream struct {
	Stream PriceStream
}
