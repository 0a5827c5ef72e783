package domain

import "time"

// DepthSnapshot is a single depth-5 market-data tick: five bid levels and
// five offer levels for one product.
type DepthSnapshot struct {
	Timestamp time.Time
	Product   Product
	Bids      [5]Order
	Offers    [5]Order
}
