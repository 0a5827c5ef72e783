package domain

// OrderBook holds insertion-ordered bid/offer sequences for a product.
// Best-bid is the max-price BID, best-offer is the min-price OFFER; ties
// break to the first-encountered order at that price.
type OrderBook struct {
	Product Product
	Bids    []Order
	Offers  []Order
}

// AddOrder appends an order to the appropriate side.
func (b *OrderBook) AddOrder(o Order) {
	switch o.Side {
	case Bid:
		b.Bids = append(b.Bids, o)
	case Offer:
		b.Offers = append(b.Offers, o)
	}
}

// Aggregated returns a copy of the book with same-price orders on each
// side collapsed into a single order whose quantity is the sum. Order of
// first appearance is preserved. Aggregating an already-aggregated book
// is a no-op (idempotent).
func (b OrderBook) Aggregated() OrderBook {
	return OrderBook{
		Product: b.Product,
		Bids:    aggregateSide(b.Bids),
		Offers:  aggregateSide(b.Offers),
	}
}

func aggregateSide(orders []Order) []Order {
	out := make([]Order, 0, len(orders))
	index := make(map[string]int, len(orders))
	for _, o := range orders {
		key := o.Price.String()
		if i, ok := index[key]; ok {
			out[i].Quantity += o.Quantity
			continue
		}
		index[key] = len(out)
		out = append(out, o)
	}
	return out
}

// BestBidOffer returns the max-price bid and min-price offer, ties broken
// by first-encountered.
func (b OrderBook) BestBidOffer() (BidOffer, bool) {
	bestBid, hasBid := firstExtreme(b.Bids, func(a, cur Order) bool { return a.Price.GreaterThan(cur.Price) })
	bestOffer, hasOffer := firstExtreme(b.Offers, func(a, cur Order) bool { return a.Price.LessThan(cur.Price) })
	if !hasBid || !hasOffer {
		return BidOffer{}, false
	}
	return BidOffer{Bid: bestBid, Offer: bestOffer}, true
}

func firstExtreme(orders []Order, better func(candidate, current Order) bool) (Order, bool) {
	if len(orders) == 0 {
		return Order{}, false
	}
	best := orders[0]
	for _, o := range orders[1:] {
		if better(o, best) {
			best = o
		}
	}
	return best, true
}
