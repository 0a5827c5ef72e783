// Package pricing implements the pricing service: it ingests bid/ask
// quotes and derives mid/spread prices, fanning the result out to
// downstream listeners (algo-streaming, GUI).
package pricing

import (
	"github.com/yanun0323/decimal"

	"treasury-pipeline/internal/domain"
	"treasury-pipeline/internal/pipeline"
)

// Service owns one Price per product, keyed by product identifier.
type Service struct {
	pipeline.Fanout[domain.Price]
	store map[string]domain.Price
}

// New creates an empty pricing service.
func New() *Service {
	return &Service{store: make(map[string]domain.Price)}
}

// Get returns the current price for a product, if one has been derived.
func (s *Service) Get(productID string) (domain.Price, bool) {
	p, ok := s.store[productID]
	return p, ok
}

// OnMessage derives mid/spread from an incoming quote, replaces the prior
// Price for the product, and fans out to listeners.
func (s *Service) OnMessage(q domain.Quote) domain.Price {
	two := decimal.NewFromInt(2)
	mid := q.Bid.Add(q.Ask).Div(two)
	spread := q.Ask.Sub(q.Bid)

	price := domain.Price{
		Product: q.Product,
		Mid:     mid,
		Spread:  spread,
	}
	s.store[q.Product.Identifier] = price
	s.Publish(price)
	return price
}
