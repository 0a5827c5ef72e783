// Package marketdata implements the market-data service: it ingests
// depth-5 snapshots, appends the five bid and five offer orders into the
// product's book, aggregates same-price orders, and replaces the stored
// book before fanning out.
package marketdata

import (
	"treasury-pipeline/internal/domain"
	"treasury-pipeline/internal/pipeline"
)

// Service owns one OrderBook per product, keyed by product identifier.
type Service struct {
	pipeline.Fanout[domain.OrderBook]
	store map[string]domain.OrderBook
}

// New creates an empty market-data service.
func New() *Service {
	return &Service{store: make(map[string]domain.OrderBook)}
}

// Get returns the current, lazily-created book for a product.
func (s *Service) Get(product domain.Product) domain.OrderBook {
	book, ok := s.store[product.Identifier]
	if !ok {
		book = domain.OrderBook{Product: product}
	}
	return book
}

// OnMessage appends a snapshot's ten orders into the product's book,
// aggregates same-price levels, stores the aggregated book, and publishes
// it.
func (s *Service) OnMessage(snap domain.DepthSnapshot) domain.OrderBook {
	book := s.Get(snap.Product)
	for _, o := range snap.Bids {
		book.AddOrder(o)
	}
	for _, o := range snap.Offers {
		book.AddOrder(o)
	}

	aggregated := book.Aggregated()
	s.store[snap.Product.Identifier] = aggregated
	s.Publish(aggregated)
	return aggregated
}
