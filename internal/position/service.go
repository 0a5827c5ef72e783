// Package position implements the position service: it aggregates
// per-(product, book) positions from trades by applying each trade's
// signed quantity to a book-keyed map.
package position

import (
	"treasury-pipeline/internal/domain"
	"treasury-pipeline/internal/pipeline"
)

// Service owns one Position per product, keyed by product identifier.
type Service struct {
	pipeline.Fanout[domain.Position]
	store map[string]domain.Position
}

// New creates an empty position service.
func New() *Service {
	return &Service{store: make(map[string]domain.Position)}
}

// Get returns the current position for a product, lazily creating an
// empty one if absent.
func (s *Service) Get(product domain.Product) domain.Position {
	pos, ok := s.store[product.Identifier]
	if !ok {
		pos = domain.NewPosition(product)
		s.store[product.Identifier] = pos
	}
	return pos
}

// ProcessAdd implements pipeline.Listener[domain.Trade].
func (s *Service) ProcessAdd(t domain.Trade)  { s.OnMessage(t) }
func (s *Service) ProcessRemove(domain.Trade) {}
func (s *Service) ProcessUpdate(domain.Trade) {}

// OnMessage applies a trade's signed delta into the product's per-book
// position and publishes the updated aggregate.
func (s *Service) OnMessage(t domain.Trade) domain.Position {
	pos := s.Get(t.Product)

	delta := t.Quantity
	if t.Side == domain.Sell {
		delta = -delta
	}
	pos.PerBook[t.Book] += delta

	s.store[t.Product.Identifier] = pos
	s.Publish(pos)
	return pos
}
