// Package risk implements the risk service: per-product PV01 accumulation
// from positions, and synchronous bucketed (sector) PV01 queries. A small
// struct wraps the PV01 factor lookup and the running per-product store.
package risk

import (
	"treasury-pipeline/internal/catalog"
	"treasury-pipeline/internal/domain"
	"treasury-pipeline/internal/pipeline"
)

// Service owns one running PV01 per product, keyed by product identifier.
type Service struct {
	pipeline.Fanout[domain.PV01]
	store map[string]domain.PV01
}

// New creates an empty risk service.
func New() *Service {
	return &Service{store: make(map[string]domain.PV01)}
}

// Get returns the running PV01 record for a product, if one exists.
func (s *Service) Get(productID string) (domain.PV01, bool) {
	pv, ok := s.store[productID]
	return pv, ok
}

// ProcessAdd implements pipeline.Listener[domain.Position].
func (s *Service) ProcessAdd(p domain.Position)  { s.OnMessage(p) }
func (s *Service) ProcessRemove(domain.Position) {}
func (s *Service) ProcessUpdate(domain.Position) {}

// OnMessage looks up the product's static PV01 factor, builds a new PV01
// record from the incoming position's aggregate quantity, accumulates it
// into the running store, and publishes the freshly-constructed
// (incremental) PV01, not the running total.
func (s *Service) OnMessage(p domain.Position) domain.PV01 {
	factor := catalog.PV01Factor(p.Product.Identifier)
	qty := p.Aggregate()

	incremental := domain.PV01{
		ProductID: p.Product.Identifier,
		Factor:    factor,
		Quantity:  qty,
	}

	if running, ok := s.store[p.Product.Identifier]; ok {
		running.Quantity += qty
		s.store[p.Product.Identifier] = running
	} else {
		s.store[p.Product.Identifier] = incremental
	}

	s.Publish(incremental)
	return incremental
}

// Sector is a named collection of products over which risk is
// bucketed.
type Sector struct {
	Name     string
	Products []string
}

// BucketedPV01 computes a sector's PV01 factor (Σ factor_i * qty_i) and
// quantity (Σ qty_i) from the risk service's running store. This is a
// synchronous query, not published through the listener edges.
func (s *Service) BucketedPV01(sector Sector) domain.PV01 {
	var factor float64
	var qty int64
	for _, productID := range sector.Products {
		pv, ok := s.store[productID]
		if !ok {
			continue
		}
		factor += pv.Factor * float64(pv.Quantity)
		qty += pv.Quantity
	}
	return domain.PV01{ProductID: sector.Name, Factor: factor, Quantity: qty}
}
