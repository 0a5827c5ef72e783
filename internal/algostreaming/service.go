// Package algostreaming implements the algo-streaming service: on every
// Price arrival it derives a two-sided executable stream and fans it out
// as an AlgoStream.
package algostreaming

import (
	"github.com/yanun0323/decimal"

	"treasury-pipeline/internal/domain"
	"treasury-pipeline/internal/pipeline"
)

const (
	visibleEven int64 = 1_000_000
	visibleOdd  int64 = 2_000_000
)

// Service owns one AlgoStream per product, keyed by product identifier.
type Service struct {
	pipeline.Fanout[domain.AlgoStream]
	store   map[string]domain.AlgoStream
	counter int
}

// New creates an empty algo-streaming service.
func New() *Service {
	return &Service{store: make(map[string]domain.AlgoStream)}
}

// Get returns the current stream for a product, if one exists.
func (s *Service) Get(productID string) (domain.AlgoStream, bool) {
	a, ok := s.store[productID]
	return a, ok
}

// ProcessAdd implements pipeline.Listener[domain.Price], letting the
// service subscribe directly to the pricing service.
func (s *Service) ProcessAdd(p domain.Price)    { s.OnMessage(p) }
func (s *Service) ProcessRemove(domain.Price)   {}
func (s *Service) ProcessUpdate(domain.Price)   {}

// OnMessage derives a PriceStream from an incoming Price, stores the
// AlgoStream keyed by product id (replacing any prior), and publishes it.
func (s *Service) OnMessage(p domain.Price) domain.AlgoStream {
	half := p.Spread.Div(decimal.NewFromInt(2))

	visible := visibleEven
	if s.counter%2 != 0 {
		visible = visibleOdd
	}
	hidden := visible * 2
	s.counter++

	stream := domain.PriceStream{
		Product: p.Product,
		Bid: domain.PriceStreamOrder{
			Price:   p.Mid.Sub(half),
			Visible: visible,
			Hidden:  hidden,
			Side:    domain.Bid,
		},
		Offer: domain.PriceStreamOrder{
			Price:   p.Mid.Add(half),
			Visible: visible,
			Hidden:  hidden,
			Side:    domain.Offer,
		},
	}

	algo := domain.AlgoStream{Stream: stream}
	s.store[p.Product.Identifier] = algo
	s.Publish(algo)
	return algo
}
