// Package tradebooking implements the trade-booking service. It has two
// ingress paths: trades read directly off the trades feed, and trades
// fabricated from executions handed down by the execution service
// (round-robin booked across TRSY1/TRSY2/TRSY3).
package tradebooking

import (
	"treasury-pipeline/internal/domain"
	"treasury-pipeline/internal/pipeline"
)

// Service owns one Trade per trade id.
type Service struct {
	pipeline.Fanout[domain.Trade]
	store       map[string]domain.Trade
	bookCounter int
}

// New creates an empty trade-booking service.
func New() *Service {
	return &Service{store: make(map[string]domain.Trade)}
}

// Get returns the stored trade for a trade id.
func (s *Service) Get(tradeID string) (domain.Trade, bool) {
	t, ok := s.store[tradeID]
	return t, ok
}

// OnMessage ingests a Trade parsed directly from the trades feed, stores
// it keyed by trade id, and fans it out.
func (s *Service) OnMessage(t domain.Trade) domain.Trade {
	s.store[t.TradeID] = t
	s.Publish(t)
	return t
}

// ProcessAdd implements pipeline.Listener[domain.ExecutionOrder]; it
// converts an incoming execution into a Trade and injects it via
// OnMessage.
func (s *Service) ProcessAdd(o domain.ExecutionOrder) { s.bookExecution(o) }
func (s *Service) ProcessRemove(domain.ExecutionOrder) {}
func (s *Service) ProcessUpdate(domain.ExecutionOrder) {}

func (s *Service) bookExecution(o domain.ExecutionOrder) domain.Trade {
	var side domain.TradeSide
	switch o.Side {
	case domain.Bid:
		side = domain.Buy
	case domain.Offer:
		side = domain.Sell
	}

	trade := domain.Trade{
		Product:  o.Product,
		TradeID:  o.OrderID,
		Price:    o.Price,
		Book:     s.nextBook(),
		Quantity: o.VisibleQty + o.HiddenQty,
		Side:     side,
	}
	return s.OnMessage(trade)
}

// nextBook cycles TRSY2, TRSY3, TRSY1 with a pre-incrementing counter that
// starts at 0, so the Nth call (N=1,2,3,...) yields TRSY2, TRSY3, TRSY1,
// TRSY2, TRSY3, TRSY1, ...
func (s *Service) nextBook() string {
	s.bookCounter++
	switch s.bookCounter % 3 {
	case 1:
		return "TRSY2"
	case 2:
		return "TRSY3"
	default:
		return "TRSY1"
	}
}
