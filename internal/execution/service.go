// Package execution implements the execution service: a forwarder that
// extracts the ExecutionOrder from an AlgoExecution, stores it by order
// id, fans it out to listeners (trade-booking), and separately audits the
// (order, market) pair through its publish-only connector.
package execution

import (
	"fmt"
	"io"
	"os"

	"treasury-pipeline/internal/domain"
	"treasury-pipeline/internal/pipeline"
)

// Service owns one ExecutionOrder per order id.
type Service struct {
	pipeline.Fanout[domain.ExecutionOrder]
	store map[string]domain.ExecutionOrder
	Audit io.Writer
}

// New creates an empty execution service. Audit defaults to os.Stdout.
func New() *Service {
	return &Service{store: make(map[string]domain.ExecutionOrder), Audit: os.Stdout}
}

// Get returns the stored order for an order id.
func (s *Service) Get(orderID string) (domain.ExecutionOrder, bool) {
	o, ok := s.store[orderID]
	return o, ok
}

// ProcessAdd implements pipeline.Listener[domain.AlgoExecution].
func (s *Service) ProcessAdd(a domain.AlgoExecution)  { s.OnMessage(a) }
func (s *Service) ProcessRemove(domain.AlgoExecution) {}
func (s *Service) ProcessUpdate(domain.AlgoExecution) {}

// OnMessage stores the incoming execution order, fans it out, and audits
// the (order, market) pair.
func (s *Service) OnMessage(a domain.AlgoExecution) domain.ExecutionOrder {
	order := a.Order
	s.store[order.OrderID] = order
	s.Publish(order)
	s.publishAudit(order, a.Market)
	return order
}

func (s *Service) publishAudit(order domain.ExecutionOrder, market domain.Market) {
	if s.Audit == nil {
		return
	}
	fmt.Fprintf(s.Audit, "[execution] %s order=%s side=%d price=%s qty=%d market=%d\n",
		order.Product.Identifier, order.OrderID, order.Side, order.Price.String(), order.VisibleQty, market)
}
