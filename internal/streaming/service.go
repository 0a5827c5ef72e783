// Package streaming implements the streaming service: a pure forwarder
// that republishes each AlgoStream's inner PriceStream to its own
// listeners and additionally emits a human-readable audit line through its
// connector.
package streaming

import (
	"fmt"
	"io"
	"os"

	"treasury-pipeline/internal/domain"
	"treasury-pipeline/internal/pipeline"
)

// Service owns one PriceStream per product, keyed by product identifier.
type Service struct {
	pipeline.Fanout[domain.PriceStream]
	store  map[string]domain.PriceStream
	Audit  io.Writer
}

// New creates an empty streaming service. Audit defaults to os.Stdout.
func New() *Service {
	return &Service{store: make(map[string]domain.PriceStream), Audit: os.Stdout}
}

// Get returns the current stream for a product, if one has been forwarded.
func (s *Service) Get(productID string) (domain.PriceStream, bool) {
	p, ok := s.store[productID]
	return p, ok
}

// ProcessAdd implements pipeline.Listener[domain.AlgoStream].
func (s *Service) ProcessAdd(a domain.AlgoStream) { s.OnMessage(a) }
func (s *Service) ProcessRemove(domain.AlgoStream) {}
func (s *Service) ProcessUpdate(domain.AlgoStream) {}

// OnMessage stores the incoming stream's PriceStream, publishes to
// listeners, and emits an audit line.
func (s *Service) OnMessage(a domain.AlgoStream) domain.PriceStream {
	stream := a.Stream
	s.store[stream.Product.Identifier] = stream
	s.Publish(stream)
	s.publishAudit(stream)
	return stream
}

func (s *Service) publishAudit(stream domain.PriceStream) {
	if s.Audit == nil {
		return
	}
	fmt.Fprintf(s.Audit, "[streaming] %s bid=%s/%d/%d offer=%s/%d/%d\n",
		stream.Product.Identifier,
		stream.Bid.Price.String(), stream.Bid.Visible, stream.Bid.Hidden,
		stream.Offer.Price.String(), stream.Offer.Visible, stream.Offer.Hidden,
	)
}
