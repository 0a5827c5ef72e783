// Package inquiry implements the stateful customer-inquiry workflow: a
// small state machine applies an incoming event, walks forward
// automatically through the quote/accept cascade, and marks terminal
// states.
package inquiry

import (
	"github.com/yanun0323/decimal"

	"treasury-pipeline/internal/domain"
	"treasury-pipeline/internal/pipeline"
)

// Service owns one Inquiry per inquiry id, until it reaches DONE.
type Service struct {
	pipeline.Fanout[domain.Inquiry]
	store map[string]domain.Inquiry
}

// New creates an empty inquiry service.
func New() *Service {
	return &Service{store: make(map[string]domain.Inquiry)}
}

// Get returns the stored inquiry, if it has not reached DONE.
func (s *Service) Get(inquiryID string) (domain.Inquiry, bool) {
	inq, ok := s.store[inquiryID]
	return inq, ok
}

// OnMessage ingests an inquiry at whatever state it arrives in, stores it,
// fans it out, and then -- if the arrival state is RECEIVED or QUOTED --
// walks the state machine forward to DONE, firing one ProcessAdd per hop.
// REJECTED and CUSTOMER_REJECTED are terminal on arrival and simply
// remain in the store.
func (s *Service) OnMessage(inq domain.Inquiry) domain.Inquiry {
	s.store[inq.InquiryID] = inq
	s.Publish(inq)

	switch inq.State {
	case domain.Received:
		return s.advance(inq.InquiryID, domain.Quoted)
	case domain.Quoted:
		return s.advance(inq.InquiryID, domain.Done)
	case domain.Done:
		delete(s.store, inq.InquiryID)
	}
	return inq
}

func (s *Service) advance(id string, next domain.InquiryState) domain.Inquiry {
	inq := s.store[id]
	inq.State = next
	s.store[id] = inq
	s.Publish(inq)

	switch next {
	case domain.Quoted:
		return s.advance(id, domain.Done)
	case domain.Done:
		delete(s.store, id)
	}
	return inq
}

// SendQuote sets the price of a RECEIVED inquiry and fires listeners
// without transitioning its state. Returns false if the inquiry is
// unknown or not in RECEIVED state.
func (s *Service) SendQuote(inquiryID string, price decimal.Decimal) (domain.Inquiry, bool) {
	inq, ok := s.store[inquiryID]
	if !ok || inq.State != domain.Received {
		return domain.Inquiry{}, false
	}
	inq.Price = price
	s.store[inquiryID] = inq
	s.Publish(inq)
	return inq, true
}

// RejectInquiry sets an inquiry's state to REJECTED without publishing.
func (s *Service) RejectInquiry(inquiryID string) {
	inq, ok := s.store[inquiryID]
	if !ok {
		return
	}
	inq.State = domain.Rejected
	s.store[inquiryID] = inq
}
