// Package algoexecution implements the algo-execution service: on every
// OrderBook arrival it checks whether the book is tight (offer - bid <=
// 1/128) and, only then, synthesizes a marketable (non-child) order
// crossing the book. The parity counter that decides BID-vs-OFFER side advances on
// every book, tight or not.
package algoexecution

import (
	"math/rand"

	"github.com/yanun0323/decimal"

	"treasury-pipeline/internal/domain"
	"treasury-pipeline/internal/pipeline"
)

var tightThreshold = decimal.NewFromInt(1).Div(decimal.NewFromInt(128))

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Service owns one AlgoExecution per product, keyed by product identifier.
type Service struct {
	pipeline.Fanout[domain.AlgoExecution]
	store   map[string]domain.AlgoExecution
	counter int
	rng     *rand.Rand
}

// New creates an empty algo-execution service. rngSeed seeds the generator
// for order and parent-order ids; a fixed seed yields the same id sequence
// on every run.
func New(rngSeed int64) *Service {
	return &Service{
		store: make(map[string]domain.AlgoExecution),
		rng:   rand.New(rand.NewSource(rngSeed)),
	}
}

// Get returns the current execution for a product, if one has been
// emitted.
func (s *Service) Get(productID string) (domain.AlgoExecution, bool) {
	a, ok := s.store[productID]
	return a, ok
}

// ProcessAdd implements pipeline.Listener[domain.OrderBook].
func (s *Service) ProcessAdd(b domain.OrderBook)  { s.OnMessage(b) }
func (s *Service) ProcessRemove(domain.OrderBook)  {}
func (s *Service) ProcessUpdate(domain.OrderBook)  {}

// OnMessage evaluates a book's spread and, when tight, emits an
// AlgoExecution. The parity counter always advances. Returns the emitted
// execution and whether one was actually produced.
func (s *Service) OnMessage(book domain.OrderBook) (domain.AlgoExecution, bool) {
	bestBidOffer, ok := book.BestBidOffer()
	even := s.counter%2 == 0
	s.counter++
	if !ok {
		return domain.AlgoExecution{}, false
	}

	spread := bestBidOffer.Offer.Price.Sub(bestBidOffer.Bid.Price)
	if spread.GreaterThan(tightThreshold) {
		return domain.AlgoExecution{}, false
	}

	var side domain.Side
	var price decimal.Decimal
	var qty int64
	if even {
		side = domain.Bid
		price = bestBidOffer.Offer.Price
		qty = bestBidOffer.Bid.Quantity
	} else {
		side = domain.Offer
		price = bestBidOffer.Bid.Price
		qty = bestBidOffer.Offer.Quantity
	}

	order := domain.ExecutionOrder{
		Product:       book.Product,
		Side:          side,
		OrderID:       "A" + s.randomID(11),
		OrderType:     domain.MarketOrder,
		Price:         price,
		VisibleQty:    qty,
		HiddenQty:     0,
		ParentOrderID: "AP" + s.randomID(10),
		IsChildOrder:  false,
	}

	algo := domain.AlgoExecution{Order: order, Market: domain.Brokertec}
	s.store[book.Product.Identifier] = algo
	s.Publish(algo)
	return algo, true
}

func (s *Service) randomID(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = idAlphabet[s.rng.Intn(len(idAlphabet))]
	}
	return string(buf)
}
