package algoexecution

import (
	"testing"

	"github.com/yanun0323/decimal"

	"treasury-pipeline/internal/catalog"
	"treasury-pipeline/internal/domain"
)

func mustPrice(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal.NewFromString(%q): %v", s, err)
	}
	return d
}

func tightBook(t *testing.T, product domain.Product) domain.OrderBook {
	var b domain.OrderBook
	b.Product = product
	b.AddOrder(domain.Order{Price: mustPrice(t, "99"), Quantity: 1_000_000, Side: domain.Bid})
	b.AddOrder(domain.Order{Price: mustPrice(t, "99.0078125"), Quantity: 2_000_000, Side: domain.Offer}) // 1/128 spread
	return b.Aggregated()
}

func wideBook(t *testing.T, product domain.Product) domain.OrderBook {
	var b domain.OrderBook
	b.Product = product
	b.AddOrder(domain.Order{Price: mustPrice(t, "99"), Quantity: 1_000_000, Side: domain.Bid})
	b.AddOrder(domain.Order{Price: mustPrice(t, "99.5"), Quantity: 2_000_000, Side: domain.Offer})
	return b.Aggregated()
}

func TestOnMessageEmitsWhenTight(t *testing.T) {
	product, _ := catalog.Lookup("9128283H1")
	svc := New(1)

	_, emitted := svc.OnMessage(tightBook(t, product))
	if !emitted {
		t.Fatal("expected an order for a tight book")
	}
}

func TestOnMessageSkipsWhenWide(t *testing.T) {
	product, _ := catalog.Lookup("9128283H1")
	svc := New(1)

	_, emitted := svc.OnMessage(wideBook(t, product))
	if emitted {
		t.Fatal("expected no order for a wide book")
	}
}

func TestCounterAdvancesOnEveryBookEvenWhenSkipped(t *testing.T) {
	product, _ := catalog.Lookup("9128283H1")
	svc := New(1)

	svc.OnMessage(wideBook(t, product)) // counter -> 1, no emission
	_, emitted := svc.OnMessage(tightBook(t, product))
	if !emitted {
		t.Fatal("expected an order on the second, tight book")
	}

	algo, _ := svc.Get(product.Identifier)
	if algo.Order.Side != domain.Offer {
		t.Fatalf("side = %v, want OFFER (counter was odd, having advanced past the skipped wide book)", algo.Order.Side)
	}
}

func TestEvenCounterCrossesTheOffer(t *testing.T) {
	product, _ := catalog.Lookup("9128283H1")
	svc := New(1)

	algo, emitted := svc.OnMessage(tightBook(t, product))
	if !emitted {
		t.Fatal("expected an order")
	}
	if algo.Order.Side != domain.Bid {
		t.Fatalf("side = %v, want BID on the first (even) book", algo.Order.Side)
	}
	if algo.Order.Price.String() != mustPrice(t, "99.0078125").String() {
		t.Fatalf("price = %s, want the offer price", algo.Order.Price.String())
	}
}
