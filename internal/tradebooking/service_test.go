package tradebooking

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

func TestOnMessageStoresFeedTrade(t *testing.T) {
	product, _ := catalog.Lookup("9128283H1")
	svc := New()

	svc.OnMessage(domain.Trade{Product: product, TradeID: "T1", Price: mustPrice(t, "99"), Book: "TRSY1", Quantity: 1, Side: domain.Buy})

	got, ok := svc.Get("T1")
	if !ok {
		t.Fatal("expected trade T1 to be stored")
	}
	if got.Book != "TRSY1" {
		t.Fatalf("book = %q, want TRSY1", got.Book)
	}
}

func TestBookExecutionCyclesBooks(t *testing.T) {
	product, _ := catalog.Lookup("9128283H1")
	svc := New()

	order := func(id string) domain.ExecutionOrder {
		return domain.ExecutionOrder{Product: product, Side: domain.Bid, OrderID: id, Price: mustPrice(t, "99"), VisibleQty: 1, HiddenQty: 0}
	}

	svc.ProcessAdd(order("A1"))
	svc.ProcessAdd(order("A2"))
	svc.ProcessAdd(order("A3"))

	t1, _ := svc.Get("A1")
	t2, _ := svc.Get("A2")
	t3, _ := svc.Get("A3")

	if t1.Book != "TRSY2" || t2.Book != "TRSY3" || t3.Book != "TRSY1" {
		t.Fatalf("books = %s, %s, %s, want TRSY2, TRSY3, TRSY1", t1.Book, t2.Book, t3.Book)
	}
}

func TestBookExecutionMapsSideAndQuantity(t *testing.T) {
	product, _ := catalog.Lookup("9128283H1")
	svc := New()

	svc.ProcessAdd(domain.ExecutionOrder{
		Product: product, Side: domain.Offer, OrderID: "A1",
		Price: mustPrice(t, "99"), VisibleQty: 3, HiddenQty: 2,
	})

	got, _ := svc.Get("A1")
	if got.Side != domain.Sell {
		t.Fatalf("side = %v, want SELL (OFFER crosses to SELL)", got.Side)
	}
	if got.Quantity != 5 {
		t.Fatalf("quantity = %d, want 5 (visible+hidden)", got.Quantity)
	}
	if got.TradeID != "A1" {
		t.Fatalf("trade id = %q, want the order id", got.TradeID)
	}
}
