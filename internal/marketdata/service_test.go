package marketdata

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

func TestOnMessageAggregatesDepthLevels(t *testing.T) {
	product, _ := catalog.Lookup("9128283H1")
	svc := New()

	snap := domain.DepthSnapshot{Product: product}
	for i := range snap.Bids {
		snap.Bids[i] = domain.Order{Price: mustPrice(t, "99"), Quantity: 1_000_000, Side: domain.Bid}
		snap.Offers[i] = domain.Order{Price: mustPrice(t, "99.5"), Quantity: 1_000_000, Side: domain.Offer}
	}

	book := svc.OnMessage(snap)

	if len(book.Bids) != 1 {
		t.Fatalf("len(book.Bids) = %d, want 1 (all five levels at the same price)", len(book.Bids))
	}
	if book.Bids[0].Quantity != 5_000_000 {
		t.Fatalf("aggregated bid quantity = %d, want 5000000", book.Bids[0].Quantity)
	}
}

func TestOnMessageAccumulatesAcrossSnapshots(t *testing.T) {
	product, _ := catalog.Lookup("9128283H1")
	svc := New()

	first := domain.DepthSnapshot{Product: product}
	first.Bids[0] = domain.Order{Price: mustPrice(t, "99"), Quantity: 1, Side: domain.Bid}
	first.Offers[0] = domain.Order{Price: mustPrice(t, "99.5"), Quantity: 1, Side: domain.Offer}
	svc.OnMessage(first)

	second := domain.DepthSnapshot{Product: product}
	second.Bids[0] = domain.Order{Price: mustPrice(t, "100"), Quantity: 2, Side: domain.Bid}
	second.Offers[0] = domain.Order{Price: mustPrice(t, "100.5"), Quantity: 2, Side: domain.Offer}
	svc.OnMessage(second)

	got := svc.Get(product)
	if len(got.Bids) != 2 {
		t.Fatalf("len(book.Bids) = %d, want 2 (each snapshot appends into the running book)", len(got.Bids))
	}
}
