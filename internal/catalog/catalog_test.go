package catalog

import "testing"

func TestLookupKnownProduct(t *testing.T) {
	p, ok := Lookup("9128283H1")
	if !ok {
		t.Fatal("expected 9128283H1 to be found")
	}
	if p.Ticker != "T 2Y" {
		t.Fatalf("ticker = %q, want %q", p.Ticker, "T 2Y")
	}
}

func TestLookupUnknownProduct(t *testing.T) {
	if _, ok := Lookup("NOPE"); ok {
		t.Fatal("expected unknown product to miss")
	}
}

func TestPV01FactorKnown(t *testing.T) {
	got := PV01Factor("912810RZ3")
	want := 0.15013155
	if got != want {
		t.Fatalf("PV01Factor = %v, want %v", got, want)
	}
}

func TestPV01FactorUnknownIsZero(t *testing.T) {
	if got := PV01Factor("NOPE"); got != 0 {
		t.Fatalf("PV01Factor(unknown) = %v, want 0", got)
	}
}

func TestPV01FactorThirtyYearIsZero(t *testing.T) {
	if got := PV01Factor("912810TW7"); got != 0 {
		t.Fatalf("PV01Factor(30Y) = %v, want 0 (no entry in the static table)", got)
	}
}

func TestAllReturnsEverySeededProduct(t *testing.T) {
	if got := len(All()); got != 7 {
		t.Fatalf("All() returned %d products, want 7", got)
	}
}
