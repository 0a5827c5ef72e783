package risk

import (
	"testing"

	"treasury-pipeline/internal/catalog"
	"treasury-pipeline/internal/domain"
)

func TestOnMessageAccumulatesQuantity(t *testing.T) {
	product, _ := catalog.Lookup("9128283H1")
	svc := New()

	svc.ProcessAdd(domain.Position{Product: product, PerBook: map[string]int64{"TRSY1": 10}})
	svc.ProcessAdd(domain.Position{Product: product, PerBook: map[string]int64{"TRSY1": 20}})

	got, ok := svc.Get(product.Identifier)
	if !ok {
		t.Fatal("expected a running PV01 record")
	}
	if got.Quantity != 30 {
		t.Fatalf("running quantity = %d, want 30 (10 then +20)", got.Quantity)
	}
}

func TestOnMessagePublishesIncrementalNotRunning(t *testing.T) {
	product, _ := catalog.Lookup("9128283H1")
	svc := New()

	svc.ProcessAdd(domain.Position{Product: product, PerBook: map[string]int64{"TRSY1": 10}})
	var published domain.PV01
	svc.AddListener(capturingListener{fn: func(pv domain.PV01) { published = pv }})
	svc.ProcessAdd(domain.Position{Product: product, PerBook: map[string]int64{"TRSY1": 20}})

	if published.Quantity != 20 {
		t.Fatalf("published quantity = %d, want 20 (the incremental record, not the running total of 30)", published.Quantity)
	}
}

func TestMissingPV01FactorIsZero(t *testing.T) {
	svc := New()
	svc.ProcessAdd(domain.Position{Product: domain.Product{Identifier: "UNKNOWN"}, PerBook: map[string]int64{"TRSY1": 10}})

	got, ok := svc.Get("UNKNOWN")
	if !ok {
		t.Fatal("expected a record even for an unknown product")
	}
	if got.Factor != 0 {
		t.Fatalf("factor = %v, want 0", got.Factor)
	}
}

func TestBucketedPV01SumsSectorMembers(t *testing.T) {
	svc := New()
	p1, _ := catalog.Lookup("9128283H1")
	p2, _ := catalog.Lookup("9128283L2")

	svc.ProcessAdd(domain.Position{Product: p1, PerBook: map[string]int64{"TRSY1": 100}})
	svc.ProcessAdd(domain.Position{Product: p2, PerBook: map[string]int64{"TRSY1": 200}})

	bucket := svc.BucketedPV01(Sector{Name: "front-end", Products: []string{p1.Identifier, p2.Identifier}})

	wantQty := int64(300)
	if bucket.Quantity != wantQty {
		t.Fatalf("bucket quantity = %d, want %d", bucket.Quantity, wantQty)
	}
	wantFactor := catalog.PV01Factor(p1.Identifier)*100 + catalog.PV01Factor(p2.Identifier)*200
	if bucket.Factor != wantFactor {
		t.Fatalf("bucket factor = %v, want %v", bucket.Factor, wantFactor)
	}
}

type capturingListener struct{ fn func(domain.PV01) }

func (l capturingListener) ProcessAdd(pv domain.PV01) { l.fn(pv) }
func (capturingListener) ProcessRemove(domain.PV01)   {}
func (capturingListener) ProcessUpdate(domain.PV01)   {}
