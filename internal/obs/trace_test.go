package obs

import "testing"

func TestTraceGeneratorMonotonicFromSeed(t *testing.T) {
	g := NewTraceGenerator(100)

	first := g.Next()
	second := g.Next()
	third := g.Next()

	if first != 101 || second != 102 || third != 103 {
		t.Fatalf("got %d,%d,%d, want 101,102,103", first, second, third)
	}
}

func TestTraceGeneratorZeroSeedStillAdvances(t *testing.T) {
	g := NewTraceGenerator(0)

	first := g.Next()
	second := g.Next()

	if second != first+1 {
		t.Fatalf("second = %d, want %d (first+1)", second, first+1)
	}
}

func TestTraceGeneratorNilIsZero(t *testing.T) {
	var g *TraceGenerator
	if got := g.Next(); got != 0 {
		t.Fatalf("nil generator Next() = %d, want 0", got)
	}
}
