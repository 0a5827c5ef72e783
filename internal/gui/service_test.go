package gui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"treasury-pipeline/internal/catalog"
	"treasury-pipeline/internal/domain"
)

func TestThrottleEmitsFirstEventAlways(t *testing.T) {
	product, _ := catalog.Lookup("9128283H1")
	var buf bytes.Buffer
	svc := New(&buf)

	emitted := svc.OnMessage(domain.Price{Product: product})
	if !emitted {
		t.Fatal("expected the first event to always emit")
	}
	if !strings.Contains(buf.String(), product.Identifier) {
		t.Fatalf("sink content = %q, want it to mention %q", buf.String(), product.Identifier)
	}
}

func TestThrottleDropsWithinWindow(t *testing.T) {
	product, _ := catalog.Lookup("9128283H1")
	var buf bytes.Buffer
	svc := New(&buf)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }
	svc.OnMessage(domain.Price{Product: product})

	svc.now = func() time.Time { return base.Add(200 * time.Millisecond) }
	if emitted := svc.OnMessage(domain.Price{Product: product}); emitted {
		t.Fatal("expected the event at +200ms to be dropped")
	}

	svc.now = func() time.Time { return base.Add(400 * time.Millisecond) }
	if emitted := svc.OnMessage(domain.Price{Product: product}); !emitted {
		t.Fatal("expected the event at +400ms to emit")
	}
}

func TestScenarioS6EmitsAtZeroAndFourHundredMillis(t *testing.T) {
	product, _ := catalog.Lookup("9128283H1")
	var buf bytes.Buffer
	svc := New(&buf)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	offsets := []time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond}
	var emissions []bool
	for _, off := range offsets {
		svc.now = func() time.Time { return base.Add(off) }
		emissions = append(emissions, svc.OnMessage(domain.Price{Product: product}))
	}

	want := []bool{true, false, false, true}
	for i := range want {
		if emissions[i] != want[i] {
			t.Fatalf("emissions = %v, want %v", emissions, want)
		}
	}
}
