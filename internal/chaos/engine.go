// Package chaos provides a test-only fault-injection harness for
// pipeline listeners: deterministic drop and failure injection, so
// tests can exercise the cascade-abort failure mode without relying on
// real malformed input. A seeded rand.Rand gates the drop/fail
// decisions so a run is reproducible from its seed.
package chaos

import (
	"fmt"
	"math/rand"

	"treasury-pipeline/internal/pipeline"
)

// Config controls fault injection.
type Config struct {
	Seed      int64
	DropRate  float64
	FailRate  float64
}

// Validate ensures the config is within supported ranges.
func (c Config) Validate() error {
	if c.DropRate < 0 || c.DropRate > 1 {
		return fmt.Errorf("chaos: dropRate must be between 0 and 1")
	}
	if c.FailRate < 0 || c.FailRate > 1 {
		return fmt.Errorf("chaos: failRate must be between 0 and 1")
	}
	return nil
}

// Injector wraps a Listener[V], deterministically dropping or failing
// ProcessAdd calls according to Config.
type Injector[V any] struct {
	inner pipeline.Listener[V]
	cfg   Config
	rng   *rand.Rand
}

// Wrap builds an Injector around inner using cfg.
func Wrap[V any](inner pipeline.Listener[V], cfg Config) (*Injector[V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}
	return &Injector[V]{inner: inner, cfg: cfg, rng: rand.New(rand.NewSource(seed))}, nil
}

// ProcessAdd drops the call (silently), fails it (panics, simulating a
// listener failure aborting the cascade), or forwards it to inner.
func (in *Injector[V]) ProcessAdd(v V) {
	if in.cfg.DropRate > 0 && in.rng.Float64() < in.cfg.DropRate {
		return
	}
	if in.cfg.FailRate > 0 && in.rng.Float64() < in.cfg.FailRate {
		panic(fmt.Errorf("chaos: injected listener failure"))
	}
	in.inner.ProcessAdd(v)
}

func (in *Injector[V]) ProcessRemove(v V) { in.inner.ProcessRemove(v) }
func (in *Injector[V]) ProcessUpdate(v V) { in.inner.ProcessUpdate(v) }
