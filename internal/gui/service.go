// Package gui implements the GUI service: a throttled sink for Price
// events, gated by wall-clock time so no more than one update reaches
// the sink per minimum inter-emission window.
package gui

import (
	"io"
	"time"

	"treasury-pipeline/internal/domain"
)

// throttle is the minimum wall-clock gap between two emitted Price
// snapshots.
const throttle = 300 * time.Millisecond

// Service throttles Price events down to one emission per throttle
// window, appending each emitted snapshot to a sink. Drops are silent.
type Service struct {
	out          io.Writer
	now          func() time.Time
	lastEmitTime time.Time
	hasEmitted   bool
}

// New creates a GUI sink writing to out.
func New(out io.Writer) *Service {
	return &Service{out: out, now: time.Now}
}

// ProcessAdd implements pipeline.Listener[domain.Price].
func (s *Service) ProcessAdd(p domain.Price) { s.OnMessage(p) }
func (s *Service) ProcessRemove(domain.Price) {}
func (s *Service) ProcessUpdate(domain.Price) {}

// OnMessage emits p if more than the throttle window has elapsed since
// the last emission; otherwise it drops p silently. Returns whether it
// emitted.
func (s *Service) OnMessage(p domain.Price) bool {
	now := s.now()
	if s.hasEmitted && now.Sub(s.lastEmitTime) <= throttle {
		return false
	}

	s.lastEmitTime = now
	s.hasEmitted = true
	s.emit(now, p)
	return true
}

func (s *Service) emit(now time.Time, p domain.Price) {
	if s.out == nil {
		return
	}
	line := now.Format("2006-01-02 15:04:05.000") + "," +
		p.Product.Identifier + "," + p.Mid.String() + "," + p.Spread.String() + "\n"
	_, _ = s.out.Write([]byte(line))
}
