package autonomous

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
)

// ErrUnknownSignal is returned when a routine waits on a signal nobody provides.
var ErrUnknownSignal = errors.New("unknown signal")

// A Signal is an external boolean condition a routine can wait on, such as a camera
// pipeline reporting that the target block is in view.
type Signal interface {
	Detected() bool
}

// SignalFunc adapts a function to a Signal.
type SignalFunc func() bool

// Detected calls f.
func (f SignalFunc) Detected() bool {
	return f()
}

// Signals are the signals available to a routine, by name.
type Signals map[string]Signal

// Lookup returns the named signal.
func (s Signals) Lookup(name string) (Signal, error) {
	sig, ok := s[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownSignal, "%q", name)
	}
	return sig, nil
}

// TimerSignal is a stand-in for a real detector: it reports a detection once a fixed
// delay has passed since it was first asked.
type TimerSignal struct {
	clock clock.Clock
	after time.Duration

	mu    sync.Mutex
	armed bool
	since time.Time
}

// NewTimerSignal returns a signal that fires after d.
func NewTimerSignal(clk clock.Clock, d time.Duration) *TimerSignal {
	if clk == nil {
		clk = clock.New()
	}
	return &TimerSignal{clock: clk, after: d}
}

// Detected reports whether the delay has passed.
func (s *TimerSignal) Detected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.armed {
		s.armed = true
		s.since = s.clock.Now()
	}
	return s.clock.Since(s.since) >= s.after
}

// Reset rearms the signal for the next seek.
func (s *TimerSignal) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.armed = false
}
