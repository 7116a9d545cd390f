package mecanum

import (
	"time"

	"github.com/lcr-robotics/lilpanini/host"
)

// pattern is the per-wheel sign coupling of a motion: +1 for wheels whose counts
// rise while the motion progresses, -1 for wheels whose counts fall.
type pattern [numWheels]int

var (
	// Counterclockwise: the right side drives forwards, the left side backwards.
	spinPattern = pattern{-1, 1, -1, 1}

	// Strafing left: front-right and back-left drive forwards, front-left and
	// back-right backwards.
	strafePattern = pattern{-1, 1, 1, -1}
)

func (p pattern) negate() pattern {
	for i := range p {
		p[i] = -p[i]
	}
	return p
}

// targets returns from moved by offset along p.
func (p pattern) targets(from Counts, offset int) Counts {
	var t Counts
	for i := range from {
		t[i] = from[i] + p[i]*offset
	}
	return t
}

func (p pattern) powers(speed float64) Powers {
	var pw Powers
	for i := range p {
		pw[i] = float64(p[i]) * speed
	}
	return pw
}

// anyReached is the arrival predicate: true once any single wheel has reached or
// crossed its target in the direction p moves it.
func (p pattern) anyReached(counts, targets Counts) bool {
	for i := range counts {
		if p[i] > 0 && counts[i] >= targets[i] {
			return true
		}
		if p[i] < 0 && counts[i] <= targets[i] {
			return true
		}
	}
	return false
}

// poll calls step until it returns true, the host stops being active, or timeout
// has elapsed since start, checked in that order every iteration.
func (b *Base) poll(h host.Host, start time.Time, timeout time.Duration, step func() bool) Outcome {
	for {
		if !h.IsActive() {
			return Deactivated
		}
		if b.clock.Since(start) >= timeout {
			return TimedOut
		}
		if step() {
			return Arrived
		}
	}
}

// untilReached is a poll step that ends on the first wheel to reach its target,
// yielding to the host between polls.
func (b *Base) untilReached(h host.Host, p pattern, targets Counts) func() bool {
	return func() bool {
		if p.anyReached(b.wheels.Positions(), targets) {
			return true
		}
		h.Yield()
		return false
	}
}
