package mecanum

import (
	"time"

	"github.com/lcr-robotics/lilpanini/host"
)

// forwardPattern moves every wheel's count upwards.
var forwardPattern = pattern{1, 1, 1, 1}

// anyShort reports whether any wheel has not yet passed its target in the direction
// p moves it. A wheel sitting exactly on its target still counts as short.
func (p pattern) anyShort(counts, targets Counts) bool {
	for i := range counts {
		if p[i] > 0 && counts[i] <= targets[i] {
			return true
		}
		if p[i] < 0 && counts[i] >= targets[i] {
			return true
		}
	}
	return false
}

// Drive moves the base straight for distanceIn inches.
//
// The sign convention is inverted from what the name suggests: a negative speed
// targets counts above the current ones (the "forward" branch) and a positive speed
// targets counts below them. Callers written against the competition robot depend on
// this.
//
// Drive never exits on arrival. Every poll it either powers all four wheels at speed,
// while any wheel is still short of its target, or stops them, and it keeps doing so
// until the host deactivates or timeout elapses. It does not yield to the host between
// polls. A speed of 0 stops the wheels and returns Arrived.
func (b *Base) Drive(h host.Host, speed, distanceIn float64, timeout time.Duration) Outcome {
	if speed == 0 {
		b.Stop()
		return Arrived
	}

	start := b.clock.Now()
	offset := b.cal.ForwardCounts(distanceIn)
	p := forwardPattern
	if speed > 0 {
		p = p.negate()
	}
	targets := p.targets(b.wheels.Positions(), offset)
	b.logger.Debugw("drive", "speed", speed, "distance_in", distanceIn, "counts", offset, "targets", targets)

	outcome := b.poll(h, start, timeout, func() bool {
		if p.anyShort(b.wheels.Positions(), targets) {
			b.wheels.SetAll(speed)
		} else {
			b.wheels.StopAll()
		}
		return false
	})
	b.Stop()

	b.logger.Debugw("drive done", "outcome", outcome, "elapsed", b.clock.Since(start))
	return outcome
}
