package mecanum

import (
	"time"

	"github.com/lcr-robotics/lilpanini/host"
)

// Turn spins the base in place by angleDeg degrees, counterclockwise when positive
// and clockwise otherwise. It ends as soon as any single wheel reaches its target.
func (b *Base) Turn(h host.Host, speed, angleDeg float64, timeout time.Duration) Outcome {
	start := b.clock.Now()
	offset := b.cal.TurnCounts(angleDeg)
	targets := spinPattern.targets(b.wheels.Positions(), offset)

	p := spinPattern
	if angleDeg <= 0 {
		p = p.negate()
	}
	b.logger.Debugw("turn", "speed", speed, "angle_deg", angleDeg, "counts", offset, "targets", targets)

	b.wheels.SetPowers(p.powers(speed))
	outcome := b.poll(h, start, timeout, b.untilReached(h, p, targets))
	b.Stop()

	b.logger.Debugw("turn done", "outcome", outcome, "elapsed", b.clock.Since(start))
	return outcome
}
