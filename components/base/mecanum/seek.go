package mecanum

import (
	"time"

	"github.com/lcr-robotics/lilpanini/host"
)

// Seek strafes towards direction until detected reports true. If returnToStart is
// set, it then strafes back until any wheel is back at the count it started from.
// Both phases share one timeout; the return phase only runs after a detection.
//
// The outcome is that of the last phase run.
func (b *Base) Seek(
	h host.Host,
	direction Direction,
	speed float64,
	detected func() bool,
	timeout time.Duration,
	returnToStart bool,
) Outcome {
	start := b.clock.Now()
	origin := b.wheels.Positions()
	p := direction.pattern()
	b.logger.Debugw("seek", "direction", direction, "speed", speed, "return", returnToStart)

	b.wheels.SetPowers(p.powers(speed))
	outcome := b.poll(h, start, timeout, func() bool {
		if detected() {
			return true
		}
		h.Yield()
		return false
	})
	b.Stop()
	b.logger.Debugw("seek phase done", "outcome", outcome)

	if outcome != Arrived || !returnToStart {
		return outcome
	}

	back := p.negate()
	b.wheels.SetPowers(back.powers(speed))
	outcome = b.poll(h, start, timeout, b.untilReached(h, back, origin))
	b.Stop()

	b.logger.Debugw("seek return done", "outcome", outcome, "elapsed", b.clock.Since(start))
	return outcome
}
