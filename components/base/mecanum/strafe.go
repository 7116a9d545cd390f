package mecanum

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/lcr-robotics/lilpanini/host"
)

// Direction is the side a strafe moves towards.
type Direction int

// The strafe directions.
const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection parses "left" or "right", ignoring case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Left, errors.Errorf("unknown strafe direction %q", s)
	}
}

// pattern returns the diagonal wheel pairing that moves the base towards d.
func (d Direction) pattern() pattern {
	if d == Right {
		return strafePattern.negate()
	}
	return strafePattern
}

// Strafe moves the base sideways for distanceIn inches. Power is set once before
// polling and the motion ends as soon as any single wheel reaches its target.
func (b *Base) Strafe(h host.Host, direction Direction, speed, distanceIn float64, timeout time.Duration) Outcome {
	start := b.clock.Now()
	offset := b.cal.StrafeCounts(distanceIn)
	p := direction.pattern()
	targets := p.targets(b.wheels.Positions(), offset)
	b.logger.Debugw("strafe", "direction", direction, "speed", speed, "distance_in", distanceIn,
		"counts", offset, "targets", targets)

	b.wheels.SetPowers(p.powers(speed))
	outcome := b.poll(h, start, timeout, b.untilReached(h, p, targets))
	b.Stop()

	b.logger.Debugw("strafe done", "outcome", outcome, "elapsed", b.clock.Since(start))
	return outcome
}
