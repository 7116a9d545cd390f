package mecanum

import "github.com/pkg/errors"

// Empirically determined relationships between encoder counts and the distances and
// angles the robot actually travels. Each axis differs because the rollers slip
// differently going forward, spinning, and strafing.
const (
	// DefaultCountsPerRevolution is one full wheel revolution, which drives the robot
	// very close to one foot forwards.
	DefaultCountsPerRevolution = 1400
	// DefaultCountsPer360 is one full turn in place.
	DefaultCountsPer360 = 10000
	// DefaultCountsPerSideFoot is one foot of strafing to the side.
	DefaultCountsPerSideFoot = 2000

	inchesPerFoot  = 12
	degreesPerTurn = 360
)

// Calibration converts physical distances and angles into encoder counts.
type Calibration struct {
	CountsPerRevolution int `json:"counts_per_revolution,omitempty"`
	CountsPer360        int `json:"counts_per_360,omitempty"`
	CountsPerSideFoot   int `json:"counts_per_side_foot,omitempty"`

	// IntegerRatios truncates each counts-per-unit ratio before scaling it, the way the
	// robot's first season of code did (e.g. 10000/360 becomes 27 counts per degree).
	IntegerRatios bool `json:"integer_ratios,omitempty"`
}

// DefaultCalibration returns the calibration measured on the competition robot.
func DefaultCalibration() Calibration {
	return Calibration{
		CountsPerRevolution: DefaultCountsPerRevolution,
		CountsPer360:        DefaultCountsPer360,
		CountsPerSideFoot:   DefaultCountsPerSideFoot,
	}
}

// Validate ensures all parts of the calibration are valid.
func (c *Calibration) Validate(path string) error {
	if c.CountsPerRevolution < 0 {
		return errors.Errorf("%s: counts_per_revolution must be positive, got %d", path, c.CountsPerRevolution)
	}
	if c.CountsPer360 < 0 {
		return errors.Errorf("%s: counts_per_360 must be positive, got %d", path, c.CountsPer360)
	}
	if c.CountsPerSideFoot < 0 {
		return errors.Errorf("%s: counts_per_side_foot must be positive, got %d", path, c.CountsPerSideFoot)
	}
	return nil
}

// WithDefaults fills in any unset constant with the competition robot's value.
func (c Calibration) WithDefaults() Calibration {
	if c.CountsPerRevolution == 0 {
		c.CountsPerRevolution = DefaultCountsPerRevolution
	}
	if c.CountsPer360 == 0 {
		c.CountsPer360 = DefaultCountsPer360
	}
	if c.CountsPerSideFoot == 0 {
		c.CountsPerSideFoot = DefaultCountsPerSideFoot
	}
	return c
}

// ForwardCounts converts inches driven forwards or backwards into encoder counts.
func (c Calibration) ForwardCounts(inches float64) int {
	return c.scale(inches, c.CountsPerRevolution, inchesPerFoot)
}

// TurnCounts converts degrees turned in place into encoder counts. The sign of
// degrees is preserved.
func (c Calibration) TurnCounts(degrees float64) int {
	return c.scale(degrees, c.CountsPer360, degreesPerTurn)
}

// StrafeCounts converts inches strafed sideways into encoder counts.
func (c Calibration) StrafeCounts(inches float64) int {
	return c.scale(inches, c.CountsPerSideFoot, inchesPerFoot)
}

// scale returns value*counts/per truncated toward zero. Multiplying first keeps
// exact results exact, e.g. 90 degrees is exactly 2500 counts.
func (c Calibration) scale(value float64, counts, per int) int {
	if c.IntegerRatios {
		return int(value * float64(counts/per))
	}
	return int(value * float64(counts) / float64(per))
}
