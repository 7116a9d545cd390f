package motor

import "github.com/pkg/errors"

// NewInvalidPowerError returns an error representing a power that cannot be applied
// to a motor at all, such as NaN.
func NewInvalidPowerError(motorName string, powerPct float64) error {
	return errors.Errorf("motor named %s cannot be set to power %v", motorName, powerPct)
}
