package mecanum

import (
	"testing"

	"go.viam.com/test"
)

func TestCalibrationMath(t *testing.T) {
	cal := DefaultCalibration()

	t.Run("forward", func(t *testing.T) {
		test.That(t, cal.ForwardCounts(1), test.ShouldEqual, 116)
		test.That(t, cal.ForwardCounts(12), test.ShouldEqual, 1400)
		test.That(t, cal.ForwardCounts(29), test.ShouldEqual, 3383)
		test.That(t, cal.ForwardCounts(0), test.ShouldEqual, 0)
		test.That(t, cal.ForwardCounts(0.001), test.ShouldEqual, 0)
	})

	t.Run("forward is monotonic", func(t *testing.T) {
		prev := cal.ForwardCounts(0)
		for d := 0.05; d < 100; d += 0.05 {
			cur := cal.ForwardCounts(d)
			test.That(t, cur, test.ShouldBeGreaterThanOrEqualTo, prev)
			prev = cur
		}
	})

	t.Run("turn", func(t *testing.T) {
		test.That(t, cal.TurnCounts(90), test.ShouldEqual, 2500)
		test.That(t, cal.TurnCounts(-90), test.ShouldEqual, -2500)
		test.That(t, cal.TurnCounts(360), test.ShouldEqual, 10000)
		test.That(t, cal.TurnCounts(1), test.ShouldEqual, 27)
		test.That(t, cal.TurnCounts(-1), test.ShouldEqual, -27)
	})

	t.Run("strafe", func(t *testing.T) {
		test.That(t, cal.StrafeCounts(12), test.ShouldEqual, 2000)
		test.That(t, cal.StrafeCounts(1), test.ShouldEqual, 166)
		test.That(t, cal.StrafeCounts(0.5), test.ShouldEqual, 83)
	})

	t.Run("integer ratios", func(t *testing.T) {
		legacy := DefaultCalibration()
		legacy.IntegerRatios = true
		test.That(t, legacy.ForwardCounts(29), test.ShouldEqual, 3364)
		test.That(t, legacy.TurnCounts(90), test.ShouldEqual, 2430)
		test.That(t, legacy.StrafeCounts(12), test.ShouldEqual, 1992)
	})
}

func TestCalibrationConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cal := Calibration{CountsPer360: 720}.WithDefaults()
		test.That(t, cal.CountsPerRevolution, test.ShouldEqual, DefaultCountsPerRevolution)
		test.That(t, cal.CountsPer360, test.ShouldEqual, 720)
		test.That(t, cal.CountsPerSideFoot, test.ShouldEqual, DefaultCountsPerSideFoot)
		test.That(t, cal.TurnCounts(90), test.ShouldEqual, 180)
	})

	t.Run("validate", func(t *testing.T) {
		cal := DefaultCalibration()
		test.That(t, cal.Validate("calibration"), test.ShouldBeNil)

		cal.CountsPerSideFoot = -1
		err := cal.Validate("calibration")
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "counts_per_side_foot")
	})
}
