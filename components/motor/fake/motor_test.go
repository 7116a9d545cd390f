package fake

import (
	"context"
	"math"
	"testing"

	"github.com/edaniels/golog"
	"go.viam.com/test"
)

func TestMotorPower(t *testing.T) {
	ctx := context.Background()
	logger := golog.NewTestLogger(t)
	m := NewMotor("fm", 0, logger)
	test.That(t, m.TicksPerStep, test.ShouldEqual, float64(DefaultTicksPerStep))

	t.Run("power moves the encoder", func(t *testing.T) {
		test.That(t, m.SetPower(ctx, 0.5, nil), test.ShouldBeNil)
		on, pct, err := m.IsPowered(ctx, nil)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, on, test.ShouldBeTrue)
		test.That(t, pct, test.ShouldEqual, 0.5)
		test.That(t, m.Direction(), test.ShouldEqual, 1)

		ticks, err := m.Encoder.TicksCount(ctx, nil)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, ticks, test.ShouldEqual, int64(50))
	})

	t.Run("power is clamped", func(t *testing.T) {
		test.That(t, m.SetPower(ctx, -3, nil), test.ShouldBeNil)
		test.That(t, m.PowerPct(), test.ShouldEqual, -1.0)
		test.That(t, m.Direction(), test.ShouldEqual, -1)

		ticks, err := m.Encoder.TicksCount(ctx, nil)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, ticks, test.ShouldEqual, int64(-50))
	})

	t.Run("NaN is rejected", func(t *testing.T) {
		err := m.SetPower(ctx, math.NaN(), nil)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "fm")
		test.That(t, m.PowerPct(), test.ShouldEqual, -1.0)
	})

	t.Run("stop", func(t *testing.T) {
		test.That(t, m.Stop(ctx, nil), test.ShouldBeNil)
		on, pct, err := m.IsPowered(ctx, nil)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, on, test.ShouldBeFalse)
		test.That(t, pct, test.ShouldEqual, 0.0)
		test.That(t, m.Direction(), test.ShouldEqual, 0)

		before := m.Encoder.Position()
		ticks, err := m.Encoder.TicksCount(ctx, nil)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, ticks, test.ShouldEqual, before)
	})
}
