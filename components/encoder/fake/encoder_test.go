package fake

import (
	"context"
	"testing"
	"time"

	"go.viam.com/test"
	"go.viam.com/utils/testutils"
)

func TestEncoder(t *testing.T) {
	ctx := context.Background()

	e := NewEncoder()

	t.Run("get and set position", func(t *testing.T) {
		pos, err := e.TicksCount(ctx, nil)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, pos, test.ShouldEqual, int64(0))

		err = e.SetPosition(ctx, 1)
		test.That(t, err, test.ShouldBeNil)

		pos, err = e.TicksCount(ctx, nil)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, pos, test.ShouldEqual, int64(1))
	})

	t.Run("reset with offset", func(t *testing.T) {
		err := e.Reset(ctx, -7, nil)
		test.That(t, err, test.ShouldBeNil)

		pos, err := e.TicksCount(ctx, nil)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, pos, test.ShouldEqual, int64(-7))
	})

	t.Run("steps on read", func(t *testing.T) {
		test.That(t, e.Reset(ctx, 0, nil), test.ShouldBeNil)
		test.That(t, e.SetSpeed(ctx, 10), test.ShouldBeNil)

		for i := 1; i <= 3; i++ {
			pos, err := e.TicksCount(ctx, nil)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, pos, test.ShouldEqual, int64(10*i))
		}
		test.That(t, e.Position(), test.ShouldEqual, int64(30))
	})

	t.Run("fractional speed carries", func(t *testing.T) {
		test.That(t, e.Reset(ctx, 0, nil), test.ShouldBeNil)
		test.That(t, e.SetSpeed(ctx, -0.5), test.ShouldBeNil)

		pos, err := e.TicksCount(ctx, nil)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, pos, test.ShouldEqual, int64(0))

		pos, err = e.TicksCount(ctx, nil)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, pos, test.ShouldEqual, int64(-1))
	})

	test.That(t, e.SetSpeed(ctx, 0), test.ShouldBeNil)
}

func TestEncoderBackground(t *testing.T) {
	ctx := context.Background()
	e := NewEncoder()
	test.That(t, e.SetSpeed(ctx, 5), test.ShouldBeNil)

	e.Start(time.Millisecond)
	defer e.Close()

	testutils.WaitForAssertion(t, func(tb testing.TB) {
		tb.Helper()
		test.That(tb, e.Position(), test.ShouldBeGreaterThan, int64(10))
	})

	// reads no longer step once running in the background
	test.That(t, e.SetSpeed(ctx, 0), test.ShouldBeNil)
	time.Sleep(5 * time.Millisecond)
	before := e.Position()
	pos, err := e.TicksCount(ctx, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pos, test.ShouldEqual, before)

	e.Close()
	test.That(t, e.SetSpeed(ctx, 1), test.ShouldBeNil)
	pos, err = e.TicksCount(ctx, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pos, test.ShouldEqual, before+1)
}
