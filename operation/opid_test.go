package operation

import (
	"context"
	"testing"

	"github.com/edaniels/golog"
	"go.viam.com/test"
)

func TestBasic(t *testing.T) {
	ctx := context.Background()

	logger := golog.NewTestLogger(t)
	h := NewManager(logger)
	o := Get(ctx)
	test.That(t, o, test.ShouldBeNil)

	test.That(t, len(h.All()), test.ShouldEqual, 0)

	func() {
		ctx2, cleanup := h.Create(ctx, "blue_start", nil)
		defer cleanup()

		test.That(t, func() { h.Create(ctx2, "b", nil) }, test.ShouldPanic)

		o := Get(ctx2)
		test.That(t, o, test.ShouldNotBeNil)
		test.That(t, o.Routine, test.ShouldEqual, "blue_start")
		test.That(t, o.ID.String(), test.ShouldNotEqual, "")
		test.That(t, len(h.All()), test.ShouldEqual, 1)
		test.That(t, h.All()[0].ID, test.ShouldEqual, o.ID)
		test.That(t, h.Find(o.ID).ID, test.ShouldEqual, o.ID)
		test.That(t, h.FindString(o.ID.String()).ID, test.ShouldEqual, o.ID)
	}()

	test.That(t, len(h.All()), test.ShouldEqual, 0)
	test.That(t, h.FindString("nope"), test.ShouldBeNil)
}

func TestOperationSteps(t *testing.T) {
	h := NewManager(golog.NewTestLogger(t))
	ctx, cleanup := h.Create(context.Background(), "blue_start", nil)

	op := Get(ctx)
	idx, name := op.Step()
	test.That(t, idx, test.ShouldEqual, -1)
	test.That(t, name, test.ShouldEqual, "")

	op.SetStep(2, "turn")
	idx, name = op.Step()
	test.That(t, idx, test.ShouldEqual, 2)
	test.That(t, name, test.ShouldEqual, "turn")

	op.Cancel()
	test.That(t, ctx.Err(), test.ShouldNotBeNil)
	cleanup()
	test.That(t, len(h.All()), test.ShouldEqual, 0)
}

func TestCleanupCancels(t *testing.T) {
	h := NewManager(golog.NewTestLogger(t))
	ctx, cleanup := h.Create(context.Background(), "red_start", nil)
	test.That(t, ctx.Err(), test.ShouldBeNil)
	cleanup()
	test.That(t, ctx.Err(), test.ShouldNotBeNil)
}
