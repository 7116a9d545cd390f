package resource

import (
	"testing"

	"go.viam.com/test"
)

type thing interface {
	Thing() string
}

type aThing struct{}

func (aThing) Thing() string { return "thing" }

func TestFromDependencies(t *testing.T) {
	name := NewName("thing", "t1")
	deps := Dependencies{
		name:                   aThing{},
		NewName("thing", "t2"): 5,
	}

	t.Run("found", func(t *testing.T) {
		res, err := FromDependencies[thing](deps, name)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, res.Thing(), test.ShouldEqual, "thing")
	})

	t.Run("missing", func(t *testing.T) {
		_, err := FromDependencies[thing](deps, NewName("thing", "nope"))
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, `"thing/nope" not found`)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := FromDependencies[thing](deps, NewName("thing", "t2"))
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldEqual, "expected resource.thing but got int")
	})
}
