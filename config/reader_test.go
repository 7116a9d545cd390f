package config

import (
	"strings"
	"testing"
	"time"

	"go.viam.com/test"

	"github.com/lcr-robotics/lilpanini/autonomous"
	"github.com/lcr-robotics/lilpanini/components/base/mecanum"
)

const minimalBase = `base: {
	front_left: {motor: "fl"}, front_right: {motor: "fr"},
	back_left: {motor: "bl"}, back_right: {motor: "br"},
}`

func TestFromReaderValidate(t *testing.T) {
	_, err := FromReader("somepath", strings.NewReader(""))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to decode Config")

	_, err = FromReader("somepath", strings.NewReader(`{}`))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "front_left.motor")

	_, err = FromReader("somepath", strings.NewReader(`{base: 1}`))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to decode Config")

	_, err = FromReader("somepath", strings.NewReader(`{`+minimalBase+`, wheels: {}}`))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "wheels")

	_, err = FromReader("somepath", strings.NewReader(`{`+minimalBase+`, poll_interval_ms: -1}`))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "poll_interval_ms")

	_, err = FromReader("somepath", strings.NewReader(`{`+minimalBase+`, simulation: {ticks_per_step: -3}}`))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "simulation: ticks_per_step")

	conf, err := FromReader("somepath", strings.NewReader(`{`+minimalBase+`}`))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, conf, test.ShouldResemble, &Config{
		ConfigFilePath: "somepath",
		Base: mecanum.Config{
			FrontLeft:  mecanum.WheelConfig{Motor: "fl"},
			FrontRight: mecanum.WheelConfig{Motor: "fr"},
			BackLeft:   mecanum.WheelConfig{Motor: "bl"},
			BackRight:  mecanum.WheelConfig{Motor: "br"},
		},
	})
	test.That(t, conf.PollInterval(), test.ShouldEqual, time.Duration(0))
	test.That(t, conf.Simulation.TicksPerStepOrDefault(), test.ShouldEqual, 100.)
}

func TestRead(t *testing.T) {
	t.Setenv("PANINI_TEST_ENCODER", "blEncoder")

	conf, err := Read("testdata/robot.json5")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, conf.ConfigFilePath, test.ShouldEqual, "testdata/robot.json5")
	test.That(t, conf.Base.BackLeft, test.ShouldResemble, mecanum.WheelConfig{Motor: "bl", Encoder: "blEncoder"})
	test.That(t, conf.Base.FrontRight.DirectionFlip, test.ShouldBeTrue)
	test.That(t, conf.Base.Calibration, test.ShouldResemble, mecanum.Calibration{IntegerRatios: true})
	test.That(t, conf.PollInterval(), test.ShouldEqual, 5*time.Millisecond)
	test.That(t, conf.Simulation.TicksPerStepOrDefault(), test.ShouldEqual, 50.)
	test.That(t, conf.Simulation.UpdateRate(), test.ShouldEqual, 10*time.Millisecond)

	_, err = Read("testdata/nope.json5")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestReadSamples(t *testing.T) {
	conf, err := Read("../etc/configs/lilpanini.json5")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, conf.Base.Calibration, test.ShouldResemble, mecanum.DefaultCalibration())
	test.That(t, conf.Base.BackRight.DirectionFlip, test.ShouldBeTrue)

	routine, err := ReadRoutine("../etc/routines/blue_start_2_uncovered.json5")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, routine.Name, test.ShouldEqual, "blue_start_2_uncovered")
	test.That(t, len(routine.Steps), test.ShouldEqual, 7)

	signals := autonomous.Signals{"skystone": autonomous.SignalFunc(func() bool { return true })}
	steps, err := routine.Build(signals)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(steps), test.ShouldEqual, 7)
	test.That(t, steps[1].Type(), test.ShouldEqual, autonomous.StepSeek)
	test.That(t, steps[1].String(), test.ShouldEqual, "seek right 0.50 until skystone and return")
}

func TestRoutineFromReader(t *testing.T) {
	_, err := RoutineFromReader(strings.NewReader(`{name: "x", stepz: []}`))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "stepz")

	routine, err := RoutineFromReader(strings.NewReader(`{
		// comments and trailing commas are fine
		name: "square",
		steps: [
			{type: "drive", attributes: {speed: -0.5, distance_in: 12, timeout_sec: 3}},
			{type: "turn", attributes: {speed: 0.5, angle_deg: 90, timeout_sec: 3}},
		],
	}`))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, routine, test.ShouldResemble, &autonomous.Routine{
		Name: "square",
		Steps: []autonomous.StepConfig{
			{Type: "drive", Attributes: map[string]interface{}{"speed": -0.5, "distance_in": 12., "timeout_sec": 3.}},
			{Type: "turn", Attributes: map[string]interface{}{"speed": 0.5, "angle_deg": 90., "timeout_sec": 3.}},
		},
	})
}
