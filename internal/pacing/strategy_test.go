package pacing

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGradeProportionalTargetPower(t *testing.T) {
	s := Strategy{Kind: GradeProportional, Params: DefaultParams()}

	Convey("Given a grade-proportional strategy", t, func() {
		Convey("On a climb, power scales up with grade but is capped", func() {
			out := s.TargetPower(Input{BasePower: 200, PCap: 500, Grade: 0.08})
			So(out, ShouldAlmostEqual, 200*(1+2.5*0.08), 1e-9)
		})

		Convey("On a steep climb, the power cap binds", func() {
			out := s.TargetPower(Input{BasePower: 200, PCap: 250, Grade: 0.5})
			So(out, ShouldEqual, 250)
		})

		Convey("On a mild descent above the coast grade, power eases off", func() {
			out := s.TargetPower(Input{BasePower: 200, PCap: 500, Grade: -0.02})
			So(out, ShouldAlmostEqual, 200*(1+10*-0.02), 1e-9)
		})

		Convey("Below the coast grade, the rider coasts at zero power", func() {
			out := s.TargetPower(Input{BasePower: 200, PCap: 500, Grade: -0.10})
			So(out, ShouldEqual, 0)
		})

		Convey("A descent just above the coast grade never goes negative", func() {
			out := s.TargetPower(Input{BasePower: 200, PCap: 500, Grade: -0.049})
			So(out, ShouldBeGreaterThanOrEqualTo, 0)
		})
	})
}

func TestSpeedAsymmetricTargetPower(t *testing.T) {
	s := Strategy{Kind: SpeedAsymmetric, Params: DefaultParams()}

	Convey("Given a speed-asymmetric strategy", t, func() {
		Convey("Below reference speed, the slow-side gain pushes power up", func() {
			out := s.TargetPower(Input{BasePower: 200, PCap: 500, Grade: 0, CurrentSpeedMps: 5, VRefMps: 10})
			ratio := 1 - 5.0/10.0
			want := 200 * (1 + 1.0*ratio)
			So(out, ShouldAlmostEqual, want, 1e-9)
		})

		Convey("Above reference speed, the fast-side gain eases power down", func() {
			out := s.TargetPower(Input{BasePower: 200, PCap: 500, Grade: 0, CurrentSpeedMps: 15, VRefMps: 10})
			ratio := 1 - 15.0/10.0
			want := 200 * (1 + -1.0*ratio)
			So(out, ShouldAlmostEqual, want, 1e-9)
		})

		Convey("Below the coast grade, the rider coasts regardless of speed", func() {
			out := s.TargetPower(Input{BasePower: 200, PCap: 500, Grade: -0.10, CurrentSpeedMps: 5, VRefMps: 10})
			So(out, ShouldEqual, 0)
		})

		Convey("A zero reference speed falls back to 1 m/s instead of dividing by zero", func() {
			So(func() {
				s.TargetPower(Input{BasePower: 200, PCap: 500, Grade: 0, CurrentSpeedMps: 5, VRefMps: 0})
			}, ShouldNotPanic)
		})
	})
}
