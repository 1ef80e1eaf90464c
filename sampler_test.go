package qsim

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSampleCounts(t *testing.T) {
	Convey("Given a 2-qubit register in uniform superposition", t, func() {
		sv, _ := NewStateVector(2)
		So(sv.Apply(Gate{Kind: GateH, Target: 0}), ShouldBeNil)
		So(sv.Apply(Gate{Kind: GateH, Target: 1}), ShouldBeNil)

		sampler := NewSampler(42)

		Convey("Counts always sum to exactly the shot count", func() {
			for _, shots := range []int{1, 7, 1024} {
				table, err := sampler.Sample(sv, shots)
				So(err, ShouldBeNil)
				So(table.Total(), ShouldEqual, shots)
			}
		})

		Convey("Keys are fixed-width bitstrings", func() {
			table, err := sampler.Sample(sv, 256)
			So(err, ShouldBeNil)
			for outcome := range table {
				So(len(outcome), ShouldEqual, 2)
			}
		})

		Convey("Non-positive shot counts are rejected", func() {
			_, err := sampler.Sample(sv, 0)
			var shotsErr *InvalidShotsError
			So(errors.As(err, &shotsErr), ShouldBeTrue)
		})
	})
}

func TestSampleDeterminism(t *testing.T) {
	Convey("Given two samplers with the same seed", t, func() {
		sv, _ := NewStateVector(3)
		for q := 0; q < 3; q++ {
			So(sv.Apply(Gate{Kind: GateH, Target: q}), ShouldBeNil)
		}

		first, err := NewSampler(1234).Sample(sv, 512)
		So(err, ShouldBeNil)
		second, err := NewSampler(1234).Sample(sv, 512)
		So(err, ShouldBeNil)

		Convey("Identical statevectors produce identical tables", func() {
			So(second, ShouldResemble, first)
		})
	})
}

func TestSampleRejectsUnnormalizedState(t *testing.T) {
	Convey("Given a statevector whose probability mass is off", t, func() {
		sv, _ := NewStateVector(1)
		sv.amplitudes[1] = complex(0.5, 0)

		_, err := NewSampler(1).Sample(sv, 16)

		Convey("Sampling refuses rather than silently rescaling", func() {
			var normErr *UnnormalizedStateError
			So(errors.As(err, &normErr), ShouldBeTrue)
		})
	})
}

func TestSampleDeterministicState(t *testing.T) {
	Convey("Given a register collapsed onto one basis state", t, func() {
		sv, _ := NewStateVector(2)
		So(sv.Apply(Gate{Kind: GateX, Target: 1}), ShouldBeNil)

		table, err := NewSampler(7).Sample(sv, 100)
		So(err, ShouldBeNil)

		Convey("Every shot lands on that outcome", func() {
			So(table["10"], ShouldEqual, 100)
			So(len(table), ShouldEqual, 1)
		})
	})
}
