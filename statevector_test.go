package qsim

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewStateVector(t *testing.T) {
	Convey("Given register sizes from 1 to 10", t, func() {
		for n := 1; n <= 10; n++ {
			sv, err := NewStateVector(n)
			So(err, ShouldBeNil)
			So(sv.Len(), ShouldEqual, 1<<n)
			So(sv.Amplitude(0), ShouldEqual, complex(1, 0))
			So(sv.Norm(), ShouldAlmostEqual, 1, NormTolerance)
		}

		Convey("Size zero is rejected", func() {
			_, err := NewStateVector(0)
			var sizeErr *InvalidSizeError
			So(errors.As(err, &sizeErr), ShouldBeTrue)
			So(sizeErr.Qubits, ShouldEqual, 0)
		})

		Convey("Sizes beyond the ceiling are rejected", func() {
			_, err := NewStateVector(MaxQubits + 1)
			var sizeErr *InvalidSizeError
			So(errors.As(err, &sizeErr), ShouldBeTrue)
		})
	})
}

func TestInvolutions(t *testing.T) {
	Convey("Given a 3-qubit register with some structure", t, func() {
		sv, err := NewStateVector(3)
		So(err, ShouldBeNil)
		So(sv.Apply(Gate{Kind: GateH, Target: 0}), ShouldBeNil)
		So(sv.Apply(Gate{Kind: GateRY, Target: 2, Angle: 0.7}), ShouldBeNil)
		before := sv.Amplitudes()

		Convey("Applying H twice on the same qubit is the identity", func() {
			So(sv.Apply(Gate{Kind: GateH, Target: 1}), ShouldBeNil)
			So(sv.Apply(Gate{Kind: GateH, Target: 1}), ShouldBeNil)
			for i, a := range sv.Amplitudes() {
				So(cmplx.Abs(a-before[i]), ShouldBeLessThan, 1e-12)
			}
		})

		Convey("Applying X twice on the same qubit is the identity", func() {
			So(sv.Apply(Gate{Kind: GateX, Target: 2}), ShouldBeNil)
			So(sv.Apply(Gate{Kind: GateX, Target: 2}), ShouldBeNil)
			for i, a := range sv.Amplitudes() {
				So(cmplx.Abs(a-before[i]), ShouldBeLessThan, 1e-12)
			}
		})
	})
}

func TestCloneIsIndependent(t *testing.T) {
	Convey("Given a register in superposition", t, func() {
		sv, _ := NewStateVector(2)
		So(sv.Apply(Gate{Kind: GateH, Target: 0}), ShouldBeNil)

		clone := sv.Clone()
		So(sv.Apply(Gate{Kind: GateX, Target: 1}), ShouldBeNil)

		Convey("Mutating the original leaves the clone alone", func() {
			So(clone.Amplitude(0), ShouldEqual, complex(1/math.Sqrt2, 0))
			So(clone.Amplitude(1), ShouldEqual, complex(1/math.Sqrt2, 0))
			So(clone.Amplitude(2), ShouldEqual, complex(0, 0))
		})
	})
}

func TestNormCheck(t *testing.T) {
	Convey("Given a vector with a corrupted amplitude", t, func() {
		sv, _ := NewStateVector(1)
		sv.amplitudes[0] = 2

		err := sv.checkNorm("run")

		Convey("The invariant violation is surfaced, not rescaled", func() {
			var normErr *UnnormalizedStateError
			So(errors.As(err, &normErr), ShouldBeTrue)
			So(normErr.Norm, ShouldAlmostEqual, 4)
		})
	})
}
