package vector_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/llm-d/llm-d-physical-units/pkg/quantity"
	"github.com/llm-d/llm-d-physical-units/pkg/units"
	"github.com/llm-d/llm-d-physical-units/pkg/vector"
)

const tolerance = 1e-9

var (
	meter  = units.MustNew(0, 1)
	second = units.MustNew(0, 0, 1)
	newton = units.MustNew(1, 1, -2)
)

func expectClose(v vector.Vector3, x, y, z float64) {
	GinkgoHelper()
	gx, gy, gz := v.Raw()
	Expect(gx).To(BeNumerically("~", x, tolerance))
	Expect(gy).To(BeNumerically("~", y, tolerance))
	Expect(gz).To(BeNumerically("~", z, tolerance))
}

var _ = Describe("Vector3", func() {
	Context("components", func() {
		It("returns plain numbers for a unit-free vector", func() {
			v := vector.New(1, 2, 3)
			x, ok := v.X().Number()
			Expect(ok).To(BeTrue())
			Expect(x).To(Equal(1.0))
			Expect(v.Unit().IsNone()).To(BeTrue())
		})

		It("wraps components in the vector's unit", func() {
			v := vector.NewWithUnit(1, 2, 3, meter)
			for _, c := range []quantity.Value[float64]{v.X(), v.Y(), v.Z()} {
				Expect(c.IsQuantity()).To(BeTrue())
				Expect(units.Equal(c.Unit(), meter)).To(BeTrue())
			}
			Expect(v.Z().Raw()).To(Equal(3.0))
		})

		It("leaves the unit alone when setting components", func() {
			v := vector.NewWithUnit(1, 2, 3, meter)
			v.SetX(7)
			v.SetY(8)
			v.SetZ(9)
			Expect(v.Equal(vector.NewWithUnit(7, 8, 9, meter))).To(BeTrue())
		})
	})

	Context("length and magnitude", func() {
		It("computes a unit-free length", func() {
			v := vector.NewWithUnit(3, 4, 0, units.Meter)
			Expect(v.Length()).To(Equal(5.0))
			Expect(v.Magnitude().String()).To(Equal("5 meter"))
		})

		It("returns a plain magnitude without unit", func() {
			m, ok := vector.New(3, 4, 0).Magnitude().Number()
			Expect(ok).To(BeTrue())
			Expect(m).To(Equal(5.0))
		})
	})

	Context("addition and subtraction", func() {
		It("adds component-wise", func() {
			sum, err := vector.NewWithUnit(1, 2, 3, meter).Add(vector.NewWithUnit(4, 5, 6, meter))
			Expect(err).NotTo(HaveOccurred())
			Expect(sum.Equal(vector.NewWithUnit(5, 7, 9, meter))).To(BeTrue())

			diff, err := vector.New(1, 2, 3).Sub(vector.New(4, 5, 6))
			Expect(err).NotTo(HaveOccurred())
			Expect(diff.Equal(vector.New(-3, -3, -3))).To(BeTrue())
		})

		It("refuses mismatched units", func() {
			_, err := vector.NewWithUnit(1, 2, 3, meter).Add(vector.NewWithUnit(1, 2, 3, second))
			Expect(units.IsIncompatibleUnits(err)).To(BeTrue())
			Expect(err.Error()).To(Equal("Incompatible Units: cannot add m and s"))

			_, err = vector.NewWithUnit(1, 2, 3, meter).Sub(vector.New(1, 2, 3))
			Expect(err).To(MatchError(ContainSubstring("cannot subtract m and")))
		})

		It("negates every component", func() {
			Expect(vector.NewWithUnit(1, -2, 3, meter).Neg().Equal(vector.NewWithUnit(-1, 2, -3, meter))).To(BeTrue())
		})
	})

	Context("scaling", func() {
		It("keeps the unit for plain factors", func() {
			v := vector.NewWithUnit(1, 2, 3, meter)
			Expect(v.Scale(2).Equal(vector.NewWithUnit(2, 4, 6, meter))).To(BeTrue())
			Expect(v.DivScalar(2).Equal(vector.NewWithUnit(0.5, 1, 1.5, meter))).To(BeTrue())
		})

		It("combines units for quantity factors", func() {
			v := vector.NewWithUnit(2, 4, 6, meter)
			twoSeconds := quantity.MustQuantity(2.0, second)

			speed := v.DivBy(twoSeconds)
			Expect(speed.String()).To(Equal("<1.00 2.00 3.00> m s^-1"))

			back := speed.ScaleBy(twoSeconds)
			Expect(back.Equal(v)).To(BeTrue())
		})

		It("picks up the unit of a quantity factor on a unit-free vector", func() {
			v := vector.New(1, 0, 0).ScaleBy(quantity.MustQuantity(3.0, newton))
			Expect(v.String()).To(Equal("<3.00 0.00 0.00> kg m s^-2"))
		})
	})

	Context("equality and rounding", func() {
		It("takes unit names into account", func() {
			Expect(vector.NewWithUnit(1, 2, 3, units.Meter).Equal(vector.NewWithUnit(1, 2, 3, meter))).To(BeFalse())
			Expect(vector.NewWithUnit(1, 2, 3, meter).Equal(vector.New(1, 2, 3))).To(BeFalse())
			Expect(vector.New(1, 2, 3).Equal(vector.New(1, 2, 3.5))).To(BeFalse())
		})

		It("rounds component-wise", func() {
			r := vector.NewWithUnit(1.234, 2.5, -0.006, meter).Round(1)
			Expect(r.Equal(vector.NewWithUnit(1.2, 2.5, 0, meter))).To(BeTrue())
			Expect(vector.New(0.5, 1.5, 2.4).Round(0).Equal(vector.New(0, 2, 2))).To(BeTrue())
		})
	})

	Context("normalization", func() {
		It("yields length one and keeps the unit", func() {
			n, err := vector.NewWithUnit(1, 2, 3, meter).Normalize()
			Expect(err).NotTo(HaveOccurred())
			Expect(n.Length()).To(BeNumerically("~", 1, tolerance))
			Expect(units.Equal(n.Unit(), meter)).To(BeTrue())
		})

		It("fails on the zero vector", func() {
			_, err := vector.New(0, 0, 0).Normalize()
			Expect(err).To(MatchError(vector.ErrZeroLength))
		})
	})

	Context("dot product", func() {
		It("returns a plain number for unit-free vectors", func() {
			d, ok := vector.New(1, 2, 3).Dot(vector.New(4, 5, 6)).Number()
			Expect(ok).To(BeTrue())
			Expect(d).To(Equal(32.0))
		})

		It("multiplies the units", func() {
			work := vector.NewWithUnit(1, 2, 3, newton).Dot(vector.NewWithUnit(4, 5, 6, meter))
			Expect(work.IsQuantity()).To(BeTrue())
			Expect(work.Unit().Dimension()).To(Equal(units.Dimension{1, 2, -2}))
			Expect(work.Raw()).To(Equal(32.0))

			mixed := vector.NewWithUnit(1, 2, 3, meter).Dot(vector.New(1, 1, 1))
			Expect(mixed.String()).To(Equal("6 m"))
		})

		It("collapses to a plain number when units cancel", func() {
			d := vector.NewWithUnit(1, 0, 0, meter).Dot(vector.NewWithUnit(2, 0, 0, meter.Inverse()))
			Expect(d.IsQuantity()).To(BeFalse())
			Expect(d.Raw()).To(Equal(2.0))
		})
	})

	Context("angle", func() {
		It("measures orthogonal vectors in radians and degrees", func() {
			rad, err := vector.New(1, 0, 0).Angle(vector.New(0, 1, 0), false)
			Expect(err).NotTo(HaveOccurred())
			Expect(rad).To(BeNumerically("~", math.Pi/2, tolerance))

			deg, err := vector.NewWithUnit(1, 0, 0, meter).Angle(vector.NewWithUnit(0, 0, 2, second), true)
			Expect(err).NotTo(HaveOccurred())
			Expect(deg).To(BeNumerically("~", 90, tolerance))
		})

		It("measures oblique vectors", func() {
			deg, err := vector.New(1, 0, 0).Angle(vector.New(1, 1, 0), true)
			Expect(err).NotTo(HaveOccurred())
			Expect(deg).To(BeNumerically("~", 45, 1e-6))
		})

		It("fails on a zero vector", func() {
			_, err := vector.New(0, 0, 0).Angle(vector.New(1, 0, 0), false)
			Expect(err).To(MatchError(vector.ErrZeroLength))
		})

		It("reports a domain error when the cosine leaves [-1, 1]", func() {
			huge := vector.New(1e200, 0, 0)
			_, err := huge.Angle(huge, false)
			Expect(err).To(MatchError(vector.ErrDomain))
		})
	})

	Context("projection", func() {
		It("keeps the projected vector's unit", func() {
			p, err := vector.NewWithUnit(2, 3, 4, meter).Project(vector.NewWithUnit(0, 5, 0, second))
			Expect(err).NotTo(HaveOccurred())
			expectClose(p, 0, 3, 0)
			Expect(units.Equal(p.Unit(), meter)).To(BeTrue())
		})

		It("splits into parallel and orthogonal parts", func() {
			a := vector.NewWithUnit(1, 2, 3, meter)
			parallel, orthogonal, err := a.SplitParallelOrthogonal(vector.New(4, -1, 2))
			Expect(err).NotTo(HaveOccurred())

			sum, err := parallel.Add(orthogonal)
			Expect(err).NotTo(HaveOccurred())
			x, y, z := a.Raw()
			expectClose(sum, x, y, z)

			Expect(parallel.Dot(orthogonal).Raw()).To(BeNumerically("~", 0, tolerance))
			Expect(parallel.Cross(vector.New(4, -1, 2)).Length()).To(BeNumerically("~", 0, tolerance))
		})

		It("fails onto the zero vector", func() {
			_, _, err := vector.New(1, 2, 3).SplitParallelOrthogonal(vector.New(0, 0, 0))
			Expect(err).To(MatchError(vector.ErrZeroLength))
		})
	})

	Context("cross product", func() {
		It("follows the right-hand rule", func() {
			z := vector.New(1, 0, 0).Cross(vector.New(0, 1, 0))
			Expect(z.Equal(vector.New(0, 0, 1))).To(BeTrue())
		})

		It("is orthogonal to both operands", func() {
			a, b := vector.New(1, 2, 3), vector.New(4, 5, 6)
			c := a.Cross(b)
			Expect(c.Equal(vector.New(-3, 6, -3))).To(BeTrue())
			Expect(c.Dot(a).Raw()).To(BeNumerically("~", 0, tolerance))
			Expect(c.Dot(b).Raw()).To(BeNumerically("~", 0, tolerance))
		})

		It("multiplies the units", func() {
			torque := vector.NewWithUnit(0, 1, 0, meter).Cross(vector.NewWithUnit(2, 0, 0, newton))
			Expect(torque.String()).To(Equal("<0.00 0.00 -2.00> kg m^2 s^-2"))
		})
	})

	Context("display", func() {
		It("renders components with two decimals", func() {
			Expect(vector.NewWithUnit(1, 2, 3, meter).String()).To(Equal("<1.00 2.00 3.00> m"))
			Expect(vector.New(1, 2, 3).String()).To(Equal("<1.00 2.00 3.00>"))
		})
	})
})
