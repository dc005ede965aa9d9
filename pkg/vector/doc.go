// Package vector implements a three-component vector that carries an optional unit.
//
// A Vector3 stores three raw float64 components and one units.Unit shared by all of
// them. The zero unit (units.None) marks a pure number vector. Geometry is delegated to
// gonum's spatial/r3 package; units are combined through the units package so that
// mismatched units fail the same way they do for scalar quantities.
//
// Key Components:
//
//   - Vector3: immutable value type; only the component setters mutate, and they leave the unit alone
//   - Dot, Cross, Angle: products and angles, with units combined by multiplication
//   - Project, SplitParallelOrthogonal: decomposition of a vector against another
//
// Example usage:
//
//	v := vector.NewWithUnit(3, 4, 0, units.Meter)
//
//	// 5 meter
//	fmt.Println(v.Magnitude())
//
//	unit, err := v.Normalize()
//	if err != nil {
//	    return err
//	}
//
//	// <0.60 0.80 0.00> meter
//	fmt.Println(unit)
//
//	parallel, orthogonal, err := v.SplitParallelOrthogonal(vector.New(1, 0, 0))
//
// Scalar results that carry a unit (components, magnitude, dot product) are returned as
// quantity.Value so that a unit-free vector yields plain numbers.
package vector
