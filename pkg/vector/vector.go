/*
Copyright 2025 The llm-d Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package vector

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/llm-d/llm-d-physical-units/pkg/quantity"
	"github.com/llm-d/llm-d-physical-units/pkg/units"
)

// Vector3 is a 3D vector whose components share one optional unit.
type Vector3 struct {
	v    r3.Vec
	unit units.Unit
}

// New returns a pure number vector.
func New(x, y, z float64) Vector3 {
	return Vector3{v: r3.Vec{X: x, Y: y, Z: z}}
}

// NewWithUnit returns a vector whose components are expressed in unit.
func NewWithUnit(x, y, z float64, unit units.Unit) Vector3 {
	return Vector3{v: r3.Vec{X: x, Y: y, Z: z}, unit: unit}
}

// Unit returns the shared unit, or units.None for a pure number vector.
func (a Vector3) Unit() units.Unit {
	return a.unit
}

// Raw returns the three components without unit.
func (a Vector3) Raw() (x, y, z float64) {
	return a.v.X, a.v.Y, a.v.Z
}

// X returns the first component in the vector's unit.
func (a Vector3) X() quantity.Value[float64] {
	return quantity.New(a.v.X, a.unit)
}

// Y returns the second component in the vector's unit.
func (a Vector3) Y() quantity.Value[float64] {
	return quantity.New(a.v.Y, a.unit)
}

// Z returns the third component in the vector's unit.
func (a Vector3) Z() quantity.Value[float64] {
	return quantity.New(a.v.Z, a.unit)
}

// SetX replaces the raw first component. The unit is left untouched.
func (a *Vector3) SetX(x float64) {
	a.v.X = x
}

// SetY replaces the raw second component. The unit is left untouched.
func (a *Vector3) SetY(y float64) {
	a.v.Y = y
}

// SetZ replaces the raw third component. The unit is left untouched.
func (a *Vector3) SetZ(z float64) {
	a.v.Z = z
}

// Length is the Euclidean norm of the raw components. It never carries a unit.
func (a Vector3) Length() float64 {
	return r3.Norm(a.v)
}

// Magnitude is Length expressed in the vector's unit.
func (a Vector3) Magnitude() quantity.Value[float64] {
	return quantity.New(a.Length(), a.unit)
}

// Neg negates every component.
func (a Vector3) Neg() Vector3 {
	return Vector3{v: r3.Scale(-1, a.v), unit: a.unit}
}

// Add sums two vectors. Units must be dimensionally equal unless both vectors are unit-free.
func (a Vector3) Add(b Vector3) (Vector3, error) {
	u, err := additiveUnit(units.Add, a.unit, b.unit)
	if err != nil {
		return Vector3{}, err
	}
	return Vector3{v: r3.Add(a.v, b.v), unit: u}, nil
}

// Sub subtracts b from a with the same unit rules as Add.
func (a Vector3) Sub(b Vector3) (Vector3, error) {
	u, err := additiveUnit(units.Sub, a.unit, b.unit)
	if err != nil {
		return Vector3{}, err
	}
	return Vector3{v: r3.Sub(a.v, b.v), unit: u}, nil
}

func additiveUnit(op func(x, y units.Unit) (units.Unit, error), x, y units.Unit) (units.Unit, error) {
	if x.IsNone() && y.IsNone() {
		return units.None, nil
	}
	return op(x, y)
}

// Scale multiplies every component by f and keeps the unit.
func (a Vector3) Scale(f float64) Vector3 {
	return Vector3{v: r3.Scale(f, a.v), unit: a.unit}
}

// ScaleBy multiplies every component by the raw value of q and multiplies the units.
func (a Vector3) ScaleBy(q quantity.Quantity[float64]) Vector3 {
	return Vector3{v: r3.Scale(q.Value(), a.v), unit: units.Mul(a.unit, q.Unit())}
}

// DivScalar divides every component by f and keeps the unit.
func (a Vector3) DivScalar(f float64) Vector3 {
	return Vector3{v: r3.Scale(1/f, a.v), unit: a.unit}
}

// DivBy divides every component by the raw value of q and divides the units.
func (a Vector3) DivBy(q quantity.Quantity[float64]) Vector3 {
	return Vector3{v: r3.Scale(1/q.Value(), a.v), unit: units.Div(a.unit, q.Unit())}
}

// Equal reports whether the raw components are equal and the units are equal, names included.
func (a Vector3) Equal(b Vector3) bool {
	return a.v == b.v && units.Equal(a.unit, b.unit)
}

// Round rounds every component half to even at ndigits decimal places.
func (a Vector3) Round(ndigits int) Vector3 {
	return Vector3{
		v: r3.Vec{
			X: scalar.RoundEven(a.v.X, ndigits),
			Y: scalar.RoundEven(a.v.Y, ndigits),
			Z: scalar.RoundEven(a.v.Z, ndigits),
		},
		unit: a.unit,
	}
}

// Normalize returns the vector scaled to length 1, keeping its unit.
func (a Vector3) Normalize() (Vector3, error) {
	l := a.Length()
	if l == 0 {
		return Vector3{}, ErrZeroLength
	}
	return a.DivScalar(l), nil
}

// Dot returns the scalar product. The result carries the product of both units and is a plain
// number when neither vector has one.
func (a Vector3) Dot(b Vector3) quantity.Value[float64] {
	return quantity.New(r3.Dot(a.v, b.v), units.Mul(a.unit, b.unit))
}

// Angle returns the angle between a and b in radians, or in degrees when inDegrees is set.
// Units cancel out of the ratio and play no part.
func (a Vector3) Angle(b Vector3, inDegrees bool) (float64, error) {
	la, lb := a.Length(), b.Length()
	if la == 0 || lb == 0 {
		return 0, ErrZeroLength
	}
	c := r3.Dot(a.v, b.v) / la / lb
	if math.IsNaN(c) || c < -1 || c > 1 {
		return 0, fmt.Errorf("%w: cos = %v", ErrDomain, c)
	}
	rad := math.Acos(c)
	if inDegrees {
		return rad * 180 / math.Pi, nil
	}
	return rad, nil
}

// Project returns the projection of a onto b. Only the direction of b matters, so the
// result keeps a's unit.
func (a Vector3) Project(b Vector3) (Vector3, error) {
	n := r3.Norm2(b.v)
	if n == 0 {
		return Vector3{}, ErrZeroLength
	}
	return Vector3{v: r3.Scale(r3.Dot(a.v, b.v)/n, b.v), unit: a.unit}, nil
}

// SplitParallelOrthogonal decomposes a into a part parallel to b and a part orthogonal to it.
// The two parts sum to a.
func (a Vector3) SplitParallelOrthogonal(b Vector3) (parallel, orthogonal Vector3, err error) {
	parallel, err = a.Project(b)
	if err != nil {
		return Vector3{}, Vector3{}, err
	}
	orthogonal = Vector3{v: r3.Sub(a.v, parallel.v), unit: a.unit}
	return parallel, orthogonal, nil
}

// Cross returns the vector product. Units multiply, as they do for the dot product.
func (a Vector3) Cross(b Vector3) Vector3 {
	return Vector3{v: r3.Cross(a.v, b.v), unit: units.Mul(a.unit, b.unit)}
}

// String renders "<x y z>" with two decimals, followed by the unit when there is one.
func (a Vector3) String() string {
	s := fmt.Sprintf("<%.2f %.2f %.2f>", a.v.X, a.v.Y, a.v.Z)
	if !a.unit.IsNone() {
		s += " " + a.unit.String()
	}
	return s
}
