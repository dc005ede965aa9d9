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

package units

// Operator names carried by IncompatibleUnitsError.
const (
	OpAdd      = "add"
	OpSubtract = "subtract"
	OpCompare  = "compare"
)

// Unit is a physical dimension with an optional display name.
// The zero value is None, the dimensionless unnamed identity.
type Unit struct {
	dim  Dimension
	name string
}

// None is the "no unit" identity for multiplication and division.
var None = Unit{}

// SI base units.
var (
	Kilogram = MustNew(1).WithName("kilogram")
	Meter    = MustNew(0, 1).WithName("meter")
	Second   = MustNew(0, 0, 1).WithName("second")
	Kelvin   = MustNew(0, 0, 0, 1).WithName("kelvin")
	Ampere   = MustNew(0, 0, 0, 0, 1).WithName("ampere")
	Mole     = MustNew(0, 0, 0, 0, 0, 1).WithName("mole")
	Candela  = MustNew(0, 0, 0, 0, 0, 0, 1).WithName("candela")
)

// New returns an unnamed unit with the given exponents, zero-padded to seven entries.
func New(exponents ...float64) (Unit, error) {
	d, err := NewDimension(exponents...)
	if err != nil {
		return None, err
	}
	return Unit{dim: d}, nil
}

// MustNew is like New but panics on more than seven exponents.
// It is intended for package-level unit definitions.
func MustNew(exponents ...float64) Unit {
	u, err := New(exponents...)
	if err != nil {
		panic(err)
	}
	return u
}

// FromDimension returns an unnamed unit for d.
func FromDimension(d Dimension) Unit {
	return Unit{dim: d.canonical()}
}

// WithName returns a copy of u carrying the given display name.
func (u Unit) WithName(name string) Unit {
	u.name = name
	return u
}

// Dimension returns the exponent vector of u.
func (u Unit) Dimension() Dimension {
	return u.dim
}

// Name returns the display name of u, or "" when none is attached.
func (u Unit) Name() string {
	return u.name
}

// IsNone reports whether u is the unnamed dimensionless unit.
func (u Unit) IsNone() bool {
	return u.name == "" && u.dim.IsZero()
}

// String returns the display name if one is attached, otherwise the base symbol composition.
func (u Unit) String() string {
	if u.name != "" {
		return u.name
	}
	return u.dim.String()
}

// Inverse negates every exponent. A named unit becomes "Inverse <name>".
func (u Unit) Inverse() Unit {
	inv := Unit{dim: u.dim.Neg()}
	if u.name != "" {
		inv.name = "Inverse " + u.name
	}
	return inv
}

// Mul returns the product of x and y. None is the identity and leaves the other operand untouched.
func Mul(x, y Unit) Unit {
	switch {
	case y.IsNone():
		return x
	case x.IsNone():
		return y
	}
	return Unit{dim: x.dim.Add(y.dim)}
}

// Div returns the quotient x / y. Dividing None by y yields the inverse of y.
func Div(x, y Unit) Unit {
	switch {
	case y.IsNone():
		return x
	case x.IsNone():
		return y.Inverse()
	}
	return Unit{dim: x.dim.Sub(y.dim)}
}

// Pow raises x to the power n, which may be fractional or negative.
func Pow(x Unit, n float64) Unit {
	if n == 1 {
		return x
	}
	return Unit{dim: x.dim.Scale(n)}
}

// Add returns x if x and y are dimensionally equal, so that only like quantities can be summed.
func Add(x, y Unit) (Unit, error) {
	if !DimensionallyEqual(x, y) {
		return None, NewIncompatibleUnitsError(OpAdd, x, y)
	}
	return x, nil
}

// Sub is the subtraction counterpart of Add.
func Sub(x, y Unit) (Unit, error) {
	if !DimensionallyEqual(x, y) {
		return None, NewIncompatibleUnitsError(OpSubtract, x, y)
	}
	return x, nil
}

// DimensionallyEqual reports whether x and y have identical exponent vectors, ignoring names.
func DimensionallyEqual(x, y Unit) bool {
	return x.dim == y.dim
}

// Equal reports display equality: identical exponent vectors and agreeing names.
// Two named units must carry the same name; a named and an unnamed unit are never equal.
func Equal(x, y Unit) bool {
	return x.dim == y.dim && x.name == y.name
}
