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

package quantity

import (
	"fmt"

	"github.com/llm-d/llm-d-physical-units/pkg/units"
)

// Quantity is a numeric value tagged with a unit and an optional display name.
// Quantities are immutable; every operation returns a new value.
type Quantity[T Numeric] struct {
	value T
	unit  units.Unit
	name  string
}

// MustQuantity returns the Quantity for value and unit, panicking when unit is units.None.
// It is intended for fixed definitions such as constant tables.
func MustQuantity[T Numeric](value T, unit units.Unit) Quantity[T] {
	q, ok := New(value, unit).Quantity()
	if !ok {
		panic(ErrNotAQuantity)
	}
	return q
}

// Value returns the raw value.
func (q Quantity[T]) Value() T {
	return q.value
}

// Unit returns the unit.
func (q Quantity[T]) Unit() units.Unit {
	return q.unit
}

// Name returns the display name, or "" when none is set.
func (q Quantity[T]) Name() string {
	return q.name
}

// WithName returns a copy of q carrying the given display name.
func (q Quantity[T]) WithName(name string) Quantity[T] {
	q.name = name
	return q
}

// WithResolvedName names q after the registry dimension its unit classifies as.
// Ambiguous matches are settled by d; a unit with no match leaves the name empty.
func (q Quantity[T]) WithResolvedName(reg *units.Registry, d units.Disambiguator) (Quantity[T], error) {
	name, err := reg.ResolveName(q.unit, d)
	if err != nil {
		return q, err
	}
	q.name = name
	return q, nil
}

// String renders "name: value unit", or "value unit" without a name.
func (q Quantity[T]) String() string {
	if q.name != "" {
		return fmt.Sprintf("%s: %v %s", q.name, q.value, q.unit)
	}
	return fmt.Sprintf("%v %s", q.value, q.unit)
}

// Add sums two quantities with dimensionally equal units.
func (q Quantity[T]) Add(other Quantity[T]) (Quantity[T], error) {
	u, err := units.Add(q.unit, other.unit)
	if err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{value: q.value + other.value, unit: u}, nil
}

// Sub subtracts two quantities with dimensionally equal units.
func (q Quantity[T]) Sub(other Quantity[T]) (Quantity[T], error) {
	u, err := units.Sub(q.unit, other.unit)
	if err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{value: q.value - other.value, unit: u}, nil
}

// Mul multiplies values and units independently. Units that cancel out yield a plain number.
func (q Quantity[T]) Mul(other Quantity[T]) Value[T] {
	return New(q.value*other.value, units.Mul(q.unit, other.unit))
}

// Scale multiplies the value by a plain number and keeps the unit.
// Multiplication commutes, so Scale covers both q*f and f*q.
func (q Quantity[T]) Scale(f T) Quantity[T] {
	return Quantity[T]{value: q.value * f, unit: q.unit}
}

// Div divides values and units independently. Units that cancel out yield a plain number.
// Division follows Go semantics: a zero integer divisor panics with a runtime error, a zero
// float divisor yields an infinity or NaN.
func (q Quantity[T]) Div(other Quantity[T]) Value[T] {
	return New(q.value/other.value, units.Div(q.unit, other.unit))
}

// DivScalar divides the value by a plain number and keeps the unit.
// Like Div, it panics when f is an integer zero.
func (q Quantity[T]) DivScalar(f T) Quantity[T] {
	return Quantity[T]{value: q.value / f, unit: q.unit}
}

// ScaleReciprocal computes n / q: the number divided by the value, with the inverted unit.
// Like Div, it panics when q holds an integer zero.
func (q Quantity[T]) ScaleReciprocal(n T) Quantity[T] {
	return Quantity[T]{value: n / q.value, unit: q.unit.Inverse()}
}

// Pow raises the value and the unit to the given exponent. An exponent of zero yields a plain number.
func (q Quantity[T]) Pow(exponent float64) Value[T] {
	return New(powScalar(q.value, exponent), units.Pow(q.unit, exponent))
}

// Round rounds the value half to even at ndigits decimal places and keeps the unit.
func (q Quantity[T]) Round(ndigits int) Quantity[T] {
	return Quantity[T]{value: roundScalar(q.value, ndigits), unit: q.unit}
}

// Compare returns -1, 0 or +1 depending on whether q is less than, equal to or greater than other.
// Units must be dimensionally equal, and complex values cannot be ordered. NaN sorts first;
// the boolean comparisons below treat it as unordered instead.
func (q Quantity[T]) Compare(other Quantity[T]) (int, error) {
	if err := q.checkComparable(other); err != nil {
		return 0, err
	}
	return compareScalar(q.value, other.value)
}

// Equal reports whether both values are equal. Units must be dimensionally equal.
func (q Quantity[T]) Equal(other Quantity[T]) (bool, error) {
	if err := q.checkComparable(other); err != nil {
		return false, err
	}
	return q.value == other.value, nil
}

// Greater reports q > other. Comparisons involving NaN are false.
func (q Quantity[T]) Greater(other Quantity[T]) (bool, error) {
	o, err := q.order(other)
	return o.greater, err
}

// Less reports q < other.
func (q Quantity[T]) Less(other Quantity[T]) (bool, error) {
	o, err := q.order(other)
	return o.less, err
}

// GreaterEqual reports q >= other.
func (q Quantity[T]) GreaterEqual(other Quantity[T]) (bool, error) {
	o, err := q.order(other)
	return o.greater || o.equal, err
}

// LessEqual reports q <= other.
func (q Quantity[T]) LessEqual(other Quantity[T]) (bool, error) {
	o, err := q.order(other)
	return o.less || o.equal, err
}

func (q Quantity[T]) order(other Quantity[T]) (ordering, error) {
	if err := q.checkComparable(other); err != nil {
		return ordering{}, err
	}
	return orderScalar(q.value, other.value)
}

func (q Quantity[T]) checkComparable(other Quantity[T]) error {
	if !units.DimensionallyEqual(q.unit, other.unit) {
		return units.NewIncompatibleUnitsError(units.OpCompare, q.unit, other.unit)
	}
	return nil
}
