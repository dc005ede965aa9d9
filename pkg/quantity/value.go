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

// Kind tags the variant held by a Value.
type Kind int

const (
	// KindNumber is a plain number without unit.
	KindNumber Kind = iota
	// KindQuantity is a Quantity.
	KindQuantity
)

func (k Kind) String() string {
	if k == KindQuantity {
		return "quantity"
	}
	return "number"
}

// Value is either a plain number or a Quantity.
// The zero value is the plain number zero.
type Value[T Numeric] struct {
	kind     Kind
	number   T
	quantity Quantity[T]
}

// Plain returns the plain-number variant holding v.
func Plain[T Numeric](v T) Value[T] {
	return Value[T]{kind: KindNumber, number: v}
}

// New returns a Quantity of value in unit, or the plain number value when unit is units.None.
func New[T Numeric](value T, unit units.Unit) Value[T] {
	return NewNamed(value, unit, "")
}

// NewNamed is like New and attaches a display name to the quantity.
// The name is dropped when unit is units.None.
func NewNamed[T Numeric](value T, unit units.Unit, name string) Value[T] {
	if unit.IsNone() {
		return Plain(value)
	}
	return Value[T]{kind: KindQuantity, quantity: Quantity[T]{value: value, unit: unit, name: name}}
}

// FromRegistry builds a quantity whose unit is looked up by dimension name; the quantity
// is named after the dimension.
func FromRegistry[T Numeric](value T, reg *units.Registry, dimension string) (Value[T], error) {
	u, err := reg.Lookup(dimension)
	if err != nil {
		return Value[T]{}, err
	}
	return NewNamed(value, u, dimension), nil
}

// Resolve builds a quantity named after the registry dimension its unit classifies as.
func Resolve[T Numeric](value T, unit units.Unit, reg *units.Registry, d units.Disambiguator) (Value[T], error) {
	name, err := reg.ResolveName(unit, d)
	if err != nil {
		return Value[T]{}, err
	}
	return NewNamed(value, unit, name), nil
}

// Kind returns the variant tag.
func (v Value[T]) Kind() Kind {
	return v.kind
}

// IsQuantity reports whether v holds a Quantity.
func (v Value[T]) IsQuantity() bool {
	return v.kind == KindQuantity
}

// Number returns the plain number and true, or false when v holds a Quantity.
func (v Value[T]) Number() (T, bool) {
	return v.number, v.kind == KindNumber
}

// Quantity returns the quantity and true, or false when v holds a plain number.
func (v Value[T]) Quantity() (Quantity[T], bool) {
	return v.quantity, v.kind == KindQuantity
}

// Raw returns the numeric value of either variant.
func (v Value[T]) Raw() T {
	if v.kind == KindQuantity {
		return v.quantity.value
	}
	return v.number
}

// Unit returns the unit of a quantity, or units.None for a plain number.
func (v Value[T]) Unit() units.Unit {
	if v.kind == KindQuantity {
		return v.quantity.unit
	}
	return units.None
}

func (v Value[T]) String() string {
	if v.kind == KindQuantity {
		return v.quantity.String()
	}
	return fmt.Sprint(v.number)
}

// Add sums two values of the same variant. Mixing a number and a quantity fails with ErrTypeMismatch.
func (v Value[T]) Add(other Value[T]) (Value[T], error) {
	if err := v.sameKind("add", other); err != nil {
		return Value[T]{}, err
	}
	if v.kind == KindNumber {
		return Plain(v.number + other.number), nil
	}
	q, err := v.quantity.Add(other.quantity)
	if err != nil {
		return Value[T]{}, err
	}
	return Value[T]{kind: KindQuantity, quantity: q}, nil
}

// Sub subtracts two values of the same variant. Mixing a number and a quantity fails with ErrTypeMismatch.
func (v Value[T]) Sub(other Value[T]) (Value[T], error) {
	if err := v.sameKind("subtract", other); err != nil {
		return Value[T]{}, err
	}
	if v.kind == KindNumber {
		return Plain(v.number - other.number), nil
	}
	q, err := v.quantity.Sub(other.quantity)
	if err != nil {
		return Value[T]{}, err
	}
	return Value[T]{kind: KindQuantity, quantity: q}, nil
}

// Mul multiplies any two values.
func (v Value[T]) Mul(other Value[T]) Value[T] {
	switch {
	case v.kind == KindQuantity && other.kind == KindQuantity:
		return v.quantity.Mul(other.quantity)
	case v.kind == KindQuantity:
		return Value[T]{kind: KindQuantity, quantity: v.quantity.Scale(other.number)}
	case other.kind == KindQuantity:
		return Value[T]{kind: KindQuantity, quantity: other.quantity.Scale(v.number)}
	}
	return Plain(v.number * other.number)
}

// Div divides any two values. A number divided by a quantity carries the inverted unit.
// A zero integer divisor panics, as Go integer division does.
func (v Value[T]) Div(other Value[T]) Value[T] {
	switch {
	case v.kind == KindQuantity && other.kind == KindQuantity:
		return v.quantity.Div(other.quantity)
	case v.kind == KindQuantity:
		return Value[T]{kind: KindQuantity, quantity: v.quantity.DivScalar(other.number)}
	case other.kind == KindQuantity:
		return Value[T]{kind: KindQuantity, quantity: other.quantity.ScaleReciprocal(v.number)}
	}
	return Plain(v.number / other.number)
}

// Pow raises v to the given exponent.
func (v Value[T]) Pow(exponent float64) Value[T] {
	if v.kind == KindQuantity {
		return v.quantity.Pow(exponent)
	}
	return Plain(powScalar(v.number, exponent))
}

// Round rounds half to even at ndigits decimal places, keeping any unit.
func (v Value[T]) Round(ndigits int) Value[T] {
	if v.kind == KindQuantity {
		return Value[T]{kind: KindQuantity, quantity: v.quantity.Round(ndigits)}
	}
	return Plain(roundScalar(v.number, ndigits))
}

// Compare orders two values of the same variant.
func (v Value[T]) Compare(other Value[T]) (int, error) {
	if err := v.sameKind(units.OpCompare, other); err != nil {
		return 0, err
	}
	if v.kind == KindQuantity {
		return v.quantity.Compare(other.quantity)
	}
	return compareScalar(v.number, other.number)
}

// Equal reports whether two values of the same variant are equal.
func (v Value[T]) Equal(other Value[T]) (bool, error) {
	if err := v.sameKind(units.OpCompare, other); err != nil {
		return false, err
	}
	if v.kind == KindQuantity {
		return v.quantity.Equal(other.quantity)
	}
	return v.number == other.number, nil
}

// Less reports v < other. Comparisons involving NaN are false.
func (v Value[T]) Less(other Value[T]) (bool, error) {
	o, err := v.order(other)
	return o.less, err
}

// Greater reports v > other.
func (v Value[T]) Greater(other Value[T]) (bool, error) {
	o, err := v.order(other)
	return o.greater, err
}

// LessEqual reports v <= other.
func (v Value[T]) LessEqual(other Value[T]) (bool, error) {
	o, err := v.order(other)
	return o.less || o.equal, err
}

// GreaterEqual reports v >= other.
func (v Value[T]) GreaterEqual(other Value[T]) (bool, error) {
	o, err := v.order(other)
	return o.greater || o.equal, err
}

func (v Value[T]) order(other Value[T]) (ordering, error) {
	if err := v.sameKind(units.OpCompare, other); err != nil {
		return ordering{}, err
	}
	if v.kind == KindQuantity {
		return v.quantity.order(other.quantity)
	}
	return orderScalar(v.number, other.number)
}

func (v Value[T]) sameKind(op string, other Value[T]) error {
	if v.kind != other.kind {
		return fmt.Errorf("%w: cannot %s %s and %s", ErrTypeMismatch, op, v.kind, other.kind)
	}
	return nil
}
