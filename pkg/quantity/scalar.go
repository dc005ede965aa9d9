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
	"cmp"
	"fmt"
	"math"
	"math/cmplx"
	"reflect"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats/scalar"
)

// Numeric is the set of value types a Quantity can carry.
type Numeric interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// The helpers below dispatch on the reflect kind so that named numeric types are handled
// like their underlying type.

func powScalar[T Numeric](v T, e float64) T {
	rv := reflect.ValueOf(v)
	out := reflect.New(rv.Type()).Elem()
	switch {
	case rv.CanComplex():
		out.SetComplex(cmplx.Pow(rv.Complex(), complex(e, 0)))
	case rv.CanFloat():
		out.SetFloat(math.Pow(rv.Float(), e))
	case rv.CanInt():
		out.SetInt(int64(math.Pow(float64(rv.Int()), e)))
	default:
		out.SetUint(uint64(math.Pow(float64(rv.Uint()), e)))
	}
	return out.Interface().(T)
}

// roundScalar rounds half to even at ndigits decimal places. Negative ndigits round to
// tens, hundreds and so on. Complex values are rounded part-wise.
func roundScalar[T Numeric](v T, ndigits int) T {
	rv := reflect.ValueOf(v)
	out := reflect.New(rv.Type()).Elem()
	switch {
	case rv.CanComplex():
		c := rv.Complex()
		out.SetComplex(complex(scalar.RoundEven(real(c), ndigits), scalar.RoundEven(imag(c), ndigits)))
	case rv.CanFloat():
		out.SetFloat(scalar.RoundEven(rv.Float(), ndigits))
	case ndigits >= 0:
		return v
	case rv.CanInt():
		out.SetInt(int64(scalar.RoundEven(float64(rv.Int()), ndigits)))
	default:
		out.SetUint(uint64(scalar.RoundEven(float64(rv.Uint()), ndigits)))
	}
	return out.Interface().(T)
}

// compareScalar is a three-way comparison. NaN sorts before every other float, as in cmp.Compare;
// use orderScalar for the ordering operators.
func compareScalar[T Numeric](a, b T) (int, error) {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case ra.CanComplex():
		return 0, fmt.Errorf("%w: cannot order %v and %v", ErrNotOrdered, a, b)
	case ra.CanFloat():
		return cmp.Compare(ra.Float(), rb.Float()), nil
	case ra.CanInt():
		return cmp.Compare(ra.Int(), rb.Int()), nil
	default:
		return cmp.Compare(ra.Uint(), rb.Uint()), nil
	}
}

// ordering holds the outcome of the native <, > and == operators on two scalars.
// Every field is false when a NaN is involved.
type ordering struct {
	less, greater, equal bool
}

func orderScalar[T Numeric](a, b T) (ordering, error) {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case ra.CanComplex():
		return ordering{}, fmt.Errorf("%w: cannot order %v and %v", ErrNotOrdered, a, b)
	case ra.CanFloat():
		x, y := ra.Float(), rb.Float()
		return ordering{less: x < y, greater: x > y, equal: x == y}, nil
	case ra.CanInt():
		x, y := ra.Int(), rb.Int()
		return ordering{less: x < y, greater: x > y, equal: x == y}, nil
	default:
		x, y := ra.Uint(), rb.Uint()
		return ordering{less: x < y, greater: x > y, equal: x == y}, nil
	}
}
