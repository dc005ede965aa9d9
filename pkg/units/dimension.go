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

import (
	"fmt"
	"strconv"
	"strings"
)

// NumBaseDimensions is the number of SI base dimensions tracked by a Dimension.
const NumBaseDimensions = 7

// Indexes of the SI base dimensions inside a Dimension.
const (
	MassIndex = iota
	LengthIndex
	TimeIndex
	TemperatureIndex
	CurrentIndex
	AmountIndex
	LuminousIntensityIndex
)

// BaseSymbols are the SI base unit symbols, in Dimension order.
var BaseSymbols = [NumBaseDimensions]string{"kg", "m", "s", "K", "A", "mol", "cd"}

// Dimension is an exponent vector over the SI base dimensions.
// Exponents may be fractional or negative.
type Dimension [NumBaseDimensions]float64

// NewDimension builds a Dimension from up to seven exponents.
// Missing trailing exponents are zero.
func NewDimension(exponents ...float64) (Dimension, error) {
	var d Dimension
	if len(exponents) > NumBaseDimensions {
		return d, fmt.Errorf("%w: got %d, want at most %d", ErrTooManyExponents, len(exponents), NumBaseDimensions)
	}
	copy(d[:], exponents)
	return d.canonical(), nil
}

// IsZero reports whether every exponent is zero.
func (d Dimension) IsZero() bool {
	return d == Dimension{}
}

// Add returns the component-wise sum of d and o.
func (d Dimension) Add(o Dimension) Dimension {
	var r Dimension
	for i := range d {
		r[i] = d[i] + o[i]
	}
	return r.canonical()
}

// Sub returns the component-wise difference d - o.
func (d Dimension) Sub(o Dimension) Dimension {
	var r Dimension
	for i := range d {
		r[i] = d[i] - o[i]
	}
	return r.canonical()
}

// Scale returns every exponent multiplied by n.
func (d Dimension) Scale(n float64) Dimension {
	var r Dimension
	for i := range d {
		r[i] = d[i] * n
	}
	return r.canonical()
}

// Neg returns every exponent negated.
func (d Dimension) Neg() Dimension {
	return d.Scale(-1)
}

// String composes the base symbols of all nonzero exponents, e.g. "kg m^-1".
// The zero dimension yields the empty string.
func (d Dimension) String() string {
	tokens := make([]string, 0, NumBaseDimensions)
	for i, e := range d {
		switch e {
		case 0:
			continue
		case 1:
			tokens = append(tokens, BaseSymbols[i])
		default:
			tokens = append(tokens, BaseSymbols[i]+"^"+strconv.FormatFloat(e, 'g', -1, 64))
		}
	}
	return strings.Join(tokens, " ")
}

// canonical folds negative zero into zero.
func (d Dimension) canonical() Dimension {
	for i := range d {
		if d[i] == 0 {
			d[i] = 0
		}
	}
	return d
}
