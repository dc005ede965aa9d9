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
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTooManyExponents is returned when a dimension is built from more than seven exponents.
	ErrTooManyExponents = errors.New("too many exponents for SI dimension")
	// ErrUnknownDimension is returned by registry lookups for an unregistered name.
	ErrUnknownDimension = errors.New("unknown dimension")
	// ErrUnsupportedFormat is returned when a dimension table is requested in a format other than JSON.
	ErrUnsupportedFormat = errors.New("unsupported dimension table format")
	// ErrSourceNotFound is returned when a named dimension table does not exist in its source.
	ErrSourceNotFound = errors.New("dimension table not found")
	// ErrInvalidTable is returned when a dimension table cannot be decoded.
	ErrInvalidTable = errors.New("invalid dimension table")
	// ErrNoChoice is returned by an interactive disambiguator that received no usable answer.
	ErrNoChoice = errors.New("no dimension name chosen")
)

// IncompatibleUnitsError reports an operation that requires like units but got two different ones.
type IncompatibleUnitsError struct {
	// Operator is the operation that was refused ("add", "subtract", "compare").
	Operator string
	// Unit1 and Unit2 are the display strings of the operands.
	Unit1 string
	Unit2 string
}

func (e *IncompatibleUnitsError) Error() string {
	return fmt.Sprintf("Incompatible Units: cannot %s %s and %s", e.Operator, e.Unit1, e.Unit2)
}

// NewIncompatibleUnitsError builds an IncompatibleUnitsError for the given operator and operands.
func NewIncompatibleUnitsError(operator string, u1, u2 Unit) *IncompatibleUnitsError {
	return &IncompatibleUnitsError{Operator: operator, Unit1: u1.String(), Unit2: u2.String()}
}

// IsIncompatibleUnits reports whether err is, or wraps, an IncompatibleUnitsError.
func IsIncompatibleUnits(err error) bool {
	var iu *IncompatibleUnitsError
	return errors.As(err, &iu)
}

// AmbiguousNameError is returned when a dimension matches several registry names and
// the disambiguation policy refuses to choose.
type AmbiguousNameError struct {
	Dimension  Dimension
	Candidates []string
}

func (e *AmbiguousNameError) Error() string {
	return fmt.Sprintf("ambiguous dimension %q: matches %s", e.Dimension.String(), strings.Join(e.Candidates, ", "))
}
