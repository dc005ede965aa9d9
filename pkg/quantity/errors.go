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

import "errors"

var (
	// ErrTypeMismatch is returned when an operation receives a plain number where a quantity
	// is required, or the other way around.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrNotOrdered is returned when ordering complex values.
	ErrNotOrdered = errors.New("values are not ordered")
	// ErrNotAQuantity is returned by MustQuantity-style accessors on a plain number.
	ErrNotAQuantity = errors.New("value has no unit")
)
