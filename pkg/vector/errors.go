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

import "errors"

var (
	// ErrZeroLength is returned when an operation divides by the length of a zero vector.
	ErrZeroLength = errors.New("zero-length vector")
	// ErrDomain is returned when the cosine of an angle falls outside [-1, 1].
	ErrDomain = errors.New("math domain error")
)
