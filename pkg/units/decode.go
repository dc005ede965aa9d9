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

	"github.com/tidwall/gjson"
)

// DecodeJSON decodes a dimension table. The payload is a JSON object mapping each
// dimension name to either an exponent array or a two-element array of
// (exponent array, display name):
//
//	{
//	    "density": [1, -3, 0, 0, 0, 0, 0],
//	    "charge":  [[0, 0, 1, 0, 1, 0, 0], "Coulomb"]
//	}
//
// Entries are returned in document order. Exponent arrays shorter than seven are zero-padded.
func DecodeJSON(data []byte) ([]Entry, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidTable)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top-level value must be an object", ErrInvalidTable)
	}

	var (
		entries   []Entry
		decodeErr error
	)
	root.ForEach(func(key, value gjson.Result) bool {
		e, err := decodeEntry(key.String(), value)
		if err != nil {
			decodeErr = err
			return false
		}
		entries = append(entries, e)
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return entries, nil
}

func decodeEntry(name string, value gjson.Result) (Entry, error) {
	if name == "" {
		return Entry{}, fmt.Errorf("%w: empty dimension name", ErrInvalidTable)
	}
	if !value.IsArray() {
		return Entry{}, fmt.Errorf("%w: %q must be an array", ErrInvalidTable, name)
	}

	items := value.Array()
	if len(items) > 0 && items[0].IsArray() {
		if len(items) != 2 || items[1].Type != gjson.String {
			return Entry{}, fmt.Errorf("%w: %q must be [exponents, display name]", ErrInvalidTable, name)
		}
		d, err := decodeDimension(name, items[0])
		if err != nil {
			return Entry{}, err
		}
		return Entry{Name: name, Dimension: d, DisplayName: items[1].String()}, nil
	}

	d, err := decodeDimension(name, value)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Name: name, Dimension: d}, nil
}

func decodeDimension(name string, value gjson.Result) (Dimension, error) {
	items := value.Array()
	exponents := make([]float64, 0, len(items))
	for i, item := range items {
		if item.Type != gjson.Number {
			return Dimension{}, fmt.Errorf("%w: %q exponent %d is not a number", ErrInvalidTable, name, i)
		}
		exponents = append(exponents, item.Float())
	}
	d, err := NewDimension(exponents...)
	if err != nil {
		return Dimension{}, fmt.Errorf("%w: %q: %w", ErrInvalidTable, name, err)
	}
	return d, nil
}
