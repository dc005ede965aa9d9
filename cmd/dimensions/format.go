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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/llm-d/llm-d-physical-units/pkg/units"
)

// parseUnit builds an unnamed unit from exponent arguments such as ["1,1", "-2"].
func parseUnit(args []string) (units.Unit, error) {
	var exps []float64
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			e, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return units.None, fmt.Errorf("invalid exponent %q: %w", field, err)
			}
			exps = append(exps, e)
		}
	}
	return units.New(exps...)
}

// describe renders a unit as "<symbols>", followed by its display name when it has one.
func describe(u units.Unit) string {
	symbols := u.Dimension().String()
	if symbols == "" {
		symbols = "dimensionless"
	}
	if u.Name() == "" {
		return symbols
	}
	return fmt.Sprintf("%s (%s)", symbols, u.Name())
}

func joinNames(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
