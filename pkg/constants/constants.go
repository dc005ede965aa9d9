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

// Package constants provides physical constants as quantities in SI base units.
// Values follow CODATA 2018.
package constants

import (
	"math"

	"github.com/llm-d/llm-d-physical-units/pkg/quantity"
	"github.com/llm-d/llm-d-physical-units/pkg/units"
	"github.com/llm-d/llm-d-physical-units/pkg/vector"
)

var acceleration = units.MustNew(0, 1, -2)

var (
	// StandardGravity is the standard acceleration of gravity at the Earth's surface.
	StandardGravity = quantity.MustQuantity(9.80665, acceleration).WithName("standard gravity")

	// GravityVector points StandardGravity down the z axis.
	GravityVector = vector.NewWithUnit(0, 0, -StandardGravity.Value(), acceleration)

	// SpeedOfLight in vacuum.
	SpeedOfLight = quantity.MustQuantity(299792458.0, units.MustNew(0, 1, -1)).WithName("speed of light")

	// VacuumPermittivity is the electric constant.
	VacuumPermittivity = quantity.MustQuantity(8.8541878128e-12, units.MustNew(-1, -3, 4, 0, 2)).WithName("vacuum permittivity")

	// CoulombConstant is 1 / (4 pi VacuumPermittivity).
	CoulombConstant = VacuumPermittivity.Scale(4 * math.Pi).ScaleReciprocal(1).WithName("Coulomb constant")

	// VacuumPermeability is the magnetic constant.
	VacuumPermeability = quantity.MustQuantity(1.25663706212e-6, units.MustNew(1, 1, -2, 0, -2)).WithName("vacuum permeability")

	// Planck is the Planck constant.
	Planck = quantity.MustQuantity(6.62607015e-34, units.MustNew(1, 2, -1)).WithName("Planck constant")

	// ReducedPlanck is Planck / (2 pi).
	ReducedPlanck = Planck.DivScalar(2 * math.Pi).WithName("reduced Planck constant")

	// ElementaryCharge is the charge of a proton.
	ElementaryCharge = quantity.MustQuantity(1.602176634e-19, units.MustNew(0, 0, 1, 0, 1)).WithName("elementary charge")

	// GasConstant is the molar gas constant.
	GasConstant = quantity.MustQuantity(8.314462618, units.MustNew(1, 2, -2, -1, 0, -1)).WithName("gas constant")

	// Boltzmann is the Boltzmann constant.
	Boltzmann = quantity.MustQuantity(1.380649e-23, units.MustNew(1, 2, -2, -1)).WithName("Boltzmann constant")

	// Avogadro is the Avogadro constant.
	Avogadro = quantity.MustQuantity(6.02214076e23, units.MustNew(0, 0, 0, 0, 0, -1)).WithName("Avogadro constant")
)

// All returns the scalar constants in a stable order.
func All() []quantity.Quantity[float64] {
	return []quantity.Quantity[float64]{
		StandardGravity,
		SpeedOfLight,
		VacuumPermittivity,
		CoulombConstant,
		VacuumPermeability,
		Planck,
		ReducedPlanck,
		ElementaryCharge,
		GasConstant,
		Boltzmann,
		Avogadro,
	}
}
