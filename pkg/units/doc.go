// Package units provides the dimensional algebra used by the quantity and vector packages.
//
// A physical dimension is described by an exponent vector over the seven SI base
// dimensions, always in this order:
//
//   - mass (kg)
//   - length (m)
//   - time (s)
//   - temperature (K)
//   - current (A)
//   - amount of substance (mol)
//   - luminous intensity (cd)
//
// The package contains:
//
//   - Dimension: fixed-length exponent vector with component-wise arithmetic
//   - Unit: a Dimension with an optional display name; the zero value is the "no unit" identity
//   - Registry: an explicitly owned name -> dimension table with classification and lookup
//   - Disambiguator: caller-supplied policy for resolving a dimension that matches several names
//   - Source: pluggable provider of additional dimension tables (JSON only)
//
// Example usage:
//
//	reg := units.NewDefaultRegistry()
//
//	momentum, err := reg.Lookup("momentum")
//	if err != nil {
//	    return err
//	}
//	force := units.Div(momentum, units.Second)
//
//	// ["force"]
//	names := reg.Classify(force)
//
//	// Only like units can be summed
//	if _, err := units.Add(units.Kilogram, units.Meter); err != nil {
//	    // Incompatible Units: cannot add kilogram and meter
//	}
//
// Equality comes in two flavours. DimensionallyEqual compares exponent vectors only and
// is what Add, Sub and quantity comparisons use. Equal additionally takes display names
// into account and is meant for identity checks on values.
//
// All Unit operations are pure and return fresh values. The Registry is the only mutable
// state and is safe for concurrent use.
package units
