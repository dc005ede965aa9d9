// Package quantity pairs numeric values with units.
//
// A Quantity is a value of any integer, floating point or complex type tagged with a
// non-empty units.Unit. Constructors return a Value, a tagged union of a plain number
// and a Quantity: building a quantity with units.None, or any arithmetic that cancels the
// unit out, yields the plain-number variant.
//
//	v := quantity.New(3.0, units.Kilogram)
//	q, _ := v.Quantity()
//
//	sum, err := q.Add(quantity.MustQuantity(2.0, units.Kilogram)) // 5 kilogram
//	ratio := q.Div(sum)                                         // plain number 0.6
//
// Additive operations and comparisons require dimensionally equal units and fail with a
// *units.IncompatibleUnitsError otherwise. Scalar arithmetic follows Go semantics for the
// value type: integer division truncates and panics on a zero divisor, float division by zero
// yields an infinity or NaN. Ordering comparisons involving NaN are false.
package quantity
