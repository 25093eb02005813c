// Package passive models discrete passive components and the arithmetic for
// combining two of them into a single equivalent part.
package passive

import (
	"fmt"
	"math"
)

// Component is one catalog entry or the equivalent of a combined pair.
//
// Value is expressed in catalog units: ohms for resistors, picofarads for
// capacitors and nanohenries for inductors. Tolerance is fractional, so 0.01
// means ±1%.
type Component struct {
	Value     float64
	Tolerance float64
	Kind      Kind
}

// New returns a validated component.
func New(value, tolerance float64, kind Kind) (Component, error) {
	c := Component{Value: value, Tolerance: tolerance, Kind: kind}
	if err := c.Validate(); err != nil {
		return Component{}, err
	}
	return c, nil
}

// Validate checks Value > 0 and Tolerance >= 0, both finite.
func (c Component) Validate() error {
	if math.IsNaN(c.Value) || math.IsInf(c.Value, 0) || c.Value <= 0 {
		return fmt.Errorf("%w: value %g", ErrInvalidValue, c.Value)
	}
	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance < 0 {
		return fmt.Errorf("%w: tolerance %g", ErrInvalidValue, c.Tolerance)
	}
	return nil
}

// IsZero reports whether c is the zero component.
func (c Component) IsZero() bool {
	return c == Component{}
}

// Bounds returns the worst-case low and high values implied by the tolerance.
func (c Component) Bounds() (lo, hi float64) {
	return c.Value * (1 - c.Tolerance), c.Value * (1 + c.Tolerance)
}

func (c Component) String() string {
	return fmt.Sprintf("%s: %g, tol = %g", c.Kind, c.Value, c.Tolerance)
}
