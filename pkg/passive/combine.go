package passive

import (
	"fmt"
	"math"
)

// Mode selects how two components are combined.
//
// AdditiveMode sums the values: series for resistors and inductors, parallel
// for capacitors. PiggybackMode sums reciprocals: parallel for resistors and
// inductors, series for capacitors.
type Mode int

const (
	AdditiveMode Mode = iota
	PiggybackMode
)

func (m Mode) String() string {
	if m == PiggybackMode {
		return "piggyback"
	}
	return "additive"
}

// Topology is the physical arrangement a combination corresponds to.
type Topology int

const (
	Series Topology = iota
	Parallel
)

func (t Topology) String() string {
	if t == Parallel {
		return "parallel"
	}
	return "series"
}

// TopologyFor maps a combination mode onto the physical topology that
// realises it for the given kind.
func TopologyFor(kind Kind, mode Mode) Topology {
	additiveInParallel := kind == Capacitor
	if (mode == AdditiveMode) == additiveInParallel {
		return Parallel
	}
	return Series
}

// Combine dispatches to Add or Piggyback.
func Combine(mode Mode, a, b Component) (Component, error) {
	if mode == PiggybackMode {
		return Piggyback(a, b)
	}
	return Add(a, b)
}

// Add combines two components whose values sum.
//
// The tolerance is the worst-case absolute deviation of both parts,
// normalised by the combined value. Part errors are treated as uncorrelated,
// which is an engineering approximation and not a statistical bound.
func Add(a, b Component) (Component, error) {
	if err := checkOperands(a, b); err != nil {
		return Component{}, err
	}
	mag := a.Value + b.Value
	if mag == 0 {
		return Component{}, fmt.Errorf("%w: %g + %g", ErrDivisionByZero, a.Value, b.Value)
	}
	tol := math.Abs(a.Value*a.Tolerance+b.Value*b.Tolerance) / mag
	return Component{Value: mag, Tolerance: tol, Kind: Derived}, nil
}

// Piggyback combines two components through the reciprocal sum.
//
// The tolerance is obtained by recombining both parts at their worst-case
// high values v*(1+t) and normalising the shift by the nominal result.
func Piggyback(a, b Component) (Component, error) {
	if err := checkOperands(a, b); err != nil {
		return Component{}, err
	}
	mag, err := reciprocalSum(a.Value, b.Value)
	if err != nil {
		return Component{}, err
	}
	_, aHi := a.Bounds()
	_, bHi := b.Bounds()
	shifted, err := reciprocalSum(aHi, bHi)
	if err != nil {
		return Component{}, err
	}
	return Component{Value: mag, Tolerance: math.Abs(shifted-mag) / mag, Kind: Derived}, nil
}

func reciprocalSum(a, b float64) (float64, error) {
	if a == 0 || b == 0 {
		return 0, fmt.Errorf("%w: reciprocal of zero", ErrDivisionByZero)
	}
	den := 1/a + 1/b
	if den == 0 {
		return 0, fmt.Errorf("%w: 1/%g + 1/%g", ErrDivisionByZero, a, b)
	}
	return 1 / den, nil
}

func checkOperands(a, b Component) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return b.Validate()
}
