// Package catalog holds the sorted sets of purchasable component values and
// the search primitives the solvers build on.
package catalog

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/OpenTraceLab/OpenTracePassives/pkg/passive"
)

// dedupTolerance is the relative distance under which two parsed values are
// considered the same catalog entry.
const dedupTolerance = 1e-12

// Catalog is the ordered set of available values for one component kind.
// Parts are strictly ascending by value and never modified after construction.
type Catalog struct {
	Kind  passive.Kind
	Parts []passive.Component
}

// New builds a catalog from parts that are already sorted and unique.
func New(kind passive.Kind, parts []passive.Component) (*Catalog, error) {
	c := &Catalog{Kind: kind, Parts: slices.Clone(parts)}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// FromUnsorted sorts parts by value and drops duplicates, keeping the entry
// with the tighter tolerance. Every part is stamped with kind.
func FromUnsorted(kind passive.Kind, parts []passive.Component) (*Catalog, error) {
	sorted := make([]passive.Component, 0, len(parts))
	for _, p := range parts {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		p.Kind = kind
		sorted = append(sorted, p)
	}
	slices.SortStableFunc(sorted, func(a, b passive.Component) int {
		switch {
		case a.Value < b.Value:
			return -1
		case a.Value > b.Value:
			return 1
		}
		return 0
	})

	out := sorted[:0]
	for _, p := range sorted {
		if n := len(out); n > 0 && scalar.EqualWithinRel(out[n-1].Value, p.Value, dedupTolerance) {
			if p.Tolerance < out[n-1].Tolerance {
				out[n-1] = p
			}
			continue
		}
		out = append(out, p)
	}
	return &Catalog{Kind: kind, Parts: out}, nil
}

// Validate checks every part and the strict ascending order.
func (c *Catalog) Validate() error {
	for i, p := range c.Parts {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("catalog: part %d: %w", i, err)
		}
		if i == 0 {
			continue
		}
		prev := c.Parts[i-1].Value
		if p.Value == prev {
			return fmt.Errorf("%w: %g at index %d", ErrDuplicate, p.Value, i)
		}
		if p.Value < prev {
			return fmt.Errorf("%w: %g follows %g at index %d", ErrUnsorted, p.Value, prev, i)
		}
	}
	return nil
}

// Len returns the number of parts. A nil catalog is empty.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Parts)
}

// At returns the part at index i.
func (c *Catalog) At(i int) passive.Component {
	return c.Parts[i]
}

// Min returns the smallest part.
func (c *Catalog) Min() (passive.Component, error) {
	if c.Len() == 0 {
		return passive.Component{}, ErrEmptyCatalog
	}
	return c.Parts[0], nil
}

// Max returns the largest part.
func (c *Catalog) Max() (passive.Component, error) {
	if c.Len() == 0 {
		return passive.Component{}, ErrEmptyCatalog
	}
	return c.Parts[len(c.Parts)-1], nil
}

// NearestIndex returns the index of the part whose value is closest to goal.
//
// The range is halved by comparing goal against the midpoint, stopping early
// on an exact match. Once the range is exhausted goal lies between two
// neighbours and the closer one wins; on a tie the lower index wins. Goals
// outside the catalog resolve to the boundary part.
func (c *Catalog) NearestIndex(goal float64) (int, error) {
	if c.Len() == 0 {
		return 0, ErrEmptyCatalog
	}
	if math.IsNaN(goal) {
		return 0, fmt.Errorf("%w: NaN", passive.ErrInvalidGoal)
	}

	lo, hi := 0, len(c.Parts)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		v := c.Parts[mid].Value
		switch {
		case goal == v:
			return mid, nil
		case goal < v:
			hi = mid - 1
		default:
			lo = mid + 1
		}
	}

	// lo == hi+1: Parts[hi] < goal < Parts[lo]
	if hi < 0 {
		return 0, nil
	}
	if lo >= len(c.Parts) {
		return len(c.Parts) - 1, nil
	}
	if goal-c.Parts[hi].Value <= c.Parts[lo].Value-goal {
		return hi, nil
	}
	return lo, nil
}

// Nearest returns the part whose value is closest to goal.
func (c *Catalog) Nearest(goal float64) (passive.Component, error) {
	i, err := c.NearestIndex(goal)
	if err != nil {
		return passive.Component{}, err
	}
	return c.Parts[i], nil
}
