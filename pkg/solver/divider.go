package solver

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/OpenTraceLab/OpenTracePassives/pkg/catalog"
	"github.com/OpenTraceLab/OpenTracePassives/pkg/passive"
)

// Divide finds resistors R1 (top) and R2 (bottom) with R2/(R1+R2) close to
// ratio and minTotal <= R1+R2 <= maxTotal. A maxTotal of 0 uses the largest
// catalog value. A ratio of exactly 0 returns an empty Network without
// consulting the catalog.
func Divide(cat *catalog.Catalog, ratio, minTotal, maxTotal float64) (*Network, error) {
	return defaultSearch().divider(cat, ratio, minTotal, maxTotal)
}

type dividerSearch struct {
	search
	cat      *catalog.Catalog
	ratio    float64
	minTotal float64
	maxTotal float64
	best     *Network
}

func (s search) divider(cat *catalog.Catalog, ratio, minTotal, maxTotal float64) (*Network, error) {
	if ratio == 0 {
		return &Network{Method: Divider, Topology: passive.Series}, nil
	}
	if math.IsNaN(ratio) || ratio < 0 || ratio >= 1 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidRatio, ratio)
	}
	if cat.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	if !validBound(minTotal) || !validBound(maxTotal) {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, minTotal, maxTotal)
	}
	if maxTotal == 0 {
		top, _ := cat.Max()
		maxTotal = top.Value
	}
	if maxTotal < minTotal {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, minTotal, maxTotal)
	}

	ds := &dividerSearch{search: s, cat: cat, ratio: ratio, minTotal: minTotal, maxTotal: maxTotal}
	var err error
	if s.cfg.Strategy == Exhaustive {
		err = ds.exhaustive()
	} else {
		err = ds.sweep()
	}
	if err != nil {
		return nil, err
	}
	if ds.best == nil {
		return nil, fmt.Errorf("%w: ratio %g in [%g, %g]", ErrNoSolution, ratio, minTotal, maxTotal)
	}
	return ds.best, nil
}

// sweep starts R2 at the smallest value the range allows and walks upward
// while R2 stays under ratio*maxTotal.
func (ds *dividerSearch) sweep() error {
	maxR2 := ds.ratio * ds.maxTotal
	j, err := ds.cat.NearestIndex(ds.ratio * ds.minTotal)
	if err != nil {
		return err
	}
	if err := ds.tryBottom(j); err != nil {
		return err
	}
	for j++; j < ds.cat.Len() && !ds.solved(); j++ {
		if ds.cat.At(j).Value >= maxR2 {
			break
		}
		if err := ds.tryBottom(j); err != nil {
			return err
		}
	}
	return nil
}

func (ds *dividerSearch) exhaustive() error {
	n := ds.cat.Len()
	for j := 0; j < n && !ds.solved(); j++ {
		for k := 0; k < n; k++ {
			if err := ds.try(ds.cat.At(k), ds.cat.At(j)); err != nil {
				return err
			}
		}
	}
	return nil
}

// tryBottom fixes R2 at index j and solves R2/(R1+R2) = ratio for R1. If the
// nearest R1 puts the total outside the range its neighbours are tried.
func (ds *dividerSearch) tryBottom(j int) error {
	r2 := ds.cat.At(j)
	k, err := ds.cat.NearestIndex(r2.Value/ds.ratio - r2.Value)
	if err != nil {
		return err
	}
	if r1 := ds.cat.At(k); ds.inRange(r1, r2) {
		return ds.try(r1, r2)
	}
	for _, nk := range []int{k - 1, k + 1} {
		if nk < 0 || nk >= ds.cat.Len() {
			continue
		}
		if err := ds.try(ds.cat.At(nk), r2); err != nil {
			return err
		}
	}
	return nil
}

func (ds *dividerSearch) inRange(r1, r2 passive.Component) bool {
	total := r1.Value + r2.Value
	return total >= ds.minTotal && total <= ds.maxTotal
}

func (ds *dividerSearch) solved() bool {
	return ds.best != nil && ds.best.Error == 0
}

// try records (r1, r2) if the total is in range and the ratio error improves.
func (ds *dividerSearch) try(r1, r2 passive.Component) error {
	if !ds.inRange(r1, r2) {
		return nil
	}
	total, err := passive.Add(r1, r2)
	if err != nil {
		return err
	}
	achieved := r2.Value / total.Value
	e := relativeError(achieved, ds.ratio)
	if ds.best != nil && e >= ds.best.Error {
		return nil
	}

	ds.best = &Network{
		Method:   Divider,
		Topology: passive.Series,
		Goal:     ds.ratio,
		Achieved: passive.Component{
			Value:     achieved,
			Tolerance: ratioTolerance(r1, r2, achieved),
			Kind:      passive.Derived,
		},
		Error: e,
		Parts: []passive.Component{r1, r2},
		Total: total,
	}
	ds.log.Debug("divider candidate",
		zap.Float64("ratio", ds.ratio),
		zap.Float64("r1", r1.Value),
		zap.Float64("r2", r2.Value),
		zap.Float64("achieved", achieved),
		zap.Float64("error", e))
	return nil
}

// ratioTolerance is the worst-case relative ratio shift, taken with R1 at its
// low bound and R2 at its high bound.
func ratioTolerance(r1, r2 passive.Component, ratio float64) float64 {
	r1Lo, _ := r1.Bounds()
	_, r2Hi := r2.Bounds()
	den := r1Lo + r2Hi
	if den <= 0 {
		return 0
	}
	return math.Abs(r2Hi/den-ratio) / ratio
}

func validBound(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
