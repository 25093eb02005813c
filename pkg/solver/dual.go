package solver

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/OpenTraceLab/OpenTracePassives/pkg/catalog"
	"github.com/OpenTraceLab/OpenTracePassives/pkg/passive"
)

// Closest returns the single catalog part nearest to goal.
func Closest(cat *catalog.Catalog, goal float64) (*Network, error) {
	if !validGoal(goal) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidGoal, goal)
	}
	part, err := cat.Nearest(goal)
	if err != nil {
		return nil, err
	}
	return &Network{
		Method:   Single,
		Topology: passive.Series,
		Goal:     goal,
		Achieved: part,
		Error:    relativeError(part.Value, goal),
		Parts:    []passive.Component{part},
	}, nil
}

// DualAdditive finds two parts whose values sum close to goal.
func DualAdditive(cat *catalog.Catalog, goal float64) (*Network, error) {
	return defaultSearch().dual(cat, goal, passive.AdditiveMode)
}

// DualPiggyback finds two parts whose reciprocal sum lands close to goal.
func DualPiggyback(cat *catalog.Catalog, goal float64) (*Network, error) {
	return defaultSearch().dual(cat, goal, passive.PiggybackMode)
}

// Dual runs the pair search for the given combination mode using the
// default sweep.
func Dual(cat *catalog.Catalog, goal float64, mode passive.Mode) (*Network, error) {
	return defaultSearch().dual(cat, goal, mode)
}

// pairSearch tracks the best pair seen so far.
type pairSearch struct {
	search
	cat  *catalog.Catalog
	goal float64
	mode passive.Mode
	best *Network
}

func (s search) dual(cat *catalog.Catalog, goal float64, mode passive.Mode) (*Network, error) {
	if !validGoal(goal) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidGoal, goal)
	}
	if cat.Len() == 0 {
		return nil, ErrEmptyCatalog
	}

	ps := &pairSearch{search: s, cat: cat, goal: goal, mode: mode}
	var err error
	switch {
	case s.cfg.Strategy == Exhaustive:
		err = ps.exhaustive()
	case mode == passive.PiggybackMode:
		err = ps.sweepPiggyback()
	default:
		err = ps.sweepAdditive()
	}
	if err != nil {
		return nil, err
	}
	ps.best.Topology = passive.TopologyFor(cat.Kind, mode)
	return ps.best, nil
}

// sweepAdditive seeds p1 slightly above goal and walks downward. Once p1
// drops to goal/2 every remaining pair is a transposition of one already
// tried.
func (ps *pairSearch) sweepAdditive() error {
	i, err := ps.cat.NearestIndex(ps.goal * ps.cfg.AdditiveSeedBias)
	if err != nil {
		return err
	}
	if err := ps.tryFirst(i); err != nil {
		return err
	}
	for i--; i >= 0 && ps.best.Error != 0; i-- {
		if ps.cat.At(i).Value <= ps.goal/2 {
			break
		}
		if err := ps.tryFirst(i); err != nil {
			return err
		}
	}
	return nil
}

// sweepPiggyback seeds p1 a little under 2*goal and walks upward to the end
// of the catalog.
func (ps *pairSearch) sweepPiggyback() error {
	i, err := ps.cat.NearestIndex(2 * ps.goal * ps.cfg.PiggybackSeedBias)
	if err != nil {
		return err
	}
	if err := ps.tryFirst(i); err != nil {
		return err
	}
	for i++; i < ps.cat.Len() && ps.best.Error != 0; i++ {
		if err := ps.tryFirst(i); err != nil {
			return err
		}
	}
	return nil
}

func (ps *pairSearch) exhaustive() error {
	n := ps.cat.Len()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if err := ps.try(ps.cat.At(i), ps.cat.At(j)); err != nil {
				return err
			}
			if ps.best.Error == 0 {
				return nil
			}
		}
	}
	return nil
}

// tryFirst fixes p1 at index i and pairs it with its nearest complement.
func (ps *pairSearch) tryFirst(i int) error {
	p1 := ps.cat.At(i)
	p2, err := ps.complement(p1)
	if err != nil {
		return err
	}
	return ps.try(p1, p2)
}

// complement returns the part that, combined with p1, lands closest to goal.
func (ps *pairSearch) complement(p1 passive.Component) (passive.Component, error) {
	if ps.mode == passive.AdditiveMode {
		return ps.cat.Nearest(ps.goal - p1.Value)
	}
	den := 1/ps.goal - 1/p1.Value
	if den <= 0 {
		// p1 <= goal: no finite partner reaches goal, the largest gets closest.
		return ps.cat.Max()
	}
	return ps.cat.Nearest(1 / den)
}

func (ps *pairSearch) try(p1, p2 passive.Component) error {
	achieved, err := passive.Combine(ps.mode, p1, p2)
	if err != nil {
		return err
	}
	e := relativeError(achieved.Value, ps.goal)
	if ps.best != nil && e >= ps.best.Error {
		return nil
	}

	first := ps.best == nil
	ps.best = &Network{
		Method:   methodFor(ps.mode),
		Goal:     ps.goal,
		Achieved: achieved,
		Error:    e,
		Parts:    []passive.Component{p1, p2},
	}
	msg := "improved pair"
	if first {
		msg = "seed pair"
	}
	ps.log.Debug(msg,
		zap.Stringer("mode", ps.mode),
		zap.Float64("goal", ps.goal),
		zap.Float64("p1", p1.Value),
		zap.Float64("p2", p2.Value),
		zap.Float64("achieved", achieved.Value),
		zap.Float64("error", e))
	return nil
}
