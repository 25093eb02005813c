package solver

import (
	"go.uber.org/zap"

	"github.com/OpenTraceLab/OpenTracePassives/pkg/catalog"
	"github.com/OpenTraceLab/OpenTracePassives/pkg/passive"
)

// Solver runs searches against the catalogs of a Source.
type Solver struct {
	source catalog.Source
	search search
}

// Option configures a Solver.
type Option func(*Solver)

// WithConfig overrides the search configuration.
func WithConfig(cfg *Config) Option {
	return func(s *Solver) {
		if cfg != nil {
			s.search.cfg = cfg
		}
	}
}

// WithLogger sets the logger used for search tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Solver) {
		if logger != nil {
			s.search.log = logger
		}
	}
}

// New creates a solver over source.
func New(source catalog.Source, opts ...Option) (*Solver, error) {
	s := &Solver{source: source, search: defaultSearch()}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.search.cfg.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Closest returns the nearest single part of the given kind.
func (s *Solver) Closest(kind passive.Kind, goal float64) (*Network, error) {
	cat, err := s.source.Get(kind)
	if err != nil {
		return nil, err
	}
	return Closest(cat, goal)
}

// Pair runs the pair search for kind in the given combination mode.
func (s *Solver) Pair(kind passive.Kind, goal float64, mode passive.Mode) (*Network, error) {
	cat, err := s.source.Get(kind)
	if err != nil {
		return nil, err
	}
	return s.search.dual(cat, goal, mode)
}

// Additive is Pair in additive mode.
func (s *Solver) Additive(kind passive.Kind, goal float64) (*Network, error) {
	return s.Pair(kind, goal, passive.AdditiveMode)
}

// Piggyback is Pair in piggyback mode.
func (s *Solver) Piggyback(kind passive.Kind, goal float64) (*Network, error) {
	return s.Pair(kind, goal, passive.PiggybackMode)
}

// Divider searches the resistor catalog for a divider pair.
func (s *Solver) Divider(ratio, minTotal, maxTotal float64) (*Network, error) {
	if ratio == 0 {
		return s.search.divider(nil, ratio, minTotal, maxTotal)
	}
	cat, err := s.source.Get(passive.Resistor)
	if err != nil {
		return nil, err
	}
	return s.search.divider(cat, ratio, minTotal, maxTotal)
}

// All returns the closest single part followed by the best additive and
// piggyback pairs for goal.
func (s *Solver) All(kind passive.Kind, goal float64) ([]*Network, error) {
	closest, err := s.Closest(kind, goal)
	if err != nil {
		return nil, err
	}
	additive, err := s.Additive(kind, goal)
	if err != nil {
		return nil, err
	}
	piggyback, err := s.Piggyback(kind, goal)
	if err != nil {
		return nil, err
	}
	return []*Network{closest, additive, piggyback}, nil
}
