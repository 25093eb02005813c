package solver

import (
	"fmt"
	"strings"
)

// Strategy selects how pair searches explore the catalog.
type Strategy int

const (
	// Sweep seeds a pair with the nearest-value search and refines it with a
	// single index walk. It is fast but not globally optimal.
	Sweep Strategy = iota

	// Exhaustive evaluates every unordered pair of catalog parts.
	Exhaustive
)

func (s Strategy) String() string {
	if s == Exhaustive {
		return "exhaustive"
	}
	return "sweep"
}

// ParseStrategy converts a strategy name.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sweep":
		return Sweep, nil
	case "exhaustive":
		return Exhaustive, nil
	}
	return Sweep, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Config controls the pair searches.
type Config struct {
	Strategy Strategy

	// AdditiveSeedBias scales the goal when seeding an additive search. The
	// second part only adds, so the first pick starts slightly high.
	AdditiveSeedBias float64

	// PiggybackSeedBias scales 2*goal when seeding a piggyback search.
	PiggybackSeedBias float64
}

// DefaultConfig returns the documented sweep settings.
func DefaultConfig() *Config {
	return &Config{
		Strategy:          Sweep,
		AdditiveSeedBias:  1.1,
		PiggybackSeedBias: 0.9,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Strategy != Sweep && c.Strategy != Exhaustive {
		return fmt.Errorf("%w: %d", ErrUnknownStrategy, c.Strategy)
	}
	if !(c.AdditiveSeedBias > 0) {
		return fmt.Errorf("solver: additive seed bias must be positive, got %g", c.AdditiveSeedBias)
	}
	if !(c.PiggybackSeedBias > 0) {
		return fmt.Errorf("solver: piggyback seed bias must be positive, got %g", c.PiggybackSeedBias)
	}
	return nil
}
