package solver

import (
	"math"

	"github.com/OpenTraceLab/OpenTracePassives/pkg/passive"
)

// Method identifies which search produced a Network.
type Method int

const (
	Single Method = iota
	AdditivePair
	PiggybackPair
	Divider
)

func (m Method) String() string {
	switch m {
	case AdditivePair:
		return "additive pair"
	case PiggybackPair:
		return "piggyback pair"
	case Divider:
		return "divider"
	default:
		return "single"
	}
}

func methodFor(mode passive.Mode) Method {
	if mode == passive.PiggybackMode {
		return PiggybackPair
	}
	return AdditivePair
}

// Network is the outcome of one search.
//
// Achieved is the realised value: a catalog part for Single, the combined
// equivalent for pairs, and the ratio R2/(R1+R2) for Divider. Error is
// relative to Goal. Parts holds the chosen catalog entries; for dividers they
// are ordered R1 then R2 and Total holds their series combination.
type Network struct {
	Method   Method
	Topology passive.Topology
	Goal     float64
	Achieved passive.Component
	Error    float64
	Parts    []passive.Component
	Total    passive.Component
}

// IsZero reports whether n is the empty result of a degenerate divider request.
func (n *Network) IsZero() bool {
	return n.Goal == 0 && len(n.Parts) == 0 && n.Achieved.IsZero()
}

func relativeError(achieved, goal float64) float64 {
	return math.Abs(achieved-goal) / goal
}

func validGoal(goal float64) bool {
	return !math.IsNaN(goal) && !math.IsInf(goal, 0) && goal > 0
}
