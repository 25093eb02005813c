package solver

import (
	"errors"

	"github.com/OpenTraceLab/OpenTracePassives/pkg/passive"
)

// Re-exported from passive so callers can match solver failures without a
// second import.
var (
	ErrEmptyCatalog   = passive.ErrEmptyCatalog
	ErrInvalidGoal    = passive.ErrInvalidGoal
	ErrInvalidRatio   = passive.ErrInvalidRatio
	ErrInvalidValue   = passive.ErrInvalidValue
	ErrDivisionByZero = passive.ErrDivisionByZero
)

var (
	// ErrInvalidRange is returned for divider totals that are negative or inverted.
	ErrInvalidRange = errors.New("solver: invalid total resistance range")

	// ErrNoSolution is returned when no divider pair fits the total resistance range.
	ErrNoSolution = errors.New("solver: no pair within total resistance range")

	// ErrUnknownStrategy is returned for unrecognised search strategies.
	ErrUnknownStrategy = errors.New("solver: unknown strategy")
)
