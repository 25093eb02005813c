package passive

import "errors"

var (
	// ErrEmptyCatalog is returned when a search runs against a catalog with no parts.
	ErrEmptyCatalog = errors.New("passive: empty catalog")

	// ErrInvalidGoal is returned for goals that are NaN, infinite or not positive.
	ErrInvalidGoal = errors.New("passive: invalid goal value")

	// ErrInvalidRatio is returned for divider ratios outside (0, 1).
	ErrInvalidRatio = errors.New("passive: divider ratio must be in (0, 1)")

	// ErrInvalidValue is returned when a component value or tolerance is unusable.
	ErrInvalidValue = errors.New("passive: invalid component value")

	// ErrDivisionByZero is returned when a combination denominator vanishes.
	ErrDivisionByZero = errors.New("passive: division by zero")

	// ErrUnknownKind is returned when a component kind name is not recognised.
	ErrUnknownKind = errors.New("passive: unknown component kind")
)
