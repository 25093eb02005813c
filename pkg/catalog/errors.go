package catalog

import (
	"errors"

	"github.com/OpenTraceLab/OpenTracePassives/pkg/passive"
)

var (
	// ErrEmptyCatalog is passive.ErrEmptyCatalog, re-exported for callers that
	// only import this package.
	ErrEmptyCatalog = passive.ErrEmptyCatalog

	// ErrUnknownKind is passive.ErrUnknownKind.
	ErrUnknownKind = passive.ErrUnknownKind

	// ErrUnsorted is returned by New when parts are not strictly ascending.
	ErrUnsorted = errors.New("catalog: parts not in ascending order")

	// ErrDuplicate is returned by New when two parts share a value.
	ErrDuplicate = errors.New("catalog: duplicate part value")

	// ErrNoCatalog is returned when no catalog is loaded for a kind.
	ErrNoCatalog = errors.New("catalog: no catalog loaded")
)
