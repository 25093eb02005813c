package catalog

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/OpenTraceLab/OpenTracePassives/pkg/passive"
)

// File is a parsed catalog file.
type File struct {
	Entries []*Entry `parser:"EOL* @@*"`
}

// Entry is one record of a catalog file.
// Example: 4.75e3, 0.01
type Entry struct {
	Pos lexer.Position

	Value     float64   `parser:"@Number"`
	Tolerance float64   `parser:"Comma @Number"`
	Extra     []float64 `parser:"( Comma @Number )* EOL+"`
}

// Component converts the entry into a validated component of the given kind.
func (e *Entry) Component(kind passive.Kind) (passive.Component, error) {
	c, err := passive.New(e.Value, e.Tolerance, kind)
	if err != nil {
		return passive.Component{}, fmt.Errorf("catalog: %s: %w", e.Pos, err)
	}
	return c, nil
}

// Catalog converts every entry and returns them as a sorted, deduplicated catalog.
func (f *File) Catalog(kind passive.Kind) (*Catalog, error) {
	parts := make([]passive.Component, 0, len(f.Entries))
	for _, e := range f.Entries {
		c, err := e.Component(kind)
		if err != nil {
			return nil, err
		}
		parts = append(parts, c)
	}
	return FromUnsorted(kind, parts)
}
