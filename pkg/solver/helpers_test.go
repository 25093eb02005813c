package solver

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTracePassives/pkg/catalog"
	"github.com/OpenTraceLab/OpenTracePassives/pkg/passive"
)

func newCatalog(t *testing.T, kind passive.Kind, values ...float64) *catalog.Catalog {
	t.Helper()
	parts := make([]passive.Component, len(values))
	for i, v := range values {
		parts[i] = passive.Component{Value: v, Tolerance: 0.01, Kind: kind}
	}
	cat, err := catalog.New(kind, parts)
	require.NoError(t, err)
	return cat
}

// scenarioCatalog is the four-resistor catalog used throughout these tests.
func scenarioCatalog(t *testing.T) *catalog.Catalog {
	return newCatalog(t, passive.Resistor, 10, 20, 47, 100)
}

// randomCatalog draws n unique values from an E-series-like spread.
func randomCatalog(t *testing.T, rng *rand.Rand, n int) *catalog.Catalog {
	t.Helper()
	seen := make(map[float64]bool)
	var values []float64
	for len(values) < n {
		v := float64(1+rng.Intn(999)) * []float64{1, 10, 100}[rng.Intn(3)]
		if seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Float64s(values)
	return newCatalog(t, passive.Resistor, values...)
}

func contains(cat *catalog.Catalog, c passive.Component) bool {
	for _, p := range cat.Parts {
		if p == c {
			return true
		}
	}
	return false
}
