package solver

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTracePassives/pkg/catalog"
	"github.com/OpenTraceLab/OpenTracePassives/pkg/passive"
)

func TestClosestScenario(t *testing.T) {
	n, err := Closest(scenarioCatalog(t), 65)
	require.NoError(t, err)
	assert.Equal(t, Single, n.Method)
	assert.Equal(t, 47.0, n.Achieved.Value)
	require.Len(t, n.Parts, 1)
	assert.InDelta(t, 18.0/65.0, n.Error, 1e-12)

	_, err = Closest(scenarioCatalog(t), 0)
	assert.ErrorIs(t, err, ErrInvalidGoal)
}

func TestDualAdditiveScenario(t *testing.T) {
	got, err := DualAdditive(scenarioCatalog(t), 65)
	require.NoError(t, err)

	r := func(v float64) passive.Component {
		return passive.Component{Value: v, Tolerance: 0.01, Kind: passive.Resistor}
	}
	want := &Network{
		Method:   AdditivePair,
		Topology: passive.Series,
		Goal:     65,
		Achieved: passive.Component{
			Value:     67,
			Tolerance: math.Abs(47*0.01+20*0.01) / 67,
			Kind:      passive.Derived,
		},
		Error: math.Abs(67.0-65.0) / 65.0,
		Parts: []passive.Component{r(47), r(20)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DualAdditive mismatch (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 0.0308, got.Error, 1e-4)
}

func TestDualAdditiveExactMatchStops(t *testing.T) {
	got, err := DualAdditive(scenarioCatalog(t), 30)
	require.NoError(t, err)
	assert.Zero(t, got.Error)
	assert.Equal(t, 20.0, got.Parts[0].Value)
	assert.Equal(t, 10.0, got.Parts[1].Value)
}

func TestDualAdditiveCatalogEdges(t *testing.T) {
	cat := scenarioCatalog(t)

	// Goal far above the catalog: seed is the last entry.
	got, err := DualAdditive(cat, 1000)
	require.NoError(t, err)
	assert.Equal(t, 200.0, got.Achieved.Value)
	assert.InDelta(t, 0.8, got.Error, 1e-12)

	// Goal far below the catalog: sweep must not walk past index 0.
	got, err = DualAdditive(cat, 1)
	require.NoError(t, err)
	assert.Equal(t, 20.0, got.Achieved.Value)
}

func TestDualPiggyback(t *testing.T) {
	cat := scenarioCatalog(t)

	got, err := DualPiggyback(cat, 15)
	require.NoError(t, err)
	assert.Equal(t, PiggybackPair, got.Method)
	assert.Equal(t, passive.Parallel, got.Topology)
	assert.Equal(t, 20.0, got.Parts[0].Value)
	assert.Equal(t, 47.0, got.Parts[1].Value)
	assert.InDelta(t, 940.0/67.0, got.Achieved.Value, 1e-12)
	assert.InDelta(t, (15-940.0/67.0)/15, got.Error, 1e-12)

	got, err = DualPiggyback(cat, 10)
	require.NoError(t, err)
	assert.Zero(t, got.Error)
	assert.Equal(t, 20.0, got.Parts[0].Value)
	assert.Equal(t, 20.0, got.Parts[1].Value)
}

func TestDualPiggybackStopsAtCatalogEnd(t *testing.T) {
	got, err := DualPiggyback(scenarioCatalog(t), 60)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, got.Achieved.Value, 1e-12)
	assert.InDelta(t, 1.0/6.0, got.Error, 1e-12)
}

func TestDualPiggybackFirstPartBelowGoal(t *testing.T) {
	// Every part is below the goal, so no finite complement exists; the
	// largest partner gives the closest result.
	cat := newCatalog(t, passive.Resistor, 1, 2, 3)
	got, err := DualPiggyback(cat, 100)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, got.Achieved.Value, 1e-12)
	assert.Equal(t, 3.0, got.Parts[1].Value)
}

func TestDualCapacitorTopology(t *testing.T) {
	cat := newCatalog(t, passive.Capacitor, 1, 2.2, 4.7, 10)
	got, err := Dual(cat, 6.9, passive.AdditiveMode)
	require.NoError(t, err)
	assert.Equal(t, passive.Parallel, got.Topology)
	assert.InDelta(t, 6.9, got.Achieved.Value, 1e-12)

	got, err = Dual(cat, 2, passive.PiggybackMode)
	require.NoError(t, err)
	assert.Equal(t, passive.Series, got.Topology)
}

func TestDualErrors(t *testing.T) {
	cat := scenarioCatalog(t)
	for _, goal := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		_, err := DualAdditive(cat, goal)
		assert.ErrorIs(t, err, ErrInvalidGoal, "goal %g", goal)
		_, err = DualPiggyback(cat, goal)
		assert.ErrorIs(t, err, ErrInvalidGoal, "goal %g", goal)
	}

	empty := &catalog.Catalog{Kind: passive.Resistor}
	_, err := DualAdditive(empty, 10)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
	_, err = DualPiggyback(nil, 10)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestDualSingleEntryCatalog(t *testing.T) {
	cat := newCatalog(t, passive.Resistor, 47)
	got, err := DualAdditive(cat, 65)
	require.NoError(t, err)
	assert.Equal(t, 94.0, got.Achieved.Value)

	got, err = DualPiggyback(cat, 65)
	require.NoError(t, err)
	assert.InDelta(t, 23.5, got.Achieved.Value, 1e-12)
}

// seedError recomputes the error of the pair the sweep starts from.
func seedError(t *testing.T, cat *catalog.Catalog, goal float64, mode passive.Mode) float64 {
	t.Helper()
	cfg := DefaultConfig()
	var p1, p2 passive.Component
	var err error
	if mode == passive.AdditiveMode {
		p1, err = cat.Nearest(goal * cfg.AdditiveSeedBias)
		require.NoError(t, err)
		p2, err = cat.Nearest(goal - p1.Value)
	} else {
		p1, err = cat.Nearest(2 * goal * cfg.PiggybackSeedBias)
		require.NoError(t, err)
		if den := 1/goal - 1/p1.Value; den <= 0 {
			p2, err = cat.Max()
		} else {
			p2, err = cat.Nearest(1 / den)
		}
	}
	require.NoError(t, err)
	achieved, err := passive.Combine(mode, p1, p2)
	require.NoError(t, err)
	return math.Abs(achieved.Value-goal) / goal
}

func TestDualNeverWorseThanSeedNorBetterThanExhaustive(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	exhaustive := search{cfg: &Config{Strategy: Exhaustive, AdditiveSeedBias: 1.1, PiggybackSeedBias: 0.9}, log: defaultSearch().log}

	for round := 0; round < 40; round++ {
		cat := randomCatalog(t, rng, 2+rng.Intn(30))
		for q := 0; q < 20; q++ {
			goal := 1 + rng.Float64()*5000
			for _, mode := range []passive.Mode{passive.AdditiveMode, passive.PiggybackMode} {
				got, err := Dual(cat, goal, mode)
				require.NoError(t, err)
				require.False(t, math.IsNaN(got.Error))
				require.GreaterOrEqual(t, got.Error, 0.0)
				require.LessOrEqual(t, got.Error, seedError(t, cat, goal, mode), "%s goal %g", mode, goal)
				require.Len(t, got.Parts, 2)
				require.True(t, contains(cat, got.Parts[0]))
				require.True(t, contains(cat, got.Parts[1]))

				best, err := exhaustive.dual(cat, goal, mode)
				require.NoError(t, err)
				require.LessOrEqual(t, best.Error, got.Error, "%s goal %g", mode, goal)
			}
		}
	}
}

func TestDualDoesNotMutateCatalog(t *testing.T) {
	cat := scenarioCatalog(t)
	before := append([]passive.Component(nil), cat.Parts...)
	_, err := DualAdditive(cat, 65)
	require.NoError(t, err)
	_, err = DualPiggyback(cat, 15)
	require.NoError(t, err)
	assert.Equal(t, before, cat.Parts)
}
