package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTracePassives/pkg/passive"
	"github.com/OpenTraceLab/OpenTracePassives/pkg/solver"
)

func TestValue(t *testing.T) {
	tests := []struct {
		v    float64
		kind passive.Kind
		want string
	}{
		{4700, passive.Resistor, "4.7 kΩ"},
		{47, passive.Resistor, "47 Ω"},
		{3.3, passive.Capacitor, "3.3 pF"},
		{100000, passive.Capacitor, "100 nF"},
		{12, passive.Inductor, "12 nH"},
		{0.25, passive.Derived, "0.25"},
	}
	for _, tt := range tests {
		if got := Value(tt.v, tt.kind); got != tt.want {
			t.Errorf("Value(%g, %s) = %q, want %q", tt.v, tt.kind, got, tt.want)
		}
	}
}

func TestComponent(t *testing.T) {
	got := Component(passive.Component{Value: 4700, Tolerance: 0.01, Kind: passive.Resistor})
	if got != "resistor: 4.7 kΩ, tol = 1%" {
		t.Errorf("unexpected rendering %q", got)
	}
}

func TestNetworkDiagrams(t *testing.T) {
	parts := []passive.Component{
		{Value: 47, Tolerance: 0.01, Kind: passive.Resistor},
		{Value: 20, Tolerance: 0.01, Kind: passive.Resistor},
	}

	series := Network(&solver.Network{
		Method:   solver.AdditivePair,
		Topology: passive.Series,
		Goal:     65,
		Achieved: passive.Component{Value: 67, Tolerance: 0.01},
		Error:    2.0 / 65.0,
		Parts:    parts,
	})
	for _, want := range []string{"series resistor: 67 Ω", "Vhi---P1---P2---Vlo", "goal: 65 Ω", "P1: resistor: 47 Ω", "P2: resistor: 20 Ω"} {
		if !strings.Contains(series, want) {
			t.Errorf("series rendering missing %q:\n%s", want, series)
		}
	}

	parallel := Network(&solver.Network{
		Method:   solver.PiggybackPair,
		Topology: passive.Parallel,
		Goal:     15,
		Achieved: passive.Component{Value: 14.03, Tolerance: 0.01},
		Parts:    parts,
	})
	if !strings.Contains(parallel, "  P1  P2") {
		t.Errorf("parallel rendering missing ladder:\n%s", parallel)
	}

	divider := Network(&solver.Network{
		Method:   solver.Divider,
		Topology: passive.Series,
		Goal:     0.5,
		Achieved: passive.Component{Value: 0.5, Tolerance: 0.01},
		Parts:    parts,
		Total:    passive.Component{Value: 67},
	})
	for _, want := range []string{"ratio: 0.5", "Vout", "R1: resistor: 47 Ω", "R2: resistor: 20 Ω", "total: 67 Ω"} {
		if !strings.Contains(divider, want) {
			t.Errorf("divider rendering missing %q:\n%s", want, divider)
		}
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	closest := &solver.Network{
		Method:   solver.Single,
		Goal:     65,
		Achieved: passive.Component{Value: 47, Tolerance: 0.01, Kind: passive.Resistor},
		Error:    18.0 / 65.0,
		Parts:    []passive.Component{{Value: 47, Tolerance: 0.01, Kind: passive.Resistor}},
	}
	if err := Write(&buf, closest, &solver.Network{Method: solver.Divider}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "closest: resistor: 47 Ω") || !strings.Contains(out, "no network") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
