// Package report renders components and solver results for terminals.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/OpenTraceLab/OpenTracePassives/pkg/passive"
	"github.com/OpenTraceLab/OpenTracePassives/pkg/solver"
)

const (
	seriesDiagram = "Vhi---P1---P2---Vlo"

	parallelDiagram = `    Vhi
     |
   ----
   |  |
  P1  P2
   |  |
   ----
     |
    Vlo`

	dividerDiagram = `Vhi---R1---+---R2---Vlo
           |
          Vout`
)

// Value formats v in catalog units of kind as an SI quantity, e.g. 4.7 kΩ or
// 3.3 pF. Derived values have no unit and are printed plainly.
func Value(v float64, kind passive.Kind) string {
	if kind == passive.Derived {
		return humanize.FtoaWithDigits(v, 6)
	}
	mantissa, prefix := humanize.ComputeSI(v * kind.Scale())
	// FtoaWithDigits truncates; round to four significant digits instead.
	return strconv.FormatFloat(mantissa, 'g', 4, 64) + " " + prefix + kind.Unit()
}

// Percent formats a fractional quantity as a percentage.
func Percent(f float64) string {
	return humanize.FtoaWithDigits(f*100, 4) + "%"
}

// Component renders a single part.
func Component(c passive.Component) string {
	return fmt.Sprintf("%s: %s, tol = %s", c.Kind, Value(c.Value, c.Kind), Percent(c.Tolerance))
}

// Network renders a search result with its topology diagram.
func Network(n *solver.Network) string {
	if n.IsZero() {
		return "no network: zero ratio requested"
	}

	kind := passive.Derived
	if len(n.Parts) > 0 {
		kind = n.Parts[0].Kind
	}

	var b strings.Builder
	switch n.Method {
	case solver.Single:
		fmt.Fprintf(&b, "closest: %s", Component(n.Achieved))
		fmt.Fprintf(&b, "\n\tgoal: %s, error: %s", Value(n.Goal, kind), Percent(n.Error))
		return b.String()
	case solver.Divider:
		fmt.Fprintf(&b, "ratio: %s, tol = %s", humanize.FtoaWithDigits(n.Achieved.Value, 6), Percent(n.Achieved.Tolerance))
		fmt.Fprintf(&b, "\n%s", dividerDiagram)
		fmt.Fprintf(&b, "\n\tgoal: %s, error: %s", humanize.FtoaWithDigits(n.Goal, 6), Percent(n.Error))
		fmt.Fprintf(&b, "\n\ttotal: %s", Value(n.Total.Value, kind))
	default:
		fmt.Fprintf(&b, "%s %s: %s, tol = %s", n.Topology, kind, Value(n.Achieved.Value, kind), Percent(n.Achieved.Tolerance))
		if n.Topology == passive.Parallel {
			fmt.Fprintf(&b, "\n%s", parallelDiagram)
		} else {
			fmt.Fprintf(&b, "\n%s", seriesDiagram)
		}
		fmt.Fprintf(&b, "\n\tgoal: %s, error: %s", Value(n.Goal, kind), Percent(n.Error))
	}

	labels := partLabels(n.Method)
	for i, p := range n.Parts {
		fmt.Fprintf(&b, "\n\t%s: %s", labels[i%len(labels)], Component(p))
	}
	return b.String()
}

func partLabels(m solver.Method) []string {
	if m == solver.Divider {
		return []string{"R1", "R2"}
	}
	return []string{"P1", "P2"}
}

// Write renders each network separated by a blank line.
func Write(w io.Writer, nets ...*solver.Network) error {
	for i, n := range nets {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, Network(n)); err != nil {
			return err
		}
	}
	return nil
}
