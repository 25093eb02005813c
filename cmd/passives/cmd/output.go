package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/OpenTraceLab/OpenTracePassives/pkg/passive"
	"github.com/OpenTraceLab/OpenTracePassives/pkg/report"
	"github.com/OpenTraceLab/OpenTracePassives/pkg/solver"
)

// NetworkInfo is the JSON form of a search result
type NetworkInfo struct {
	Method    string     `json:"method"`
	Topology  string     `json:"topology,omitempty"`
	Kind      string     `json:"kind"`
	Goal      float64    `json:"goal"`
	Value     float64    `json:"value"`
	Tolerance float64    `json:"tolerance"`
	Error     float64    `json:"error"`
	Parts     []PartInfo `json:"parts,omitempty"`
	Total     *float64   `json:"total,omitempty"`
}

// PartInfo is the JSON form of a catalog part
type PartInfo struct {
	Kind      string  `json:"kind"`
	Value     float64 `json:"value"`
	Tolerance float64 `json:"tolerance"`
	Display   string  `json:"display"`
}

func partInfo(c passive.Component) PartInfo {
	return PartInfo{
		Kind:      c.Kind.String(),
		Value:     c.Value,
		Tolerance: c.Tolerance,
		Display:   report.Value(c.Value, c.Kind),
	}
}

func networkInfo(n *solver.Network) NetworkInfo {
	info := NetworkInfo{
		Method:    n.Method.String(),
		Kind:      passive.Derived.String(),
		Goal:      n.Goal,
		Value:     n.Achieved.Value,
		Tolerance: n.Achieved.Tolerance,
		Error:     n.Error,
	}
	if n.Method != solver.Single {
		info.Topology = n.Topology.String()
	}
	if len(n.Parts) > 0 {
		info.Kind = n.Parts[0].Kind.String()
	}
	for _, p := range n.Parts {
		info.Parts = append(info.Parts, partInfo(p))
	}
	if n.Method == solver.Divider && !n.IsZero() {
		total := n.Total.Value
		info.Total = &total
	}
	return info
}

// writeNetworks prints results either as reports or as a JSON array.
func writeNetworks(w io.Writer, nets ...*solver.Network) error {
	if !outputJSON {
		return report.Write(w, nets...)
	}
	infos := make([]NetworkInfo, 0, len(nets))
	for _, n := range nets {
		infos = append(infos, networkInfo(n))
	}
	return writeJSON(w, infos)
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
