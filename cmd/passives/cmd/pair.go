package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTracePassives/pkg/passive"
	"github.com/OpenTraceLab/OpenTracePassives/pkg/solver"
)

var (
	pairKind string
	pairMode string
)

var pairCmd = &cobra.Command{
	Use:   "pair <value>",
	Short: "Find the best two-part networks for a value",
	Long: `Print the closest single part followed by the best additive and
piggyback pairs. Additive pairs are in series for resistors and inductors and
in parallel for capacitors; piggyback pairs use the other topology.

Examples:
  passives pair -k r 65
  passives pair -k c 3.3
  passives pair -k r --mode piggyback --strategy exhaustive 15k`,
	Args: cobra.ExactArgs(1),
	RunE: runPair,
}

func init() {
	rootCmd.AddCommand(pairCmd)

	pairCmd.Flags().StringVarP(&pairKind, "kind", "k", "r",
		"component kind: r, c or l")
	pairCmd.Flags().StringVarP(&pairMode, "mode", "m", "all",
		"networks to search: all, additive or piggyback")
}

func runPair(cmd *cobra.Command, args []string) error {
	kind, err := passive.ParseKind(pairKind)
	if err != nil {
		return err
	}
	goal, err := parseValue(args[0], kind)
	if err != nil {
		return err
	}

	sess, err := newSession()
	if err != nil {
		return err
	}
	defer sess.close()

	s, err := sess.solver(cmd.Context())
	if err != nil {
		return err
	}

	var nets []*solver.Network
	switch pairMode {
	case "all":
		nets, err = s.All(kind, goal)
	case "additive":
		var n *solver.Network
		n, err = s.Additive(kind, goal)
		nets = []*solver.Network{n}
	case "piggyback":
		var n *solver.Network
		n, err = s.Piggyback(kind, goal)
		nets = []*solver.Network{n}
	default:
		return fmt.Errorf("unknown mode %q (want all, additive or piggyback)", pairMode)
	}
	if err != nil {
		return err
	}
	return writeNetworks(cmd.OutOrStdout(), nets...)
}
