package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTracePassives/pkg/catalog"
	"github.com/OpenTraceLab/OpenTracePassives/pkg/passive"
	"github.com/OpenTraceLab/OpenTracePassives/pkg/solver"
)

var dividerCmd = &cobra.Command{
	Use:   "divider <ratio> [min-total] [max-total]",
	Short: "Find a resistive divider for a voltage ratio",
	Long: `Find resistors R1 (top) and R2 (bottom) such that R2/(R1+R2) is close to
the ratio, with the total resistance between min-total and max-total. A
max-total of 0, or none, uses the largest resistor in the catalog. A ratio of
0 prints an empty result and needs no catalog.

Examples:
  passives divider 0.5 1000 100000
  passives divider 0.3 10k 1M
  passives divider 0.25`,
	Args: cobra.RangeArgs(1, 3),
	RunE: runDivider,
}

func init() {
	rootCmd.AddCommand(dividerCmd)
}

func runDivider(cmd *cobra.Command, args []string) error {
	ratio, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return err
	}
	var bounds [2]float64
	for i, arg := range args[1:] {
		if bounds[i], err = parseValue(arg, passive.Resistor); err != nil {
			return err
		}
	}

	sess, err := newSession()
	if err != nil {
		return err
	}
	defer sess.close()

	// A zero ratio never reads the resistor catalog.
	var s *solver.Solver
	if ratio == 0 {
		s, err = solver.New(catalog.NewLibrary(), solver.WithLogger(sess.logger))
	} else {
		s, err = sess.solver(cmd.Context())
	}
	if err != nil {
		return err
	}
	net, err := s.Divider(ratio, bounds[0], bounds[1])
	if err != nil {
		return err
	}
	return writeNetworks(cmd.OutOrStdout(), net)
}
