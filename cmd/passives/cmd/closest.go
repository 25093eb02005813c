package cmd

import (
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTracePassives/pkg/passive"
)

var closestKind string

var closestCmd = &cobra.Command{
	Use:   "closest <value>",
	Short: "Find the closest single catalog part",
	Long: `Find the catalog part closest to the target value.

Examples:
  passives closest -k r 4700
  passives closest -k c 3.3pF
  passives closest -k l --l-file inductors.csv 12`,
	Args: cobra.ExactArgs(1),
	RunE: runClosest,
}

func init() {
	rootCmd.AddCommand(closestCmd)

	closestCmd.Flags().StringVarP(&closestKind, "kind", "k", "r",
		"component kind: r, c or l")
}

func runClosest(cmd *cobra.Command, args []string) error {
	kind, err := passive.ParseKind(closestKind)
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
	net, err := s.Closest(kind, goal)
	if err != nil {
		return err
	}
	return writeNetworks(cmd.OutOrStdout(), net)
}
