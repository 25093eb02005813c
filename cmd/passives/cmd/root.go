package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose      bool
	outputJSON   bool
	configPath   string
	resFile      string
	capFile      string
	indFile      string
	dbPath       string
	strategyName string
)

var rootCmd = &cobra.Command{
	Use:   "passives",
	Short: "Find standard passive component values and networks",
	Long: `Find the closest standard resistor, capacitor or inductor to a target
value, the best two-part series or parallel network, or a resistive divider.

Resistances are in ohms, capacitances in picofarads and inductances in
nanohenries. Values may carry an SI prefix and unit (4.7k, 3.3pF, 12nH).

Examples:
  passives closest -k r 4700                          # Closest single resistor
  passives pair -k c 3.3                              # Closest cap and best pairs
  passives divider 0.5 1k 100k                        # Divider with 1k..100k total
  passives import -k r E96.csv --db catalog.db        # Store a catalog in SQLite
  passives catalog --db catalog.db                    # Summarise stored catalogs`,
	Version:       "0.3.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	flags.BoolVar(&outputJSON, "json", false, "output results as JSON")
	flags.StringVar(&configPath, "config", "", "config file (default: $PASSIVES_CONFIG, ./passives.yaml, ~/.config/passives/config.yaml)")
	flags.StringVar(&resFile, "r-file", "", "file of available resistor values")
	flags.StringVar(&capFile, "c-file", "", "file of available capacitor values")
	flags.StringVar(&indFile, "l-file", "", "file of available inductor values")
	flags.StringVar(&dbPath, "db", "", "SQLite catalog store")
	flags.StringVar(&strategyName, "strategy", "", "pair search strategy: sweep or exhaustive")
}
