package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTracePassives/pkg/catalog"
	"github.com/OpenTraceLab/OpenTracePassives/pkg/passive"
	"github.com/OpenTraceLab/OpenTracePassives/pkg/report"
)

var (
	catalogKind string
	showParts   bool
)

// CatalogInfo is the JSON form of a loaded catalog
type CatalogInfo struct {
	Kind  string     `json:"kind"`
	Count int        `json:"count"`
	Min   PartInfo   `json:"min"`
	Max   PartInfo   `json:"max"`
	Parts []PartInfo `json:"parts,omitempty"`
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Summarise the loaded catalogs",
	Long: `Show the number of parts and the value range of each loaded catalog,
from catalog files, the catalog store, or both.

Examples:
  passives catalog --r-file E96_resistor_values.csv
  passives catalog --db catalog.db -k c --parts`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringVarP(&catalogKind, "kind", "k", "",
		"only show this component kind")
	catalogCmd.Flags().BoolVarP(&showParts, "parts", "p", false,
		"list every part")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}
	defer sess.close()

	lib, err := sess.library(cmd.Context())
	if err != nil {
		return err
	}

	kinds := lib.Kinds()
	if catalogKind != "" {
		kind, err := passive.ParseKind(catalogKind)
		if err != nil {
			return err
		}
		kinds = []passive.Kind{kind}
	}

	infos := make([]CatalogInfo, 0, len(kinds))
	for _, kind := range kinds {
		cat, err := lib.Get(kind)
		if err != nil {
			return err
		}
		info, err := catalogInfo(cat)
		if err != nil {
			return err
		}
		infos = append(infos, info)
	}

	w := cmd.OutOrStdout()
	if outputJSON {
		return writeJSON(w, infos)
	}
	for _, info := range infos {
		fmt.Fprintf(w, "%s: %d parts, %s to %s\n", info.Kind, info.Count, info.Min.Display, info.Max.Display)
		for _, p := range info.Parts {
			fmt.Fprintf(w, "  %-12s tol = %s\n", p.Display, report.Percent(p.Tolerance))
		}
	}
	return nil
}

func catalogInfo(cat *catalog.Catalog) (CatalogInfo, error) {
	lo, err := cat.Min()
	if err != nil {
		return CatalogInfo{}, err
	}
	hi, err := cat.Max()
	if err != nil {
		return CatalogInfo{}, err
	}
	info := CatalogInfo{
		Kind:  cat.Kind.String(),
		Count: cat.Len(),
		Min:   partInfo(lo),
		Max:   partInfo(hi),
	}
	if showParts {
		for i := 0; i < cat.Len(); i++ {
			info.Parts = append(info.Parts, partInfo(cat.At(i)))
		}
	}
	return info, nil
}
