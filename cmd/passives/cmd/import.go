package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTracePassives/internal/config"
	"github.com/OpenTraceLab/OpenTracePassives/pkg/catalog"
	"github.com/OpenTraceLab/OpenTracePassives/pkg/catalog/sqlite"
	"github.com/OpenTraceLab/OpenTracePassives/pkg/passive"
)

var errNoDatabase = errors.New("no catalog store: pass --db or set database in the config file")

var (
	importKind string
	removeKind string
	saveConfig bool
)

var importCmd = &cobra.Command{
	Use:   "import <catalog-file>",
	Short: "Store a catalog file in the SQLite catalog store",
	Long: `Parse a catalog file and store it in the SQLite catalog store, replacing
any catalog already stored for that kind. With --save-config the store is
recorded in the config file in use (or ~/.config/passives/config.yaml) so
later commands find it without --db.

Examples:
  passives import -k r E96_resistor_values.csv --db catalog.db
  passives import -k r E96_resistor_values.csv --db catalog.db --save-config
  passives import -k c RF_caps.csv --db catalog.db`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a catalog from the SQLite catalog store",
	Long: `Remove the stored catalog for a component kind.

Examples:
  passives remove -k l --db catalog.db`,
	Args: cobra.NoArgs,
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(removeCmd)

	importCmd.Flags().StringVarP(&importKind, "kind", "k", "r",
		"component kind: r, c or l")
	importCmd.Flags().BoolVar(&saveConfig, "save-config", false,
		"record the catalog store in the config file")
	removeCmd.Flags().StringVarP(&removeKind, "kind", "k", "",
		"component kind: r, c or l")
	removeCmd.MarkFlagRequired("kind")
}

func openStore(sess *session) (*sqlite.Store, error) {
	if sess.cfg.Database == "" {
		return nil, errNoDatabase
	}
	return sqlite.New(sess.cfg.Database)
}

func runImport(cmd *cobra.Command, args []string) error {
	kind, err := passive.ParseKind(importKind)
	if err != nil {
		return err
	}
	filename := args[0]

	sess, err := newSession()
	if err != nil {
		return err
	}
	defer sess.close()

	lib := catalog.NewLibrary()
	lib.SetLogger(sess.logger)
	cat, err := lib.LoadFile(kind, filename)
	if err != nil {
		return err
	}

	store, err := openStore(sess)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Save(cmd.Context(), cat, filename); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d %s values from %s into %s\n",
		cat.Len(), kind, filename, sess.cfg.Database)

	if saveConfig {
		return saveSessionConfig(cmd, sess)
	}
	return nil
}

// saveSessionConfig writes the effective config back to the file it came
// from, or to the default location when none was loaded.
func saveSessionConfig(cmd *cobra.Command, sess *session) error {
	path := sess.cfgPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	if err := sess.cfg.MakeAbsolute(); err != nil {
		return err
	}
	if err := sess.cfg.Save(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved config to %s\n", path)
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	kind, err := passive.ParseKind(removeKind)
	if err != nil {
		return err
	}

	sess, err := newSession()
	if err != nil {
		return err
	}
	defer sess.close()

	store, err := openStore(sess)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Delete(cmd.Context(), kind); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s catalog from %s\n", kind, sess.cfg.Database)
	return nil
}
