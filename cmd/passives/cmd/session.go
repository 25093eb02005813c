package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/OpenTracePassives/internal/config"
	"github.com/OpenTraceLab/OpenTracePassives/internal/logging"
	"github.com/OpenTraceLab/OpenTracePassives/pkg/catalog"
	"github.com/OpenTraceLab/OpenTracePassives/pkg/catalog/sqlite"
	"github.com/OpenTraceLab/OpenTracePassives/pkg/passive"
	"github.com/OpenTraceLab/OpenTracePassives/pkg/solver"
)

// session holds what a command needs after flags and config are merged.
type session struct {
	cfg     *config.Config
	cfgPath string // empty when running on defaults
	logger  *zap.Logger
}

func newSession() (*session, error) {
	cfg, path, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.ForVerbosity(verbose, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, cfgPath: path, logger: logger}, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig() (*config.Config, string, error) {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if configPath != "" {
		cfg, path, err = config.LoadFromPath(configPath)
	} else {
		cfg, path, err = config.Load()
	}
	if err != nil {
		return nil, path, err
	}

	overrides := map[passive.Kind]string{
		passive.Resistor:  resFile,
		passive.Capacitor: capFile,
		passive.Inductor:  indFile,
	}
	for kind, file := range overrides {
		if file != "" {
			cfg.SetCatalog(kind, file)
		}
	}
	if dbPath != "" {
		cfg.Database = dbPath
	}
	if strategyName != "" {
		cfg.Strategy = strategyName
	}
	if wd, err := os.Getwd(); err == nil {
		cfg.AddDefaultCatalogs(wd)
	}

	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}
	if verbose && path != "" {
		fmt.Fprintf(os.Stderr, "Using config: %s\n", path)
	}
	return cfg, path, nil
}

// library loads the stored catalogs, if any, then the catalog files on top.
func (s *session) library(ctx context.Context) (*catalog.Library, error) {
	if !s.cfg.HasCatalogSource() {
		return nil, config.ErrNoCatalogSource
	}

	lib := catalog.NewLibrary()
	if s.cfg.Database != "" {
		if _, err := os.Stat(s.cfg.Database); err != nil {
			return nil, fmt.Errorf("catalog store: %w", err)
		}
		store, err := sqlite.New(s.cfg.Database)
		if err != nil {
			return nil, err
		}
		defer func() { _ = store.Close() }()
		if lib, err = store.Library(ctx); err != nil {
			return nil, err
		}
		s.logger.Debug("catalog store opened",
			zap.String("path", s.cfg.Database),
			zap.Int("kinds", len(lib.Kinds())))
	}
	lib.SetLogger(s.logger)

	files, err := s.cfg.CatalogFiles()
	if err != nil {
		return nil, err
	}
	if err := lib.LoadFiles(files); err != nil {
		return nil, err
	}
	return lib, nil
}

func (s *session) solver(ctx context.Context) (*solver.Solver, error) {
	lib, err := s.library(ctx)
	if err != nil {
		return nil, err
	}
	sc, err := s.cfg.SolverConfig()
	if err != nil {
		return nil, err
	}
	return solver.New(lib, solver.WithConfig(sc), solver.WithLogger(s.logger))
}

// parseValue reads a quantity for kind. Plain numbers are in catalog units;
// anything with an SI prefix or unit is converted from base units.
func parseValue(arg string, kind passive.Kind) (float64, error) {
	arg = strings.TrimSpace(arg)
	if v, err := strconv.ParseFloat(arg, 64); err == nil {
		return v, nil
	}
	v, unit, err := humanize.ParseSI(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", arg, err)
	}
	if !unitMatches(unit, kind) {
		return 0, fmt.Errorf("invalid value %q: unit %q is not %s", arg, unit, kind.Unit())
	}
	return v / kind.Scale(), nil
}

func unitMatches(unit string, kind passive.Kind) bool {
	if unit == "" || unit == kind.Unit() {
		return true
	}
	return kind == passive.Resistor && strings.HasPrefix(strings.ToLower(unit), "ohm")
}
