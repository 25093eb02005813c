// Package config loads the passives configuration file.
//
// The file names the catalog file for each component kind, an optional
// SQLite catalog store, the pair search strategy and the log level.
//
// Config file locations (priority order):
//  1. $PASSIVES_CONFIG
//  2. ./passives.yaml
//  3. ~/.config/passives/config.yaml
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/OpenTracePassives/internal/logging"
	"github.com/OpenTraceLab/OpenTracePassives/pkg/passive"
	"github.com/OpenTraceLab/OpenTracePassives/pkg/solver"
)

// ErrNoCatalogSource is returned when neither catalog files nor a database
// are configured.
var ErrNoCatalogSource = errors.New("config: no catalog files or database configured")

// DefaultCatalogFiles are the catalog file names looked up in the working
// directory for kinds that have no configured file.
var DefaultCatalogFiles = map[passive.Kind]string{
	passive.Resistor:  "E96_resistor_values.csv",
	passive.Capacitor: "RF_caps_20141109.csv",
	passive.Inductor:  "RF_ind_20141109.csv",
}

// Config is the on-disk configuration.
type Config struct {
	// Catalogs maps a kind name (resistor, capacitor, inductor or their
	// short letters) to a catalog file.
	Catalogs map[string]string `yaml:"catalogs,omitempty"`

	// Database is an optional SQLite catalog store. Kinds missing from
	// Catalogs are loaded from it.
	Database string `yaml:"database,omitempty"`

	Strategy string `yaml:"strategy,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

// DefaultConfig returns a configuration with no catalogs, the sweep strategy
// and info logging.
func DefaultConfig() *Config {
	return &Config{
		Catalogs: map[string]string{},
		Strategy: solver.Sweep.String(),
		LogLevel: logging.InfoLevel,
	}
}

// Load finds and loads the config file, or returns defaults if none found.
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path. Relative catalog and
// database paths are resolved against the directory of the file.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	cfg.resolve(filepath.Dir(path))

	if err := cfg.Validate(); err != nil {
		return nil, path, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, path, nil
}

// Save writes config to the specified path.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) applyDefaults() {
	if c.Catalogs == nil {
		c.Catalogs = map[string]string{}
	}
	if c.Strategy == "" {
		c.Strategy = solver.Sweep.String()
	}
	if c.LogLevel == "" {
		c.LogLevel = logging.InfoLevel
	}
}

func (c *Config) resolve(dir string) {
	for name, p := range c.Catalogs {
		c.Catalogs[name] = resolvePath(dir, p)
	}
	c.Database = resolvePath(dir, c.Database)
}

// MakeAbsolute rewrites relative catalog and database paths against the
// working directory so a saved file does not depend on where it is written.
func (c *Config) MakeAbsolute() error {
	for name, p := range c.Catalogs {
		abs, err := absPath(p)
		if err != nil {
			return fmt.Errorf("config: catalogs: %w", err)
		}
		c.Catalogs[name] = abs
	}
	abs, err := absPath(c.Database)
	if err != nil {
		return fmt.Errorf("config: database: %w", err)
	}
	c.Database = abs
	return nil
}

func absPath(p string) (string, error) {
	if p == "" || p == ":memory:" || filepath.IsAbs(p) {
		return p, nil
	}
	return filepath.Abs(p)
}

func resolvePath(dir, p string) string {
	if p == "" || p == ":memory:" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Validate checks kind names, the strategy and the log level.
func (c *Config) Validate() error {
	if _, err := c.CatalogFiles(); err != nil {
		return err
	}
	if _, err := solver.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// CatalogFiles returns the configured catalog files keyed by kind.
func (c *Config) CatalogFiles() (map[passive.Kind]string, error) {
	files := make(map[passive.Kind]string, len(c.Catalogs))
	for name, path := range c.Catalogs {
		kind, err := passive.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("config: catalogs: %w", err)
		}
		if _, dup := files[kind]; dup {
			return nil, fmt.Errorf("config: catalogs: %s listed twice", kind)
		}
		if path == "" {
			continue
		}
		files[kind] = path
	}
	return files, nil
}

// SetCatalog records path as the catalog file for kind.
func (c *Config) SetCatalog(kind passive.Kind, path string) {
	if c.Catalogs == nil {
		c.Catalogs = map[string]string{}
	}
	for name := range c.Catalogs {
		if k, err := passive.ParseKind(name); err == nil && k == kind {
			delete(c.Catalogs, name)
		}
	}
	c.Catalogs[kind.String()] = path
}

// AddDefaultCatalogs sets each unconfigured kind to its default file under
// dir when that file exists. Nothing is added when a database is configured,
// since the store already supplies those kinds.
func (c *Config) AddDefaultCatalogs(dir string) {
	if c.Database != "" {
		return
	}
	files, err := c.CatalogFiles()
	if err != nil {
		return
	}
	for kind, name := range DefaultCatalogFiles {
		if _, ok := files[kind]; ok {
			continue
		}
		if path := filepath.Join(dir, name); fileExists(path) {
			c.SetCatalog(kind, path)
		}
	}
}

// HasCatalogSource reports whether any catalog file or a database is set.
func (c *Config) HasCatalogSource() bool {
	for _, p := range c.Catalogs {
		if p != "" {
			return true
		}
	}
	return c.Database != ""
}

// SolverConfig builds the search configuration.
func (c *Config) SolverConfig() (*solver.Config, error) {
	strategy, err := solver.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}
	cfg := solver.DefaultConfig()
	cfg.Strategy = strategy
	return cfg, nil
}
