package catalog

import (
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/OpenTraceLab/OpenTracePassives/pkg/passive"
)

// Source hands out the catalog for a component kind.
type Source interface {
	Get(kind passive.Kind) (*Catalog, error)
}

// Library is an in-memory Source populated from catalog files or a store.
// Catalogs are read-only once added, so concurrent Get calls are safe.
type Library struct {
	mu       sync.RWMutex
	catalogs map[passive.Kind]*Catalog
	logger   *zap.Logger
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{
		catalogs: make(map[passive.Kind]*Catalog),
		logger:   zap.NewNop(),
	}
}

// SetLogger replaces the library logger. A nil logger disables logging.
func (l *Library) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = logger
}

// Add registers cat under its kind, replacing any previous catalog.
func (l *Library) Add(cat *Catalog) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.catalogs[cat.Kind] = cat
}

// Get implements Source.
func (l *Library) Get(kind passive.Kind) (*Catalog, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if cat, ok := l.catalogs[kind]; ok {
		return cat, nil
	}
	return nil, fmt.Errorf("%w for %s", ErrNoCatalog, kind)
}

// Kinds returns the loaded kinds in display order.
func (l *Library) Kinds() []passive.Kind {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var kinds []passive.Kind
	for _, k := range passive.Kinds {
		if _, ok := l.catalogs[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// LoadFile parses path and registers the result as the catalog for kind.
func (l *Library) LoadFile(kind passive.Kind, path string) (*Catalog, error) {
	parser, err := NewParser()
	if err != nil {
		return nil, err
	}
	return l.loadFile(parser, kind, path)
}

// LoadFiles parses one file per kind. Kinds are loaded in display order so
// errors are reported deterministically.
func (l *Library) LoadFiles(paths map[passive.Kind]string) error {
	if len(paths) == 0 {
		return nil
	}
	parser, err := NewParser()
	if err != nil {
		return err
	}
	kinds := make([]passive.Kind, 0, len(paths))
	for k := range paths {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	for _, kind := range kinds {
		if _, err := l.loadFile(parser, kind, paths[kind]); err != nil {
			return err
		}
	}
	return nil
}

func (l *Library) loadFile(parser *Parser, kind passive.Kind, path string) (*Catalog, error) {
	file, err := parser.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	cat, err := file.Catalog(kind)
	if err != nil {
		return nil, fmt.Errorf("catalog: load %s: %w", path, err)
	}
	l.Add(cat)

	l.mu.RLock()
	logger := l.logger
	l.mu.RUnlock()
	logger.Debug("catalog loaded",
		zap.Stringer("kind", kind),
		zap.Int("parts", cat.Len()),
		zap.String("path", path),
		zap.Int("duplicates", len(file.Entries)-cat.Len()))
	return cat, nil
}
