package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/OpenTraceLab/OpenTracePassives/pkg/catalog"
	"github.com/OpenTraceLab/OpenTracePassives/pkg/passive"
)

// newTestStore creates an in-memory SQLite store for testing
func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

func testCatalog(t *testing.T, kind passive.Kind, values ...float64) *catalog.Catalog {
	t.Helper()
	parts := make([]passive.Component, len(values))
	for i, v := range values {
		parts[i] = passive.Component{Value: v, Tolerance: 0.01 * float64(i+1), Kind: kind}
	}
	cat, err := catalog.New(kind, parts)
	if err != nil {
		t.Fatalf("catalog.New failed: %v", err)
	}
	return cat
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	want := testCatalog(t, passive.Resistor, 10, 20, 47, 100)
	if err := store.Save(ctx, want, "E96.csv"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load(ctx, passive.Resistor)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Kind != passive.Resistor || got.Len() != want.Len() {
		t.Fatalf("unexpected catalog %+v", got)
	}
	for i := range want.Parts {
		if got.At(i) != want.At(i) {
			t.Errorf("part %d: got %+v, want %+v", i, got.At(i), want.At(i))
		}
	}
}

func TestSaveReplacesExisting(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.Save(ctx, testCatalog(t, passive.Capacitor, 1, 2, 3), "a"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(ctx, testCatalog(t, passive.Capacitor, 4.7), "b"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load(ctx, passive.Capacitor)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Len() != 1 || got.At(0).Value != 4.7 {
		t.Errorf("expected replaced catalog, got %v", got.Parts)
	}
}

func TestKindsAndDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for _, kind := range []passive.Kind{passive.Inductor, passive.Resistor} {
		if err := store.Save(ctx, testCatalog(t, kind, 1, 10), ""); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	kinds, err := store.Kinds(ctx)
	if err != nil {
		t.Fatalf("Kinds failed: %v", err)
	}
	if len(kinds) != 2 || kinds[0] != passive.Resistor || kinds[1] != passive.Inductor {
		t.Errorf("unexpected kinds %v", kinds)
	}

	if err := store.Delete(ctx, passive.Resistor); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Load(ctx, passive.Resistor); !errors.Is(err, catalog.ErrNoCatalog) {
		t.Errorf("expected ErrNoCatalog after delete, got %v", err)
	}

	lib, err := store.Library(ctx)
	if err != nil {
		t.Fatalf("Library failed: %v", err)
	}
	if ks := lib.Kinds(); len(ks) != 1 || ks[0] != passive.Inductor {
		t.Errorf("unexpected library kinds %v", ks)
	}
}

func TestSaveRejectsEmpty(t *testing.T) {
	store := newTestStore(t)
	empty := &catalog.Catalog{Kind: passive.Resistor}
	if err := store.Save(context.Background(), empty, ""); !errors.Is(err, catalog.ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestFileBackedStorePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalogs.db")

	store, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := store.Save(ctx, testCatalog(t, passive.Resistor, 100, 220), path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	store.Close()

	reopened, err := New(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Load(ctx, passive.Resistor)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Len() != 2 {
		t.Errorf("expected 2 parts, got %d", got.Len())
	}
}
