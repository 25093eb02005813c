// Package sqlite keeps imported catalogs in a SQLite database so large vendor
// lists are parsed once and reloaded by kind.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/OpenTraceLab/OpenTracePassives/pkg/catalog"
	"github.com/OpenTraceLab/OpenTracePassives/pkg/passive"
)

// Store persists catalogs, one per component kind.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at path and migrates the schema.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// :memory: databases are per connection.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	PRAGMA foreign_keys = ON;

	CREATE TABLE IF NOT EXISTS catalogs (
		kind TEXT PRIMARY KEY,
		source TEXT NOT NULL DEFAULT '',
		imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS parts (
		kind TEXT NOT NULL,
		value REAL NOT NULL,
		tolerance REAL NOT NULL,
		PRIMARY KEY (kind, value),
		FOREIGN KEY (kind) REFERENCES catalogs(kind) ON DELETE CASCADE
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save replaces the stored catalog for cat.Kind. source records where the
// parts came from, typically a file path.
func (s *Store) Save(ctx context.Context, cat *catalog.Catalog, source string) error {
	if cat.Len() == 0 {
		return catalog.ErrEmptyCatalog
	}
	if err := cat.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	kind := cat.Kind.String()
	if err := deleteKind(ctx, tx, kind); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO catalogs (kind, source) VALUES (?, ?)`, kind, source); err != nil {
		return fmt.Errorf("insert catalog: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO parts (kind, value, tolerance) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare parts: %w", err)
	}
	defer stmt.Close()

	for _, p := range cat.Parts {
		if _, err := stmt.ExecContext(ctx, kind, p.Value, p.Tolerance); err != nil {
			return fmt.Errorf("insert part %g: %w", p.Value, err)
		}
	}
	return tx.Commit()
}

// Load returns the stored catalog for kind.
func (s *Store) Load(ctx context.Context, kind passive.Kind) (*catalog.Catalog, error) {
	var source string
	err := s.db.QueryRowContext(ctx, `SELECT source FROM catalogs WHERE kind = ?`, kind.String()).Scan(&source)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w for %s", catalog.ErrNoCatalog, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT value, tolerance FROM parts WHERE kind = ? ORDER BY value ASC`, kind.String())
	if err != nil {
		return nil, fmt.Errorf("query parts: %w", err)
	}
	defer rows.Close()

	var parts []passive.Component
	for rows.Next() {
		p := passive.Component{Kind: kind}
		if err := rows.Scan(&p.Value, &p.Tolerance); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		parts = append(parts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating parts: %w", err)
	}
	return catalog.New(kind, parts)
}

// Kinds lists the stored catalog kinds in display order.
func (s *Store) Kinds(ctx context.Context) ([]passive.Kind, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT kind FROM catalogs`)
	if err != nil {
		return nil, fmt.Errorf("query catalogs: %w", err)
	}
	defer rows.Close()

	stored := make(map[passive.Kind]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan catalog: %w", err)
		}
		kind, err := passive.ParseKind(name)
		if err != nil {
			return nil, err
		}
		stored[kind] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalogs: %w", err)
	}

	var kinds []passive.Kind
	for _, k := range passive.Kinds {
		if stored[k] {
			kinds = append(kinds, k)
		}
	}
	return kinds, nil
}

// Delete removes the stored catalog for kind. Deleting a missing kind is not an error.
func (s *Store) Delete(ctx context.Context, kind passive.Kind) error {
	return deleteKind(ctx, s.db, kind.String())
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// deleteKind removes parts explicitly: the cascade only fires on connections
// with foreign keys enabled.
func deleteKind(ctx context.Context, db execer, kind string) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM parts WHERE kind = ?`, kind); err != nil {
		return fmt.Errorf("delete parts: %w", err)
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM catalogs WHERE kind = ?`, kind); err != nil {
		return fmt.Errorf("delete catalog: %w", err)
	}
	return nil
}

// Library loads every stored catalog into an in-memory library.
func (s *Store) Library(ctx context.Context) (*catalog.Library, error) {
	kinds, err := s.Kinds(ctx)
	if err != nil {
		return nil, err
	}
	lib := catalog.NewLibrary()
	for _, kind := range kinds {
		cat, err := s.Load(ctx, kind)
		if err != nil {
			return nil, err
		}
		lib.Add(cat)
	}
	return lib, nil
}
