// Package sqlite implements ports.DocumentStore on an embedded SQLite
// database. Every document is a row of one table keyed by (collection,
// name); the schema is managed by embedded goose migrations.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/fluxcrew/lifecycle/internal/domain"
	"github.com/fluxcrew/lifecycle/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.DocumentStore = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

//go:embed migrations/*.sql
var migrations embed.FS

// Store is a SQLite-backed document store.
type Store struct {
	db *sql.DB
}

// Open opens the database at path, or an in-memory database for ":memory:",
// and applies pending migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// One connection keeps ":memory:" a single database and serializes
	// writers without SQLITE_BUSY churn.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

func migrate(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("migrations fs: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Find implements ports.DocumentStore.
func (s *Store) Find(ctx context.Context, collection, name string) (json.RawMessage, error) {
	var body string
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE collection = ? AND name = ?`,
		collection, name,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s/%s: %w", collection, name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, unavailable("find", err)
	}
	return json.RawMessage(body), nil
}

// Insert implements ports.DocumentStore.
func (s *Store) Insert(ctx context.Context, collection, name string, doc json.RawMessage) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (collection, name, body, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (collection, name) DO NOTHING`,
		collection, name, string(doc), now(),
	)
	if err != nil {
		return unavailable("insert", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s/%s: %w", collection, name, domain.ErrConflict)
	}
	return nil
}

// Update implements ports.DocumentStore.
func (s *Store) Update(ctx context.Context, collection, name string, doc json.RawMessage) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE documents SET body = ?, updated_at = ? WHERE collection = ? AND name = ?`,
		string(doc), now(), collection, name,
	)
	if err != nil {
		return unavailable("update", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s/%s: %w", collection, name, domain.ErrNotFound)
	}
	return nil
}

// Delete implements ports.DocumentStore.
func (s *Store) Delete(ctx context.Context, collection, name string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ? AND name = ?`,
		collection, name,
	); err != nil {
		return unavailable("delete", err)
	}
	return nil
}

// FindAll implements ports.DocumentStore.
func (s *Store) FindAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT body FROM documents WHERE collection = ? ORDER BY name`,
		collection,
	)
	if err != nil {
		return nil, unavailable("find all", err)
	}
	defer rows.Close()

	var out []json.RawMessage
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, unavailable("scan", err)
		}
		out = append(out, json.RawMessage(body))
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate", err)
	}
	return out, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "sqlite" }

// HealthCheck implements ports.HealthChecker.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("sqlite %s: %w: %w", op, domain.ErrUnavailable, err)
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
