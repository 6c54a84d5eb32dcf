package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/devlearn/internal/dbx"
	"github.com/dmitrijs2005/devlearn/internal/storage/migrations"
	"github.com/google/uuid"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// Scope names the lifetime of a store.
type Scope string

const (
	// ScopeDurable survives restarts and is shared by every process that
	// opens the same file.
	ScopeDurable Scope = "durable"
	// ScopeSession lives in memory and disappears with the process.
	ScopeSession Scope = "session"
)

// ErrInvalidPath is returned for data file paths that cannot be expressed
// in a SQLite file: URI unchanged.
var ErrInvalidPath = errors.New("invalid data file path")

// busyTimeoutMillis bounds how long a writer waits for another process
// holding the write lock on the durable file.
const busyTimeoutMillis = 5000

// SQLiteStore is a Store backed by a migrated SQLite database.
type SQLiteStore struct {
	*SQLiteRepository
	db    *sql.DB
	scope Scope
}

// OpenDurable opens (creating if needed) the SQLite file at path and applies
// migrations. Transactions take the write lock up front (BEGIN IMMEDIATE), so
// two processes cannot both read the same snapshot and then overwrite each
// other's collection. Paths containing '?', '#' or '%' are rejected with
// ErrInvalidPath.
func OpenDurable(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" || strings.ContainsAny(path, "?#%") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	dsn := fmt.Sprintf("file:%s?_txlock=immediate&_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)", path, busyTimeoutMillis)
	return open(ctx, dsn, ScopeDurable, 0)
}

// OpenSession opens a private in-memory database. Each call yields a new,
// empty scope.
func OpenSession(ctx context.Context) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("file:devlearn-session-%s?mode=memory&cache=shared&_txlock=immediate", uuid.NewString())
	// a single connection keeps the in-memory database alive and shared
	return open(ctx, dsn, ScopeSession, 1)
}

func open(ctx context.Context, dsn string, scope Scope, maxConns int) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", scope, err)
	}
	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
		db.SetMaxIdleConns(maxConns)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s store: %w", scope, err)
	}

	return &SQLiteStore{SQLiteRepository: NewSQLiteRepository(db), db: db, scope: scope}, nil
}

// RunMigrations applies the embedded goose migrations to db. It is
// idempotent.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.Migrations)
	if err != nil {
		return err
	}
	_, err = provider.Up(ctx)
	return err
}

func (s *SQLiteStore) Update(ctx context.Context, fn func(ctx context.Context, tx Repository) error) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, NewSQLiteRepository(tx))
	})
}

func (s *SQLiteStore) Scope() Scope { return s.scope }

func (s *SQLiteStore) Close() error { return s.db.Close() }
