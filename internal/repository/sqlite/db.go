package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	driver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"inventory-api/internal/repository"
)

// Open opens (or creates) a sqlite database at the given path and ensures directories exist.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" && !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// a single connection serialises writers; sqlite rejects concurrent ones anyway
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	return db, nil
}

// Store bundles the repositories sharing one database handle.
type Store struct {
	Users      repository.UserRepository
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
}

// NewStore builds all repositories on db and creates their tables.
func NewStore(ctx context.Context, db *sql.DB) (*Store, error) {
	s := &Store{
		Users:      NewUserRepository(db),
		Categories: NewCategoryRepository(db),
		Products:   NewProductRepository(db),
	}

	if err := s.Users.Init(ctx); err != nil {
		return nil, fmt.Errorf("init user repository: %w", err)
	}
	if err := s.Categories.Init(ctx); err != nil {
		return nil, fmt.Errorf("init category repository: %w", err)
	}
	if err := s.Products.Init(ctx); err != nil {
		return nil, fmt.Errorf("init product repository: %w", err)
	}
	return s, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func isUniqueViolation(err error) bool {
	var sqliteErr *driver.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

func checkAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", what, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, repository.ErrNotFound)
	}
	return nil
}
