package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
	"github.com/zengarden/apiserver/config"
)

const (
	defaultDBDriver    = "sqlite3"
	defaultPingTimeout = 5 * time.Second
	defaultConnMaxIdle = 2 * time.Minute
	defaultConnMaxLife = 30 * time.Minute
	memoryPath         = ":memory:"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Open opens the sqlite database, creating its directory on first run, and
// applies any pending migrations. Safe to call on every start.
func Open(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	db, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Connect opens and pings the sqlite database without touching the schema.
func Connect(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	path := cfg.Database.Path
	if path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)

	db, err := sql.Open(defaultDBDriver, dsn)
	if err != nil {
		return nil, err
	}

	db.SetConnMaxIdleTime(defaultConnMaxIdle)
	db.SetConnMaxLifetime(defaultConnMaxLife)
	if path == memoryPath {
		// Every pooled connection to :memory: would get its own database.
		db.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// NewMigrator builds a migrator over the embedded migration set.
func NewMigrator(db *sql.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("init migration source: %w", err)
	}

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return nil, fmt.Errorf("init migration driver: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", source, defaultDBDriver, driver)
	if err != nil {
		return nil, fmt.Errorf("init migrator: %w", err)
	}
	return migrator, nil
}

// Migrate applies all pending up migrations from the embedded set.
func Migrate(db *sql.DB) error {
	migrator, err := NewMigrator(db)
	if err != nil {
		return err
	}
	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
