// Package migrations holds the embedded PostgreSQL schema and applies it
// with golang-migrate on startup.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Направления миграций
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

//go:embed *.sql
var migrationsFS embed.FS

// Run применяет (up) или откатывает (down) миграции схемы
func Run(db *sql.DB, direction string) error {
	m, err := newMigrate(db)
	if err != nil {
		return err
	}

	switch direction {
	case DirectionUp:
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrations: failed to run migrations: %w", err)
		}
	case DirectionDown:
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrations: failed to rollback migrations: %w", err)
		}
	default:
		return fmt.Errorf("migrations: invalid direction %q (must be %q or %q)", direction, DirectionUp, DirectionDown)
	}

	return nil
}

// Version возвращает текущую версию схемы
func Version(db *sql.DB) (uint, bool, error) {
	m, err := newMigrate(db)
	if err != nil {
		return 0, false, err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, fmt.Errorf("migrations: failed to get version: %w", err)
	}
	return version, dirty, nil
}

func newMigrate(db *sql.DB) (*migrate.Migrate, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("migrations: failed to create driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, ".")
	if err != nil {
		return nil, fmt.Errorf("migrations: failed to create source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("migrations: failed to create instance: %w", err)
	}
	return m, nil
}
