package database

import (
	"errors"
	"fmt"

	"hospital-management-api/config"
	"hospital-management-api/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

// Migrator applies the embedded SQL migrations.
type Migrator struct {
	m *migrate.Migrate
}

func NewMigrator(cfg config.DBConfig) (*Migrator, error) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, cfg.MigrateURL())
	if err != nil {
		return nil, fmt.Errorf("init migrator: %w", err)
	}

	return &Migrator{m: m}, nil
}

// Up applies all pending migrations. Being already up to date is not an error.
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	version, dirty, _ := mg.m.Version()
	logrus.Infof("Database schema at version %d (dirty=%t)", version, dirty)
	return nil
}

// Down rolls back the most recent migration.
func (mg *Migrator) Down() error {
	if err := mg.m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

// Version reports the current schema version. ErrNilVersion means no
// migration has been applied yet.
func (mg *Migrator) Version() (uint, bool, error) {
	return mg.m.Version()
}

func (mg *Migrator) Close() {
	if srcErr, dbErr := mg.m.Close(); srcErr != nil || dbErr != nil {
		logrus.Warnf("Failed to close migrator: source=%v database=%v", srcErr, dbErr)
	}
}
