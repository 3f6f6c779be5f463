package db

import (
	"embed"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// MigrateDB applies the embedded versioned migrations. An already
// up-to-date schema is not an error.
func MigrateDB(conn *gorm.DB) error {
	log.Info("running migrations")
	sqlDB, err := conn.DB()
	if err != nil {
		return errors.Wrap(err, "unable to get sql connection for migrations")
	}
	source, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return errors.Wrap(err, "unable to read migrations")
	}
	driver, err := migratepostgres.WithInstance(sqlDB, &migratepostgres.Config{})
	if err != nil {
		return errors.Wrap(err, "unable to create migration driver")
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return errors.Wrap(err, "unable to create migrator")
	}
	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "migration failed")
	}
	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return errors.Wrap(err, "unable to read migration version")
	}
	log.WithField("version", version).
		WithField("dirty", dirty).
		Info("migrations applied")
	return nil
}
