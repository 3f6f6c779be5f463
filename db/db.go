package db

import (
	"fmt"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(host string, port string, database string, user string, pass string, debugMode bool, migrate bool) (err error) {
	if DB == nil {
		dbConnString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", host, port, user, database, pass)
		db, err := Open(dbConnString, debugMode)
		if err != nil {
			return err
		}
		DB = db
		if migrate {
			if err = MigrateDB(DB); err != nil {
				return err
			}
		}
		log.Info("database connection established")
	}
	return nil
}

// Open connects to postgres using a libpq-style DSN.
func Open(dsn string, debugMode bool) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gorm_logrus.New(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "database connection failed")
	}
	if debugMode {
		db.Logger = logger.Default.LogMode(logger.Info)
		return db.Debug(), nil
	}
	return db, nil
}

func PingDB() error {
	if DB == nil {
		return errors.New("database is not initialized")
	}
	db, err := DB.DB()
	if err != nil {
		return err
	}
	if err = db.Ping(); err != nil {
		return err
	}
	return nil
}
