package database

import (
	"log"
	"time"

	"dishlist/backend/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the Postgres connection. Duplicate-key and foreign-key
// failures are translated into gorm's sentinel errors.
func Connect(dsn string, appLogger *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         NewGormLogger(appLogger),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	appLogger.Info("Database connection established.")
	return db, nil
}

// NewGormLogger routes gorm's slow query and error output through logrus.
func NewGormLogger(appLogger *logrus.Logger) logger.Interface {
	return logger.New(
		log.New(appLogger.WriterLevel(logrus.WarnLevel), "", 0), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  false,
		},
	)
}

// Migrate creates or updates the schema and folds legacy privacy data into
// the privacy_level column.
func Migrate(db *gorm.DB, appLogger *logrus.Logger) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.UserRelation{},
		&models.Tag{},
		&models.Restaurant{},
		&models.Evaluation{},
	)
	if err != nil {
		return err
	}

	if err := backfillLegacyPrivacy(db, appLogger); err != nil {
		return err
	}

	appLogger.Info("Database migrated successfully.")
	return nil
}

// backfillLegacyPrivacy converts the old boolean is_private column into the
// three-tier privacy_level and then drops it.
func backfillLegacyPrivacy(db *gorm.DB, appLogger *logrus.Logger) error {
	migrator := db.Migrator()
	if !migrator.HasColumn(&models.Restaurant{}, "is_private") {
		return nil
	}

	result := db.Exec(
		"UPDATE restaurants SET privacy_level = ? WHERE is_private = ?",
		models.PrivacyPrivate, true,
	)
	if result.Error != nil {
		return result.Error
	}
	appLogger.WithField("rows", result.RowsAffected).Info("Backfilled privacy_level from is_private")

	return migrator.DropColumn(&models.Restaurant{}, "is_private")
}
