package database

import (
	"github.com/upgradehq/upgrade-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Init(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Surfaces unique-index violations as gorm.ErrDuplicatedKey, which
		// the store relies on to detect concurrent vote creation.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Auto migrate schemas
	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Vote{},
		&models.SavedProduct{},
		&models.Comment{},
		&models.Subscriber{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
