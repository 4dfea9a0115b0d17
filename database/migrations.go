package database

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"digistore/models"
)

// Migrate runs AutoMigrate for the given models inside a transaction where
// the dialect allows it.
func Migrate(db *gorm.DB, entities ...interface{}) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.AutoMigrate(entities...); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit().Error; err != nil {
		return err
	}
	log.Printf("[database] migrated %d models", len(entities))
	return seedDefaults(db)
}

// seedDefaults creates the single settings row when the table is empty so
// the public settings endpoint always has something to return.
func seedDefaults(db *gorm.DB) error {
	var setting models.Setting
	err := db.Take(&setting).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(&models.Setting{
		WebsiteName:  "digistore",
		WebsiteTitle: "digistore - digital goods marketplace",
	}).Error
}
