package db

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Ashraf-Khalifa/digital-new/internal/models"
)

func Open(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(database); err != nil {
		return nil, err
	}

	return database, nil
}

func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.EmailRecord{},
		&models.User{},
	)
}
