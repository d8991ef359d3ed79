package database

import (
	"jobhub_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate прогоняет автомиграции всех моделей.
// Порядок важен: сначала пользователи, потом зависимые таблицы.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Profile{},
		&models.Company{},
		&models.Job{},
		&models.Application{},
	)
}
