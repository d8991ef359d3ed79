package repositories

import (
	"errors"

	"jobhub_backend/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository - профили соискателей
type ProfileRepository interface {
	Create(db *gorm.DB, profile *models.Profile) error
	FindByUserID(userID string) (*models.Profile, error)
	Update(profile *models.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Create принимает db явно: профиль создается внутри той же
// транзакции, что и пользователь
func (r *profileRepository) Create(db *gorm.DB, profile *models.Profile) error {
	if db == nil {
		db = r.db
	}
	return db.Create(profile).Error
}

func (r *profileRepository) FindByUserID(userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}
