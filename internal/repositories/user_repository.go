package repositories

import (
	"errors"
	"strings"

	"jobhub_backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByExternalID(externalID string) (*models.User, error)
	Create(db *gorm.DB, user *models.User) error
	Update(user *models.User) error
	LinkExternalID(db *gorm.DB, userID, externalID string) error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").Preload("Company").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail ищет без учета регистра: email хранится в нижнем регистре,
// входное значение приводится здесь же
func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").Preload("Company").
		First(&user, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByExternalID(externalID string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").
		First(&user, "external_id = ?", externalID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create принимает db явно: регистрация компании пишет пользователя
// и компанию в одной транзакции
func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	if db == nil {
		db = r.db
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	if err := db.Create(user).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	result := r.db.Model(user).Updates(map[string]interface{}{
		"email":       strings.ToLower(strings.TrimSpace(user.Email)),
		"role":        user.Role,
		"external_id": user.ExternalID,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// LinkExternalID привязывает внешний ID провайдера к существующему аккаунту
func (r *UserRepositoryImpl) LinkExternalID(db *gorm.DB, userID, externalID string) error {
	if db == nil {
		db = r.db
	}
	result := db.Model(&models.User{}).Where("id = ?", userID).
		Update("external_id", externalID)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return ErrUserAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
