package repositories

import (
	"errors"

	"jobhub_backend/internal/models"

	"gorm.io/gorm"
)

// CompanyRepository - компании-работодатели
type CompanyRepository interface {
	Create(db *gorm.DB, company *models.Company) error
	FindByID(id string) (*models.Company, error)
	FindByOwnerID(ownerID string) (*models.Company, error)
	Update(company *models.Company) error
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

// Create принимает db явно: компания создается в одной транзакции
// с пользователем при регистрации работодателя
func (r *companyRepository) Create(db *gorm.DB, company *models.Company) error {
	if db == nil {
		db = r.db
	}
	return db.Create(company).Error
}

func (r *companyRepository) FindByID(id string) (*models.Company, error) {
	var company models.Company
	err := r.db.Where("id = ?", id).First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) FindByOwnerID(ownerID string) (*models.Company, error) {
	var company models.Company
	err := r.db.Where("owner_id = ?", ownerID).First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) Update(company *models.Company) error {
	return r.db.Save(company).Error
}
