package repositories

import (
	"jobhub_backend/internal/models"

	"gorm.io/gorm"
)

// ApplicationRepository - отклики соискателей на вакансии
type ApplicationRepository interface {
	// Create создает отклик; повторный отклик на ту же вакансию
	// отбивается уникальным индексом
	Create(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	ListByUser(userID string) ([]models.Application, error)
	ListByJob(jobID string) ([]models.Application, error)
	ExistsForUserAndJob(userID, jobID string) (bool, error)
	UpdateStatus(id string, status models.ApplicationStatus) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(application *models.Application) error {
	if err := r.db.Create(application).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *applicationRepository) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.Preload("Job").Preload("Job.Company").
		Where("id = ?", id).First(&application).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) ListByUser(userID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").Preload("Job.Company").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *applicationRepository) ListByJob(jobID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *applicationRepository) ExistsForUserAndJob(userID, jobID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	return count > 0, err
}

func (r *applicationRepository) UpdateStatus(id string, status models.ApplicationStatus) error {
	return r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status).Error
}
