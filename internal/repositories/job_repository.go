package repositories

import (
	"errors"
	"strings"

	"jobhub_backend/internal/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// JobSearchCriteria - нормализованные критерии поиска вакансий.
// Порядок и состав полей зафиксированы: от них строится ключ кеша.
type JobSearchCriteria struct {
	Query            string
	Location         string
	JobType          string
	LocationTypes    []string
	ExperienceLevels []string
	Featured         *bool
	Status           models.JobStatus
	CompanyID        string
	Page             int
	PageSize         int
}

// JobSearchResult - страница результатов плюс общее число совпадений
type JobSearchResult struct {
	Jobs  []models.Job `json:"jobs"`
	Total int64        `json:"total"`
}

// JobRepository - вакансии и отклики на них
type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	Update(job *models.Job) error
	Search(criteria JobSearchCriteria) (*JobSearchResult, error)

	// IncrementViews атомарно увеличивает счетчик просмотров
	IncrementViews(id string) error
	// IncrementApplicationCount атомарно увеличивает счетчик откликов
	IncrementApplicationCount(id string) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *jobRepository) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.Preload("Company").Where("id = ?", id).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Update(job *models.Job) error {
	// Company загружается через Preload, перезаписывать ее не нужно
	return r.db.Omit("Company").Save(job).Error
}

// Search - фильтры комбинируются через AND; страница и общее число
// совпадений считаются параллельно по одному и тому же запросу
func (r *jobRepository) Search(criteria JobSearchCriteria) (*JobSearchResult, error) {
	result := &JobSearchResult{Jobs: []models.Job{}}

	var g errgroup.Group

	g.Go(func() error {
		query := r.applyFilters(r.db.Model(&models.Job{}), criteria)
		offset := (criteria.Page - 1) * criteria.PageSize
		return query.Preload("Company").
			Order("featured DESC, created_at DESC").
			Offset(offset).
			Limit(criteria.PageSize).
			Find(&result.Jobs).Error
	})

	g.Go(func() error {
		query := r.applyFilters(r.db.Model(&models.Job{}), criteria)
		return query.Count(&result.Total).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *jobRepository) applyFilters(query *gorm.DB, c JobSearchCriteria) *gorm.DB {
	if c.Status != "" {
		query = query.Where("status = ?", c.Status)
	}
	if c.CompanyID != "" {
		query = query.Where("company_id = ?", c.CompanyID)
	}
	if c.Query != "" {
		pattern := "%" + strings.ToLower(strings.TrimSpace(c.Query)) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if c.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(strings.TrimSpace(c.Location))+"%")
	}
	if c.JobType != "" {
		query = query.Where("job_type = ?", c.JobType)
	}
	if len(c.LocationTypes) > 0 {
		query = query.Where("location_type IN ?", c.LocationTypes)
	}
	if len(c.ExperienceLevels) > 0 {
		query = query.Where("experience_level IN ?", c.ExperienceLevels)
	}
	if c.Featured != nil {
		query = query.Where("featured = ?", *c.Featured)
	}
	return query
}

func (r *jobRepository) IncrementViews(id string) error {
	return r.db.Model(&models.Job{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *jobRepository) IncrementApplicationCount(id string) error {
	return r.db.Model(&models.Job{}).
		Where("id = ?", id).
		UpdateColumn("application_count", gorm.Expr("application_count + 1")).Error
}
