package services

import (
	"context"
	"encoding/json"
	"errors"

	"jobhub_backend/internal/cache"
	"jobhub_backend/internal/logger"
	"jobhub_backend/internal/models"
	"jobhub_backend/internal/repositories"
	"jobhub_backend/internal/services/dto"
	"jobhub_backend/pkg/apperrors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// JobService - вакансии: публичный поиск через кэш, отклики,
// управление вакансиями компании
type JobService interface {
	// SearchJobs - листинг открытых вакансий через read-through кэш
	SearchJobs(ctx context.Context, req dto.JobSearchRequest) (*dto.JobListResponse, error)

	// GetJob - карточка вакансии через read-through кэш.
	// Счетчик просмотров растет только на промахе.
	GetJob(ctx context.Context, id string) (*models.Job, error)

	ApplyToJob(ctx context.Context, userID, jobID string, req dto.ApplyRequest) (*models.Application, error)
	ListUserApplications(ctx context.Context, userID string) ([]models.Application, error)

	CreateJob(ctx context.Context, ownerID string, req dto.CreateJobRequest) (*models.Job, error)
	UpdateJob(ctx context.Context, ownerID, jobID string, req dto.UpdateJobRequest) (*models.Job, error)
	ListCompanyJobs(ctx context.Context, ownerID string) ([]models.Job, error)
}

type JobServiceImpl struct {
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
	companyRepo     repositories.CompanyRepository
	cache           *cache.Client
}

func NewJobService(
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
	companyRepo repositories.CompanyRepository,
	cacheClient *cache.Client,
) JobService {
	return &JobServiceImpl{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		companyRepo:     companyRepo,
		cache:           cacheClient,
	}
}

func (s *JobServiceImpl) SearchJobs(ctx context.Context, req dto.JobSearchRequest) (*dto.JobListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	key := cache.JobListKey(req.Query, req.Location, req.JobType, req.LocationTypes, req.ExperienceLevels, req.Featured, page, pageSize)

	if raw, ok := s.cache.Get(ctx, key); ok {
		var cached dto.JobListResponse
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			logger.CtxDebug(ctx, "job list cache hit", "key", key)
			return &cached, nil
		}
		// Нечитаемая запись эквивалентна промаху
		logger.CtxWarn(ctx, "job list cache entry corrupt", "key", key)
	}

	criteria := repositories.JobSearchCriteria{
		Query:            req.Query,
		Location:         req.Location,
		JobType:          req.JobType,
		LocationTypes:    req.LocationTypes,
		ExperienceLevels: req.ExperienceLevels,
		Featured:         req.Featured,
		Status:           models.JobStatusOpen,
		Page:             page,
		PageSize:         pageSize,
	}

	result, err := s.jobRepo.Search(criteria)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to search jobs", 500)
	}

	response := &dto.JobListResponse{
		Jobs:     result.Jobs,
		Total:    result.Total,
		Page:     page,
		PageSize: pageSize,
	}

	if data, err := json.Marshal(response); err == nil {
		s.cache.Set(ctx, key, string(data))
	}

	return response, nil
}

func (s *JobServiceImpl) GetJob(ctx context.Context, id string) (*models.Job, error) {
	key := cache.JobKey(id)

	if raw, ok := s.cache.Get(ctx, key); ok {
		var cached models.Job
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			logger.CtxDebug(ctx, "job cache hit", "job_id", id)
			return &cached, nil
		}
		logger.CtxWarn(ctx, "job cache entry corrupt", "key", key)
	}

	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to find job", 500)
	}

	// Просмотр засчитывается раз в TTL: на попадании счетчик не трогаем.
	// Ошибка инкремента не мешает отдать вакансию.
	if err := s.jobRepo.IncrementViews(id); err != nil {
		logger.CtxWarn(ctx, "view count increment failed", "job_id", id, "error", err.Error())
	}

	if data, err := json.Marshal(job); err == nil {
		s.cache.Set(ctx, key, string(data))
	}

	return job, nil
}

func (s *JobServiceImpl) ApplyToJob(ctx context.Context, userID, jobID string, req dto.ApplyRequest) (*models.Application, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to find job", 500)
	}

	if job.Status != models.JobStatusOpen {
		return nil, apperrors.ErrJobNotOpen
	}

	application := &models.Application{
		JobID:       jobID,
		UserID:      userID,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusPending,
	}
	if err := s.applicationRepo.Create(application); err != nil {
		if errors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to create application", 500)
	}

	if err := s.jobRepo.IncrementApplicationCount(jobID); err != nil {
		logger.CtxWarn(ctx, "application count increment failed", "job_id", jobID, "error", err.Error())
	}

	// Кэшированная карточка устарела (счетчик откликов); листинги
	// доживают свой TTL
	s.cache.Invalidate(ctx, cache.JobKey(jobID))

	logger.CtxInfo(ctx, "application created", "job_id", jobID, "user_id", userID)
	return application, nil
}

func (s *JobServiceImpl) ListUserApplications(ctx context.Context, userID string) ([]models.Application, error) {
	applications, err := s.applicationRepo.ListByUser(userID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to list applications", 500)
	}
	return applications, nil
}

func (s *JobServiceImpl) CreateJob(ctx context.Context, ownerID string, req dto.CreateJobRequest) (*models.Job, error) {
	company, err := s.companyRepo.FindByOwnerID(ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyRequired
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to find company", 500)
	}

	status := models.JobStatusDraft
	if req.Status != "" {
		status = models.JobStatus(req.Status)
	}

	job := &models.Job{
		CompanyID:       company.ID,
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		JobType:         models.JobType(req.JobType),
		LocationType:    models.LocationType(req.LocationType),
		ExperienceLevel: models.ExperienceLevel(req.ExperienceLevel),
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		Featured:        req.Featured,
		Status:          status,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to create job", 500)
	}

	logger.CtxInfo(ctx, "job created", "job_id", job.ID, "company_id", company.ID)
	return job, nil
}

func (s *JobServiceImpl) UpdateJob(ctx context.Context, ownerID, jobID string, req dto.UpdateJobRequest) (*models.Job, error) {
	company, err := s.companyRepo.FindByOwnerID(ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyRequired
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to find company", 500)
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to find job", 500)
	}

	if job.CompanyID != company.ID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	applyJobPatch(job, req)

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to update job", 500)
	}

	s.cache.Invalidate(ctx, cache.JobKey(jobID))

	logger.CtxInfo(ctx, "job updated", "job_id", jobID)
	return job, nil
}

func (s *JobServiceImpl) ListCompanyJobs(ctx context.Context, ownerID string) ([]models.Job, error) {
	company, err := s.companyRepo.FindByOwnerID(ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyRequired
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to find company", 500)
	}

	// Компания видит свои вакансии во всех статусах, включая черновики
	result, err := s.jobRepo.Search(repositories.JobSearchCriteria{
		CompanyID: company.ID,
		Page:      1,
		PageSize:  maxPageSize,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to list jobs", 500)
	}
	return result.Jobs, nil
}

func applyJobPatch(job *models.Job, req dto.UpdateJobRequest) {
	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.JobType != nil {
		job.JobType = models.JobType(*req.JobType)
	}
	if req.LocationType != nil {
		job.LocationType = models.LocationType(*req.LocationType)
	}
	if req.ExperienceLevel != nil {
		job.ExperienceLevel = models.ExperienceLevel(*req.ExperienceLevel)
	}
	if req.SalaryMin != nil {
		job.SalaryMin = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = *req.SalaryMax
	}
	if req.Featured != nil {
		job.Featured = *req.Featured
	}
	if req.Status != nil {
		job.Status = models.JobStatus(*req.Status)
	}
}
