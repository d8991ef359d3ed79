package dto

import "jobhub_backend/internal/models"

// JobSearchRequest - query-параметры поиска вакансий
type JobSearchRequest struct {
	Query            string   `form:"q" validate:"omitempty,max=200"`
	Location         string   `form:"location" validate:"omitempty,max=100"`
	JobType          string   `form:"job_type" validate:"omitempty,oneof=full_time part_time contract internship"`
	LocationTypes    []string `form:"location_types" validate:"omitempty,dive,oneof=on_site remote hybrid"`
	ExperienceLevels []string `form:"experience_levels" validate:"omitempty,dive,oneof=junior middle senior lead"`
	Featured         *bool    `form:"featured"`
	Page             int      `form:"page" validate:"omitempty,min=1"`
	PageSize         int      `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// CreateJobRequest - публикация вакансии компанией
type CreateJobRequest struct {
	Title           string `json:"title" validate:"required,min=3,max=150"`
	Description     string `json:"description" validate:"required,min=10"`
	Location        string `json:"location" validate:"required,max=100"`
	JobType         string `json:"job_type" validate:"required,oneof=full_time part_time contract internship"`
	LocationType    string `json:"location_type" validate:"required,oneof=on_site remote hybrid"`
	ExperienceLevel string `json:"experience_level" validate:"required,oneof=junior middle senior lead"`
	SalaryMin       int    `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax       int    `json:"salary_max" validate:"omitempty,min=0,gtefield=SalaryMin"`
	Featured        bool   `json:"featured"`
	Status          string `json:"status" validate:"omitempty,oneof=draft open closed"`
}

// UpdateJobRequest - частичное обновление вакансии
type UpdateJobRequest struct {
	Title           *string `json:"title" validate:"omitempty,min=3,max=150"`
	Description     *string `json:"description" validate:"omitempty,min=10"`
	Location        *string `json:"location" validate:"omitempty,max=100"`
	JobType         *string `json:"job_type" validate:"omitempty,oneof=full_time part_time contract internship"`
	LocationType    *string `json:"location_type" validate:"omitempty,oneof=on_site remote hybrid"`
	ExperienceLevel *string `json:"experience_level" validate:"omitempty,oneof=junior middle senior lead"`
	SalaryMin       *int    `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax       *int    `json:"salary_max" validate:"omitempty,min=0"`
	Featured        *bool   `json:"featured"`
	Status          *string `json:"status" validate:"omitempty,oneof=draft open closed"`
}

// ApplyRequest - отклик соискателя на вакансию
type ApplyRequest struct {
	CoverLetter string `json:"cover_letter" validate:"omitempty,max=5000"`
}

// JobListResponse - страница вакансий
type JobListResponse struct {
	Jobs     []models.Job `json:"jobs"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}
