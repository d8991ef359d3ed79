package models

type Job struct {
	BaseModel
	CompanyID   string `gorm:"not null;index" json:"company_id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Location    string `gorm:"index" json:"location"`

	JobType         JobType         `gorm:"type:varchar(20);index" json:"job_type"`
	LocationType    LocationType    `gorm:"type:varchar(20);index" json:"location_type"`
	ExperienceLevel ExperienceLevel `gorm:"type:varchar(20);index" json:"experience_level"`
	Featured        bool            `gorm:"default:false;index" json:"featured"`
	Status          JobStatus       `gorm:"type:varchar(20);default:'draft';index" json:"status"`

	SalaryMin int `json:"salary_min"`
	SalaryMax int `json:"salary_max"`

	// Счетчики обновляются атомарными UPDATE, не через Save всей модели.
	// Views инкрементируется только при чтении мимо кэша.
	Views            int `gorm:"default:0" json:"views"`
	ApplicationCount int `gorm:"default:0" json:"application_count"`

	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

// Application - отклик соискателя на вакансию.
// Уникальность пары (user_id, job_id) гарантирует constraint БД:
// предварительная проверка в сервисе - только совет, арбитр - индекс.
type Application struct {
	BaseModel
	JobID       string            `gorm:"not null;uniqueIndex:idx_applications_user_job" json:"job_id"`
	UserID      string            `gorm:"not null;uniqueIndex:idx_applications_user_job" json:"user_id"`
	CoverLetter string            `json:"cover_letter"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	Job *Job `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
