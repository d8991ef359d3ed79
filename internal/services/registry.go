package services

import (
	"jobhub_backend/internal/auth"
	"jobhub_backend/internal/cache"
	"jobhub_backend/internal/config"
	"jobhub_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer - все сервисы приложения, собранные в одном месте
type ServiceContainer struct {
	Auth    AuthService
	OAuth   OAuthService
	Job     JobService
	Profile ProfileService
}

// NewServiceContainer собирает сервисы с явной передачей зависимостей
func NewServiceContainer(db *gorm.DB, cacheClient *cache.Client, tokens *auth.TokenManager, cfg *config.Config) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	companyRepo := repositories.NewCompanyRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)

	return &ServiceContainer{
		Auth:    NewAuthService(db, userRepo, sessionRepo, profileRepo, companyRepo, tokens),
		OAuth:   NewOAuthService(db, userRepo, profileRepo, sessionRepo, tokens, cfg),
		Job:     NewJobService(jobRepo, applicationRepo, companyRepo, cacheClient),
		Profile: NewProfileService(profileRepo),
	}
}
