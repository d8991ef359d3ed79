package handlers

import (
	"jobhub_backend/internal/auth"
	"jobhub_backend/internal/services"
	"jobhub_backend/internal/validator"
)

// AppHandlers - все хендлеры приложения
type AppHandlers struct {
	Auth    *AuthHandler
	OAuth   *OAuthHandler
	Job     *JobHandler
	Profile *ProfileHandler
}

func NewAppHandlers(container *services.ServiceContainer, tokens *auth.TokenManager) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		Auth:    NewAuthHandler(base, container.Auth),
		OAuth:   NewOAuthHandler(base, container.OAuth),
		Job:     NewJobHandler(base, container.Job, tokens),
		Profile: NewProfileHandler(base, container.Profile, tokens),
	}
}
