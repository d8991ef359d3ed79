package dto

import "jobhub_backend/internal/models"

// SignUpRequest - регистрация по email и паролю.
// account_kind определяет роль: individual -> seeker, company -> company.
type SignUpRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	Name        string `json:"name" validate:"required,min=2,max=100"`
	AccountKind string `json:"account_kind" validate:"required,oneof=individual company"`
	CompanyName string `json:"company_name" validate:"required_if=AccountKind company,omitempty,min=2,max=150"`
}

// SignInRequest - вход по email и паролю
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest - обмен refresh-токена на новую пару
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest - отзыв refresh-токена
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UserResponse - публичное представление пользователя
type UserResponse struct {
	ID    string          `json:"id"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}

// AuthResponse - пара токенов и пользователь
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}
}
