package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobhub_backend/internal/auth"
	"jobhub_backend/internal/logger"
	"jobhub_backend/internal/models"
	"jobhub_backend/internal/repositories"
	"jobhub_backend/internal/services/dto"
	"jobhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// AuthService - регистрация, вход и жизненный цикл токенов
type AuthService interface {
	SignUp(ctx context.Context, req dto.SignUpRequest) (*dto.AuthResponse, error)
	SignIn(ctx context.Context, req dto.SignInRequest) (*dto.AuthResponse, error)

	// Refresh меняет действующий refresh-токен на новую пару (ротация:
	// старая сессия отзывается, создается новая)
	Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error)

	// Logout отзывает сессию предъявленного refresh-токена.
	// Отзыв неизвестного токена - успех, не ошибка.
	Logout(ctx context.Context, refreshToken string) error
}

type AuthServiceImpl struct {
	db          *gorm.DB
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	profileRepo repositories.ProfileRepository
	companyRepo repositories.CompanyRepository
	tokens      *auth.TokenManager
}

func NewAuthService(
	db *gorm.DB,
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	profileRepo repositories.ProfileRepository,
	companyRepo repositories.CompanyRepository,
	tokens *auth.TokenManager,
) AuthService {
	return &AuthServiceImpl{
		db:          db,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		profileRepo: profileRepo,
		companyRepo: companyRepo,
		tokens:      tokens,
	}
}

// SignUp регистрирует пользователя. Для account_kind=company в той же
// транзакции создается запись компании. Гонку на email разрешает
// уникальный индекс БД, а не предварительная проверка.
func (s *AuthServiceImpl) SignUp(ctx context.Context, req dto.SignUpRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	role := models.UserRoleSeeker
	if req.AccountKind == "company" {
		role = models.UserRoleCompany
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Предварительная проверка дает понятную ошибку в обычном случае;
	// окончательное слово - за уникальным индексом при вставке
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "auth", "Failed to check email", 500)
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}

		profile := &models.Profile{UserID: user.ID, Name: req.Name}
		if err := s.profileRepo.Create(tx, profile); err != nil {
			return err
		}

		if role == models.UserRoleCompany {
			company := &models.Company{OwnerID: user.ID, Name: req.CompanyName}
			if err := s.companyRepo.Create(tx, company); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "auth", "Failed to create user", 500)
	}

	logger.CtxInfo(ctx, "user signed up", "user_id", user.ID, "role", string(role))

	return s.issueTokenPair(ctx, user)
}

// SignIn проверяет учетные данные. Любой отказ (нет пользователя,
// нет пароля, пароль не совпал) дает одну и ту же ошибку.
func (s *AuthServiceImpl) SignIn(ctx context.Context, req dto.SignInRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "auth", "Failed to find user", 500)
	}

	// Пользователь мог быть создан только через OAuth - пароля нет
	if user.PasswordHash == "" || !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	logger.CtxInfo(ctx, "user signed in", "user_id", user.ID)

	return s.issueTokenPair(ctx, user)
}

// Refresh - двухступенчатая проверка: сначала stateless (подпись и срок
// JWT), затем леджер (сессия не отозвана). Обе ступени дают единую ошибку.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	session, err := s.sessionRepo.FindMatching(refreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "auth", "Failed to validate session", 500)
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "auth", "Failed to find user", 500)
	}

	// Ротация: старая сессия умирает до выдачи новой пары
	if err := s.sessionRepo.DeleteByID(session.ID); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "auth", "Failed to rotate session", 500)
	}

	logger.CtxDebug(ctx, "refresh token rotated", "user_id", user.ID)

	return s.issueTokenPair(ctx, user)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if err := s.sessionRepo.DeleteMatching(refreshToken); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "auth", "Failed to revoke session", 500)
	}
	logger.CtxDebug(ctx, "session revoked")
	return nil
}

func (s *AuthServiceImpl) issueTokenPair(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	return issueTokenPair(s.tokens, s.sessionRepo, user)
}

// issueTokenPair выпускает пару токенов и записывает новую сессию в леджер.
// Общий путь выдачи для парольного входа и OAuth-моста.
func issueTokenPair(tokens *auth.TokenManager, sessionRepo repositories.SessionRepository, user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := tokens.GenerateRefreshToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	tokenHash, err := auth.HashRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	session := &models.Session{
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(tokens.RefreshTTL()),
	}
	if err := sessionRepo.Create(session); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "auth", "Failed to create session", 500)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.NewUserResponse(user),
	}, nil
}
