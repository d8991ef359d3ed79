package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"jobhub_backend/internal/auth"
	"jobhub_backend/internal/config"
	"jobhub_backend/internal/logger"
	"jobhub_backend/internal/models"
	"jobhub_backend/internal/repositories"
	"jobhub_backend/internal/services/dto"
	"jobhub_backend/pkg/apperrors"

	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

// oauthExchangeTimeout ограничивает весь поход к провайдеру:
// обмен кода плюс запрос userinfo
const oauthExchangeTimeout = 10 * time.Second

// externalIdentity - то, что мы узнаем о пользователе от провайдера
type externalIdentity struct {
	ID    string
	Email string
	Name  string
}

// OAuthService - мост внешней идентификации в локальные аккаунты.
// Порядок разрешения: по external id -> привязка по email -> новый seeker.
type OAuthService interface {
	// AuthCodeURL строит URL авторизации провайдера с anti-CSRF state
	AuthCodeURL(state string) string

	// CompleteAuthorization меняет код авторизации на identity провайдера,
	// находит или создает локального пользователя и выдает пару токенов
	CompleteAuthorization(ctx context.Context, code string) (*dto.AuthResponse, error)
}

type OAuthServiceImpl struct {
	db          *gorm.DB
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	sessionRepo repositories.SessionRepository
	tokens      *auth.TokenManager
	oauthCfg    *oauth2.Config
	userInfoURL string
}

func NewOAuthService(
	db *gorm.DB,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	sessionRepo repositories.SessionRepository,
	tokens *auth.TokenManager,
	cfg *config.Config,
) OAuthService {
	return &OAuthServiceImpl{
		db:          db,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		sessionRepo: sessionRepo,
		tokens:      tokens,
		oauthCfg: &oauth2.Config{
			ClientID:     cfg.OAuth.ClientID,
			ClientSecret: cfg.OAuth.ClientSecret,
			RedirectURL:  cfg.OAuth.RedirectURL,
			Scopes:       cfg.OAuth.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.OAuth.AuthURL,
				TokenURL: cfg.OAuth.TokenURL,
			},
		},
		userInfoURL: cfg.OAuth.UserInfoURL,
	}
}

func (s *OAuthServiceImpl) AuthCodeURL(state string) string {
	return s.oauthCfg.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (s *OAuthServiceImpl) CompleteAuthorization(ctx context.Context, code string) (*dto.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, oauthExchangeTimeout)
	defer cancel()

	identity, err := s.fetchIdentity(ctx, code)
	if err != nil {
		logger.CtxWarn(ctx, "oauth exchange failed", "error", err.Error())
		return nil, apperrors.ErrOAuthExchange
	}

	user, err := s.resolveUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	return issueTokenPair(s.tokens, s.sessionRepo, user)
}

// fetchIdentity меняет код на токен провайдера и забирает userinfo
func (s *OAuthServiceImpl) fetchIdentity(ctx context.Context, code string) (*externalIdentity, error) {
	token, err := s.oauthCfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange: %w", err)
	}

	client := s.oauthCfg.Client(ctx, token)
	resp, err := client.Get(s.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("userinfo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("userinfo read: %w", err)
	}

	// Google присылает sub, другие провайдеры - id
	var payload struct {
		Sub   string `json:"sub"`
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("userinfo decode: %w", err)
	}

	identity := &externalIdentity{
		ID:    payload.Sub,
		Email: strings.ToLower(strings.TrimSpace(payload.Email)),
		Name:  payload.Name,
	}
	if identity.ID == "" {
		identity.ID = payload.ID
	}
	if identity.ID == "" || identity.Email == "" {
		return nil, errors.New("userinfo payload incomplete")
	}
	return identity, nil
}

// resolveUser находит или создает локальный аккаунт для внешней identity.
// Привязка и создание идут в одной транзакции.
func (s *OAuthServiceImpl) resolveUser(ctx context.Context, identity *externalIdentity) (*models.User, error) {
	user, err := s.userRepo.FindByExternalID(identity.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "oauth", "Failed to find user", 500)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := s.userRepo.FindByEmail(identity.Email)
		if err == nil {
			// Аккаунт с таким email уже есть - привязываем external id
			if err := s.userRepo.LinkExternalID(tx, existing.ID, identity.ID); err != nil {
				return err
			}
			user = existing
			logger.CtxInfo(ctx, "oauth identity linked", "user_id", existing.ID)
			return nil
		}
		if !errors.Is(err, repositories.ErrUserNotFound) {
			return err
		}

		// Новый пользователь: создаем seeker без пароля
		externalID := identity.ID
		user = &models.User{
			Email:      identity.Email,
			Role:       models.UserRoleSeeker,
			ExternalID: &externalID,
		}
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}

		name := identity.Name
		if name == "" {
			name = identity.Email
		}
		profile := &models.Profile{UserID: user.ID, Name: name}
		if err := s.profileRepo.Create(tx, profile); err != nil {
			return err
		}

		logger.CtxInfo(ctx, "oauth user created", "user_id", user.ID)
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "oauth", "Failed to resolve user", 500)
	}
	return user, nil
}
