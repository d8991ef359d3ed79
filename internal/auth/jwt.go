package auth

import (
	"errors"
	"time"

	"jobhub_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid - единая ошибка верификации токена.
// Причина (подпись, срок, формат) намеренно не раскрывается вызывающему.
var ErrTokenInvalid = errors.New("token is invalid")

// Claims - полезная нагрузка access и refresh токенов
type Claims struct {
	UserID string          `json:"user_id"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager выпускает и проверяет JWT.
// Access и refresh подписываются разными секретами: компрометация одного
// не позволяет подделать другой. Проверка stateless - БД не трогается.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// RefreshTTL возвращает срок жизни refresh-токена
// (он же - срок жизни сессии в леджере)
func (m *TokenManager) RefreshTTL() time.Duration {
	return m.refreshTTL
}

// GenerateAccessToken выпускает короткоживущий access-токен
func (m *TokenManager) GenerateAccessToken(userID, email string, role models.UserRole) (string, error) {
	return m.generate(userID, email, role, m.accessSecret, m.accessTTL)
}

// GenerateRefreshToken выпускает долгоживущий refresh-токен
func (m *TokenManager) GenerateRefreshToken(userID, email string, role models.UserRole) (string, error) {
	return m.generate(userID, email, role, m.refreshSecret, m.refreshTTL)
}

func (m *TokenManager) generate(userID, email string, role models.UserRole, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseAccessToken проверяет подпись и срок access-токена
func (m *TokenManager) ParseAccessToken(tokenStr string) (*Claims, error) {
	return m.parse(tokenStr, m.accessSecret)
}

// ParseRefreshToken проверяет подпись и срок refresh-токена
func (m *TokenManager) ParseRefreshToken(tokenStr string) (*Claims, error) {
	return m.parse(tokenStr, m.refreshSecret)
}

func (m *TokenManager) parse(tokenStr string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
