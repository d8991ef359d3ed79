package repositories

import (
	"time"

	"jobhub_backend/internal/auth"
	"jobhub_backend/internal/models"

	"gorm.io/gorm"
)

// SessionRepository - леджер сессий: по одной записи на выданный
// refresh-токен. В БД лежит только односторонний хеш токена.
type SessionRepository interface {
	// Create сохраняет запись сессии
	Create(session *models.Session) error

	// FindMatching находит сессию, чей хеш совпадает с предъявленным
	// токеном. Отсутствие совпадения - нормальный исход (ErrSessionNotFound).
	FindMatching(token string) (*models.Session, error)

	// DeleteMatching отзывает первую совпавшую сессию.
	// Отзыв несуществующего токена - no-op, не ошибка.
	DeleteMatching(token string) error

	// DeleteByID удаляет сессию по id (ротация)
	DeleteByID(id string) error

	// DeleteByUserID удаляет все сессии пользователя
	DeleteByUserID(userID string) error

	// DeleteExpired удаляет истекшие сессии
	DeleteExpired() error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

// FindMatching - линейный скан неистекших сессий с bcrypt-сравнением.
// Хеш односторонний, проиндексировать его обратно к токену нельзя;
// на умеренном числе сессий это приемлемо.
func (r *sessionRepository) FindMatching(token string) (*models.Session, error) {
	sessions, err := r.findActive()
	if err != nil {
		return nil, err
	}

	for i := range sessions {
		if auth.RefreshTokenMatches(sessions[i].TokenHash, token) {
			return &sessions[i], nil
		}
	}
	return nil, ErrSessionNotFound
}

func (r *sessionRepository) DeleteMatching(token string) error {
	session, err := r.FindMatching(token)
	if err != nil {
		if err == ErrSessionNotFound {
			return nil
		}
		return err
	}
	return r.DeleteByID(session.ID)
}

func (r *sessionRepository) DeleteByID(id string) error {
	return r.db.Delete(&models.Session{}, "id = ?", id).Error
}

func (r *sessionRepository) DeleteByUserID(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Session{}).Error
}

func (r *sessionRepository) DeleteExpired() error {
	return r.db.Where("expires_at < ?", time.Now()).Delete(&models.Session{}).Error
}

func (r *sessionRepository) findActive() ([]models.Session, error) {
	var sessions []models.Session
	err := r.db.Where("expires_at > ?", time.Now()).
		Order("created_at DESC").
		Find(&sessions).Error
	return sessions, err
}
