package repositories

import (
	"testing"
	"time"

	"jobhub_backend/internal/auth"
	"jobhub_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createSession(t *testing.T, repo SessionRepository, userID, token string, expiresAt time.Time) *models.Session {
	t.Helper()

	hash, err := auth.HashRefreshToken(token)
	require.NoError(t, err)

	session := &models.Session{
		UserID:    userID,
		TokenHash: hash,
		ExpiresAt: expiresAt,
	}
	require.NoError(t, repo.Create(session))
	return session
}

func TestSessionRepository_FindMatching(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	user := createTestUser(t, db, "a@example.com", models.UserRoleSeeker)

	created := createSession(t, repo, user.ID, "token-one", time.Now().Add(time.Hour))
	createSession(t, repo, user.ID, "token-two", time.Now().Add(time.Hour))

	found, err := repo.FindMatching("token-one")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.FindMatching("unknown-token")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// Истекшая сессия невидима для поиска даже при совпадающем хеше
func TestSessionRepository_ExpiredSessionIgnored(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	user := createTestUser(t, db, "a@example.com", models.UserRoleSeeker)

	createSession(t, repo, user.ID, "stale-token", time.Now().Add(-time.Minute))

	_, err := repo.FindMatching("stale-token")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepository_DeleteMatching(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	user := createTestUser(t, db, "a@example.com", models.UserRoleSeeker)

	createSession(t, repo, user.ID, "token-one", time.Now().Add(time.Hour))

	require.NoError(t, repo.DeleteMatching("token-one"))

	_, err := repo.FindMatching("token-one")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Повторный отзыв и отзыв неизвестного токена - no-op
	assert.NoError(t, repo.DeleteMatching("token-one"))
	assert.NoError(t, repo.DeleteMatching("never-existed"))
}

func TestSessionRepository_DeleteByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	alice := createTestUser(t, db, "alice@example.com", models.UserRoleSeeker)
	bob := createTestUser(t, db, "bob@example.com", models.UserRoleSeeker)

	createSession(t, repo, alice.ID, "alice-token", time.Now().Add(time.Hour))
	createSession(t, repo, bob.ID, "bob-token", time.Now().Add(time.Hour))

	require.NoError(t, repo.DeleteByUserID(alice.ID))

	_, err := repo.FindMatching("alice-token")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = repo.FindMatching("bob-token")
	assert.NoError(t, err)
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	user := createTestUser(t, db, "a@example.com", models.UserRoleSeeker)

	createSession(t, repo, user.ID, "live-token", time.Now().Add(time.Hour))
	createSession(t, repo, user.ID, "dead-token", time.Now().Add(-time.Hour))

	require.NoError(t, repo.DeleteExpired())

	var count int64
	require.NoError(t, db.Model(&models.Session{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
