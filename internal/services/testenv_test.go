package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"jobhub_backend/database"
	"jobhub_backend/internal/auth"
	"jobhub_backend/internal/cache"
	"jobhub_backend/internal/models"
	"jobhub_backend/internal/repositories"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv - песочница сервисных тестов: in-memory БД, miniredis,
// все репозитории и токен-менеджер с короткими, но живыми TTL
type testEnv struct {
	db       *gorm.DB
	cache    *cache.Client
	redis    *miniredis.Miniredis
	tokens   *auth.TokenManager
	userRepo repositories.UserRepository
	sessions repositories.SessionRepository
	profiles repositories.ProfileRepository
	companies repositories.CompanyRepository
	jobs     repositories.JobRepository
	apps     repositories.ApplicationRepository
}

// testEnvSeq нумерует песочницы: каждой - своя shared-cache in-memory БД,
// видимая всем соединениям пула (голый ":memory:" даёт каждому соединению
// отдельную пустую БД)
var testEnvSeq atomic.Int64

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:testenv_%d?mode=memory&cache=shared", testEnvSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cacheClient := cache.NewWithClient(rdb, 300*time.Second)
	t.Cleanup(func() { cacheClient.Close() })

	return &testEnv{
		db:       db,
		cache:    cacheClient,
		redis:    mr,
		tokens:   auth.NewTokenManager("test-access-secret", "test-refresh-secret", 15*time.Minute, 168*time.Hour),
		userRepo: repositories.NewUserRepository(db),
		sessions: repositories.NewSessionRepository(db),
		profiles: repositories.NewProfileRepository(db),
		companies: repositories.NewCompanyRepository(db),
		jobs:     repositories.NewJobRepository(db),
		apps:     repositories.NewApplicationRepository(db),
	}
}

func (e *testEnv) authService() AuthService {
	return NewAuthService(e.db, e.userRepo, e.sessions, e.profiles, e.companies, e.tokens)
}

func (e *testEnv) jobService() JobService {
	return NewJobService(e.jobs, e.apps, e.companies, e.cache)
}

func (e *testEnv) profileService() ProfileService {
	return NewProfileService(e.profiles)
}

func (e *testEnv) createCompanyWithJob(t *testing.T, email string, status models.JobStatus) (*models.User, *models.Company, *models.Job) {
	t.Helper()

	user := &models.User{Email: email, Role: models.UserRoleCompany}
	require.NoError(t, e.userRepo.Create(nil, user))

	company := &models.Company{OwnerID: user.ID, Name: "Acme"}
	require.NoError(t, e.companies.Create(nil, company))

	job := &models.Job{
		CompanyID:       company.ID,
		Title:           "Backend Engineer",
		Description:     "Build and run services",
		Location:        "Berlin",
		JobType:         models.JobTypeFullTime,
		LocationType:    models.LocationTypeRemote,
		ExperienceLevel: models.ExperienceLevelSenior,
		Status:          status,
	}
	require.NoError(t, e.jobs.Create(job))

	return user, company, job
}

func (e *testEnv) createSeeker(t *testing.T, email string) *models.User {
	t.Helper()

	user := &models.User{Email: email, Role: models.UserRoleSeeker}
	require.NoError(t, e.userRepo.Create(nil, user))

	profile := &models.Profile{UserID: user.ID, Name: "Seeker"}
	require.NoError(t, e.profiles.Create(nil, profile))

	return user
}

func (e *testEnv) sessionCount(t *testing.T) int64 {
	t.Helper()

	var count int64
	require.NoError(t, e.db.Model(&models.Session{}).Count(&count).Error)
	return count
}
