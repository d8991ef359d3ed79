package repositories

import (
	"testing"

	"jobhub_backend/database"
	"jobhub_backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "$2a$12$not-a-real-hash",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCompany(t *testing.T, db *gorm.DB, ownerID string) *models.Company {
	t.Helper()

	company := &models.Company{OwnerID: ownerID, Name: "Acme"}
	require.NoError(t, db.Create(company).Error)
	return company
}

func createTestJob(t *testing.T, db *gorm.DB, companyID string, status models.JobStatus) *models.Job {
	t.Helper()

	job := &models.Job{
		CompanyID:       companyID,
		Title:           "Backend Engineer",
		Description:     "Build services",
		Location:        "Berlin",
		JobType:         models.JobTypeFullTime,
		LocationType:    models.LocationTypeRemote,
		ExperienceLevel: models.ExperienceLevelSenior,
		Status:          status,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}
