package repositories

import (
	"testing"

	"jobhub_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationRepository_DuplicateRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)

	owner := createTestUser(t, db, "owner@example.com", models.UserRoleCompany)
	company := createTestCompany(t, db, owner.ID)
	job := createTestJob(t, db, company.ID, models.JobStatusOpen)
	seeker := createTestUser(t, db, "seeker@example.com", models.UserRoleSeeker)

	first := &models.Application{JobID: job.ID, UserID: seeker.ID, Status: models.ApplicationStatusPending}
	require.NoError(t, repo.Create(first))

	second := &models.Application{JobID: job.ID, UserID: seeker.ID, Status: models.ApplicationStatusPending}
	err := repo.Create(second)
	assert.ErrorIs(t, err, ErrDuplicateApplication)

	// Другой соискатель на ту же вакансию проходит
	other := createTestUser(t, db, "other@example.com", models.UserRoleSeeker)
	third := &models.Application{JobID: job.ID, UserID: other.ID, Status: models.ApplicationStatusPending}
	assert.NoError(t, repo.Create(third))
}

func TestApplicationRepository_ListByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)

	owner := createTestUser(t, db, "owner@example.com", models.UserRoleCompany)
	company := createTestCompany(t, db, owner.ID)
	jobA := createTestJob(t, db, company.ID, models.JobStatusOpen)
	jobB := createTestJob(t, db, company.ID, models.JobStatusOpen)
	seeker := createTestUser(t, db, "seeker@example.com", models.UserRoleSeeker)

	require.NoError(t, repo.Create(&models.Application{JobID: jobA.ID, UserID: seeker.ID, Status: models.ApplicationStatusPending}))
	require.NoError(t, repo.Create(&models.Application{JobID: jobB.ID, UserID: seeker.ID, Status: models.ApplicationStatusPending}))

	applications, err := repo.ListByUser(seeker.ID)
	require.NoError(t, err)
	require.Len(t, applications, 2)
	// Вакансия подгружается для отображения списка откликов
	assert.NotNil(t, applications[0].Job)
}
