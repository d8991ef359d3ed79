package services

import (
	"context"
	"encoding/json"
	"testing"

	"jobhub_backend/internal/services/dto"
	"jobhub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_GetAndUpdate(t *testing.T) {
	env := newTestEnv(t)
	svc := env.profileService()
	ctx := context.Background()
	seeker := env.createSeeker(t, "seeker@example.com")

	profile, err := svc.GetProfile(ctx, seeker.ID)
	require.NoError(t, err)
	assert.Equal(t, "Seeker", profile.Name)

	name := "Updated Name"
	headline := "Go Engineer"
	updated, err := svc.UpdateProfile(ctx, seeker.ID, dto.UpdateProfileRequest{
		Name:     &name,
		Headline: &headline,
		Skills:   []string{"go", "postgres"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Updated Name", updated.Name)
	assert.Equal(t, "Go Engineer", updated.Headline)

	var skills []string
	require.NoError(t, json.Unmarshal(updated.Skills, &skills))
	assert.Equal(t, []string{"go", "postgres"}, skills)
}

// Частичное обновление не трогает незаполненные поля
func TestProfileService_PartialUpdate(t *testing.T) {
	env := newTestEnv(t)
	svc := env.profileService()
	ctx := context.Background()
	seeker := env.createSeeker(t, "seeker@example.com")

	bio := "Ten years of plumbing"
	_, err := svc.UpdateProfile(ctx, seeker.ID, dto.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, seeker.ID)
	require.NoError(t, err)
	assert.Equal(t, "Seeker", profile.Name)
	assert.Equal(t, "Ten years of plumbing", profile.Bio)
}

func TestProfileService_NotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := env.profileService()

	_, err := svc.GetProfile(context.Background(), "missing-user")
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}
