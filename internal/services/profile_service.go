package services

import (
	"context"
	"encoding/json"
	"errors"

	"jobhub_backend/internal/models"
	"jobhub_backend/internal/repositories"
	"jobhub_backend/internal/services/dto"
	"jobhub_backend/pkg/apperrors"
)

// ProfileService - профиль текущего пользователя
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*models.Profile, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

func (s *ProfileServiceImpl) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "profile", "Failed to find profile", 500)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "profile", "Failed to find profile", 500)
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Headline != nil {
		profile.Headline = *req.Headline
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Skills != nil {
		data, err := json.Marshal(req.Skills)
		if err != nil {
			return nil, apperrors.ValidationError("invalid skills payload")
		}
		profile.Skills = data
	}

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "profile", "Failed to update profile", 500)
	}
	return profile, nil
}
