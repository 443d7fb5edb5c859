package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"crm-backend/internal/auth"
	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/logger"
	"crm-backend/internal/repository"
	"crm-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// UserService handles the signed-in user's profile
type UserService struct {
	repo      repository.UserRepositoryInterface
	avatars   storage.AvatarStore
	profiles  *auth.ProfileCache
	validator *validator.Validate
}

var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, avatars storage.AvatarStore, profiles *auth.ProfileCache, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		avatars:   avatars,
		profiles:  profiles,
		validator: validator,
	}
}

// UpdateProfileRequest carries the account form. A blank name and an empty
// image leave the stored values unchanged.
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"max=100"`
	Image []byte `json:"-"`
}

// Current returns the identity's profile, served from the profile cache when fresh
func (s *UserService) Current(ctx context.Context, identity auth.Identity) (*UserResponse, error) {
	user, err := s.profiles.GetOrLoad(ctx, identity.Token, func(ctx context.Context) (*models.User, error) {
		return s.repo.GetByID(ctx, identity.UserID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// UpdateProfile changes the display name and avatar. Every cached profile of
// the user is dropped afterwards.
func (s *UserService) UpdateProfile(ctx context.Context, identity auth.Identity, req *UpdateProfileRequest) (*UserResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if len(req.Image) > 0 {
		url, err := s.avatars.Upload(ctx, identity.UserID, req.Image)
		if err != nil {
			if apperrors.IsValidation(err) {
				return nil, err
			}
			return nil, fmt.Errorf("failed to upload avatar: %w", err)
		}
		fields["image"] = url
	}

	if len(fields) > 0 {
		if err := s.repo.UpdateProfile(ctx, identity.UserID, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUnauthorized
			}
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
		s.profiles.InvalidateUser(identity.UserID)
		logger.WithContext(ctx).Info("profile updated")
	}

	return s.Current(ctx, identity)
}
