package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"crm-backend/internal/auth"
	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/logger"
	"crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountService handles registration and sessions
type AccountService struct {
	users      repository.UserRepositoryInterface
	sessions   repository.SessionRepositoryInterface
	profiles   *auth.ProfileCache
	validator  *validator.Validate
	sessionTTL time.Duration
	now        func() time.Time
}

var _ AccountServiceInterface = (*AccountService)(nil)

// NewAccountService creates a new account service
func NewAccountService(users repository.UserRepositoryInterface, sessions repository.SessionRepositoryInterface, profiles *auth.ProfileCache, validator *validator.Validate, sessionTTL time.Duration) *AccountService {
	return &AccountService{
		users:      users,
		sessions:   sessions,
		profiles:   profiles,
		validator:  validator,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

// SignUpRequest represents the sign-up form
type SignUpRequest struct {
	Name            string `json:"name" validate:"required,max=100" example:"Jane Doe"`
	Email           string `json:"email" validate:"required,email,max=255" example:"jane@example.com"`
	Password        string `json:"password" validate:"required,min=8,max=72,password"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// SignInRequest represents the sign-in form
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email" example:"jane@example.com"`
	Password string `json:"password" validate:"required"`
}

// ClientInfo is recorded on new sessions
type ClientInfo struct {
	IPAddress string
	UserAgent string
}

// SignInResult carries the new session token and its expiry
type SignInResult struct {
	Token     string
	ExpiresAt time.Time
	User      UserResponse
}

// UserResponse represents a user profile
type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"email_verified"`
	Image         string    `json:"image,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		Image:         u.Image,
		CreatedAt:     u.CreatedAt,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp registers a user with an email account
func (s *AccountService) SignUp(ctx context.Context, req *SignUpRequest) (*UserResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUserExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{Name: req.Name, Email: req.Email}
	account := &models.Account{ProviderID: models.ProviderEmail, AccountID: req.Email, Password: hash}
	if err := s.users.CreateWithAccount(ctx, user, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.WithContext(ctx).WithField("new_user", user.ID.String()).Info("user signed up")
	resp := toUserResponse(user)
	return &resp, nil
}

// SignIn checks credentials and opens a session. Unknown email and wrong
// password return the same error.
func (s *AccountService) SignIn(ctx context.Context, req *SignInRequest, client ClientInfo) (*SignInResult, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	account, err := s.users.GetAccount(ctx, user.ID, models.ProviderEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if !auth.CheckPassword(account.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: s.now().Add(s.sessionTTL),
		IPAddress: client.IPAddress,
		UserAgent: client.UserAgent,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &SignInResult{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      toUserResponse(user),
	}, nil
}

// SignOut ends the identity's session
func (s *AccountService) SignOut(ctx context.Context, identity auth.Identity) error {
	if err := s.sessions.DeleteByToken(ctx, identity.Token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	s.profiles.InvalidateToken(identity.Token)
	return nil
}
