package service

import (
	"context"

	"crm-backend/internal/auth"
	"crm-backend/internal/database/models"
	"crm-backend/internal/kanban"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AccountServiceInterface defines sign-up, sign-in and sign-out
type AccountServiceInterface interface {
	SignUp(ctx context.Context, req *SignUpRequest) (*UserResponse, error)
	SignIn(ctx context.Context, req *SignInRequest, client ClientInfo) (*SignInResult, error)
	SignOut(ctx context.Context, identity auth.Identity) error
}

// CompanyServiceInterface defines company operations on behalf of an identity
type CompanyServiceInterface interface {
	Create(ctx context.Context, identity auth.Identity, req *CreateCompanyRequest) (*CompanyResponse, error)
	List(ctx context.Context, identity auth.Identity) ([]CompanyResponse, error)
	Get(ctx context.Context, identity auth.Identity, companyID uuid.UUID) (*CompanyResponse, error)
	UpdateStatus(ctx context.Context, identity auth.Identity, companyID uuid.UUID, status models.CompanyStatus) error
	UpdateDetails(ctx context.Context, identity auth.Identity, companyID uuid.UUID, req *UpdateCompanyRequest) (*CompanyResponse, error)
	Delete(ctx context.Context, identity auth.Identity, companyID uuid.UUID) error
	Board(ctx context.Context, identity auth.Identity) ([]kanban.ColumnView, error)
	MoveCard(ctx context.Context, identity auth.Identity, req *MoveCardRequest) ([]kanban.ColumnView, error)
}

// InteractionServiceInterface defines interaction operations on behalf of an identity
type InteractionServiceInterface interface {
	List(ctx context.Context, identity auth.Identity, companyID uuid.UUID) ([]InteractionResponse, error)
	Create(ctx context.Context, identity auth.Identity, companyID uuid.UUID, content string) (*InteractionResponse, error)
}

// UserServiceInterface defines the signed-in user's profile operations
type UserServiceInterface interface {
	Current(ctx context.Context, identity auth.Identity) (*UserResponse, error)
	UpdateProfile(ctx context.Context, identity auth.Identity, req *UpdateProfileRequest) (*UserResponse, error)
}
