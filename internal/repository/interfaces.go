package repository

import (
	"context"

	"crm-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	CreateWithAccount(ctx context.Context, user *models.User, account *models.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAccount(ctx context.Context, userID uuid.UUID, providerID string) (*models.Account, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
}

// SessionRepositoryInterface defines the interface for the session store
type SessionRepositoryInterface interface {
	Create(ctx context.Context, session *models.Session) error
	GetByToken(ctx context.Context, token string) (*models.Session, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// CompanyRepositoryInterface defines ownership-scoped company operations.
// Every method filters by ownerID in the same statement as the company id.
type CompanyRepositoryInterface interface {
	Create(ctx context.Context, company *models.Company) error
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Company, error)
	GetForOwner(ctx context.Context, ownerID, companyID uuid.UUID) (*models.Company, error)
	ExistsForOwner(ctx context.Context, ownerID, companyID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, ownerID, companyID uuid.UUID, status models.CompanyStatus) error
	UpdateDetails(ctx context.Context, ownerID, companyID uuid.UUID, fields map[string]interface{}) (*models.Company, error)
	Delete(ctx context.Context, ownerID, companyID uuid.UUID) error
}

// InteractionRepositoryInterface defines ownership-scoped interaction operations
type InteractionRepositoryInterface interface {
	ListForCompany(ctx context.Context, ownerID, companyID uuid.UUID) ([]models.Interaction, error)
	Create(ctx context.Context, ownerID uuid.UUID, interaction *models.Interaction) error
}
