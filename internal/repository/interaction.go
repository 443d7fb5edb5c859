package repository

import (
	"context"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InteractionRepository handles database operations for interactions
type InteractionRepository struct {
	db *gorm.DB
}

// Ensure InteractionRepository implements InteractionRepositoryInterface
var _ InteractionRepositoryInterface = (*InteractionRepository)(nil)

// NewInteractionRepository creates a new interaction repository
func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

func companyOwned(tx *gorm.DB, ownerID, companyID uuid.UUID) error {
	var count int64
	if err := tx.Model(&models.Company{}).
		Scopes(ownedBy(ownerID, companyID)).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperrors.ErrCompanyNotFoundOrForbidden
	}
	return nil
}

// ListForCompany returns the log of an owned company, most recent first
func (r *InteractionRepository) ListForCompany(ctx context.Context, ownerID, companyID uuid.UUID) ([]models.Interaction, error) {
	db := r.db.WithContext(ctx)
	if err := companyOwned(db, ownerID, companyID); err != nil {
		return nil, err
	}

	interactions := []models.Interaction{}
	if err := db.Where("company_id = ?", companyID).
		Order("created_at DESC, id DESC").
		Find(&interactions).Error; err != nil {
		return nil, err
	}
	return interactions, nil
}

// Create appends an interaction to an owned company. The ownership check and
// the insert run in one transaction.
func (r *InteractionRepository) Create(ctx context.Context, ownerID uuid.UUID, interaction *models.Interaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := companyOwned(tx, ownerID, interaction.CompanyID); err != nil {
			return err
		}
		return tx.Create(interaction).Error
	})
}
