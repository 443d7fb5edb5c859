package repository

import (
	"context"
	"errors"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db *gorm.DB
}

// Ensure CompanyRepository implements CompanyRepositoryInterface
var _ CompanyRepositoryInterface = (*CompanyRepository)(nil)

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// ownedBy scopes a query to one company of one owner
func ownedBy(ownerID, companyID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ? AND user_id = ?", companyID, ownerID)
	}
}

// Create inserts a new company
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

// ListForOwner retrieves every company owned by ownerID, newest first
func (r *CompanyRepository) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Company, error) {
	var companies []models.Company
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// GetForOwner retrieves a company only if ownerID owns it
func (r *CompanyRepository) GetForOwner(ctx context.Context, ownerID, companyID uuid.UUID) (*models.Company, error) {
	var company models.Company
	if err := r.db.WithContext(ctx).Scopes(ownedBy(ownerID, companyID)).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFoundOrForbidden
		}
		return nil, err
	}
	return &company, nil
}

// ExistsForOwner reports whether ownerID owns companyID
func (r *CompanyRepository) ExistsForOwner(ctx context.Context, ownerID, companyID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Company{}).
		Scopes(ownedBy(ownerID, companyID)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateStatus moves a company to another pipeline stage. Setting the current
// status again still matches the row and succeeds.
func (r *CompanyRepository) UpdateStatus(ctx context.Context, ownerID, companyID uuid.UUID, status models.CompanyStatus) error {
	if !status.IsValid() {
		return apperrors.ErrInvalidStatus
	}
	result := r.db.WithContext(ctx).
		Model(&models.Company{}).
		Scopes(ownedBy(ownerID, companyID)).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrCompanyNotFoundOrForbidden
	}
	return nil
}

// UpdateDetails applies column updates to an owned company and returns the stored row
func (r *CompanyRepository) UpdateDetails(ctx context.Context, ownerID, companyID uuid.UUID, fields map[string]interface{}) (*models.Company, error) {
	if len(fields) > 0 {
		result := r.db.WithContext(ctx).
			Model(&models.Company{}).
			Scopes(ownedBy(ownerID, companyID)).
			Updates(fields)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, apperrors.ErrCompanyNotFoundOrForbidden
		}
	}
	return r.GetForOwner(ctx, ownerID, companyID)
}

// Delete removes an owned company. Its interactions go with it through the foreign key.
func (r *CompanyRepository) Delete(ctx context.Context, ownerID, companyID uuid.UUID) error {
	result := r.db.WithContext(ctx).Scopes(ownedBy(ownerID, companyID)).Delete(&models.Company{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrCompanyNotFoundOrForbidden
	}
	return nil
}
