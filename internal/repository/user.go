package repository

import (
	"context"

	"crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users and their credentials
type UserRepository struct {
	db *gorm.DB
}

// Ensure UserRepository implements UserRepositoryInterface
var _ UserRepositoryInterface = (*UserRepository)(nil)

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateWithAccount inserts a user and its credential row atomically.
// A user without credentials could never sign in.
func (r *UserRepository) CreateWithAccount(ctx context.Context, user *models.User, account *models.Account) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		account.UserID = user.ID
		return tx.Create(account).Error
	})
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAccount retrieves the credential row of a user for one provider
func (r *UserRepository) GetAccount(ctx context.Context, userID uuid.UUID, providerID string) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND provider_id = ?", userID, providerID).
		First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateProfile updates mutable profile columns
func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
