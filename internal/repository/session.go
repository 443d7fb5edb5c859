package repository

import (
	"context"
	"time"

	"crm-backend/internal/database/models"

	"gorm.io/gorm"
)

// SessionRepository persists session tokens
type SessionRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// Ensure SessionRepository implements SessionRepositoryInterface
var _ SessionRepositoryInterface = (*SessionRepository)(nil)

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db, now: time.Now}
}

// Create inserts a new session
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// GetByToken retrieves a session by token regardless of expiry
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteByToken removes a session. Deleting an unknown token is not an error.
func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&models.Session{}).Error
}

// DeleteExpired removes sessions that can no longer authorize anything
func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at <= ?", r.now()).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
