package testutils

import (
	"time"

	"crm-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{ID: id, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Name:      "Test User",
		Email:     "user-" + id.String()[:8] + "@example.com",
	}
}

// WithEmail creates a test User with a fixed email
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct{}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create creates a test Company owned by ownerID
func (f *CompanyFactory) Create(ownerID uuid.UUID) *models.Company {
	return &models.Company{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		UserID:     ownerID,
		Name:       "Acme Corp",
		Status:     models.CompanyStatusLead,
		LeadSource: models.LeadSourceOther,
	}
}

// WithStatus creates a test Company in the given stage
func (f *CompanyFactory) WithStatus(ownerID uuid.UUID, status models.CompanyStatus) *models.Company {
	company := f.Create(ownerID)
	company.Status = status
	return company
}

// SessionFactory provides methods to create test Session data
type SessionFactory struct{}

// NewSessionFactory creates a new SessionFactory
func NewSessionFactory() *SessionFactory {
	return &SessionFactory{}
}

// Create creates a test Session for userID expiring after ttl
func (f *SessionFactory) Create(userID uuid.UUID, ttl time.Duration) *models.Session {
	return &models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}
}
