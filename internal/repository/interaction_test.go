package repository

import (
	"context"
	"testing"
	"time"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractionRepository_ListForCompany_ChecksOwnershipFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInteractionRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "companies" WHERE id = .* AND user_id = `).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	interactions, err := repo.ListForCompany(context.Background(), uuid.New(), uuid.New())

	assert.Nil(t, interactions)
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFoundOrForbidden)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInteractionRepository_ListForCompany_NewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInteractionRepository(db)
	companyID := uuid.New()
	newer, older := time.Now(), time.Now().Add(-time.Hour)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "companies"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "interactions" WHERE company_id = \$1 ORDER BY created_at DESC, id DESC`).
		WithArgs(companyID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_id", "content", "created_at"}).
			AddRow(uuid.NewString(), companyID.String(), "second call", newer).
			AddRow(uuid.NewString(), companyID.String(), "first call", older))

	interactions, err := repo.ListForCompany(context.Background(), uuid.New(), companyID)

	require.NoError(t, err)
	require.Len(t, interactions, 2)
	assert.Equal(t, "second call", interactions[0].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInteractionRepository_ListForCompany_EmptyIsNotNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInteractionRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "companies"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "interactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_id", "content", "created_at"}))

	interactions, err := repo.ListForCompany(context.Background(), uuid.New(), uuid.New())

	require.NoError(t, err)
	assert.NotNil(t, interactions)
	assert.Empty(t, interactions)
}

func TestInteractionRepository_Create_ForeignCompanyRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInteractionRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "companies"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), uuid.New(), &models.Interaction{CompanyID: uuid.New(), Content: "hello"})

	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFoundOrForbidden)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInteractionRepository_Create_Inserts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInteractionRepository(db)
	interaction := &models.Interaction{CompanyID: uuid.New(), Content: "Sent proposal"}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "companies"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "interactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), uuid.New(), interaction)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, interaction.ID)
	assert.False(t, interaction.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}
