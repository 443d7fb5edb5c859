package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var companyColumns = []string{"id", "created_at", "updated_at", "user_id", "name", "status", "website", "phone",
	"primary_contact_name", "primary_contact_email", "potential_value", "lead_source"}

func TestCompanyRepository_UpdateStatus_ScopedToOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCompanyRepository(db)
	ownerID, companyID := uuid.New(), uuid.New()

	mock.ExpectExec(`UPDATE "companies" SET "status"=.*WHERE id = .* AND user_id = `).
		WithArgs(models.CompanyStatusWon, sqlmock.AnyArg(), companyID, ownerID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), ownerID, companyID, models.CompanyStatusWon)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_UpdateStatus_NoRowsIsNotFoundOrForbidden(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCompanyRepository(db)

	mock.ExpectExec(`UPDATE "companies" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), uuid.New(), uuid.New(), models.CompanyStatusLost)

	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFoundOrForbidden)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_UpdateStatus_InvalidStatusNeverReachesStorage(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCompanyRepository(db)

	err := repo.UpdateStatus(context.Background(), uuid.New(), uuid.New(), models.CompanyStatus("archived"))

	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_UpdateStatus_StorageError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCompanyRepository(db)

	mock.ExpectExec(`UPDATE "companies" SET`).WillReturnError(errors.New("connection reset"))

	err := repo.UpdateStatus(context.Background(), uuid.New(), uuid.New(), models.CompanyStatusLead)

	assert.EqualError(t, err, "connection reset")
	assert.False(t, apperrors.IsNotFoundOrForbidden(err))
}

func TestCompanyRepository_Delete_ScopedToOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCompanyRepository(db)
	ownerID, companyID := uuid.New(), uuid.New()

	mock.ExpectExec(`DELETE FROM "companies" WHERE id = .* AND user_id = `).
		WithArgs(companyID, ownerID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), ownerID, companyID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_Delete_ForeignCompany(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCompanyRepository(db)

	mock.ExpectExec(`DELETE FROM "companies"`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFoundOrForbidden)
}

func TestCompanyRepository_GetForOwner_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCompanyRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "companies" WHERE id = .* AND user_id = `).
		WillReturnRows(sqlmock.NewRows(companyColumns))

	company, err := repo.GetForOwner(context.Background(), uuid.New(), uuid.New())

	assert.Nil(t, company)
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFoundOrForbidden)
}

func TestCompanyRepository_ListForOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCompanyRepository(db)
	ownerID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(companyColumns).
		AddRow(uuid.NewString(), now, now, ownerID.String(), "Acme", "won", nil, nil, nil, nil, 1500, "referral").
		AddRow(uuid.NewString(), now, now, ownerID.String(), "Globex", "lead", "https://globex.example", nil, nil, nil, 0, "other")
	mock.ExpectQuery(`SELECT \* FROM "companies" WHERE user_id = \$1 ORDER BY created_at DESC, id DESC`).
		WithArgs(ownerID).
		WillReturnRows(rows)

	companies, err := repo.ListForOwner(context.Background(), ownerID)

	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, "Acme", companies[0].Name)
	assert.Equal(t, models.CompanyStatusWon, companies[0].Status)
	assert.Equal(t, int64(1500), companies[0].PotentialValue)
	assert.Nil(t, companies[0].Website)
	require.NotNil(t, companies[1].Website)
	assert.Equal(t, "https://globex.example", *companies[1].Website)
}

func TestCompanyRepository_UpdateDetails_ForeignCompanyIsNotRead(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCompanyRepository(db)

	mock.ExpectExec(`UPDATE "companies" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	company, err := repo.UpdateDetails(context.Background(), uuid.New(), uuid.New(), map[string]interface{}{"name": "Hijack"})

	assert.Nil(t, company)
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFoundOrForbidden)
	assert.NoError(t, mock.ExpectationsWereMet())
}
