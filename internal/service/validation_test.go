package service

import (
	"testing"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidator_CustomRules(t *testing.T) {
	v := NewValidator()

	type sample struct {
		Password string               `json:"password" validate:"password"`
		Phone    string               `json:"phone" validate:"phone"`
		Status   models.CompanyStatus `json:"status" validate:"company_status"`
		Source   models.LeadSource    `json:"source" validate:"lead_source"`
	}

	valid := sample{Password: "abc12345", Phone: "+1 (555) 010-0100", Status: models.CompanyStatusWon, Source: models.LeadSourceColdCall}
	assert.NoError(t, validate(v, &valid))

	invalid := sample{Password: "12345678", Phone: "555-CALL", Status: "closed", Source: "billboard"}
	err := validate(v, &invalid)
	require.Error(t, err)

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{
		"password": "must contain a letter and a digit",
		"phone":    "must be a valid phone number",
		"status":   "must be one of lead, negotiating, won, lost",
		"source":   "must be one of website, referral, cold_call, other",
	}, verr.FieldMessages())
}

func TestValidate_ReportsJSONNames(t *testing.T) {
	v := NewValidator()

	err := validate(v, &SignUpRequest{Name: "Jane", Email: "jane@example.com", Password: "abc12345", ConfirmPassword: "abc12346"})

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{"confirm_password": "passwords do not match"}, verr.FieldMessages())
}

func TestTrimmedOrNil(t *testing.T) {
	blank, padded := "  ", " x "

	assert.Nil(t, trimmedOrNil(nil))
	assert.Nil(t, trimmedOrNil(&blank))
	require.NotNil(t, trimmedOrNil(&padded))
	assert.Equal(t, "x", *trimmedOrNil(&padded))
}
