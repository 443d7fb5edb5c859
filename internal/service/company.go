package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"crm-backend/internal/auth"
	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/kanban"
	"crm-backend/internal/logger"
	"crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CompanyService handles business logic for companies
type CompanyService struct {
	repo      repository.CompanyRepositoryInterface
	validator *validator.Validate
}

var _ CompanyServiceInterface = (*CompanyService)(nil)

// NewCompanyService creates a new company service
func NewCompanyService(repo repository.CompanyRepositoryInterface, validator *validator.Validate) *CompanyService {
	return &CompanyService{
		repo:      repo,
		validator: validator,
	}
}

// CreateCompanyRequest represents the data needed to create a company
type CreateCompanyRequest struct {
	Name                string               `json:"name" validate:"required,min=2,max=255" example:"Acme Corp"`
	Status              models.CompanyStatus `json:"status,omitempty" validate:"omitempty,company_status" example:"lead"`
	Website             *string              `json:"website,omitempty" validate:"omitempty,url" example:"https://acme.example"`
	Phone               *string              `json:"phone,omitempty" validate:"omitempty,max=50,phone" example:"+1 555 0100"`
	PrimaryContactName  *string              `json:"primary_contact_name,omitempty" validate:"omitempty,max=255"`
	PrimaryContactEmail *string              `json:"primary_contact_email,omitempty" validate:"omitempty,email,max=255"`
	PotentialValue      int64                `json:"potential_value" validate:"min=0"`
	LeadSource          models.LeadSource    `json:"lead_source,omitempty" validate:"omitempty,lead_source" example:"referral"`
}

// UpdateCompanyRequest is a partial update. Nil fields are left unchanged;
// an empty optional text field clears the stored value.
type UpdateCompanyRequest struct {
	Name                *string               `json:"name,omitempty" validate:"omitnil,min=2,max=255"`
	Status              *models.CompanyStatus `json:"status,omitempty" validate:"omitnil,company_status"`
	Website             *string               `json:"website,omitempty" validate:"omitempty,url"`
	Phone               *string               `json:"phone,omitempty" validate:"omitempty,max=50,phone"`
	PrimaryContactName  *string               `json:"primary_contact_name,omitempty" validate:"omitempty,max=255"`
	PrimaryContactEmail *string               `json:"primary_contact_email,omitempty" validate:"omitempty,email,max=255"`
	PotentialValue      *int64                `json:"potential_value,omitempty" validate:"omitnil,min=0"`
	LeadSource          *models.LeadSource    `json:"lead_source,omitempty" validate:"omitnil,lead_source"`
}

// UpdateStatusRequest represents a move to another pipeline stage
type UpdateStatusRequest struct {
	Status models.CompanyStatus `json:"status" binding:"required" example:"negotiating"`
}

// MoveCardRequest is a finished drag on the board. OverID is the card or
// column the card was dropped on; empty means the drag was cancelled.
type MoveCardRequest struct {
	ActiveID string `json:"active_id" binding:"required" example:"3f1c2a9e-8b7d-4c6e-9a5b-1d2e3f4a5b6c"`
	OverID   string `json:"over_id" example:"negotiating"`
}

// CompanyResponse represents a company as returned to its owner
type CompanyResponse struct {
	ID                  uuid.UUID            `json:"id"`
	Name                string               `json:"name"`
	Status              models.CompanyStatus `json:"status"`
	Website             *string              `json:"website"`
	Phone               *string              `json:"phone"`
	PrimaryContactName  *string              `json:"primary_contact_name"`
	PrimaryContactEmail *string              `json:"primary_contact_email"`
	PotentialValue      int64                `json:"potential_value"`
	LeadSource          models.LeadSource    `json:"lead_source"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

func toCompanyResponse(c *models.Company) CompanyResponse {
	return CompanyResponse{
		ID:                  c.ID,
		Name:                c.Name,
		Status:              c.Status,
		Website:             c.Website,
		Phone:               c.Phone,
		PrimaryContactName:  c.PrimaryContactName,
		PrimaryContactEmail: c.PrimaryContactEmail,
		PotentialValue:      c.PotentialValue,
		LeadSource:          c.LeadSource,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

// Create adds a company owned by the identity. Status defaults to lead.
func (s *CompanyService) Create(ctx context.Context, identity auth.Identity, req *CreateCompanyRequest) (*CompanyResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Website = trimmedOrNil(req.Website)
	req.Phone = trimmedOrNil(req.Phone)
	req.PrimaryContactName = trimmedOrNil(req.PrimaryContactName)
	req.PrimaryContactEmail = trimmedOrNil(req.PrimaryContactEmail)
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	company := &models.Company{
		UserID:              identity.UserID,
		Name:                req.Name,
		Status:              req.Status,
		Website:             req.Website,
		Phone:               req.Phone,
		PrimaryContactName:  req.PrimaryContactName,
		PrimaryContactEmail: req.PrimaryContactEmail,
		PotentialValue:      req.PotentialValue,
		LeadSource:          req.LeadSource,
	}
	if company.Status == "" {
		company.Status = models.CompanyStatusLead
	}
	if company.LeadSource == "" {
		company.LeadSource = models.LeadSourceOther
	}

	if err := s.repo.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	logger.WithContext(ctx).WithField("company_id", company.ID.String()).Info("company created")
	resp := toCompanyResponse(company)
	return &resp, nil
}

// List returns the identity's companies, newest first
func (s *CompanyService) List(ctx context.Context, identity auth.Identity) ([]CompanyResponse, error) {
	companies, err := s.repo.ListForOwner(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	out := make([]CompanyResponse, 0, len(companies))
	for i := range companies {
		out = append(out, toCompanyResponse(&companies[i]))
	}
	return out, nil
}

// Get returns one of the identity's companies
func (s *CompanyService) Get(ctx context.Context, identity auth.Identity, companyID uuid.UUID) (*CompanyResponse, error) {
	company, err := s.repo.GetForOwner(ctx, identity.UserID, companyID)
	if err != nil {
		return nil, wrapOwned("get company", err)
	}
	resp := toCompanyResponse(company)
	return &resp, nil
}

// UpdateStatus moves a company to any pipeline stage. Repeating the current
// stage succeeds.
func (s *CompanyService) UpdateStatus(ctx context.Context, identity auth.Identity, companyID uuid.UUID, status models.CompanyStatus) error {
	if !status.IsValid() {
		return apperrors.ErrInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, identity.UserID, companyID, status); err != nil {
		return wrapOwned("update company status", err)
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"company_id": companyID.String(),
		"status":     status,
	}).Info("company status updated")
	return nil
}

// UpdateDetails applies a partial update and returns the stored company
func (s *CompanyService) UpdateDetails(ctx context.Context, identity auth.Identity, companyID uuid.UUID, req *UpdateCompanyRequest) (*CompanyResponse, error) {
	fields := make(map[string]interface{})

	// optional text is trimmed first; a blank value clears the column and skips validation
	optional := map[string]**string{
		"website":               &req.Website,
		"phone":                 &req.Phone,
		"primary_contact_name":  &req.PrimaryContactName,
		"primary_contact_email": &req.PrimaryContactEmail,
	}
	for column, value := range optional {
		if *value != nil {
			*value = trimmedOrNil(*value)
			fields[column] = *value
		}
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.PotentialValue != nil {
		fields["potential_value"] = *req.PotentialValue
	}
	if req.LeadSource != nil {
		fields["lead_source"] = *req.LeadSource
	}

	company, err := s.repo.UpdateDetails(ctx, identity.UserID, companyID, fields)
	if err != nil {
		return nil, wrapOwned("update company", err)
	}
	resp := toCompanyResponse(company)
	return &resp, nil
}

// Delete removes a company and its interactions
func (s *CompanyService) Delete(ctx context.Context, identity auth.Identity, companyID uuid.UUID) error {
	if err := s.repo.Delete(ctx, identity.UserID, companyID); err != nil {
		return wrapOwned("delete company", err)
	}
	logger.WithContext(ctx).WithField("company_id", companyID.String()).Info("company deleted")
	return nil
}

// Board returns the identity's companies grouped into pipeline columns
func (s *CompanyService) Board(ctx context.Context, identity auth.Identity) ([]kanban.ColumnView, error) {
	companies, err := s.repo.ListForOwner(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return kanban.NewBoard(companies).Snapshot(), nil
}

// MoveCard applies a finished drag to the identity's board: the card joins the
// column it was dragged over, the drop stores that column as its status, and
// the resulting board is returned. When the status cannot be stored the card
// stays where it started and the error is returned.
func (s *CompanyService) MoveCard(ctx context.Context, identity auth.Identity, req *MoveCardRequest) ([]kanban.ColumnView, error) {
	companies, err := s.repo.ListForOwner(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	board := kanban.NewBoard(companies)
	if !board.Contains(req.ActiveID) {
		return nil, apperrors.ErrCompanyNotFoundOrForbidden
	}
	if req.OverID != "" && !board.IsTarget(req.OverID) {
		return nil, apperrors.ErrInvalidDropTarget
	}

	board.DragOver(req.ActiveID, req.OverID)
	persist := func(ctx context.Context, companyID uuid.UUID, status models.CompanyStatus) error {
		return s.UpdateStatus(ctx, identity, companyID, status)
	}
	if err := board.Drop(ctx, req.ActiveID, req.OverID, persist); err != nil {
		return nil, err
	}
	return board.Snapshot(), nil
}

// wrapOwned passes domain errors through untouched and wraps storage failures
func wrapOwned(action string, err error) error {
	if apperrors.IsNotFoundOrForbidden(err) || apperrors.IsValidation(err) {
		return err
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
