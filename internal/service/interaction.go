package service

import (
	"context"
	"strings"
	"time"

	"crm-backend/internal/auth"
	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/repository"

	"github.com/google/uuid"
)

// InteractionService handles business logic for the interaction log
type InteractionService struct {
	repo repository.InteractionRepositoryInterface
}

var _ InteractionServiceInterface = (*InteractionService)(nil)

// NewInteractionService creates a new interaction service
func NewInteractionService(repo repository.InteractionRepositoryInterface) *InteractionService {
	return &InteractionService{repo: repo}
}

// CreateInteractionRequest represents a new log entry
type CreateInteractionRequest struct {
	Content string `json:"content" example:"Called about the renewal"`
}

// InteractionResponse represents a log entry
type InteractionResponse struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func toInteractionResponse(i *models.Interaction) InteractionResponse {
	return InteractionResponse{
		ID:        i.ID,
		CompanyID: i.CompanyID,
		Content:   i.Content,
		CreatedAt: i.CreatedAt,
	}
}

// List returns a company's interactions, newest first
func (s *InteractionService) List(ctx context.Context, identity auth.Identity, companyID uuid.UUID) ([]InteractionResponse, error) {
	items, err := s.repo.ListForCompany(ctx, identity.UserID, companyID)
	if err != nil {
		return nil, wrapOwned("list interactions", err)
	}
	out := make([]InteractionResponse, 0, len(items))
	for i := range items {
		out = append(out, toInteractionResponse(&items[i]))
	}
	return out, nil
}

// Create appends an entry to a company's log. Blank content is rejected
// before storage is touched; the content is stored as submitted.
func (s *InteractionService) Create(ctx context.Context, identity auth.Identity, companyID uuid.UUID, content string) (*InteractionResponse, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.ErrEmptyInteraction
	}
	interaction := &models.Interaction{CompanyID: companyID, Content: content}
	if err := s.repo.Create(ctx, identity.UserID, interaction); err != nil {
		return nil, wrapOwned("create interaction", err)
	}
	resp := toInteractionResponse(interaction)
	return &resp, nil
}
