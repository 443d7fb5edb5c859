package handlers

import (
	"net/http"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InteractionHandler handles a company's interaction log
type InteractionHandler struct {
	interactionService service.InteractionServiceInterface
}

// NewInteractionHandler creates a new interaction handler
func NewInteractionHandler(interactionService service.InteractionServiceInterface) *InteractionHandler {
	return &InteractionHandler{interactionService: interactionService}
}

// ListInteractions handles GET /companies/:id/interactions
// @Summary List interactions
// @Description A company's interactions, newest first
// @Tags interactions
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Success 200 {object} Result{data=[]service.InteractionResponse} "Interactions"
// @Failure 404 {object} Result "Company not found or permission denied"
// @Security SessionCookie
// @Router /api/v1/companies/{id}/interactions [get]
func (h *InteractionHandler) ListInteractions(c *gin.Context) {
	identity, ok := requestIdentity(c)
	if !ok {
		return
	}
	companyID, ok := companyIDParam(c)
	if !ok {
		return
	}

	items, err := h.interactionService.List(c.Request.Context(), identity, companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, items, "")
}

// CreateInteraction handles POST /companies/:id/interactions
// @Summary Add an interaction
// @Tags interactions
// @Accept json
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param body body service.CreateInteractionRequest true "Interaction"
// @Success 201 {object} Result{data=service.InteractionResponse} "Interaction added"
// @Failure 400 {object} Result "Empty content"
// @Failure 404 {object} Result "Company not found or permission denied"
// @Security SessionCookie
// @Router /api/v1/companies/{id}/interactions [post]
func (h *InteractionHandler) CreateInteraction(c *gin.Context) {
	identity, ok := requestIdentity(c)
	if !ok {
		return
	}
	companyID, ok := companyIDParam(c)
	if !ok {
		return
	}
	var req service.CreateInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	interaction, err := h.interactionService.Create(c.Request.Context(), identity, companyID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, interaction, "Interaction added!")
}
