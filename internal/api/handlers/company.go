package handlers

import (
	"net/http"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CompanyHandler handles HTTP requests for company operations
type CompanyHandler struct {
	companyService service.CompanyServiceInterface
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService service.CompanyServiceInterface) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// CreateCompany handles POST /companies
// @Summary Create a company
// @Description Add a company to the caller's pipeline. Status defaults to lead.
// @Tags companies
// @Accept json
// @Produce json
// @Param company body service.CreateCompanyRequest true "Company data"
// @Success 201 {object} Result{data=service.CompanyResponse} "Company created"
// @Failure 400 {object} Result "Invalid data provided"
// @Failure 401 {object} Result "Unauthorized"
// @Failure 500 {object} Result "Unexpected error"
// @Security SessionCookie
// @Router /api/v1/companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	identity, ok := requestIdentity(c)
	if !ok {
		return
	}
	var req service.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	company, err := h.companyService.Create(c.Request.Context(), identity, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, company, "Company created successfully!")
}

// ListCompanies handles GET /companies
// @Summary List companies
// @Description List the caller's companies, newest first
// @Tags companies
// @Produce json
// @Success 200 {object} Result{data=[]service.CompanyResponse} "Companies"
// @Failure 401 {object} Result "Unauthorized"
// @Security SessionCookie
// @Router /api/v1/companies [get]
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	identity, ok := requestIdentity(c)
	if !ok {
		return
	}

	companies, err := h.companyService.List(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, companies, "")
}

// GetCompany handles GET /companies/:id
// @Summary Get a company
// @Tags companies
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Success 200 {object} Result{data=service.CompanyResponse} "Company"
// @Failure 404 {object} Result "Company not found or permission denied"
// @Security SessionCookie
// @Router /api/v1/companies/{id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	identity, ok := requestIdentity(c)
	if !ok {
		return
	}
	id, ok := companyIDParam(c)
	if !ok {
		return
	}

	company, err := h.companyService.Get(c.Request.Context(), identity, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, company, "")
}

// UpdateCompanyStatus handles PATCH /companies/:id/status
// @Summary Move a company to another stage
// @Description Any stage may move to any other stage. Repeating the current stage succeeds.
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param body body service.UpdateStatusRequest true "New status"
// @Success 200 {object} Result "Status updated"
// @Failure 400 {object} Result "Invalid status"
// @Failure 404 {object} Result "Company not found or permission denied"
// @Security SessionCookie
// @Router /api/v1/companies/{id}/status [patch]
func (h *CompanyHandler) UpdateCompanyStatus(c *gin.Context) {
	identity, ok := requestIdentity(c)
	if !ok {
		return
	}
	id, ok := companyIDParam(c)
	if !ok {
		return
	}
	var req service.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	if err := h.companyService.UpdateStatus(c.Request.Context(), identity, id, req.Status); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"id": id, "status": req.Status}, "Status updated.")
}

// UpdateCompanyDetails handles PUT /companies/:id
// @Summary Update company details
// @Description Partial update; omitted fields keep their value and empty optional fields are cleared
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param company body service.UpdateCompanyRequest true "Fields to change"
// @Success 200 {object} Result{data=service.CompanyResponse} "Company updated"
// @Failure 400 {object} Result "Invalid data provided"
// @Failure 404 {object} Result "Company not found or permission denied"
// @Security SessionCookie
// @Router /api/v1/companies/{id} [put]
func (h *CompanyHandler) UpdateCompanyDetails(c *gin.Context) {
	identity, ok := requestIdentity(c)
	if !ok {
		return
	}
	id, ok := companyIDParam(c)
	if !ok {
		return
	}
	var req service.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	company, err := h.companyService.UpdateDetails(c.Request.Context(), identity, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, company, "Company updated successfully!")
}

// DeleteCompany handles DELETE /companies/:id
// @Summary Delete a company
// @Description Delete a company together with its interaction log
// @Tags companies
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Success 200 {object} Result "Company deleted"
// @Failure 404 {object} Result "Company not found or permission denied"
// @Security SessionCookie
// @Router /api/v1/companies/{id} [delete]
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	identity, ok := requestIdentity(c)
	if !ok {
		return
	}
	id, ok := companyIDParam(c)
	if !ok {
		return
	}

	if err := h.companyService.Delete(c.Request.Context(), identity, id); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, nil, "Company deleted successfully!")
}

// GetBoard handles GET /board
// @Summary Pipeline board
// @Description The caller's companies grouped into the four pipeline columns
// @Tags companies
// @Produce json
// @Success 200 {object} Result{data=[]kanban.ColumnView} "Board columns"
// @Security SessionCookie
// @Router /api/v1/board [get]
func (h *CompanyHandler) GetBoard(c *gin.Context) {
	identity, ok := requestIdentity(c)
	if !ok {
		return
	}

	columns, err := h.companyService.Board(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, columns, "")
}

// MoveCard handles POST /board/moves
// @Summary Move a card on the pipeline board
// @Description Applies a finished drag. The company takes the column of the card or column it was dropped on
// @Description and that column is stored as its status. If storing fails the card keeps its previous status.
// @Tags companies
// @Accept json
// @Produce json
// @Param move body service.MoveCardRequest true "Dragged card and drop target"
// @Success 200 {object} Result{data=[]kanban.ColumnView} "Board after the move"
// @Failure 400 {object} Result "Invalid drop target"
// @Failure 404 {object} Result "Company not found or permission denied"
// @Security SessionCookie
// @Router /api/v1/board/moves [post]
func (h *CompanyHandler) MoveCard(c *gin.Context) {
	identity, ok := requestIdentity(c)
	if !ok {
		return
	}
	var req service.MoveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	columns, err := h.companyService.MoveCard(c.Request.Context(), identity, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, columns, "Status updated.")
}
