package handlers

import (
	"crm-backend/internal/auth"
	apperrors "crm-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIdentity returns the identity stored by RequireSession
func requestIdentity(c *gin.Context) (auth.Identity, bool) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return auth.Identity{}, false
	}
	return identity, true
}

// companyIDParam parses the :id path parameter. A malformed id cannot name an
// owned company, so it is reported the same way as a foreign one.
func companyIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.ErrCompanyNotFoundOrForbidden)
		return uuid.Nil, false
	}
	return id, true
}
