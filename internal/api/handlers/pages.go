package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler answers the browser routes guarded by the route filter. The
// client application renders the actual views.
type PageHandler struct{}

// NewPageHandler creates a new page handler
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Page responds with the name of the page that the client should render
func (h *PageHandler) Page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"page": name})
	}
}
