package auth

import (
	"net/http"
	"strings"

	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	identityContextKey = "identity"

	LoginPath  = "/login"
	SignUpPath = "/sign-up"
	HomePath   = "/"
)

// exemptPrefixes are never redirected by the route filter
var exemptPrefixes = []string{"/api/", "/static/", "/swagger/", "/health", "/metrics", "/graphql"}

// AuthMiddleware resolves session cookies into identities
type AuthMiddleware struct {
	guard *Guard
	codec *CookieCodec
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(guard *Guard, codec *CookieCodec) *AuthMiddleware {
	return &AuthMiddleware{guard: guard, codec: codec}
}

// sessionToken reads the signed cookie, falling back to a bearer header carrying the same value
func (m *AuthMiddleware) sessionToken(c *gin.Context) string {
	value, err := c.Cookie(CookieName)
	if err != nil || value == "" {
		header := c.GetHeader("Authorization")
		value = strings.TrimPrefix(header, "Bearer ")
		if value == header {
			return ""
		}
	}
	token, err := m.codec.Decode(value)
	if err != nil {
		return ""
	}
	return token
}

// authenticate resolves the caller and stores the identity on the request
func (m *AuthMiddleware) authenticate(c *gin.Context) (Identity, error) {
	identity, err := m.guard.Resolve(c.Request.Context(), m.sessionToken(c))
	if err != nil {
		return Identity{}, err
	}
	SetIdentity(c, identity)
	return identity, nil
}

// SetIdentity stores the identity on both the gin context and the request context
func SetIdentity(c *gin.Context, identity Identity) {
	c.Set(identityContextKey, identity)
	c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), identity))
}

// RequireSession aborts with an unauthorized result when no live session backs the request
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := m.authenticate(c); err != nil {
			if !apperrors.IsAuthentication(err) {
				logger.WithContext(c.Request.Context()).WithError(err).Error("session lookup failed")
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"ok":    false,
				"error": gin.H{"kind": apperrors.KindUnauthorized, "message": apperrors.ErrUnauthorized.Message},
			})
			return
		}
		c.Next()
	}
}

// OptionalSession resolves a session when present and continues either way
func (m *AuthMiddleware) OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, _ = m.authenticate(c)
		c.Next()
	}
}

// RouteFilter redirects page requests: visitors without a session go to the
// login page, signed-in users are sent away from the login and sign-up pages.
func (m *AuthMiddleware) RouteFilter() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if isExemptPath(path) {
			c.Next()
			return
		}

		_, err := m.authenticate(c)
		authenticated := err == nil

		if path == LoginPath || path == SignUpPath {
			if authenticated {
				c.Redirect(http.StatusFound, HomePath)
				c.Abort()
				return
			}
			c.Next()
			return
		}

		if !authenticated {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

func isExemptPath(path string) bool {
	for _, prefix := range exemptPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return strings.HasSuffix(path, ".svg") || strings.HasSuffix(path, ".ico")
}

// GetIdentity is a helper function to extract the resolved identity from context
func GetIdentity(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityContextKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}
