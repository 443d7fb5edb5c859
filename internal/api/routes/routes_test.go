package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"crm-backend/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	cfg := &config.Config{
		Environment:         "test",
		SessionSecret:       "test-secret",
		SessionTTL:          time.Hour,
		ProfileCacheTTL:     time.Minute,
		AllowedOrigins:      []string{"http://localhost:3000"},
		SignInRatePerSecond: 1,
		SignInRateBurst:     2,
		AvatarStorageDir:    t.TempDir(),
		AvatarBaseURL:       "/static",
	}
	deps, err := NewDependencies(cfg)
	require.NoError(t, err)

	router, err := SetupRoutes(db, cfg, deps)
	require.NoError(t, err)
	return router
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSetupRoutes_ProtectsAPI(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/api/v1/companies", "/api/v1/me", "/api/v1/board"} {
		rec := serve(router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Contains(t, rec.Body.String(), `"kind":"unauthorized"`)
	}
}

func TestSetupRoutes_PageFilter(t *testing.T) {
	router := newTestRouter(t)

	rec := serve(router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	rec = serve(router, http.MethodGet, "/login", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"page":"login"}`, rec.Body.String())
}

func TestSetupRoutes_GraphQLWithoutSession(t *testing.T) {
	router := newTestRouter(t)

	rec := serve(router, http.MethodPost, "/graphql", `{"query":"{ companies { id } }"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"unauthorized"`)
}

func TestSetupRoutes_SignInIsRateLimited(t *testing.T) {
	router := newTestRouter(t)

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		// malformed bodies fail validation without touching storage
		last = serve(router, http.MethodPost, "/api/auth/sign-in", `{`)
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.Contains(t, last.Body.String(), `"kind":"rate_limited"`)
}

func TestSetupRoutes_Metrics(t *testing.T) {
	router := newTestRouter(t)
	serve(router, http.MethodGet, "/api/v1/companies", "")

	rec := serve(router, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/api/v1/companies",status="401"} 1`)
}
