package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crm-backend/internal/auth"
	"crm-backend/internal/database/models"
	"crm-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type MiddlewareTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	sessions   *mocks.MockSessionRepositoryInterface
	codec      *auth.CookieCodec
	middleware *auth.AuthMiddleware
	userID     uuid.UUID
}

func (suite *MiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.sessions = mocks.NewMockSessionRepositoryInterface(suite.ctrl)
	suite.codec = auth.NewCookieCodec("test-secret")
	suite.middleware = auth.NewAuthMiddleware(auth.NewGuard(suite.sessions), suite.codec)
	suite.userID = uuid.New()
}

func (suite *MiddlewareTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MiddlewareTestSuite) signedCookie(token string) *http.Cookie {
	value, err := suite.codec.Encode(token, time.Now().Add(time.Hour))
	suite.Require().NoError(err)
	return &http.Cookie{Name: auth.CookieName, Value: value}
}

func (suite *MiddlewareTestSuite) expectLiveSession(token string) {
	suite.sessions.EXPECT().GetByToken(gomock.Any(), token).Return(&models.Session{
		Token:     token,
		UserID:    suite.userID,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
}

func (suite *MiddlewareTestSuite) protectedRouter() *gin.Engine {
	router := gin.New()
	router.GET("/api/v1/me", suite.middleware.RequireSession(), func(c *gin.Context) {
		identity, ok := auth.GetIdentity(c)
		require.True(suite.T(), ok)
		fromCtx, ok := auth.IdentityFrom(c.Request.Context())
		require.True(suite.T(), ok)
		c.JSON(http.StatusOK, gin.H{"user": identity.UserID.String(), "ctx": fromCtx.UserID.String()})
	})
	return router
}

func (suite *MiddlewareTestSuite) TestRequireSession_Authenticated() {
	suite.expectLiveSession("tok")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.AddCookie(suite.signedCookie("tok"))
	w := httptest.NewRecorder()

	suite.protectedRouter().ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(suite.userID.String(), body["user"])
	suite.Equal(suite.userID.String(), body["ctx"])
}

func (suite *MiddlewareTestSuite) TestRequireSession_BearerHeader() {
	suite.expectLiveSession("tok")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+suite.signedCookie("tok").Value)
	w := httptest.NewRecorder()

	suite.protectedRouter().ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *MiddlewareTestSuite) TestRequireSession_NoCookie() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	w := httptest.NewRecorder()

	suite.protectedRouter().ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	var body struct {
		OK    bool `json:"ok"`
		Error struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"error"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.False(body.OK)
	suite.Equal("unauthorized", body.Error.Kind)
	suite.Equal("Unauthorized", body.Error.Message)
}

func (suite *MiddlewareTestSuite) TestRequireSession_ForgedCookieNeverHitsStore() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "raw-token"})
	w := httptest.NewRecorder()

	suite.protectedRouter().ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *MiddlewareTestSuite) TestRequireSession_UnknownSession() {
	suite.sessions.EXPECT().GetByToken(gomock.Any(), "gone").Return(nil, gorm.ErrRecordNotFound)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.AddCookie(suite.signedCookie("gone"))
	w := httptest.NewRecorder()

	suite.protectedRouter().ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *MiddlewareTestSuite) filterRouter() *gin.Engine {
	router := gin.New()
	router.Use(suite.middleware.RouteFilter())
	ok := func(c *gin.Context) { c.String(http.StatusOK, "page") }
	router.GET("/", ok)
	router.GET("/login", ok)
	router.GET("/sign-up", ok)
	router.GET("/account", ok)
	router.GET("/favicon.ico", ok)
	router.GET("/api/v1/companies", ok)
	router.GET("/health", ok)
	return router
}

func (suite *MiddlewareTestSuite) TestRouteFilter() {
	cases := []struct {
		name     string
		path     string
		signedIn bool
		code     int
		location string
	}{
		{"anonymous home goes to login", "/", false, http.StatusFound, "/login"},
		{"anonymous account goes to login", "/account", false, http.StatusFound, "/login"},
		{"anonymous login is served", "/login", false, http.StatusOK, ""},
		{"anonymous sign-up is served", "/sign-up", false, http.StatusOK, ""},
		{"signed-in login goes home", "/login", true, http.StatusFound, "/"},
		{"signed-in sign-up goes home", "/sign-up", true, http.StatusFound, "/"},
		{"signed-in home is served", "/", true, http.StatusOK, ""},
		{"api paths are exempt", "/api/v1/companies", false, http.StatusOK, ""},
		{"health is exempt", "/health", false, http.StatusOK, ""},
		{"icons are exempt", "/favicon.ico", false, http.StatusOK, ""},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.signedIn {
				suite.expectLiveSession("tok")
				req.AddCookie(suite.signedCookie("tok"))
			}
			w := httptest.NewRecorder()

			suite.filterRouter().ServeHTTP(w, req)

			assert.Equal(suite.T(), tc.code, w.Code)
			assert.Equal(suite.T(), tc.location, w.Header().Get("Location"))
		})
	}
}

func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}
