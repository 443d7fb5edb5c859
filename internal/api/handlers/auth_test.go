package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"crm-backend/internal/api/handlers"
	"crm-backend/internal/auth"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/mocks"
	"crm-backend/internal/service"
	"crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AuthHandlerTestSuite defines the test suite for AuthHandler
type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAccountServiceInterface
	codec       *auth.CookieCodec
	handler     *handlers.AuthHandler
	httpSuite   *testutils.HTTPTestSuite
	identity    auth.Identity
}

// SetupTest sets up the test suite
func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAccountServiceInterface(suite.ctrl)
	suite.codec = auth.NewCookieCodec("test-secret")
	suite.handler = handlers.NewAuthHandler(suite.mockService, suite.codec, true)
	suite.identity = auth.Identity{UserID: uuid.New(), Token: "tok"}

	suite.httpSuite = testutils.SetupHTTPTest()
	group := suite.httpSuite.Router.Group("/api/auth")
	group.POST("/sign-up", suite.handler.SignUp)
	group.POST("/sign-in", suite.handler.SignIn)
	group.POST("/sign-out", signedIn(suite.identity), suite.handler.SignOut)
}

// TearDownTest cleans up after each test
func (suite *AuthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthHandlerTestSuite) TestSignUp() {
	suite.Run("Success", func() {
		suite.mockService.EXPECT().SignUp(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *service.SignUpRequest) (*service.UserResponse, error) {
				suite.Equal("jane@example.com", req.Email)
				suite.Equal("s3cretpass", req.ConfirmPassword)
				return &service.UserResponse{ID: uuid.New(), Name: req.Name, Email: req.Email}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/sign-up", map[string]string{
			"name":             "Jane",
			"email":            "jane@example.com",
			"password":         "s3cretpass",
			"confirm_password": "s3cretpass",
		})

		var user service.UserResponse
		env := testutils.DecodeData(suite.T(), recorder, http.StatusCreated, &user)
		suite.Equal("User created successfully!", env.Message)
		suite.Equal("jane@example.com", user.Email)
	})

	suite.Run("Duplicate email", func() {
		suite.mockService.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrUserExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/sign-up", map[string]string{"email": "jane@example.com"})

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "conflict", "User with this email already exists.")
	})
}

func (suite *AuthHandlerTestSuite) TestSignIn() {
	suite.Run("Sets a signed session cookie", func() {
		expires := time.Now().Add(30 * 24 * time.Hour).Truncate(time.Second)
		suite.mockService.EXPECT().SignIn(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *service.SignInRequest, client service.ClientInfo) (*service.SignInResult, error) {
				suite.Equal("Go-http-client/1.1", client.UserAgent)
				return &service.SignInResult{
					Token:     "session-token",
					ExpiresAt: expires,
					User:      service.UserResponse{Email: req.Email},
				}, nil
			})

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/auth/sign-in",
			map[string]string{"email": "jane@example.com", "password": "s3cretpass"},
			map[string]string{"User-Agent": "Go-http-client/1.1"})

		env := testutils.DecodeEnvelope(suite.T(), recorder, http.StatusOK)
		suite.Equal("Logged in successfully!", env.Message)

		cookie := testutils.FindCookie(recorder, auth.CookieName)
		suite.Require().NotNil(cookie)
		suite.True(cookie.HttpOnly)
		suite.True(cookie.Secure)
		suite.Equal("/", cookie.Path)
		suite.Equal(expires.Unix(), cookie.Expires.Unix())

		token, err := suite.codec.Decode(cookie.Value)
		suite.Require().NoError(err)
		suite.Equal("session-token", token)
	})

	suite.Run("Wrong credentials", func() {
		suite.mockService.EXPECT().SignIn(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrInvalidCredentials)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/sign-in", map[string]string{"email": "jane@example.com", "password": "nope"})

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "unauthorized", "Invalid email or password.")
		suite.Nil(testutils.FindCookie(recorder, auth.CookieName))
	})
}

func (suite *AuthHandlerTestSuite) TestSignOut() {
	suite.mockService.EXPECT().SignOut(gomock.Any(), suite.identity).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/sign-out", nil)

	env := testutils.DecodeEnvelope(suite.T(), recorder, http.StatusOK)
	suite.True(env.OK)
	cookie := testutils.FindCookie(recorder, auth.CookieName)
	suite.Require().NotNil(cookie)
	suite.Empty(cookie.Value)
	suite.True(cookie.MaxAge < 0)
}

// TestAuthHandlerTestSuite runs the test suite
func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
