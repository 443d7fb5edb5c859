package handlers

import (
	"net/http"
	"time"

	"crm-backend/internal/auth"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles sign-up, sign-in and sign-out
type AuthHandler struct {
	accountService service.AccountServiceInterface
	codec          *auth.CookieCodec
	secureCookies  bool
}

// NewAuthHandler creates a new auth handler. secureCookies marks the session
// cookie Secure and should be set in production.
func NewAuthHandler(accountService service.AccountServiceInterface, codec *auth.CookieCodec, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		accountService: accountService,
		codec:          codec,
		secureCookies:  secureCookies,
	}
}

// SignUp handles POST /api/auth/sign-up
// @Summary Register a new user
// @Description Create a user with an email and password account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.SignUpRequest true "Sign-up form"
// @Success 201 {object} Result{data=service.UserResponse} "User created"
// @Failure 400 {object} Result "Invalid data provided"
// @Failure 409 {object} Result "Email already registered"
// @Failure 500 {object} Result "Unexpected error"
// @Router /api/auth/sign-up [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req service.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	user, err := h.accountService.SignUp(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, user, "User created successfully!")
}

// SignIn handles POST /api/auth/sign-in
// @Summary Sign in
// @Description Check credentials, open a session and set the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.SignInRequest true "Credentials"
// @Success 200 {object} Result{data=service.UserResponse} "Signed in"
// @Failure 400 {object} Result "Invalid data provided"
// @Failure 401 {object} Result "Invalid email or password"
// @Failure 429 {object} Result "Too many attempts"
// @Failure 500 {object} Result "Unexpected error"
// @Router /api/auth/sign-in [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req service.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	result, err := h.accountService.SignIn(c.Request.Context(), &req, service.ClientInfo{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	value, err := h.codec.Encode(result.Token, result.ExpiresAt)
	if err != nil {
		respondError(c, err)
		return
	}
	h.setSessionCookie(c, value, result.ExpiresAt)

	respondOK(c, http.StatusOK, result.User, "Logged in successfully!")
}

// SignOut handles POST /api/auth/sign-out
// @Summary Sign out
// @Description End the current session and clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} Result "Signed out"
// @Failure 401 {object} Result "No session"
// @Router /api/auth/sign-out [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	if err := h.accountService.SignOut(c.Request.Context(), identity); err != nil {
		respondError(c, err)
		return
	}
	h.setSessionCookie(c, "", time.Unix(0, 0))

	respondOK(c, http.StatusOK, nil, "Logged out successfully!")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, expires time.Time) {
	cookie := &http.Cookie{
		Name:     auth.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	if value == "" {
		cookie.MaxAge = -1
	}
	http.SetCookie(c.Writer, cookie)
}
