package handlers

import (
	"errors"
	"io"
	"net/http"

	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/service"
	"crm-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// AccountHandler serves the signed-in user's profile
type AccountHandler struct {
	userService service.UserServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(userService service.UserServiceInterface) *AccountHandler {
	return &AccountHandler{userService: userService}
}

// GetCurrentUser handles GET /me
// @Summary Current user
// @Tags account
// @Produce json
// @Success 200 {object} Result{data=service.UserResponse} "Profile"
// @Failure 401 {object} Result "Unauthorized"
// @Security SessionCookie
// @Router /api/v1/me [get]
func (h *AccountHandler) GetCurrentUser(c *gin.Context) {
	identity, ok := requestIdentity(c)
	if !ok {
		return
	}

	user, err := h.userService.Current(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, user, "")
}

// UpdateProfile handles PUT /account
// @Summary Update profile
// @Description Change the display name and upload a new avatar. Both fields are optional.
// @Tags account
// @Accept multipart/form-data
// @Produce json
// @Param name formData string false "Display name"
// @Param image formData file false "Avatar image (png, jpeg, gif or webp)"
// @Success 200 {object} Result{data=service.UserResponse} "Profile updated"
// @Failure 400 {object} Result "Invalid image"
// @Failure 401 {object} Result "Unauthorized"
// @Security SessionCookie
// @Router /api/v1/account [put]
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	identity, ok := requestIdentity(c)
	if !ok {
		return
	}

	req := service.UpdateProfileRequest{Name: c.PostForm("name")}
	image, err := readImage(c)
	if err != nil {
		respondError(c, err)
		return
	}
	req.Image = image

	user, err := h.userService.UpdateProfile(c.Request.Context(), identity, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, user, "Profile updated successfully!")
}

// readImage returns the uploaded image bytes, or nil when no file was sent
func readImage(c *gin.Context) ([]byte, error) {
	header, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, apperrors.ErrInvalidImageUpload
	}
	if header.Size == 0 {
		return nil, nil
	}
	if header.Size > storage.MaxAvatarSize {
		return nil, apperrors.ErrInvalidImageUpload
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, storage.MaxAvatarSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > storage.MaxAvatarSize {
		return nil, apperrors.ErrInvalidImageUpload
	}
	return data, nil
}
