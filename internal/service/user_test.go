package service_test

import (
	"context"
	"testing"
	"time"

	"crm-backend/internal/auth"
	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/mocks"
	"crm-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRepo    *mocks.MockUserRepositoryInterface
	mockAvatars *mocks.MockAvatarStore
	profiles    *auth.ProfileCache
	service     *service.UserService
	identity    auth.Identity
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockAvatars = mocks.NewMockAvatarStore(suite.ctrl)
	suite.profiles = auth.NewProfileCache(time.Minute)
	suite.service = service.NewUserService(suite.mockRepo, suite.mockAvatars, suite.profiles, service.NewValidator())
	suite.identity = auth.Identity{UserID: uuid.New(), Token: "tok"}
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserServiceTestSuite) user(name, image string) *models.User {
	u := &models.User{Name: name, Email: "jane@example.com", Image: image}
	u.ID = suite.identity.UserID
	return u
}

func (suite *UserServiceTestSuite) TestCurrent_LoadsOnce() {
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), suite.identity.UserID).Return(suite.user("Jane", ""), nil).Times(1)

	first, err := suite.service.Current(context.Background(), suite.identity)
	suite.Require().NoError(err)
	second, err := suite.service.Current(context.Background(), suite.identity)
	suite.Require().NoError(err)

	suite.Equal("Jane", first.Name)
	suite.Equal(first, second)
}

func (suite *UserServiceTestSuite) TestCurrent_DeletedUser() {
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Current(context.Background(), suite.identity)

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestUpdateProfile_NameInvalidatesCache() {
	suite.profiles.Set("tok", suite.user("Old Name", ""))
	suite.profiles.Set("other-device", suite.user("Old Name", ""))

	gomock.InOrder(
		suite.mockRepo.EXPECT().UpdateProfile(gomock.Any(), suite.identity.UserID, map[string]interface{}{"name": "New Name"}).Return(nil),
		suite.mockRepo.EXPECT().GetByID(gomock.Any(), suite.identity.UserID).Return(suite.user("New Name", ""), nil),
	)

	resp, err := suite.service.UpdateProfile(context.Background(), suite.identity, &service.UpdateProfileRequest{Name: "  New Name "})

	suite.Require().NoError(err)
	suite.Equal("New Name", resp.Name)
	_, cached := suite.profiles.Get("other-device")
	suite.False(cached)
}

func (suite *UserServiceTestSuite) TestUpdateProfile_UploadsAvatar() {
	image := []byte("fake image bytes")
	url := "http://localhost:7008/static/avatars/" + suite.identity.UserID.String() + ".png?v=1"

	suite.mockAvatars.EXPECT().Upload(gomock.Any(), suite.identity.UserID, image).Return(url, nil)
	suite.mockRepo.EXPECT().UpdateProfile(gomock.Any(), suite.identity.UserID, map[string]interface{}{"image": url}).Return(nil)
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), suite.identity.UserID).Return(suite.user("Jane", url), nil)

	resp, err := suite.service.UpdateProfile(context.Background(), suite.identity, &service.UpdateProfileRequest{Image: image})

	suite.Require().NoError(err)
	suite.Equal(url, resp.Image)
}

func (suite *UserServiceTestSuite) TestUpdateProfile_RejectedImageSkipsUpdate() {
	suite.mockAvatars.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return("", apperrors.ErrInvalidImageUpload)

	_, err := suite.service.UpdateProfile(context.Background(), suite.identity, &service.UpdateProfileRequest{Name: "Jane", Image: []byte("text")})

	suite.ErrorIs(err, apperrors.ErrInvalidImageUpload)
}

func (suite *UserServiceTestSuite) TestUpdateProfile_NothingToChange() {
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), suite.identity.UserID).Return(suite.user("Jane", ""), nil)

	resp, err := suite.service.UpdateProfile(context.Background(), suite.identity, &service.UpdateProfileRequest{Name: "   "})

	suite.Require().NoError(err)
	suite.Equal("Jane", resp.Name)
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
