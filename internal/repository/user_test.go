//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"crm-backend/internal/database/models"
	"crm-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository against Postgres
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	users         *testutils.UserFactory
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.users = testutils.NewUserFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *UserRepositoryTestSuite) account(email string) *models.Account {
	return &models.Account{ProviderID: models.ProviderEmail, AccountID: email, Password: "hash"}
}

func (suite *UserRepositoryTestSuite) TestCreateWithAccount() {
	ctx := context.Background()
	user := suite.users.Create()

	suite.Require().NoError(suite.repo.CreateWithAccount(ctx, user, suite.account(user.Email)))

	found, err := suite.repo.GetByEmail(ctx, user.Email)
	suite.Require().NoError(err)
	suite.Equal(user.ID, found.ID)

	account, err := suite.repo.GetAccount(ctx, user.ID, models.ProviderEmail)
	suite.Require().NoError(err)
	suite.Equal(user.ID, account.UserID)
	suite.Equal("hash", account.Password)
}

func (suite *UserRepositoryTestSuite) TestCreateWithAccount_DuplicateEmail() {
	ctx := context.Background()
	first := suite.users.WithEmail("dup@example.com")
	suite.Require().NoError(suite.repo.CreateWithAccount(ctx, first, suite.account(first.Email)))

	second := suite.users.WithEmail("dup@example.com")
	err := suite.repo.CreateWithAccount(ctx, second, suite.account(second.Email))

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
	var accounts int64
	suite.baseTestSuite.DB.Model(&models.Account{}).Count(&accounts)
	suite.Equal(int64(1), accounts)
}

func (suite *UserRepositoryTestSuite) TestUpdateProfile() {
	ctx := context.Background()
	user := suite.users.Create()
	suite.Require().NoError(suite.repo.CreateWithAccount(ctx, user, suite.account(user.Email)))

	suite.Require().NoError(suite.repo.UpdateProfile(ctx, user.ID, map[string]interface{}{"name": "Renamed", "image": "/static/avatars/x.png"}))

	found, err := suite.repo.GetByID(ctx, user.ID)
	suite.Require().NoError(err)
	suite.Equal("Renamed", found.Name)
	suite.Equal("/static/avatars/x.png", found.Image)
}

func (suite *UserRepositoryTestSuite) TestUpdateProfile_UnknownUser() {
	err := suite.repo.UpdateProfile(context.Background(), suite.users.Create().ID, map[string]interface{}{"name": "Ghost"})

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
