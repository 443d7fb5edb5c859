package handlers_test

import (
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

// InteractionHandlerTestSuite defines the test suite for InteractionHandler
type InteractionHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockInteractionServiceInterface
	httpSuite   *testutils.HTTPTestSuite
	identity    auth.Identity
	companyID   uuid.UUID
}

// SetupTest sets up the test suite
func (suite *InteractionHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockInteractionServiceInterface(suite.ctrl)
	suite.identity = auth.Identity{UserID: uuid.New(), Token: "tok"}
	suite.companyID = uuid.New()

	handler := handlers.NewInteractionHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	companies := suite.httpSuite.Router.Group("/api/v1/companies", signedIn(suite.identity))
	companies.GET("/:id/interactions", handler.ListInteractions)
	companies.POST("/:id/interactions", handler.CreateInteraction)
}

// TearDownTest cleans up after each test
func (suite *InteractionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *InteractionHandlerTestSuite) url() string {
	return "/api/v1/companies/" + suite.companyID.String() + "/interactions"
}

func (suite *InteractionHandlerTestSuite) TestListInteractions() {
	now := time.Now()
	suite.mockService.EXPECT().List(gomock.Any(), suite.identity, suite.companyID).Return([]service.InteractionResponse{
		{ID: uuid.New(), CompanyID: suite.companyID, Content: "second", CreatedAt: now},
		{ID: uuid.New(), CompanyID: suite.companyID, Content: "first", CreatedAt: now.Add(-time.Hour)},
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url(), nil)

	var items []service.InteractionResponse
	testutils.DecodeData(suite.T(), recorder, http.StatusOK, &items)
	suite.Require().Len(items, 2)
	suite.Equal("second", items[0].Content)
}

func (suite *InteractionHandlerTestSuite) TestListInteractions_ForeignCompany() {
	suite.mockService.EXPECT().List(gomock.Any(), suite.identity, suite.companyID).Return(nil, apperrors.ErrCompanyNotFoundOrForbidden)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not_found_or_forbidden", "Company not found or permission denied.")
}

func (suite *InteractionHandlerTestSuite) TestCreateInteraction() {
	suite.Run("Success", func() {
		suite.mockService.EXPECT().Create(gomock.Any(), suite.identity, suite.companyID, "Called about renewal").
			Return(&service.InteractionResponse{ID: uuid.New(), CompanyID: suite.companyID, Content: "Called about renewal"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url(), map[string]string{"content": "Called about renewal"})

		var item service.InteractionResponse
		env := testutils.DecodeData(suite.T(), recorder, http.StatusCreated, &item)
		suite.Equal("Interaction added!", env.Message)
		suite.Equal("Called about renewal", item.Content)
	})

	suite.Run("Empty content", func() {
		suite.mockService.EXPECT().Create(gomock.Any(), suite.identity, suite.companyID, "   ").Return(nil, apperrors.ErrEmptyInteraction)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url(), map[string]string{"content": "   "})

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "validation", "Interaction content cannot be empty.")
	})
}

// TestInteractionHandlerTestSuite runs the test suite
func TestInteractionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InteractionHandlerTestSuite))
}
