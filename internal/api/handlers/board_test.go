package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"crm-backend/internal/api/handlers"
	"crm-backend/internal/auth"
	"crm-backend/internal/database/models"
	"crm-backend/internal/kanban"
	"crm-backend/internal/mocks"
	"crm-backend/internal/service"
	"crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// BoardMoveTestSuite drives board moves through the real company service
// so the drop reaches the repository as a status update
type BoardMoveTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	repo      *mocks.MockCompanyRepositoryInterface
	httpSuite *testutils.HTTPTestSuite
	identity  auth.Identity
	acme      *models.Company
	globex    *models.Company
}

// SetupTest sets up the test suite
func (suite *BoardMoveTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)
	suite.identity = auth.Identity{UserID: uuid.New(), Token: "tok"}

	suite.acme = testutils.NewCompanyFactory().WithStatus(suite.identity.UserID, models.CompanyStatusLead)
	suite.acme.Name = "Acme"
	suite.globex = testutils.NewCompanyFactory().WithStatus(suite.identity.UserID, models.CompanyStatusNegotiating)
	suite.globex.Name = "Globex"

	handler := handlers.NewCompanyHandler(service.NewCompanyService(suite.repo, service.NewValidator()))
	suite.httpSuite = testutils.SetupHTTPTest()
	v1 := suite.httpSuite.Router.Group("/api/v1", signedIn(suite.identity))
	v1.POST("/board/moves", handler.MoveCard)
}

// TearDownTest cleans up after each test
func (suite *BoardMoveTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BoardMoveTestSuite) listsBoard() {
	suite.repo.EXPECT().
		ListForOwner(gomock.Any(), suite.identity.UserID).
		Return([]models.Company{*suite.acme, *suite.globex}, nil)
}

func (suite *BoardMoveTestSuite) move(activeID, overID string, expectedStatus int) testutils.Envelope {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/board/moves", map[string]string{"active_id": activeID, "over_id": overID})
	return testutils.DecodeEnvelope(suite.T(), recorder, expectedStatus)
}

func (suite *BoardMoveTestSuite) TestDropOnColumnStoresStatus() {
	suite.listsBoard()
	suite.repo.EXPECT().
		UpdateStatus(gomock.Any(), suite.identity.UserID, suite.acme.ID, models.CompanyStatusWon).
		Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/board/moves", map[string]string{"active_id": suite.acme.ID.String(), "over_id": "won"})

	var columns []kanban.ColumnView
	testutils.DecodeData(suite.T(), recorder, http.StatusOK, &columns)
	suite.Require().Len(columns, 4)
	suite.Equal(0, columns[0].Count)
	suite.Require().Len(columns[2].Cards, 1)
	suite.Equal(suite.acme.ID, columns[2].Cards[0].ID)
	suite.Equal(models.CompanyStatusWon, columns[2].Cards[0].Column)
}

func (suite *BoardMoveTestSuite) TestDropOnCardTakesItsColumn() {
	suite.listsBoard()
	suite.repo.EXPECT().
		UpdateStatus(gomock.Any(), suite.identity.UserID, suite.acme.ID, models.CompanyStatusNegotiating).
		Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/board/moves", map[string]string{"active_id": suite.acme.ID.String(), "over_id": suite.globex.ID.String()})

	var columns []kanban.ColumnView
	testutils.DecodeData(suite.T(), recorder, http.StatusOK, &columns)
	suite.Equal(2, columns[1].Count)
}

func (suite *BoardMoveTestSuite) TestFailedStoreIsUnexpected() {
	suite.listsBoard()
	suite.repo.EXPECT().
		UpdateStatus(gomock.Any(), suite.identity.UserID, suite.acme.ID, models.CompanyStatusWon).
		Return(errors.New("connection reset"))

	env := suite.move(suite.acme.ID.String(), "won", http.StatusInternalServerError)

	suite.False(env.OK)
	suite.Require().NotNil(env.Error)
	suite.Equal("unexpected", env.Error.Kind)
	suite.Equal("An unexpected error occurred.", env.Error.Message)
}

func (suite *BoardMoveTestSuite) TestForeignCardIsNeverStored() {
	suite.listsBoard()

	env := suite.move(uuid.NewString(), "won", http.StatusNotFound)

	suite.Require().NotNil(env.Error)
	suite.Equal("not_found_or_forbidden", env.Error.Kind)
}

func (suite *BoardMoveTestSuite) TestUnknownTargetIsRejected() {
	suite.listsBoard()

	env := suite.move(suite.acme.ID.String(), "archived", http.StatusBadRequest)

	suite.Require().NotNil(env.Error)
	suite.Equal("validation", env.Error.Kind)
	suite.Contains(env.Error.Fields, "over_id")
}

func (suite *BoardMoveTestSuite) TestCancelledDragKeepsStatus() {
	suite.listsBoard()
	suite.repo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/board/moves", map[string]string{"active_id": suite.acme.ID.String(), "over_id": ""})

	var columns []kanban.ColumnView
	testutils.DecodeData(suite.T(), recorder, http.StatusOK, &columns)
	suite.Equal(1, columns[0].Count)
}

// TestBoardMoveTestSuite runs the test suite
func TestBoardMoveTestSuite(t *testing.T) {
	suite.Run(t, new(BoardMoveTestSuite))
}
