package boardrace

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	diceMocks "github.com/nolanpeet/stakehouse/internal/dice/mocks"
	"github.com/nolanpeet/stakehouse/internal/models"
	"github.com/nolanpeet/stakehouse/internal/rules"
)

type BoardRaceModuleTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *diceMocks.MockRoller
	module     *Module
	session    *models.Session
}

func (s *BoardRaceModuleTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)

	module, err := New(&Config{Roller: s.mockRoller})
	s.Require().NoError(err)
	s.module = module

	s.session = &models.Session{
		ID:    "test-session-id",
		Kind:  models.KindBoardRace,
		Phase: models.PhaseActive,
		Participants: []*models.Participant{
			{UserID: "alice", Stake: 50, Status: models.ParticipantStatusActive},
			{UserID: "bob", Stake: 50, Status: models.ParticipantStatusActive},
		},
	}
	s.Require().NoError(s.module.Init(s.session))
}

func (s *BoardRaceModuleTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *BoardRaceModuleTestSuite) roll(userID string, value int) *rules.StepResult {
	s.mockRoller.EXPECT().Roll(6).Return(value)
	result, err := s.module.Apply(s.session, userID, rules.Action{Type: ActionRoll})
	s.Require().NoError(err)
	return result
}

func (s *BoardRaceModuleTestSuite) TestInit_AllPiecesAtStart() {
	positions := Positions(s.session)
	s.Equal(map[string]int{"alice": 0, "bob": 0}, positions)
}

func (s *BoardRaceModuleTestSuite) TestApply_MovesByRoll() {
	result := s.roll("alice", 4)
	s.True(result.AdvanceTurn)
	s.Nil(result.Outcome)
	s.Equal(4, Positions(s.session)["alice"])
}

func (s *BoardRaceModuleTestSuite) TestApply_CaptureRestartsLap() {
	s.roll("alice", 4)
	s.roll("bob", 4)

	// Bob landed on alice's square, her piece is back at the lap start
	positions := Positions(s.session)
	s.Equal(0, positions["alice"])
	s.Equal(4, positions["bob"])
}

func (s *BoardRaceModuleTestSuite) TestApply_PassingDoesNotCapture() {
	s.roll("alice", 3)
	s.roll("bob", 5)

	positions := Positions(s.session)
	s.Equal(3, positions["alice"])
	s.Equal(5, positions["bob"])
}

func (s *BoardRaceModuleTestSuite) TestApply_LapWrap() {
	for i := 0; i < 4; i++ {
		s.roll("alice", 6)
	}

	// 24 squares moved: one full lap, back at the start square
	s.Equal(TrackLength, Positions(s.session)["alice"])
}

func (s *BoardRaceModuleTestSuite) TestApply_FinishWinsTakeAll() {
	var result *rules.StepResult
	for i := 0; i < 8; i++ {
		result = s.roll("alice", 6)
	}

	s.Require().NotNil(result.Outcome)
	s.Equal(models.OutcomeWinnerTakesAll, result.Outcome.Kind)
	s.Equal([]string{"alice"}, result.Outcome.Winners)
}

func (s *BoardRaceModuleTestSuite) TestApply_UnknownActionRejected() {
	_, err := s.module.Apply(s.session, "alice", rules.Action{Type: "teleport"})
	s.Equal(rules.ErrIllegalAction, err)
}

func (s *BoardRaceModuleTestSuite) TestOnTimeout_LeaderWins() {
	s.roll("alice", 6)
	s.roll("bob", 3)

	result, err := s.module.OnTimeout(s.session)
	s.Require().NoError(err)
	s.Require().NotNil(result.Outcome)
	s.Equal(models.OutcomeWinnerTakesAll, result.Outcome.Kind)
	s.Equal([]string{"alice"}, result.Outcome.Winners)
}

func (s *BoardRaceModuleTestSuite) TestOnTimeout_TieIsDraw() {
	result, err := s.module.OnTimeout(s.session)
	s.Require().NoError(err)
	s.Require().NotNil(result.Outcome)
	s.Equal(models.OutcomeDraw, result.Outcome.Kind)
}

func TestBoardRaceModuleSuite(t *testing.T) {
	suite.Run(t, new(BoardRaceModuleTestSuite))
}
