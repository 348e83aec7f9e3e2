package roleeconomy

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	diceMocks "github.com/nolanpeet/stakehouse/internal/dice/mocks"
	"github.com/nolanpeet/stakehouse/internal/models"
	"github.com/nolanpeet/stakehouse/internal/rules"
)

type RoleEconomyModuleTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *diceMocks.MockRoller
	module     *Module
	session    *models.Session
}

func (s *RoleEconomyModuleTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)

	module, err := New(&Config{Roller: s.mockRoller})
	s.Require().NoError(err)
	s.module = module

	s.session = &models.Session{
		ID:    "test-session-id",
		Kind:  models.KindRoleEconomy,
		Phase: models.PhaseActive,
		Participants: []*models.Participant{
			{UserID: "alice", Stake: 50, Status: models.ParticipantStatusActive},
			{UserID: "bob", Stake: 50, Status: models.ParticipantStatusActive},
			{UserID: "carol", Stake: 50, Status: models.ParticipantStatusActive},
			{UserID: "dave", Stake: 50, Status: models.ParticipantStatusActive},
		},
	}

	// The identity permutation makes alice the single saboteur
	s.mockRoller.EXPECT().Perm(4).Return([]int{0, 1, 2, 3})
	s.Require().NoError(s.module.Init(s.session))
}

func (s *RoleEconomyModuleTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RoleEconomyModuleTestSuite) TestInit_DealsRoles() {
	role, err := Role(s.session.Participant("alice"))
	s.Require().NoError(err)
	s.Equal(RoleSaboteur, role)

	for _, userID := range []string{"bob", "carol", "dave"} {
		role, err := Role(s.session.Participant(userID))
		s.Require().NoError(err)
		s.Equal(RoleMiner, role)
	}
}

func (s *RoleEconomyModuleTestSuite) TestApply_MineGrowsVault() {
	result, err := s.module.Apply(s.session, "bob", rules.Action{Type: ActionMine})
	s.Require().NoError(err)
	s.True(result.AdvanceTurn)
	s.Equal(int64(10), Vault(s.session))
}

func (s *RoleEconomyModuleTestSuite) TestApply_StealDrainsVault() {
	for i := 0; i < 2; i++ {
		_, err := s.module.Apply(s.session, "bob", rules.Action{Type: ActionMine})
		s.Require().NoError(err)
	}

	_, err := s.module.Apply(s.session, "alice", rules.Action{Type: ActionSteal})
	s.Require().NoError(err)
	s.Equal(int64(5), Vault(s.session))

	// The vault never goes negative
	_, err = s.module.Apply(s.session, "alice", rules.Action{Type: ActionSteal})
	s.Require().NoError(err)
	s.Equal(int64(0), Vault(s.session))
}

func (s *RoleEconomyModuleTestSuite) TestApply_ThresholdWinsForMiners() {
	var result *rules.StepResult
	var err error
	for i := 0; i < 10; i++ {
		result, err = s.module.Apply(s.session, "bob", rules.Action{Type: ActionMine})
		s.Require().NoError(err)
	}

	s.Require().NotNil(result.Outcome)
	s.Equal(models.OutcomeProportional, result.Outcome.Kind)
	s.Equal([]string{"bob", "carol", "dave"}, result.Outcome.Winners)
}

func (s *RoleEconomyModuleTestSuite) TestApply_MajorityVoteEliminates() {
	_, err := s.module.Apply(s.session, "bob", rules.Action{Type: ActionAccuse, Target: "alice"})
	s.Require().NoError(err)
	s.Equal(models.ParticipantStatusActive, s.session.Participant("alice").Status)

	_, err = s.module.Apply(s.session, "carol", rules.Action{Type: ActionAccuse, Target: "alice"})
	s.Require().NoError(err)
	s.Equal(models.ParticipantStatusActive, s.session.Participant("alice").Status)

	// Third accusation of four active players is a strict majority; the
	// last saboteur is out and the miners win
	result, err := s.module.Apply(s.session, "dave", rules.Action{Type: ActionAccuse, Target: "alice"})
	s.Require().NoError(err)
	s.Equal(models.ParticipantStatusEliminated, s.session.Participant("alice").Status)
	s.Require().NotNil(result.Outcome)
	s.Equal([]string{"bob", "carol", "dave"}, result.Outcome.Winners)
}

func (s *RoleEconomyModuleTestSuite) TestApply_DoubleAccusationRejected() {
	_, err := s.module.Apply(s.session, "bob", rules.Action{Type: ActionAccuse, Target: "alice"})
	s.Require().NoError(err)

	_, err = s.module.Apply(s.session, "bob", rules.Action{Type: ActionAccuse, Target: "alice"})
	s.Equal(rules.ErrIllegalAction, err)
}

func (s *RoleEconomyModuleTestSuite) TestApply_SelfAccusationRejected() {
	_, err := s.module.Apply(s.session, "bob", rules.Action{Type: ActionAccuse, Target: "bob"})
	s.Equal(rules.ErrIllegalAction, err)
}

func (s *RoleEconomyModuleTestSuite) TestApply_EliminationShrinksMajorityBar() {
	eliminate := func(target string, accusers []string) {
		for _, accuser := range accusers {
			_, err := s.module.Apply(s.session, accuser, rules.Action{Type: ActionAccuse, Target: target})
			s.Require().NoError(err)
		}
	}

	// Four active players need three accusers; after bob is out, three
	// active players need only two
	eliminate("bob", []string{"alice", "carol", "dave"})
	s.Equal(models.ParticipantStatusEliminated, s.session.Participant("bob").Status)

	eliminate("carol", []string{"alice", "dave"})
	s.Equal(models.ParticipantStatusEliminated, s.session.Participant("carol").Status)

	// Heads-up the saboteur can no longer force a vote through; the
	// session stalls and timeout hands them the win
	result, err := s.module.OnTimeout(s.session)
	s.Require().NoError(err)
	s.Require().NotNil(result.Outcome)
	s.Equal([]string{"alice"}, result.Outcome.Winners)
}

func (s *RoleEconomyModuleTestSuite) TestOnTimeout_SaboteursOutlast() {
	result, err := s.module.OnTimeout(s.session)
	s.Require().NoError(err)
	s.Require().NotNil(result.Outcome)
	s.Equal([]string{"alice"}, result.Outcome.Winners)
}

func TestRoleEconomyModuleSuite(t *testing.T) {
	suite.Run(t, new(RoleEconomyModuleTestSuite))
}
