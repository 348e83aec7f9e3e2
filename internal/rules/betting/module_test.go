package betting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	diceMocks "github.com/nolanpeet/stakehouse/internal/dice/mocks"
	"github.com/nolanpeet/stakehouse/internal/models"
	"github.com/nolanpeet/stakehouse/internal/rules"
)

type BettingModuleTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *diceMocks.MockRoller
	module     *Module
}

func (s *BettingModuleTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)

	module, err := New(&Config{Roller: s.mockRoller})
	s.Require().NoError(err)
	s.module = module
}

func (s *BettingModuleTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *BettingModuleTestSuite) newSession(userIDs ...string) *models.Session {
	session := &models.Session{
		ID:    "test-session-id",
		Kind:  models.KindBettingRound,
		Phase: models.PhaseActive,
	}
	for _, userID := range userIDs {
		session.Participants = append(session.Participants, &models.Participant{
			UserID:   userID,
			Stake:    100,
			Status:   models.ParticipantStatusActive,
			JoinedAt: time.Now(),
		})
	}
	return session
}

// identityPerm keeps the deck in index order so dealt cards are predictable
func identityPerm() []int {
	perm := make([]int, 52)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

// riggedPerm deals alice a pair of kings and bob rags over a dry board
func riggedPerm() []int {
	perm := identityPerm()
	rigged := []int{12, 25, 1, 15, 4, 18, 32, 46, 11}
	used := make(map[int]bool)
	for _, idx := range rigged {
		used[idx] = true
	}
	out := make([]int, 0, 52)
	out = append(out, rigged...)
	for _, idx := range perm {
		if !used[idx] {
			out = append(out, idx)
		}
	}
	return out
}

func (s *BettingModuleTestSuite) initSession(session *models.Session, perm []int) {
	s.mockRoller.EXPECT().Perm(52).Return(perm)
	err := s.module.Init(session)
	s.Require().NoError(err)
}

func (s *BettingModuleTestSuite) TestInit_DealsDistinctCards() {
	session := s.newSession("alice", "bob")
	s.initSession(session, identityPerm())

	s.Equal(SubPhaseBetting, session.SubPhase)
	s.Equal([]int{0, 1}, HoleCards(session, "alice"))
	s.Equal([]int{2, 3}, HoleCards(session, "bob"))
	s.Empty(RevealedBoard(session))
}

func (s *BettingModuleTestSuite) TestApply_CheckAroundRevealsFlop() {
	session := s.newSession("alice", "bob")
	s.initSession(session, identityPerm())

	result, err := s.module.Apply(session, "alice", rules.Action{Type: ActionCheck})
	s.Require().NoError(err)
	s.True(result.AdvanceTurn)
	s.Empty(RevealedBoard(session))

	result, err = s.module.Apply(session, "bob", rules.Action{Type: ActionCheck})
	s.Require().NoError(err)
	s.Nil(result.Outcome)
	s.Len(RevealedBoard(session), 3)
}

func (s *BettingModuleTestSuite) TestApply_BetCallClosesRound() {
	session := s.newSession("alice", "bob")
	s.initSession(session, identityPerm())

	_, err := s.module.Apply(session, "alice", rules.Action{Type: ActionBet, Amount: 10})
	s.Require().NoError(err)

	// Alice's bet re-opened the round, checking is no longer legal for bob
	_, err = s.module.Apply(session, "bob", rules.Action{Type: ActionCheck})
	s.Equal(rules.ErrIllegalAction, err)

	_, err = s.module.Apply(session, "bob", rules.Action{Type: ActionCall})
	s.Require().NoError(err)
	s.Len(RevealedBoard(session), 3)
}

func (s *BettingModuleTestSuite) TestApply_RaiseReopensRound() {
	session := s.newSession("alice", "bob", "carol")
	s.initSession(session, identityPerm())

	_, err := s.module.Apply(session, "alice", rules.Action{Type: ActionBet, Amount: 10})
	s.Require().NoError(err)

	_, err = s.module.Apply(session, "bob", rules.Action{Type: ActionRaise, Amount: 10})
	s.Require().NoError(err)

	_, err = s.module.Apply(session, "carol", rules.Action{Type: ActionCall})
	s.Require().NoError(err)

	// Alice already acted but the raise re-opened the round; the flop only
	// comes once she matches
	s.Empty(RevealedBoard(session))
	_, err = s.module.Apply(session, "alice", rules.Action{Type: ActionCall})
	s.Require().NoError(err)
	s.Len(RevealedBoard(session), 3)
}

func (s *BettingModuleTestSuite) TestApply_BetBeyondStakeRejected() {
	session := s.newSession("alice", "bob")
	s.initSession(session, identityPerm())

	_, err := s.module.Apply(session, "alice", rules.Action{Type: ActionBet, Amount: 101})
	s.Equal(rules.ErrIllegalAction, err)
}

func (s *BettingModuleTestSuite) TestApply_FoldToOneWins() {
	session := s.newSession("alice", "bob")
	s.initSession(session, identityPerm())

	result, err := s.module.Apply(session, "alice", rules.Action{Type: ActionFold})
	s.Require().NoError(err)
	s.Require().NotNil(result.Outcome)
	s.Equal(models.OutcomeProportional, result.Outcome.Kind)
	s.Equal([]string{"bob"}, result.Outcome.Winners)
	s.Equal(models.ParticipantStatusEliminated, session.Participant("alice").Status)
}

func (s *BettingModuleTestSuite) TestApply_NonParticipantRejected() {
	session := s.newSession("alice", "bob")
	s.initSession(session, identityPerm())

	_, err := s.module.Apply(session, "mallory", rules.Action{Type: ActionCheck})
	s.Equal(rules.ErrNotParticipant, err)
}

func (s *BettingModuleTestSuite) checkThrough(session *models.Session, users []string, rounds int) {
	for i := 0; i < rounds; i++ {
		for _, userID := range users {
			result, err := s.module.Apply(session, userID, rules.Action{Type: ActionCheck})
			s.Require().NoError(err)
			if result.Outcome != nil {
				return
			}
		}
	}
}

func (s *BettingModuleTestSuite) TestShowdown_BestHandWins() {
	session := s.newSession("alice", "bob")
	s.initSession(session, riggedPerm())

	// Check through all four betting rounds to reach showdown
	users := []string{"alice", "bob"}
	var final *rules.StepResult
	for round := 0; round < 4; round++ {
		for _, userID := range users {
			result, err := s.module.Apply(session, userID, rules.Action{Type: ActionCheck})
			s.Require().NoError(err)
			final = result
		}
	}

	s.Require().NotNil(final)
	s.Require().NotNil(final.Outcome)
	s.Equal(models.OutcomeProportional, final.Outcome.Kind)
	s.Equal([]string{"alice"}, final.Outcome.Winners)
	s.Equal(SubPhaseShowdown, session.SubPhase)
}

func (s *BettingModuleTestSuite) TestShowdown_TiedBoardSplits() {
	// With the identity permutation the board itself is a straight flush
	// both players play
	session := s.newSession("alice", "bob")
	s.initSession(session, identityPerm())

	users := []string{"alice", "bob"}
	var final *rules.StepResult
	for round := 0; round < 4; round++ {
		for _, userID := range users {
			result, err := s.module.Apply(session, userID, rules.Action{Type: ActionCheck})
			s.Require().NoError(err)
			final = result
		}
	}

	s.Require().NotNil(final.Outcome)
	s.Equal([]string{"alice", "bob"}, final.Outcome.Winners)
}

func (s *BettingModuleTestSuite) TestOnTimeout_NoOutcome() {
	session := s.newSession("alice", "bob")
	s.initSession(session, identityPerm())

	result, err := s.module.OnTimeout(session)
	s.Require().NoError(err)
	s.Nil(result.Outcome)
}

func TestBettingModuleSuite(t *testing.T) {
	suite.Run(t, new(BettingModuleTestSuite))
}
