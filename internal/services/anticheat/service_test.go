package anticheat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/nolanpeet/stakehouse/internal/common/clock/mocks"
)

type AntiCheatServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	service   Service
	ctx       context.Context

	// now is advanced by tests to simulate elapsed time
	now time.Time

	testSessionID string
	testUserID    string
	testSecret    []byte
}

func (s *AntiCheatServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()
	s.now = time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)
	s.testSessionID = "test-session-id"
	s.testUserID = "test-user-id"
	s.testSecret = []byte("test-server-secret")

	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time {
		return s.now
	}).AnyTimes()

	svc, err := New(&Config{
		Clock:             s.mockClock,
		ServerSecret:      s.testSecret,
		MaxScorePerSecond: 10,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *AntiCheatServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AntiCheatServiceTestSuite) advance(d time.Duration) {
	s.now = s.now.Add(d)
}

func (s *AntiCheatServiceTestSuite) startTracking() {
	err := s.service.StartTracking(s.ctx, &StartTrackingInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
}

func (s *AntiCheatServiceTestSuite) TestNew_InvalidConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrNilClock, err)

	_, err = New(&Config{Clock: s.mockClock})
	s.Equal(ErrMissingSecret, err)

	_, err = New(&Config{Clock: s.mockClock, ServerSecret: s.testSecret})
	s.Require().Error(err)
}

func (s *AntiCheatServiceTestSuite) TestValidateScore_PlausibleRate() {
	s.startTracking()
	s.advance(10 * time.Second)

	// 10s at 10 points/s allows 120 with tolerance
	output, err := s.service.ValidateScore(s.ctx, &ValidateScoreInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
		Score:     100,
	})

	s.Require().NoError(err)
	s.Equal(int64(100), output.AcceptedScore)
}

func (s *AntiCheatServiceTestSuite) TestValidateScore_ImplausibleRate() {
	s.startTracking()
	s.advance(1 * time.Second)

	output, err := s.service.ValidateScore(s.ctx, &ValidateScoreInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
		Score:     500,
	})

	s.Require().Error(err)
	s.Equal(ErrScoreRejected, err)
	s.Nil(output)

	// The accepted score did not move, so a plausible follow-up still
	// measures from zero
	s.advance(10 * time.Second)
	output, err = s.service.ValidateScore(s.ctx, &ValidateScoreInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
		Score:     100,
	})
	s.Require().NoError(err)
	s.Equal(int64(100), output.AcceptedScore)
}

func (s *AntiCheatServiceTestSuite) TestValidateScore_RejectionDoesNotAdvanceClockBase() {
	s.startTracking()
	s.advance(1 * time.Second)

	_, err := s.service.ValidateScore(s.ctx, &ValidateScoreInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
		Score:     500,
	})
	s.Require().Error(err)

	// Immediately after a rejection nothing has elapsed, so even a small
	// delta is over the ceiling
	_, err = s.service.ValidateScore(s.ctx, &ValidateScoreInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
		Score:     30,
	})
	s.Require().Error(err)
}

func (s *AntiCheatServiceTestSuite) TestValidateScore_FourthRejectionFlags() {
	s.startTracking()

	for i := 0; i < 3; i++ {
		s.advance(1 * time.Second)
		_, err := s.service.ValidateScore(s.ctx, &ValidateScoreInput{
			SessionID: s.testSessionID,
			UserID:    s.testUserID,
			Score:     10000,
		})
		s.Equal(ErrScoreRejected, err)
	}

	s.advance(1 * time.Second)
	_, err := s.service.ValidateScore(s.ctx, &ValidateScoreInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
		Score:     10000,
	})
	s.Equal(ErrSessionFlagged, err)

	flagged, err := s.service.IsFlagged(s.ctx, &IsFlaggedInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.True(flagged)

	// A flagged session rejects everything, plausible or not
	s.advance(time.Hour)
	_, err = s.service.ValidateScore(s.ctx, &ValidateScoreInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
		Score:     1,
	})
	s.Equal(ErrSessionFlagged, err)
}

func (s *AntiCheatServiceTestSuite) TestValidateScore_NegativeDeltaAccepted() {
	s.startTracking()
	s.advance(10 * time.Second)

	_, err := s.service.ValidateScore(s.ctx, &ValidateScoreInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
		Score:     100,
	})
	s.Require().NoError(err)

	s.advance(1 * time.Second)
	output, err := s.service.ValidateScore(s.ctx, &ValidateScoreInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
		Score:     40,
	})

	s.Require().NoError(err)
	s.Equal(int64(100), output.AcceptedScore)
}

func (s *AntiCheatServiceTestSuite) TestChallenge_RoundTrip() {
	issued, err := s.service.IssueChallenge(s.ctx, &IssueChallengeInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
	})
	s.Require().NoError(err)
	s.Require().NotNil(issued.Challenge)
	s.NotEmpty(issued.Challenge.Nonce)

	response := ComputeResponse(s.testSecret, issued.Challenge.Nonce, s.testSessionID, s.testUserID)

	err = s.service.VerifyResponse(s.ctx, &VerifyResponseInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
		Response:  response,
	})
	s.Require().NoError(err)
}

func (s *AntiCheatServiceTestSuite) TestChallenge_SingleUse() {
	issued, err := s.service.IssueChallenge(s.ctx, &IssueChallengeInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
	})
	s.Require().NoError(err)

	response := ComputeResponse(s.testSecret, issued.Challenge.Nonce, s.testSessionID, s.testUserID)

	err = s.service.VerifyResponse(s.ctx, &VerifyResponseInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
		Response:  response,
	})
	s.Require().NoError(err)

	// The challenge was consumed, so a replay of the correct response fails
	err = s.service.VerifyResponse(s.ctx, &VerifyResponseInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
		Response:  response,
	})
	s.Equal(ErrChallengeFailed, err)
}

func (s *AntiCheatServiceTestSuite) TestChallenge_WrongResponseConsumes() {
	issued, err := s.service.IssueChallenge(s.ctx, &IssueChallengeInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
	})
	s.Require().NoError(err)

	err = s.service.VerifyResponse(s.ctx, &VerifyResponseInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
		Response:  "not-the-answer",
	})
	s.Equal(ErrChallengeFailed, err)

	// A failed attempt consumed the challenge, the right answer is too late
	response := ComputeResponse(s.testSecret, issued.Challenge.Nonce, s.testSessionID, s.testUserID)
	err = s.service.VerifyResponse(s.ctx, &VerifyResponseInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
		Response:  response,
	})
	s.Equal(ErrChallengeFailed, err)
}

func (s *AntiCheatServiceTestSuite) TestChallenge_Expired() {
	issued, err := s.service.IssueChallenge(s.ctx, &IssueChallengeInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
	})
	s.Require().NoError(err)

	s.advance(301 * time.Second)

	response := ComputeResponse(s.testSecret, issued.Challenge.Nonce, s.testSessionID, s.testUserID)
	err = s.service.VerifyResponse(s.ctx, &VerifyResponseInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
		Response:  response,
	})
	s.Equal(ErrChallengeFailed, err)
}

func (s *AntiCheatServiceTestSuite) TestChallenge_NoneIssued() {
	err := s.service.VerifyResponse(s.ctx, &VerifyResponseInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
		Response:  "anything",
	})
	s.Equal(ErrChallengeFailed, err)
}

func (s *AntiCheatServiceTestSuite) TestClearSession_DropsState() {
	s.startTracking()

	_, err := s.service.IssueChallenge(s.ctx, &IssueChallengeInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
	})
	s.Require().NoError(err)

	err = s.service.ClearSession(s.ctx, &ClearSessionInput{SessionID: s.testSessionID})
	s.Require().NoError(err)

	flagged, err := s.service.IsFlagged(s.ctx, &IsFlaggedInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.False(flagged)

	err = s.service.VerifyResponse(s.ctx, &VerifyResponseInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
		Response:  "anything",
	})
	s.Equal(ErrChallengeFailed, err)
}

func TestAntiCheatServiceSuite(t *testing.T) {
	suite.Run(t, new(AntiCheatServiceTestSuite))
}
