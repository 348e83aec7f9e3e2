package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/nolanpeet/stakehouse/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newSession(id string, phase models.SessionPhase) *models.Session {
	return &models.Session{
		ID:    id,
		Kind:  models.KindBettingRound,
		Phase: phase,
		Participants: []*models.Participant{
			{
				UserID: "user-a",
				Stake:  100,
				Status: models.ParticipantStatusActive,
			},
		},
		Pot:            100,
		MinPlayers:     2,
		MaxPlayers:     6,
		TimeoutSeconds: 300,
		CreatedAt:      s.testNow,
		LastActivityAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSession() {
	sess := s.newSession("test-session-id", models.PhaseActive)

	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: sess,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-session-id", retrieved.ID)
	s.Equal(models.KindBettingRound, retrieved.Kind)
	s.Equal(models.PhaseActive, retrieved.Phase)
	s.Equal(int64(100), retrieved.Pot)
	s.Len(retrieved.Participants, 1)
	s.Equal("user-a", retrieved.Participants[0].UserID)
	s.Equal(models.ParticipantStatusActive, retrieved.Participants[0].Status)
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetSessionNotFound() {
	_, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "missing",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetActiveSessionsExcludesTerminal() {
	live := s.newSession("live-id", models.PhaseActive)
	waiting := s.newSession("waiting-id", models.PhaseWaitingForStakes)
	closed := s.newSession("closed-id", models.PhaseClosed)
	cancelled := s.newSession("cancelled-id", models.PhaseCancelled)

	for _, sess := range []*models.Session{live, waiting, closed, cancelled} {
		s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: sess}))
	}

	result, err := s.repo.GetActiveSessions(context.Background(), &GetActiveSessionsInput{})
	s.Require().NoError(err)
	s.Len(result.Sessions, 2)

	ids := make(map[string]bool)
	for _, sess := range result.Sessions {
		ids[sess.ID] = true
	}
	s.True(ids["live-id"])
	s.True(ids["waiting-id"])
	s.False(ids["closed-id"])
	s.False(ids["cancelled-id"])
}

func (s *RedisRepositoryTestSuite) TestTerminalSessionLeavesIndexes() {
	sess := s.newSession("test-session-id", models.PhaseActive)
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: sess}))

	result, err := s.repo.GetActiveSessions(context.Background(), &GetActiveSessionsInput{})
	s.Require().NoError(err)
	s.Len(result.Sessions, 1)

	// Close the session
	sess.Phase = models.PhaseClosed
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: sess}))

	result, err = s.repo.GetActiveSessions(context.Background(), &GetActiveSessionsInput{})
	s.Require().NoError(err)
	s.Len(result.Sessions, 0)

	// It must no longer show up as idle either
	idle, err := s.repo.GetIdleSessions(context.Background(), &GetIdleSessionsInput{
		OlderThan: s.testNow.Add(time.Hour),
	})
	s.Require().NoError(err)
	s.Len(idle.SessionIDs, 0)

	// The session itself is still readable
	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.Equal(models.PhaseClosed, retrieved.Phase)
}

func (s *RedisRepositoryTestSuite) TestGetIdleSessions() {
	stale := s.newSession("stale-id", models.PhaseWaitingForStakes)
	stale.LastActivityAt = s.testNow.Add(-10 * time.Minute)

	fresh := s.newSession("fresh-id", models.PhaseActive)
	fresh.LastActivityAt = s.testNow

	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: stale}))
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: fresh}))

	idle, err := s.repo.GetIdleSessions(context.Background(), &GetIdleSessionsInput{
		OlderThan: s.testNow.Add(-5 * time.Minute),
	})
	s.Require().NoError(err)
	s.Require().Len(idle.SessionIDs, 1)
	s.Equal("stale-id", idle.SessionIDs[0])
}

func (s *RedisRepositoryTestSuite) TestDeleteSession() {
	sess := s.newSession("test-session-id", models.PhaseActive)
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: sess}))

	err := s.repo.DeleteSession(context.Background(), &DeleteSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)

	result, err := s.repo.GetActiveSessions(context.Background(), &GetActiveSessionsInput{})
	s.Require().NoError(err)
	s.Len(result.Sessions, 0)
}
