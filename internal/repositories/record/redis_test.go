package record

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

func (s *RedisRepositoryTestSuite) TestSaveSettlementRecordIdempotent() {
	first := &models.SettlementRecord{
		SessionID: "test-session-id",
		Outcome: models.Outcome{
			Kind:    models.OutcomeWinnerTakesAll,
			Winners: []string{"user-a"},
		},
		Payouts:   []models.Payout{{UserID: "user-a", Amount: 200}},
		Pot:       200,
		SettledAt: s.testNow,
	}

	out, err := s.repo.SaveSettlementRecord(context.Background(), &SaveSettlementRecordInput{
		Record: first,
	})
	s.Require().NoError(err)
	s.False(out.AlreadyExists)
	s.Equal(int64(200), out.Record.Pot)

	// A conflicting second write must return the original record untouched
	second := &models.SettlementRecord{
		SessionID: "test-session-id",
		Outcome: models.Outcome{
			Kind:    models.OutcomeWinnerTakesAll,
			Winners: []string{"user-b"},
		},
		Payouts:   []models.Payout{{UserID: "user-b", Amount: 999}},
		Pot:       999,
		SettledAt: s.testNow.Add(time.Minute),
	}

	out, err = s.repo.SaveSettlementRecord(context.Background(), &SaveSettlementRecordInput{
		Record: second,
	})
	s.Require().NoError(err)
	s.True(out.AlreadyExists)
	s.Equal(int64(200), out.Record.Pot)
	s.Equal([]string{"user-a"}, out.Record.Outcome.Winners)
}

func (s *RedisRepositoryTestSuite) TestGetSettlementRecordNotFound() {
	_, err := s.repo.GetSettlementRecord(context.Background(), &GetSettlementRecordInput{
		SessionID: "missing",
	})
	s.Require().ErrorIs(err, ErrRecordNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveCancellationRecordIdempotent() {
	rec := &models.CancellationRecord{
		SessionID:   "test-session-id",
		Reason:      models.CancelReasonIdleTimeout,
		Refunds:     []models.Payout{{UserID: "user-a", Amount: 100}},
		CancelledAt: s.testNow,
	}

	out, err := s.repo.SaveCancellationRecord(context.Background(), &SaveCancellationRecordInput{
		Record: rec,
	})
	s.Require().NoError(err)
	s.False(out.AlreadyExists)

	out, err = s.repo.SaveCancellationRecord(context.Background(), &SaveCancellationRecordInput{
		Record: &models.CancellationRecord{
			SessionID: "test-session-id",
			Reason:    models.CancelReasonRequested,
		},
	})
	s.Require().NoError(err)
	s.True(out.AlreadyExists)
	s.Equal(models.CancelReasonIdleTimeout, out.Record.Reason)

	retrieved, err := s.repo.GetCancellationRecord(context.Background(), &GetCancellationRecordInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.Equal(models.CancelReasonIdleTimeout, retrieved.Reason)
	s.Require().Len(retrieved.Refunds, 1)
	s.Equal(int64(100), retrieved.Refunds[0].Amount)
}

func (s *RedisRepositoryTestSuite) TestAppendLedgerEvent() {
	err := s.repo.AppendLedgerEvent(context.Background(), &AppendLedgerEventInput{
		Event: &models.LedgerEvent{
			Type:      models.LedgerEventDebit,
			SessionID: "test-session-id",
			UserID:    "user-a",
			Amount:    100,
			TicketID:  "ticket-1",
			Timestamp: s.testNow,
		},
	})
	s.Require().NoError(err)

	err = s.repo.AppendLedgerEvent(context.Background(), &AppendLedgerEventInput{
		Event: &models.LedgerEvent{
			Type:      models.LedgerEventPayout,
			SessionID: "test-session-id",
			UserID:    "user-a",
			Amount:    200,
			Timestamp: s.testNow.Add(time.Minute),
		},
	})
	s.Require().NoError(err)

	// The stream holds both events in append order
	entries, err := s.client.XRange(context.Background(), "ledger:events", "-", "+").Result()
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("debit", entries[0].Values["type"])
	s.Equal("payout", entries[1].Values["type"])
	s.Equal("user-a", entries[0].Values["user_id"])
}
