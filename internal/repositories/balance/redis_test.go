package balance

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
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
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSetAndGetBalance() {
	err := s.repo.SetBalance(context.Background(), &SetBalanceInput{
		UserID: "user-1",
		Amount: 500,
	})
	s.Require().NoError(err)

	value, err := s.repo.GetBalance(context.Background(), &GetBalanceInput{
		UserID: "user-1",
	})
	s.Require().NoError(err)
	s.Equal(int64(500), value)
}

func (s *RedisRepositoryTestSuite) TestGetBalanceUnknownUser() {
	value, err := s.repo.GetBalance(context.Background(), &GetBalanceInput{
		UserID: "never-seen",
	})
	s.Require().NoError(err)
	s.Equal(int64(0), value)
}

func (s *RedisRepositoryTestSuite) TestDebitHappyPath() {
	s.Require().NoError(s.repo.SetBalance(context.Background(), &SetBalanceInput{
		UserID: "user-1",
		Amount: 100,
	}))

	err := s.repo.Debit(context.Background(), &DebitInput{
		UserID: "user-1",
		Amount: 60,
	})
	s.Require().NoError(err)

	value, err := s.repo.GetBalance(context.Background(), &GetBalanceInput{
		UserID: "user-1",
	})
	s.Require().NoError(err)
	s.Equal(int64(40), value)
}

func (s *RedisRepositoryTestSuite) TestDebitInsufficientFunds() {
	s.Require().NoError(s.repo.SetBalance(context.Background(), &SetBalanceInput{
		UserID: "user-1",
		Amount: 50,
	}))

	err := s.repo.Debit(context.Background(), &DebitInput{
		UserID: "user-1",
		Amount: 51,
	})
	s.Require().ErrorIs(err, ErrInsufficientFunds)

	// The failed debit must not have touched the balance
	value, err := s.repo.GetBalance(context.Background(), &GetBalanceInput{
		UserID: "user-1",
	})
	s.Require().NoError(err)
	s.Equal(int64(50), value)
}

func (s *RedisRepositoryTestSuite) TestDebitExactBalance() {
	s.Require().NoError(s.repo.SetBalance(context.Background(), &SetBalanceInput{
		UserID: "user-1",
		Amount: 75,
	}))

	err := s.repo.Debit(context.Background(), &DebitInput{
		UserID: "user-1",
		Amount: 75,
	})
	s.Require().NoError(err)

	value, err := s.repo.GetBalance(context.Background(), &GetBalanceInput{
		UserID: "user-1",
	})
	s.Require().NoError(err)
	s.Equal(int64(0), value)
}

func (s *RedisRepositoryTestSuite) TestDebitUnknownUser() {
	err := s.repo.Debit(context.Background(), &DebitInput{
		UserID: "never-seen",
		Amount: 1,
	})
	s.Require().ErrorIs(err, ErrInsufficientFunds)
}

func (s *RedisRepositoryTestSuite) TestCreditThenDebit() {
	s.Require().NoError(s.repo.Credit(context.Background(), &CreditInput{
		UserID: "user-1",
		Amount: 30,
	}))
	s.Require().NoError(s.repo.Credit(context.Background(), &CreditInput{
		UserID: "user-1",
		Amount: 20,
	}))

	s.Require().NoError(s.repo.Debit(context.Background(), &DebitInput{
		UserID: "user-1",
		Amount: 45,
	}))

	value, err := s.repo.GetBalance(context.Background(), &GetBalanceInput{
		UserID: "user-1",
	})
	s.Require().NoError(err)
	s.Equal(int64(5), value)
}

func (s *RedisRepositoryTestSuite) TestDebitRejectsNonPositiveAmount() {
	err := s.repo.Debit(context.Background(), &DebitInput{
		UserID: "user-1",
		Amount: 0,
	})
	s.Require().Error(err)

	err = s.repo.Debit(context.Background(), &DebitInput{
		UserID: "user-1",
		Amount: -10,
	})
	s.Require().Error(err)
}
