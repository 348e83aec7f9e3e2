package balance

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	balanceKeyPrefix = "balance:"
)

// ErrInsufficientFunds is returned when a debit would overdraw the balance
var ErrInsufficientFunds = errors.New("insufficient funds")

// debitScript checks and decrements a balance in one atomic step so two
// concurrent debits can never both pass the check.
var debitScript = redis.NewScript(`
local bal = tonumber(redis.call('GET', KEYS[1]) or '0')
local amt = tonumber(ARGV[1])
if bal < amt then
	return -1
end
return redis.call('DECRBY', KEYS[1], amt)
`)

// Config holds configuration for the Redis balance repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed balance repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// Debit atomically checks and decrements a user's available balance
func (r *redisRepository) Debit(ctx context.Context, input *DebitInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	if input.Amount <= 0 {
		return errors.New("debit amount must be positive")
	}

	key := fmt.Sprintf("%s%s", balanceKeyPrefix, input.UserID)
	result, err := debitScript.Run(ctx, r.client, []string{key}, input.Amount).Int64()
	if err != nil {
		return fmt.Errorf("failed to debit balance: %w", err)
	}

	if result < 0 {
		return ErrInsufficientFunds
	}

	return nil
}

// Credit atomically increments a user's available balance
func (r *redisRepository) Credit(ctx context.Context, input *CreditInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	if input.Amount <= 0 {
		return errors.New("credit amount must be positive")
	}

	key := fmt.Sprintf("%s%s", balanceKeyPrefix, input.UserID)
	if err := r.client.IncrBy(ctx, key, input.Amount).Err(); err != nil {
		return fmt.Errorf("failed to credit balance: %w", err)
	}

	return nil
}

// GetBalance retrieves a user's current available balance
func (r *redisRepository) GetBalance(ctx context.Context, input *GetBalanceInput) (int64, error) {
	if input == nil || input.UserID == "" {
		return 0, errors.New("input and user ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", balanceKeyPrefix, input.UserID)
	value, err := r.client.Get(ctx, key).Int64()
	if err != nil {
		if err == redis.Nil {
			// An unknown user simply has a zero balance
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}

	return value, nil
}

// SetBalance overwrites a user's balance
func (r *redisRepository) SetBalance(ctx context.Context, input *SetBalanceInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	if input.Amount < 0 {
		return errors.New("balance cannot be negative")
	}

	key := fmt.Sprintf("%s%s", balanceKeyPrefix, input.UserID)
	if err := r.client.Set(ctx, key, input.Amount, 0).Err(); err != nil {
		return fmt.Errorf("failed to set balance: %w", err)
	}

	return nil
}
