package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/nolanpeet/stakehouse/internal/models"
)

const (
	// Key prefixes for Redis
	settlementKeyPrefix   = "settlement:"
	cancellationKeyPrefix = "cancellation:"
	ledgerStreamKey       = "ledger:events"
)

// ErrRecordNotFound is returned when no record exists for a session
var ErrRecordNotFound = errors.New("record not found")

// Config holds configuration for the Redis record repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed record repository
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

// SaveSettlementRecord persists a settlement record idempotently
func (r *redisRepository) SaveSettlementRecord(ctx context.Context, input *SaveSettlementRecordInput) (*SaveSettlementRecordOutput, error) {
	if input == nil || input.Record == nil {
		return nil, errors.New("input and record cannot be nil")
	}

	if input.Record.SessionID == "" {
		return nil, errors.New("record session ID cannot be empty")
	}

	recordJSON, err := json.Marshal(input.Record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settlement record: %w", err)
	}

	key := fmt.Sprintf("%s%s", settlementKeyPrefix, input.Record.SessionID)
	set, err := r.client.SetNX(ctx, key, recordJSON, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to save settlement record: %w", err)
	}

	if set {
		return &SaveSettlementRecordOutput{
			Record:        input.Record,
			AlreadyExists: false,
		}, nil
	}

	// SETNX lost: a record already exists, return it untouched
	existing, err := r.GetSettlementRecord(ctx, &GetSettlementRecordInput{
		SessionID: input.Record.SessionID,
	})
	if err != nil {
		return nil, err
	}

	return &SaveSettlementRecordOutput{
		Record:        existing,
		AlreadyExists: true,
	}, nil
}

// GetSettlementRecord retrieves the settlement record for a session
func (r *redisRepository) GetSettlementRecord(ctx context.Context, input *GetSettlementRecordInput) (*models.SettlementRecord, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", settlementKeyPrefix, input.SessionID)
	recordJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get settlement record: %w", err)
	}

	var rec models.SettlementRecord
	if err := json.Unmarshal([]byte(recordJSON), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settlement record: %w", err)
	}

	return &rec, nil
}

// SaveCancellationRecord persists a cancellation record idempotently
func (r *redisRepository) SaveCancellationRecord(ctx context.Context, input *SaveCancellationRecordInput) (*SaveCancellationRecordOutput, error) {
	if input == nil || input.Record == nil {
		return nil, errors.New("input and record cannot be nil")
	}

	if input.Record.SessionID == "" {
		return nil, errors.New("record session ID cannot be empty")
	}

	recordJSON, err := json.Marshal(input.Record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cancellation record: %w", err)
	}

	key := fmt.Sprintf("%s%s", cancellationKeyPrefix, input.Record.SessionID)
	set, err := r.client.SetNX(ctx, key, recordJSON, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to save cancellation record: %w", err)
	}

	if set {
		return &SaveCancellationRecordOutput{
			Record:        input.Record,
			AlreadyExists: false,
		}, nil
	}

	existing, err := r.GetCancellationRecord(ctx, &GetCancellationRecordInput{
		SessionID: input.Record.SessionID,
	})
	if err != nil {
		return nil, err
	}

	return &SaveCancellationRecordOutput{
		Record:        existing,
		AlreadyExists: true,
	}, nil
}

// GetCancellationRecord retrieves the cancellation record for a session
func (r *redisRepository) GetCancellationRecord(ctx context.Context, input *GetCancellationRecordInput) (*models.CancellationRecord, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", cancellationKeyPrefix, input.SessionID)
	recordJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get cancellation record: %w", err)
	}

	var rec models.CancellationRecord
	if err := json.Unmarshal([]byte(recordJSON), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cancellation record: %w", err)
	}

	return &rec, nil
}

// AppendLedgerEvent appends a balance movement to the ledger event stream
func (r *redisRepository) AppendLedgerEvent(ctx context.Context, input *AppendLedgerEventInput) error {
	if input == nil || input.Event == nil {
		return errors.New("input and event cannot be nil")
	}

	event := input.Event
	err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: ledgerStreamKey,
		Values: map[string]interface{}{
			"type":       string(event.Type),
			"session_id": event.SessionID,
			"user_id":    event.UserID,
			"amount":     event.Amount,
			"ticket_id":  event.TicketID,
			"timestamp":  event.Timestamp.UnixNano(),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to append ledger event: %w", err)
	}

	return nil
}
