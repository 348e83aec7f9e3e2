package escrow

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
	ticketKeyPrefix         = "ticket:"
	sessionTicketsKeyPrefix = "session_tickets:"
	potKeyPrefix            = "pot:"
)

var (
	// ErrTicketNotFound is returned when a ticket is not found
	ErrTicketNotFound = errors.New("escrow ticket not found")

	// ErrTicketConsumed is returned when a ticket has already been consumed
	ErrTicketConsumed = errors.New("escrow ticket already consumed")
)

// consumeScript flips a ticket to consumed in one atomic step so two
// concurrent consumers can never both pass the check, even across processes.
var consumeScript = redis.NewScript(`
local raw = redis.call('GET', KEYS[1])
if not raw then
	return -1
end
local ticket = cjson.decode(raw)
if ticket['Consumed'] then
	return -2
end
ticket['Consumed'] = true
ticket['ConsumedBy'] = ARGV[1]
ticket['ConsumedAt'] = ARGV[2]
redis.call('SET', KEYS[1], cjson.encode(ticket))
return 1
`)

// Config holds configuration for the Redis escrow repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed escrow repository
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

// SaveTicket persists a ticket and indexes it under its session
func (r *redisRepository) SaveTicket(ctx context.Context, input *SaveTicketInput) error {
	if input == nil || input.Ticket == nil {
		return errors.New("input and ticket cannot be nil")
	}

	ticket := input.Ticket
	if ticket.ID == "" {
		return errors.New("ticket ID cannot be empty")
	}

	// Marshal the ticket to JSON
	ticketJSON, err := json.Marshal(ticket)
	if err != nil {
		return fmt.Errorf("failed to marshal ticket: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Store the ticket
	ticketKey := fmt.Sprintf("%s%s", ticketKeyPrefix, ticket.ID)
	pipe.Set(ctx, ticketKey, ticketJSON, 0)

	// Add to the session's ticket index, scored by issue time
	sessionKey := fmt.Sprintf("%s%s", sessionTicketsKeyPrefix, ticket.SessionID)
	pipe.ZAdd(ctx, sessionKey, redis.Z{
		Score:  float64(ticket.IssuedAt.UnixNano()),
		Member: ticket.ID,
	})

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return nil
}

// GetTicket retrieves a ticket by ID
func (r *redisRepository) GetTicket(ctx context.Context, input *GetTicketInput) (*models.EscrowTicket, error) {
	if input == nil || input.TicketID == "" {
		return nil, errors.New("input and ticket ID cannot be empty")
	}

	ticketKey := fmt.Sprintf("%s%s", ticketKeyPrefix, input.TicketID)
	ticketJSON, err := r.client.Get(ctx, ticketKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	var ticket models.EscrowTicket
	if err := json.Unmarshal([]byte(ticketJSON), &ticket); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ticket: %w", err)
	}

	return &ticket, nil
}

// GetTicketsForSession retrieves all tickets issued for a session in issue order
func (r *redisRepository) GetTicketsForSession(ctx context.Context, input *GetTicketsForSessionInput) (*GetTicketsForSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	// Get all ticket IDs for the session
	sessionKey := fmt.Sprintf("%s%s", sessionTicketsKeyPrefix, input.SessionID)
	ticketIDs, err := r.client.ZRange(ctx, sessionKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket IDs for session: %w", err)
	}

	// If there are no tickets, return an empty slice
	if len(ticketIDs) == 0 {
		return &GetTicketsForSessionOutput{
			Tickets: []*models.EscrowTicket{},
		}, nil
	}

	// Get all tickets in parallel using a pipeline
	pipe := r.client.Pipeline()
	ticketCommands := make([]*redis.StringCmd, 0, len(ticketIDs))

	for _, ticketID := range ticketIDs {
		ticketKey := fmt.Sprintf("%s%s", ticketKeyPrefix, ticketID)
		ticketCommands = append(ticketCommands, pipe.Get(ctx, ticketKey))
	}

	// Execute the pipeline
	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get tickets: %w", err)
	}

	// Process the results preserving issue order
	tickets := make([]*models.EscrowTicket, 0, len(ticketIDs))
	for i, cmd := range ticketCommands {
		ticketJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get ticket %s: %w", ticketIDs[i], err)
		}

		var ticket models.EscrowTicket
		if err := json.Unmarshal([]byte(ticketJSON), &ticket); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket %s: %w", ticketIDs[i], err)
		}

		tickets = append(tickets, &ticket)
	}

	return &GetTicketsForSessionOutput{
		Tickets: tickets,
	}, nil
}

// MarkTicketConsumed consumes a ticket exactly once
func (r *redisRepository) MarkTicketConsumed(ctx context.Context, input *MarkTicketConsumedInput) error {
	if input == nil || input.TicketID == "" {
		return errors.New("input and ticket ID cannot be empty")
	}

	consumedAt, err := input.ConsumedAt.MarshalText()
	if err != nil {
		return fmt.Errorf("failed to marshal consumed time: %w", err)
	}

	ticketKey := fmt.Sprintf("%s%s", ticketKeyPrefix, input.TicketID)
	result, err := consumeScript.Run(ctx, r.client, []string{ticketKey},
		string(input.ConsumedBy), string(consumedAt)).Int64()
	if err != nil {
		return fmt.Errorf("failed to consume ticket: %w", err)
	}

	switch result {
	case -1:
		return ErrTicketNotFound
	case -2:
		return ErrTicketConsumed
	}

	return nil
}

// IncrementPot adds to a session's pot counter
func (r *redisRepository) IncrementPot(ctx context.Context, input *IncrementPotInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	if input.Amount <= 0 {
		return errors.New("pot increment must be positive")
	}

	potKey := fmt.Sprintf("%s%s", potKeyPrefix, input.SessionID)
	if err := r.client.IncrBy(ctx, potKey, input.Amount).Err(); err != nil {
		return fmt.Errorf("failed to increment pot: %w", err)
	}

	return nil
}

// DecrementPot removes a refunded amount from a session's pot counter
func (r *redisRepository) DecrementPot(ctx context.Context, input *DecrementPotInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	if input.Amount <= 0 {
		return errors.New("pot decrement must be positive")
	}

	potKey := fmt.Sprintf("%s%s", potKeyPrefix, input.SessionID)
	if err := r.client.DecrBy(ctx, potKey, input.Amount).Err(); err != nil {
		return fmt.Errorf("failed to decrement pot: %w", err)
	}

	return nil
}

// GetPot reads a session's pot counter
func (r *redisRepository) GetPot(ctx context.Context, input *GetPotInput) (int64, error) {
	if input == nil || input.SessionID == "" {
		return 0, errors.New("input and session ID cannot be empty")
	}

	potKey := fmt.Sprintf("%s%s", potKeyPrefix, input.SessionID)
	value, err := r.client.Get(ctx, potKey).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get pot: %w", err)
	}

	return value, nil
}

// ClearPot zeroes a session's pot counter
func (r *redisRepository) ClearPot(ctx context.Context, input *ClearPotInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	potKey := fmt.Sprintf("%s%s", potKeyPrefix, input.SessionID)
	if err := r.client.Del(ctx, potKey).Err(); err != nil {
		return fmt.Errorf("failed to clear pot: %w", err)
	}

	return nil
}
