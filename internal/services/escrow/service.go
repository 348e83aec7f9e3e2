package escrow

import (
	"context"
	"errors"
	"fmt"

	"github.com/nolanpeet/stakehouse/internal/common/clock"
	"github.com/nolanpeet/stakehouse/internal/common/uuid"
	"github.com/nolanpeet/stakehouse/internal/models"
	balanceRepo "github.com/nolanpeet/stakehouse/internal/repositories/balance"
	escrowRepo "github.com/nolanpeet/stakehouse/internal/repositories/escrow"
	recordRepo "github.com/nolanpeet/stakehouse/internal/repositories/record"
)

// service implements the Service interface
type service struct {
	balanceRepo balanceRepo.Repository
	escrowRepo  escrowRepo.Repository
	recordRepo  recordRepo.Repository
	clock       clock.Clock
	uuids       uuid.UUID
}

// New creates a new escrow service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.BalanceRepo == nil {
		return nil, ErrNilBalanceRepo
	}

	if cfg.EscrowRepo == nil {
		return nil, ErrNilEscrowRepo
	}

	if cfg.RecordRepo == nil {
		return nil, ErrNilRecordRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUID
	}

	return &service{
		balanceRepo: cfg.BalanceRepo,
		escrowRepo:  cfg.EscrowRepo,
		recordRepo:  cfg.RecordRepo,
		clock:       cfg.Clock,
		uuids:       cfg.UUIDGenerator,
	}, nil
}

// Debit atomically moves a stake into a session pot and issues a ticket
func (s *service) Debit(ctx context.Context, input *DebitInput) (*DebitOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, errors.New("input, session ID and user ID cannot be empty")
	}

	if input.Amount <= 0 {
		return nil, errors.New("stake amount must be positive")
	}

	// The balance repository rejects an overdraw atomically per user
	err := s.balanceRepo.Debit(ctx, &balanceRepo.DebitInput{
		UserID: input.UserID,
		Amount: input.Amount,
	})
	if err != nil {
		if errors.Is(err, balanceRepo.ErrInsufficientFunds) {
			return nil, ErrInsufficientFunds
		}
		return nil, fmt.Errorf("failed to debit balance: %w", err)
	}

	now := s.clock.Now()
	ticket := &models.EscrowTicket{
		ID:        s.uuids.NewUUID(),
		SessionID: input.SessionID,
		UserID:    input.UserID,
		Amount:    input.Amount,
		IssuedAt:  now,
	}

	if err := s.escrowRepo.SaveTicket(ctx, &escrowRepo.SaveTicketInput{Ticket: ticket}); err != nil {
		return nil, fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := s.escrowRepo.IncrementPot(ctx, &escrowRepo.IncrementPotInput{
		SessionID: input.SessionID,
		Amount:    input.Amount,
	}); err != nil {
		return nil, fmt.Errorf("failed to increment pot: %w", err)
	}

	if err := s.appendEvent(ctx, models.LedgerEventDebit, input.SessionID, input.UserID, input.Amount, ticket.ID); err != nil {
		return nil, err
	}

	return &DebitOutput{Ticket: ticket}, nil
}

// Refund returns a single ticket's amount to its owner
func (s *service) Refund(ctx context.Context, input *RefundInput) (*RefundOutput, error) {
	if input == nil || input.TicketID == "" {
		return nil, errors.New("input and ticket ID cannot be empty")
	}

	ticket, err := s.escrowRepo.GetTicket(ctx, &escrowRepo.GetTicketInput{TicketID: input.TicketID})
	if err != nil {
		if errors.Is(err, escrowRepo.ErrTicketNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	now := s.clock.Now()
	err = s.escrowRepo.MarkTicketConsumed(ctx, &escrowRepo.MarkTicketConsumedInput{
		TicketID:   ticket.ID,
		ConsumedBy: models.TicketConsumedByRefund,
		ConsumedAt: now,
	})
	if err != nil {
		if errors.Is(err, escrowRepo.ErrTicketConsumed) {
			return nil, ErrTicketConsumed
		}
		return nil, fmt.Errorf("failed to consume ticket: %w", err)
	}

	if err := s.escrowRepo.DecrementPot(ctx, &escrowRepo.DecrementPotInput{
		SessionID: ticket.SessionID,
		Amount:    ticket.Amount,
	}); err != nil {
		return nil, fmt.Errorf("failed to decrement pot: %w", err)
	}

	if err := s.balanceRepo.Credit(ctx, &balanceRepo.CreditInput{
		UserID: ticket.UserID,
		Amount: ticket.Amount,
	}); err != nil {
		return nil, fmt.Errorf("failed to credit refund: %w", err)
	}

	if err := s.appendEvent(ctx, models.LedgerEventRefund, ticket.SessionID, ticket.UserID, ticket.Amount, ticket.ID); err != nil {
		return nil, err
	}

	ticket.Consumed = true
	ticket.ConsumedBy = models.TicketConsumedByRefund
	ticket.ConsumedAt = now

	return &RefundOutput{Ticket: ticket}, nil
}

// Payout credits a settlement share from the pooled pot
func (s *service) Payout(ctx context.Context, input *PayoutInput) error {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return errors.New("input, session ID and user ID cannot be empty")
	}

	if input.Amount <= 0 {
		return errors.New("payout amount must be positive")
	}

	if err := s.balanceRepo.Credit(ctx, &balanceRepo.CreditInput{
		UserID: input.UserID,
		Amount: input.Amount,
	}); err != nil {
		return fmt.Errorf("failed to credit payout: %w", err)
	}

	return s.appendEvent(ctx, models.LedgerEventPayout, input.SessionID, input.UserID, input.Amount, "")
}

// VerifyPot checks that the pot equals the sum of outstanding tickets.
// A mismatch is a fatal accounting defect.
func (s *service) VerifyPot(ctx context.Context, input *VerifyPotInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	tickets, err := s.escrowRepo.GetTicketsForSession(ctx, &escrowRepo.GetTicketsForSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return fmt.Errorf("failed to get tickets: %w", err)
	}

	var outstanding int64
	for _, t := range tickets.Tickets {
		if !t.Consumed {
			outstanding += t.Amount
		}
	}

	pot, err := s.escrowRepo.GetPot(ctx, &escrowRepo.GetPotInput{SessionID: input.SessionID})
	if err != nil {
		return fmt.Errorf("failed to get pot: %w", err)
	}

	if pot != outstanding {
		return ErrLedgerInconsistency
	}

	return nil
}

// RefundSession refunds every outstanding ticket for a session
func (s *service) RefundSession(ctx context.Context, input *RefundSessionInput) (*RefundSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	tickets, err := s.escrowRepo.GetTicketsForSession(ctx, &escrowRepo.GetTicketsForSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get tickets: %w", err)
	}

	refunds := make([]models.Payout, 0, len(tickets.Tickets))
	for _, t := range tickets.Tickets {
		if t.Consumed {
			continue
		}

		out, err := s.Refund(ctx, &RefundInput{TicketID: t.ID})
		if err != nil {
			// A concurrent consume is a no-op, anything else propagates
			if errors.Is(err, ErrTicketConsumed) {
				continue
			}
			return nil, err
		}

		refunds = append(refunds, models.Payout{
			UserID: out.Ticket.UserID,
			Amount: out.Ticket.Amount,
		})
	}

	return &RefundSessionOutput{Refunds: refunds}, nil
}

// ConsumeForSettlement consumes all outstanding tickets and clears the pot
func (s *service) ConsumeForSettlement(ctx context.Context, input *ConsumeForSettlementInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	tickets, err := s.escrowRepo.GetTicketsForSession(ctx, &escrowRepo.GetTicketsForSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return fmt.Errorf("failed to get tickets: %w", err)
	}

	now := s.clock.Now()
	for _, t := range tickets.Tickets {
		if t.Consumed {
			continue
		}

		err := s.escrowRepo.MarkTicketConsumed(ctx, &escrowRepo.MarkTicketConsumedInput{
			TicketID:   t.ID,
			ConsumedBy: models.TicketConsumedBySettlement,
			ConsumedAt: now,
		})
		if err != nil && !errors.Is(err, escrowRepo.ErrTicketConsumed) {
			return fmt.Errorf("failed to consume ticket %s: %w", t.ID, err)
		}
	}

	if err := s.escrowRepo.ClearPot(ctx, &escrowRepo.ClearPotInput{SessionID: input.SessionID}); err != nil {
		return fmt.Errorf("failed to clear pot: %w", err)
	}

	return nil
}

// GetPot reads the escrowed total for a session
func (s *service) GetPot(ctx context.Context, input *GetPotInput) (int64, error) {
	if input == nil || input.SessionID == "" {
		return 0, errors.New("input and session ID cannot be empty")
	}

	return s.escrowRepo.GetPot(ctx, &escrowRepo.GetPotInput{SessionID: input.SessionID})
}

// appendEvent emits one ledger event for the persistence sink
func (s *service) appendEvent(ctx context.Context, eventType models.LedgerEventType, sessionID, userID string, amount int64, ticketID string) error {
	err := s.recordRepo.AppendLedgerEvent(ctx, &recordRepo.AppendLedgerEventInput{
		Event: &models.LedgerEvent{
			Type:      eventType,
			SessionID: sessionID,
			UserID:    userID,
			Amount:    amount,
			TicketID:  ticketID,
			Timestamp: s.clock.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to append ledger event: %w", err)
	}

	return nil
}
