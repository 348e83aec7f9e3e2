package escrow

import (
	"github.com/nolanpeet/stakehouse/internal/common/clock"
	"github.com/nolanpeet/stakehouse/internal/common/uuid"
	"github.com/nolanpeet/stakehouse/internal/models"
	balanceRepo "github.com/nolanpeet/stakehouse/internal/repositories/balance"
	escrowRepo "github.com/nolanpeet/stakehouse/internal/repositories/escrow"
	recordRepo "github.com/nolanpeet/stakehouse/internal/repositories/record"
)

// Config holds configuration for the escrow service
type Config struct {
	// Repository dependencies
	BalanceRepo balanceRepo.Repository
	EscrowRepo  escrowRepo.Repository
	RecordRepo  recordRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// DebitInput contains parameters for escrowing a stake
type DebitInput struct {
	// SessionID is the session whose pot receives the stake
	SessionID string

	// UserID is the balance being debited
	UserID string

	// Amount to escrow, in the smallest credit unit
	Amount int64
}

// DebitOutput contains the issued escrow ticket
type DebitOutput struct {
	Ticket *models.EscrowTicket
}

// RefundInput contains parameters for refunding a single ticket
type RefundInput struct {
	TicketID string
}

// RefundOutput contains the refunded ticket
type RefundOutput struct {
	Ticket *models.EscrowTicket
}

// PayoutInput contains parameters for a settlement credit
type PayoutInput struct {
	SessionID string
	UserID    string
	Amount    int64
}

// VerifyPotInput contains parameters for the pot integrity check
type VerifyPotInput struct {
	SessionID string
}

// RefundSessionInput contains parameters for refunding a whole session
type RefundSessionInput struct {
	SessionID string
}

// RefundSessionOutput lists the refunds that were applied
type RefundSessionOutput struct {
	Refunds []models.Payout
}

// ConsumeForSettlementInput contains parameters for absorbing a session's tickets
type ConsumeForSettlementInput struct {
	SessionID string
}

// GetPotInput contains parameters for reading a session's pot
type GetPotInput struct {
	SessionID string
}
