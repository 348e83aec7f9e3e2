package escrow

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/nolanpeet/stakehouse/internal/repositories/escrow Repository

import (
	"context"

	"github.com/nolanpeet/stakehouse/internal/models"
)

// Repository defines the interface for escrow ticket and pot persistence
type Repository interface {
	// SaveTicket persists an escrow ticket and indexes it under its session
	SaveTicket(ctx context.Context, input *SaveTicketInput) error

	// GetTicket retrieves a ticket by ID
	GetTicket(ctx context.Context, input *GetTicketInput) (*models.EscrowTicket, error)

	// GetTicketsForSession retrieves all tickets issued for a session
	GetTicketsForSession(ctx context.Context, input *GetTicketsForSessionInput) (*GetTicketsForSessionOutput, error)

	// MarkTicketConsumed consumes a ticket exactly once
	MarkTicketConsumed(ctx context.Context, input *MarkTicketConsumedInput) error

	// IncrementPot adds to a session's pot counter
	IncrementPot(ctx context.Context, input *IncrementPotInput) error

	// DecrementPot removes a refunded ticket's amount from a session's pot counter
	DecrementPot(ctx context.Context, input *DecrementPotInput) error

	// GetPot reads a session's pot counter
	GetPot(ctx context.Context, input *GetPotInput) (int64, error)

	// ClearPot zeroes a session's pot counter after settlement or refund
	ClearPot(ctx context.Context, input *ClearPotInput) error
}
