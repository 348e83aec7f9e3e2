package escrow

import (
	"time"

	"github.com/nolanpeet/stakehouse/internal/models"
)

// SaveTicketInput contains parameters for persisting a ticket
type SaveTicketInput struct {
	Ticket *models.EscrowTicket
}

// GetTicketInput contains parameters for retrieving a ticket
type GetTicketInput struct {
	TicketID string
}

// GetTicketsForSessionInput contains parameters for listing a session's tickets
type GetTicketsForSessionInput struct {
	SessionID string
}

// GetTicketsForSessionOutput contains the session's tickets in issue order
type GetTicketsForSessionOutput struct {
	Tickets []*models.EscrowTicket
}

// MarkTicketConsumedInput contains parameters for consuming a ticket
type MarkTicketConsumedInput struct {
	TicketID string

	// ConsumedBy records which path consumed the ticket
	ConsumedBy models.TicketConsumer

	// ConsumedAt is when the ticket was consumed
	ConsumedAt time.Time
}

// IncrementPotInput contains parameters for growing a session pot
type IncrementPotInput struct {
	SessionID string
	Amount    int64
}

// DecrementPotInput contains parameters for shrinking a session pot
type DecrementPotInput struct {
	SessionID string
	Amount    int64
}

// GetPotInput contains parameters for reading a session pot
type GetPotInput struct {
	SessionID string
}

// ClearPotInput contains parameters for zeroing a session pot
type ClearPotInput struct {
	SessionID string
}
