package models

import (
	"time"
)

// TicketConsumer records which path consumed an escrow ticket
type TicketConsumer string

const (
	// TicketConsumedByRefund indicates the ticket amount was returned to its owner
	TicketConsumedByRefund TicketConsumer = "refund"

	// TicketConsumedBySettlement indicates the ticket was absorbed into a settlement
	TicketConsumedBySettlement TicketConsumer = "settlement"
)

// EscrowTicket is issued for every successful stake debit. A ticket is
// consumed exactly once, by either a refund or a settlement. The sum of
// unconsumed ticket amounts for a session always equals that session's pot.
type EscrowTicket struct {
	// ID is the unique identifier for the ticket
	ID string

	// SessionID is the session whose pot holds the amount
	SessionID string

	// UserID is the participant who funded the ticket
	UserID string

	// Amount debited from the user's balance, in the smallest credit unit
	Amount int64

	// Consumed indicates the ticket has been refunded or settled
	Consumed bool

	// ConsumedBy records which path consumed the ticket
	ConsumedBy TicketConsumer

	// IssuedAt is when the debit happened
	IssuedAt time.Time

	// ConsumedAt is when the ticket was consumed
	ConsumedAt time.Time
}

// LedgerEventType classifies a balance movement
type LedgerEventType string

const (
	// LedgerEventDebit records a stake moving from a balance into a pot
	LedgerEventDebit LedgerEventType = "debit"

	// LedgerEventRefund records an escrowed stake returning to its owner
	LedgerEventRefund LedgerEventType = "refund"

	// LedgerEventPayout records a settlement credit from the pooled pot
	LedgerEventPayout LedgerEventType = "payout"
)

// LedgerEvent is the append-only record emitted for every debit, refund and
// payout, consumed by the persistence sink.
type LedgerEvent struct {
	// Type classifies the movement
	Type LedgerEventType

	// SessionID is the session the movement belongs to
	SessionID string

	// UserID is the balance that moved
	UserID string

	// Amount moved, always positive
	Amount int64

	// TicketID is set for debits and refunds; payouts draw on the pooled pot
	TicketID string

	// Timestamp is when the movement happened
	Timestamp time.Time
}
