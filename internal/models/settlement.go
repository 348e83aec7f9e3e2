package models

import (
	"time"
)

// OutcomeKind selects the payout algorithm for a terminal outcome
type OutcomeKind string

const (
	// OutcomeProportional splits the pot across winners, side pots by stake tier
	OutcomeProportional OutcomeKind = "proportional"

	// OutcomeWinnerTakesAll pays the full pot to a single winner
	OutcomeWinnerTakesAll OutcomeKind = "winner_takes_all"

	// OutcomeDraw refunds each contributor exactly their own stake
	OutcomeDraw OutcomeKind = "draw"
)

// Outcome is produced by a rule module when a session reaches a terminal
// condition. Winners are listed in participant order.
type Outcome struct {
	// Kind selects the payout algorithm
	Kind OutcomeKind

	// Winners are the user IDs flagged as winners, in participant order
	Winners []string

	// Detail is a human-readable summary of how the outcome was decided
	Detail string
}

// Payout is a single settlement credit
type Payout struct {
	// UserID receiving the credit
	UserID string

	// Amount credited, in the smallest credit unit
	Amount int64
}

// SettlementRecord is the immutable terminal record of a settled session.
// At most one exists per session; the sum of its payouts equals the pot.
type SettlementRecord struct {
	// SessionID is the idempotency key
	SessionID string

	// Outcome summarizes how the session ended
	Outcome Outcome

	// Payouts lists every credit applied
	Payouts []Payout

	// Pot is the total that was distributed
	Pot int64

	// SettledAt is when settlement completed
	SettledAt time.Time
}

// CancellationReason records why a session was cancelled
type CancellationReason string

const (
	// CancelReasonIdleTimeout indicates the idle timer expired
	CancelReasonIdleTimeout CancellationReason = "idle_timeout"

	// CancelReasonUnderfunded indicates the session fell below minimum players during staking
	CancelReasonUnderfunded CancellationReason = "underfunded"

	// CancelReasonAntiCheat indicates the session was disqualified as suspicious
	CancelReasonAntiCheat CancellationReason = "anti_cheat"

	// CancelReasonAbandoned indicates every participant disconnected
	CancelReasonAbandoned CancellationReason = "abandoned"

	// CancelReasonRequested indicates a caller cancelled before play began
	CancelReasonRequested CancellationReason = "requested"
)

// CancellationRecord is the immutable terminal record of a cancelled session
type CancellationRecord struct {
	// SessionID is the idempotency key
	SessionID string

	// Reason records why the session was cancelled
	Reason CancellationReason

	// Refunds lists every escrowed stake returned
	Refunds []Payout

	// CancelledAt is when cancellation completed
	CancelledAt time.Time
}
