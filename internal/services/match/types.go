package match

import (
	"github.com/nolanpeet/stakehouse/internal/common/clock"
	"github.com/nolanpeet/stakehouse/internal/common/uuid"
	"github.com/nolanpeet/stakehouse/internal/models"
	sessionRepo "github.com/nolanpeet/stakehouse/internal/repositories/session"
	"github.com/nolanpeet/stakehouse/internal/rules"
	anticheatService "github.com/nolanpeet/stakehouse/internal/services/anticheat"
	escrowService "github.com/nolanpeet/stakehouse/internal/services/escrow"
	settlementService "github.com/nolanpeet/stakehouse/internal/services/settlement"
)

const (
	// DefaultTimeoutSeconds is the idle timeout applied when a session is
	// created without one
	DefaultTimeoutSeconds = 300

	// DefaultMaxPlayers caps seats when a session is created without a cap
	DefaultMaxPlayers = 8
)

// Config contains the dependencies for the match service
type Config struct {
	// SessionRepo persists sessions
	SessionRepo sessionRepo.Repository

	// EscrowService moves stakes in and out of session pots
	EscrowService escrowService.Service

	// SettlementService converts outcomes into payouts
	SettlementService settlementService.Service

	// AntiCheatService validates score sessions
	AntiCheatService anticheatService.Service

	// Modules maps each session kind to its rule module
	Modules map[models.SessionKind]rules.Module

	// Clock provides time functionality
	Clock clock.Clock

	// UUIDGenerator generates session IDs
	UUIDGenerator uuid.UUID
}

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
	// Kind selects the rule module
	Kind models.SessionKind

	// FixedStake, when non-zero, is the exact stake every participant must escrow
	FixedStake int64

	// MinPlayers required before staking begins; defaulted per kind when zero
	MinPlayers int

	// MaxPlayers seat cap; defaulted when zero
	MaxPlayers int

	// TimeoutSeconds idle timeout; defaulted when zero
	TimeoutSeconds int
}

// CreateSessionOutput contains the created session
type CreateSessionOutput struct {
	Session *models.Session
}

// JoinInput contains parameters for seating a user
type JoinInput struct {
	SessionID string
	UserID    string
}

// JoinOutput contains the session after the join
type JoinOutput struct {
	Session     *models.Session
	Participant *models.Participant
}

// StakeInput contains parameters for escrowing a participant's stake
type StakeInput struct {
	SessionID string
	UserID    string
	Amount    int64
}

// StakeOutput contains the session after the stake
type StakeOutput struct {
	Session *models.Session

	// Challenge is issued when the stake activated a score session; the
	// holder needs it to end the run
	Challenge *models.Challenge
}

// SubmitInput contains a participant action to apply
type SubmitInput struct {
	SessionID string
	UserID    string
	Action    rules.Action
}

// SubmitOutput contains the session after the action
type SubmitOutput struct {
	Session *models.Session

	// Result is the module's report for the applied action
	Result *rules.StepResult

	// Record is set when the action ended the session
	Record *models.SettlementRecord
}

// ReportScoreInput contains a cumulative score report
type ReportScoreInput struct {
	SessionID string
	UserID    string
	Score     int64
}

// ReportScoreOutput contains the accepted score after validation
type ReportScoreOutput struct {
	Session       *models.Session
	AcceptedScore int64
}

// EndInput contains parameters for ending a score session
type EndInput struct {
	SessionID string
	UserID    string

	// ChallengeResponse is the HMAC over the challenge issued at activation
	ChallengeResponse string
}

// EndOutput contains the settlement that ending produced
type EndOutput struct {
	Session *models.Session
	Record  *models.SettlementRecord
}

// DisconnectInput contains parameters for marking a participant disconnected
type DisconnectInput struct {
	SessionID string
	UserID    string
}

// DisconnectOutput contains the session after the disconnect and any
// terminal record it forced
type DisconnectOutput struct {
	Session      *models.Session
	Record       *models.SettlementRecord
	Cancellation *models.CancellationRecord
}

// ForfeitInput contains parameters for a voluntary leave
type ForfeitInput struct {
	SessionID string
	UserID    string
}

// ForfeitOutput contains the session after the forfeit and any terminal
// record it forced
type ForfeitOutput struct {
	Session      *models.Session
	Record       *models.SettlementRecord
	Cancellation *models.CancellationRecord
}

// CancelInput contains parameters for cancelling a session
type CancelInput struct {
	SessionID string
	Reason    models.CancellationReason
}

// CancelOutput contains the cancellation record
type CancelOutput struct {
	Session *models.Session
	Record  *models.CancellationRecord
}

// TimeoutInput contains parameters for resolving an idle session
type TimeoutInput struct {
	SessionID string
}

// TimeoutOutput contains whichever terminal record the timeout produced
type TimeoutOutput struct {
	Session      *models.Session
	Record       *models.SettlementRecord
	Cancellation *models.CancellationRecord
}

// GetSessionInput contains parameters for reading a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput contains the session
type GetSessionOutput struct {
	Session *models.Session
}
