package match

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/nolanpeet/stakehouse/internal/services/match Service

import "context"

// Service is the match state machine. Phases move waiting_for_players →
// waiting_for_stakes → active → settlement → closed, with cancelled
// reachable from any pre-settlement phase. Callers must serialize
// operations per session; the session manager's workers do that.
type Service interface {
	// CreateSession creates a session in waiting_for_players
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// Join seats a user; reaching minimum players advances the phase
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)

	// Stake escrows a participant's stake; the last stake activates play
	Stake(ctx context.Context, input *StakeInput) (*StakeOutput, error)

	// Submit applies a participant action through the session's rule module
	Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error)

	// ReportScore validates and records a score report for a score session
	ReportScore(ctx context.Context, input *ReportScoreInput) (*ReportScoreOutput, error)

	// End finishes a score session after challenge verification
	End(ctx context.Context, input *EndInput) (*EndOutput, error)

	// Disconnect marks a participant disconnected and resolves forfeit wins
	Disconnect(ctx context.Context, input *DisconnectInput) (*DisconnectOutput, error)

	// Forfeit removes a participant voluntarily, with the same terminal
	// rules as a disconnect
	Forfeit(ctx context.Context, input *ForfeitInput) (*ForfeitOutput, error)

	// Cancel refunds and closes a pre-settlement session
	Cancel(ctx context.Context, input *CancelInput) (*CancelOutput, error)

	// Timeout resolves an idle session: the module may pick a winner,
	// otherwise the session cancels with refund
	Timeout(ctx context.Context, input *TimeoutInput) (*TimeoutOutput, error)

	// GetSession reads a session snapshot
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)
}
