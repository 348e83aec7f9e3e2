package manager

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/nolanpeet/stakehouse/internal/services/manager Service

import "context"

// Service is the sole external entry point to the engine. Every mutation of
// one session funnels through that session's worker goroutine, so callers
// never race each other on session state.
type Service interface {
	// Start launches the per-session workers' supervisor and the idle sweep
	Start(ctx context.Context) error

	// Stop drains the workers and stops the sweep
	Stop()

	// CreateSession creates a session in waiting_for_players
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// Join seats a user in a session
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)

	// Stake escrows a participant's stake
	Stake(ctx context.Context, input *StakeInput) (*StakeOutput, error)

	// SubmitAction applies a participant action through the rule module
	SubmitAction(ctx context.Context, input *SubmitActionInput) (*SubmitActionOutput, error)

	// ReportScore validates and records a score report
	ReportScore(ctx context.Context, input *ReportScoreInput) (*ReportScoreOutput, error)

	// EndSession finishes a score session after challenge verification
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// GetState reads a public session snapshot
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// Disconnect marks a participant disconnected
	Disconnect(ctx context.Context, input *DisconnectInput) (*DisconnectOutput, error)

	// Cancel refunds and closes a pre-settlement session
	Cancel(ctx context.Context, input *CancelInput) (*CancelOutput, error)
}
