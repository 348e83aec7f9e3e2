package anticheat

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/nolanpeet/stakehouse/internal/services/anticheat Service

import "context"

// Service defines the interface for anti-cheat validation. Rate state and
// pending challenges live in the service instance; nothing crosses sessions
// or users.
type Service interface {
	// StartTracking seeds the rate state for a session when it goes active
	StartTracking(ctx context.Context, input *StartTrackingInput) error

	// ValidateScore rate-checks a cumulative score report against the
	// session's accepted score and the configured ceiling
	ValidateScore(ctx context.Context, input *ValidateScoreInput) (*ValidateScoreOutput, error)

	// IsFlagged reports whether a session has been permanently flagged
	IsFlagged(ctx context.Context, input *IsFlaggedInput) (bool, error)

	// IssueChallenge creates a single-use challenge for a participant
	IssueChallenge(ctx context.Context, input *IssueChallengeInput) (*IssueChallengeOutput, error)

	// VerifyResponse checks a challenge response, consuming the challenge
	// on the first attempt regardless of the result
	VerifyResponse(ctx context.Context, input *VerifyResponseInput) error

	// ClearSession drops all tracking state for a terminal session
	ClearSession(ctx context.Context, input *ClearSessionInput) error
}
