package anticheat

import (
	"github.com/nolanpeet/stakehouse/internal/common/clock"
	"github.com/nolanpeet/stakehouse/internal/models"
)

// Config contains the dependencies and tuning for the anti-cheat service
type Config struct {
	// Clock provides time functionality
	Clock clock.Clock

	// ServerSecret is the HMAC key for challenge responses
	ServerSecret []byte

	// MaxScorePerSecond is the plausible scoring ceiling; reported deltas
	// above this rate (with tolerance) are rejected
	MaxScorePerSecond float64
}

// StartTrackingInput contains parameters for seeding rate state
type StartTrackingInput struct {
	SessionID string
}

// ValidateScoreInput contains a cumulative score report to validate
type ValidateScoreInput struct {
	SessionID string
	UserID    string

	// Score is the cumulative score being reported
	Score int64
}

// ValidateScoreOutput contains the accepted cumulative score after validation
type ValidateScoreOutput struct {
	// AcceptedScore is the session's accepted score; unchanged when the
	// report was rejected
	AcceptedScore int64
}

// IsFlaggedInput contains parameters for checking a session's flag
type IsFlaggedInput struct {
	SessionID string
}

// IssueChallengeInput contains parameters for issuing a challenge
type IssueChallengeInput struct {
	SessionID string
	UserID    string
}

// IssueChallengeOutput contains the issued challenge
type IssueChallengeOutput struct {
	Challenge *models.Challenge
}

// VerifyResponseInput contains a challenge response to verify
type VerifyResponseInput struct {
	SessionID string
	UserID    string

	// Response is the hex HMAC the client computed over the challenge
	Response string
}

// ClearSessionInput contains parameters for dropping a session's state
type ClearSessionInput struct {
	SessionID string
}
