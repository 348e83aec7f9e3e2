package anticheat

// AntiCheatError is a typed error for anti-cheat operations
type AntiCheatError string

// Error implements the error interface
func (e AntiCheatError) Error() string {
	return string(e)
}

const (
	// ErrScoreRejected is returned when a score delta exceeds the rate limit
	ErrScoreRejected = AntiCheatError("score report rejected: rate limit exceeded")

	// ErrSessionFlagged is returned when a session has accumulated too many
	// suspicious reports and only cancellation remains
	ErrSessionFlagged = AntiCheatError("session flagged for suspicious activity")

	// ErrChallengeFailed is returned when a challenge response is missing,
	// expired, or does not match
	ErrChallengeFailed = AntiCheatError("challenge verification failed")

	// ErrNilConfig is returned when a nil config is provided
	ErrNilConfig = AntiCheatError("config cannot be nil")

	// ErrNilClock is returned when a nil clock is provided
	ErrNilClock = AntiCheatError("clock cannot be nil")

	// ErrMissingSecret is returned when no server secret is configured
	ErrMissingSecret = AntiCheatError("server secret cannot be empty")
)
