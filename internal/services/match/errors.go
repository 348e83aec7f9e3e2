package match

// MatchError is a typed error for match state machine operations
type MatchError string

// Error implements the error interface
func (e MatchError) Error() string {
	return string(e)
}

const (
	// ErrInsufficientFunds is returned when a participant cannot fund their stake
	ErrInsufficientFunds = MatchError("insufficient funds for stake")

	// ErrOutOfTurn is returned when a participant acts outside their turn
	ErrOutOfTurn = MatchError("it is not your turn")

	// ErrInvalidPhaseTransition is returned when an operation does not fit
	// the session's current phase
	ErrInvalidPhaseTransition = MatchError("operation not valid in current phase")

	// ErrSessionFull is returned when a join would exceed the seat cap
	ErrSessionFull = MatchError("session is full")

	// ErrAlreadyJoined is returned when a user tries to join a session twice
	ErrAlreadyJoined = MatchError("user already joined this session")

	// ErrAlreadyStaked is returned when a participant tries to stake twice
	ErrAlreadyStaked = MatchError("stake already escrowed")

	// ErrWrongStake is returned when a stake does not match the session's
	// fixed stake
	ErrWrongStake = MatchError("stake does not match the session's fixed stake")

	// ErrNotParticipant is returned when the acting user has no seat
	ErrNotParticipant = MatchError("user is not a participant in this session")

	// ErrAlreadySettled is returned when cancellation is requested after
	// settlement began
	ErrAlreadySettled = MatchError("session is already settled")

	// ErrSessionFlagged is returned when a flagged session tries to reach a
	// paying settlement
	ErrSessionFlagged = MatchError("session is flagged; only cancellation remains")

	// ErrSessionFrozen is returned when a session with a detected
	// accounting defect is touched
	ErrSessionFrozen = MatchError("session is frozen pending operator review")

	// ErrAntiCheatRejected is returned when a score report fails rate
	// validation
	ErrAntiCheatRejected = MatchError("score report rejected by anti-cheat")

	// ErrChallengeFailed is returned when end-of-session challenge
	// verification fails
	ErrChallengeFailed = MatchError("challenge verification failed")

	// ErrUnknownKind is returned when no rule module covers a session kind
	ErrUnknownKind = MatchError("no rule module for session kind")

	// ErrNilConfig is returned when a nil config is provided
	ErrNilConfig = MatchError("config cannot be nil")

	// ErrNilSessionRepo is returned when a nil session repository is provided
	ErrNilSessionRepo = MatchError("session repository cannot be nil")

	// ErrNilEscrowService is returned when a nil escrow service is provided
	ErrNilEscrowService = MatchError("escrow service cannot be nil")

	// ErrNilSettlementService is returned when a nil settlement service is provided
	ErrNilSettlementService = MatchError("settlement service cannot be nil")

	// ErrNilAntiCheatService is returned when a nil anti-cheat service is provided
	ErrNilAntiCheatService = MatchError("anti-cheat service cannot be nil")

	// ErrNoModules is returned when no rule modules are configured
	ErrNoModules = MatchError("at least one rule module is required")

	// ErrNilClock is returned when a nil clock is provided
	ErrNilClock = MatchError("clock cannot be nil")

	// ErrNilUUID is returned when a nil UUID generator is provided
	ErrNilUUID = MatchError("uuid generator cannot be nil")
)
